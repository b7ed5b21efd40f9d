// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/evilsocket/islazy/str"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/plexus/matrix"
)

var (
	errNotSquare   = errors.New("matrix must be square")
	errUnsupported = errors.New("supported sizes are 1 through 8")
)

func newDetCmd() *cobra.Command {
	var literal string

	cmd := &cobra.Command{
		Use:   "det",
		Short: "Determinant of a small square matrix",
		Long: "Determinant of a small square matrix given as rows separated by ';' and\n" +
			"cells separated by ','. Elimination runs without pivoting, so a zero\n" +
			"leading pivot yields NaN or ±Inf.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := parseMatrix(literal)
			if err != nil {
				return err
			}
			det, err := staticDet(m)
			if err != nil {
				return err
			}
			log.WithField("gonum", mat.Det(m)).Debug("pivoting reference")
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", det)

			return nil
		},
	}
	cmd.Flags().StringVarP(&literal, "matrix", "m", "", `matrix literal, e.g. "1,2;3,4"`)
	_ = cmd.MarkFlagRequired("matrix")

	return cmd
}

// parseMatrix reads "a,b;c,d" into a square *mat.Dense. Blank rows and
// cells are dropped, so a trailing separator is harmless.
func parseMatrix(s string) (*mat.Dense, error) {
	rows := str.SplitBy(s, ";")
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("empty matrix literal: %w", errNotSquare)
	}
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		cells := str.Comma(row)
		if len(cells) != n {
			return nil, fmt.Errorf("row %d has %d cells for %d rows: %w", i, len(cells), n, errNotSquare)
		}
		for _, c := range cells {
			v, err := strconv.ParseFloat(c, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(n, n, data), nil
}

// staticDet dispatches the runtime size to a statically shaped determinant.
func staticDet(m *mat.Dense) (float64, error) {
	n, _ := m.Dims()
	switch n {
	case 1:
		return detOf[matrix.D1](m)
	case 2:
		return detOf[matrix.D2](m)
	case 3:
		return detOf[matrix.D3](m)
	case 4:
		return detOf[matrix.D4](m)
	case 5:
		return detOf[matrix.D5](m)
	case 6:
		return detOf[matrix.D6](m)
	case 7:
		return detOf[matrix.D7](m)
	case 8:
		return detOf[matrix.D8](m)
	default:
		return 0, fmt.Errorf("%dx%d: %w", n, n, errUnsupported)
	}
}

func detOf[N matrix.Dim](m *mat.Dense) (float64, error) {
	sq, err := matrix.FromGonum[N, N, float64](m)
	if err != nil {
		return 0, err
	}

	return matrix.Det(sq), nil
}
