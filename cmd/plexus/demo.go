// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/plexus/activation"
	"github.com/katalvlaran/plexus/layer"
	"github.com/katalvlaran/plexus/matrix"
)

func newDemoCmd() *cobra.Command {
	var (
		seed uint64
		act  string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run one sample through a static 4→6 dense layer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := activation.Parse(act)
			if err != nil {
				return err
			}
			f, err := activation.For[float64](kind)
			if err != nil {
				return err
			}

			dense := layer.NewDense[matrix.D1, matrix.D6, matrix.D4](layer.WithSeed[float64](seed))
			block := dense.Activated(f)
			log.WithFields(log.Fields{
				"seed":       seed,
				"activation": f.Name(),
				"params":     humanize.Comma(int64(layer.ParamCount[matrix.D1, matrix.D6, matrix.D4, float64](dense))),
			}).Info("dense layer ready")
			log.Debugf("weights:\n%s", dense.Weights())

			in := matrix.NewRowVector[matrix.D4](1.0, 2.0, 3.0, 4.0)
			out := block.Forward(in)
			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", layer.DefaultSeed, "weight initialization seed")
	cmd.Flags().StringVar(&act, "activation", activation.KindLinear.String(), "activation applied after the layer")

	return cmd
}
