// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/plexus/descriptor"
	"github.com/katalvlaran/plexus/dynamic"
	"github.com/katalvlaran/plexus/layer"
)

var errBadBatch = errors.New("batch must be > 0")

func newRunCmd() *cobra.Command {
	var (
		path  string
		batch int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Forward and backward pass of a descriptor network on a random batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if batch <= 0 {
				return errBadBatch
			}
			desc, err := descriptor.LoadFile(path)
			if err != nil {
				return err
			}

			src := layer.NewUniformSource[float64](seed)
			net, err := dynamic.FromDescriptor(desc, src)
			if err != nil {
				return err
			}
			params := net.ParamCount()
			log.WithFields(log.Fields{
				"widths": desc.Widths(),
				"params": humanize.Comma(int64(params)),
				"memory": humanize.Bytes(uint64(params) * 8),
			}).Info("network built")

			x, want := randomBatch(src, batch, desc.Inputs, desc.Output.Neurons)
			pred, err := net.Forward(x)
			if err != nil {
				return err
			}
			losses, mean, err := net.Loss(pred, want)
			if err != nil {
				return err
			}
			if _, err := net.Backward(pred, want); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, l := range losses {
				fmt.Fprintf(w, "sample %d: label=%d predicted=%d loss=%.6f\n",
					i, floats.MaxIdx(want.RawRowView(i)), floats.MaxIdx(pred.RawRowView(i)), l)
			}
			fmt.Fprintf(w, "mean loss: %.6f\n", mean)
			for k, d := range net.Layers() {
				dw := d.DWeights()
				log.Debugf("layer %d |dW|=%.6g", k, floats.Norm(dw.RawMatrix().Data, 2))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "descriptor", "d", "", "network descriptor (.yaml, .yml or .json)")
	cmd.Flags().IntVar(&batch, "batch", 4, "number of samples")
	cmd.Flags().Uint64Var(&seed, "seed", layer.DefaultSeed, "seed for weights, inputs and labels")
	_ = cmd.MarkFlagRequired("descriptor")

	return cmd
}

// randomBatch draws a samples × inputs batch in [-1, 1) and one-hot labels
// over classes, both from src.
func randomBatch(src layer.Source[float64], samples, inputs, classes int) (x, want *mat.Dense) {
	data := make([]float64, samples*inputs)
	for k := range data {
		data[k] = src.Draw()*2 - 1
	}
	x = mat.NewDense(samples, inputs, data)

	want = mat.NewDense(samples, classes, nil)
	for i := 0; i < samples; i++ {
		label := min(int(math.Floor(src.Draw()*float64(classes))), classes-1)
		want.Set(i, label, 1)
	}

	return x, want
}
