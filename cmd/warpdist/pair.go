package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/warp/dataset"
	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/metric"
)

func newPairCmd(c *cli) *cobra.Command {
	var (
		xs, ys   string
		name     string
		withPath bool
	)

	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Distance between two sequences",
		Example: `  warpdist pair --x 1,3,9,2,1 --y 2,0,0,8,7,2
  warpdist pair --x 1,2,3 --y 1,2,2,3 --metric sqeuclidean --path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := dataset.ParseValues(xs)
			if err != nil {
				return fmt.Errorf("--x: %w", err)
			}
			y, err := dataset.ParseValues(ys)
			if err != nil {
				return fmt.Errorf("--y: %w", err)
			}

			m, err := metric.FromName[float64, float64](c.metricName(cmd, name), false)
			if err != nil {
				return err
			}
			d := dtw.New(m)
			logrus.WithFields(logrus.Fields{
				"metric": m.Name(),
				"len_x":  len(x),
				"len_y":  len(y),
			}).Info("computing distance")

			out := cmd.OutOrStdout()
			if !withPath {
				dist, err := d.OneToOne(x, y)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "distance=%g\n", dist)

				return nil
			}

			dist, path, err := d.Align(x, y)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "distance=%g\n", dist)
			for _, p := range path {
				fmt.Fprintf(out, "x[%d]=%g\ty[%d]=%g\n", p.X, x[p.X], p.Y, y[p.Y])
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&xs, "x", "", "First sequence, comma separated")
	cmd.Flags().StringVar(&ys, "y", "", "Second sequence, comma separated")
	cmd.Flags().StringVar(&name, "metric", metric.NameManhattan, "Pointwise metric")
	cmd.Flags().BoolVar(&withPath, "path", false, "Also print the warping path")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}
