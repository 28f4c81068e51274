package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/warp/dataset"
	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/metric"
)

func newMatrixCmd(c *cli) *cobra.Command {
	var (
		dataPath string
		name     string
		workers  int
		sample   int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:     "matrix",
		Short:   "Pairwise distances between all sequences of a YAML file",
		Example: `  warpdist matrix --data signals.yaml --workers 8 --sample 20 --seed 7`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = c.cfg.Workers
			}
			if !cmd.Flags().Changed("sample") {
				sample = c.cfg.Sample
			}
			if !cmd.Flags().Changed("seed") {
				seed = c.cfg.Seed
			}
			if workers <= 0 {
				return fmt.Errorf("--workers must be positive, got %d", workers)
			}

			set, err := dataset.LoadFile(dataPath)
			if err != nil {
				return err
			}
			if sample > 0 {
				if set, err = set.Sample(sample, seed); err != nil {
					return err
				}
			}

			m, err := metric.FromName[float64, float64](c.metricName(cmd, name), false)
			if err != nil {
				return err
			}

			start := time.Now()
			dist, err := pairwise(cmd.Context(), dtw.New(m), set, workers)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"sequences": set.Len(),
				"metric":    m.Name(),
				"workers":   workers,
				"elapsed":   time.Since(start),
			}).Info("pairwise distances computed")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "labels: %s\n", strings.Join(set.Labels(), " "))
			fmt.Fprintf(out, "%v\n", mat.Formatted(dist, mat.Squeeze()))

			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "YAML sequence file")
	cmd.Flags().StringVar(&name, "metric", metric.NameManhattan, "Pointwise metric")
	cmd.Flags().IntVar(&workers, "workers", 0, "Pairs evaluated in parallel (unset: config value, else NumCPU)")
	cmd.Flags().IntVar(&sample, "sample", 0, "Keep only this many sequences, chosen by --seed (0 keeps all)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for --sample")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

// pairwise fills an n×n matrix with sm.OneToOne(set[i], set[j]) for every
// ordered pair. Each cell is independent; at most workers run at once and the
// first error cancels the pairs not yet started.
func pairwise(ctx context.Context, sm metric.SequenceMetric[float64, float64], set *dataset.Set, workers int) (*mat.Dense, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	n := set.Len()
	out := mat.NewDense(n, n, nil)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				d, err := sm.OneToOne(set.Sequences[i].Values, set.Sequences[j].Values)
				if err != nil {
					return fmt.Errorf("%s vs %s: %w", set.Sequences[i].Label, set.Sequences[j].Label, err)
				}
				logrus.Tracef("%s vs %s = %g", set.Sequences[i].Label, set.Sequences[j].Label, d)
				// distinct cells: no two goroutines write the same element
				out.Set(i, j, d)

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
