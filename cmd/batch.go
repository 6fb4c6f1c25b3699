package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/decision-cli/internal/config"
	"github.com/sells-group/decision-cli/internal/decision"
	"github.com/sells-group/decision-cli/internal/matrixio"
	"github.com/sells-group/decision-cli/internal/render"
)

var batchConcurrency int

var batchCmd = &cobra.Command{
	Use:   "batch <matrix-file>...",
	Short: "Evaluate many matrix files concurrently",
	Long: `Evaluate every given matrix file and print one JSON report per line, in the
order the files were given. Files that fail are logged and skipped; the
command exits non-zero if any file failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		concurrency := cfg.Batch.Concurrency
		if batchConcurrency > 0 {
			concurrency = batchConcurrency
		}
		return processBatch(ctx, cmd.OutOrStdout(), args, concurrency, cfg.Decision)
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max files evaluated at once (0=use config)")
	rootCmd.AddCommand(batchCmd)
}

// batchItem is the outcome for one file.
type batchItem struct {
	env *render.Envelope
	err error
}

// processBatch evaluates paths concurrently and writes the successful
// reports as JSON lines in input order.
func processBatch(ctx context.Context, w io.Writer, paths []string, concurrency int, dc config.DecisionConfig) error {
	if concurrency < 1 {
		concurrency = 1
	}

	zap.L().Info("processing batch",
		zap.Int("files", len(paths)),
		zap.Int("concurrency", concurrency),
	)

	items := make([]batchItem, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return eris.Wrap(err, "batch: cancelled")
			}
			items[i] = evaluateFile(path, dc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failed int
	for i, item := range items {
		if item.err != nil {
			failed++
			zap.L().Error("batch: file failed",
				zap.String("path", paths[i]),
				zap.Error(item.err),
			)
			continue
		}
		if err := render.JSON(w, item.env); err != nil {
			return eris.Wrap(err, "batch: write report")
		}
	}

	zap.L().Info("batch complete",
		zap.Int("succeeded", len(paths)-failed),
		zap.Int("failed", failed),
	)

	if failed > 0 {
		return eris.Errorf("batch: %d of %d files failed", failed, len(paths))
	}
	return nil
}

func evaluateFile(path string, dc config.DecisionConfig) batchItem {
	in, err := matrixio.ReadFile(path)
	if err != nil {
		return batchItem{err: err}
	}

	report, err := decision.EvaluateMatrix(in.Matrix, resolveOptimism(dc, in.Optimism, nil))
	if err != nil {
		return batchItem{err: eris.Wrapf(err, "batch: evaluate %s", path)}
	}
	return batchItem{env: render.NewEnvelope(in.Source, in.Matrix, report)}
}
