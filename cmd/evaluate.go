package main

import (
	"io"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/decision-cli/internal/config"
	"github.com/sells-group/decision-cli/internal/decision"
	"github.com/sells-group/decision-cli/internal/matrixio"
	"github.com/sells-group/decision-cli/internal/render"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [matrix-file]",
	Short: "Evaluate a payoff matrix under all five criteria",
	Long: `Evaluate a payoff matrix read from a file, or generated at random, under the
Laplace, Pessimistic, Optimistic, Hurwicz and Savage criteria.

Supported files: .yaml/.yml/.json ({optimism: 0.4, matrix: [[...]]}), .csv
(one alternative per line) and .xlsx (first sheet).

Examples:
  # Evaluate a YAML matrix with the configured optimism coefficient
  evaluate payoffs.yaml

  # Override the Hurwicz coefficient and print JSON
  evaluate payoffs.csv --optimism 0.7 --format json

  # Random 4x3 matrix with cells in [10, 50)
  evaluate --rows 4 --cols 3 --low 10 --high 50 --seed 7

  # Export the report to a workbook as well
  evaluate payoffs.xlsx --xlsx report.xlsx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.Float64("optimism", 0, "Hurwicz optimism coefficient in [0,1] (overrides file and config)")
	addRandomFlags(evaluateCmd)
	addOutputFlags(evaluateCmd)

	rootCmd.AddCommand(evaluateCmd)
}

// evaluateOptions is the fully resolved input of one evaluate run.
type evaluateOptions struct {
	File     string
	Optimism *float64 // explicit override
	Random   randomOptions
	Output   outputOptions
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	opts := evaluateOptions{
		Random: randomFromFlags(cmd, cfg.Random),
		Output: outputFromFlags(cmd),
	}
	if len(args) > 0 {
		opts.File = args[0]
	}
	if cmd.Flags().Changed("optimism") {
		v, _ := cmd.Flags().GetFloat64("optimism")
		opts.Optimism = &v
	}
	if opts.File == "" && (opts.Random.Rows == 0 || opts.Random.Cols == 0) {
		return eris.New("evaluate: provide a matrix file or --rows and --cols")
	}

	return evaluate(cmd.OutOrStdout(), cfg.Decision, opts)
}

// evaluate loads or generates the matrix, runs the criteria and writes the
// report to opts.Output.Path, or to stdout when no path is set. The output
// file is only created once the report is ready.
func evaluate(stdout io.Writer, dc config.DecisionConfig, opts evaluateOptions) error {
	env, err := buildEnvelope(dc, opts)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(opts.Output.Path, stdout)
	if err != nil {
		return eris.Wrap(err, "evaluate")
	}
	defer closeOut()

	if err := writeReport(w, env, opts.Output); err != nil {
		return eris.Wrap(err, "evaluate: write report")
	}
	if opts.Output.XLSX != "" {
		if err := render.WriteXLSX(opts.Output.XLSX, env); err != nil {
			return eris.Wrap(err, "evaluate: export xlsx")
		}
		zap.L().Info("evaluate: exported workbook", zap.String("path", opts.Output.XLSX))
	}
	return nil
}

func buildEnvelope(dc config.DecisionConfig, opts evaluateOptions) (*render.Envelope, error) {
	if !slices.Contains(config.OutputFormats, opts.Output.Format) {
		return nil, eris.Errorf("evaluate: unsupported format %q", opts.Output.Format)
	}

	in, err := loadInput(opts)
	if err != nil {
		return nil, err
	}

	coef := resolveOptimism(dc, in.Optimism, opts.Optimism)
	report, err := decision.EvaluateMatrix(in.Matrix, coef)
	if err != nil {
		return nil, eris.Wrap(err, "evaluate")
	}

	env := render.NewEnvelope(in.Source, in.Matrix, report)
	zap.L().Info("evaluate: report ready",
		zap.String("run_id", env.RunID),
		zap.String("source", env.Source),
		zap.Int("rows", env.Rows),
		zap.Int("cols", env.Cols),
		zap.Float64("optimism", coef),
		zap.String("winners", env.Summary()),
	)
	return env, nil
}

// loadInput reads opts.File, or generates a random matrix when no file is
// given.
func loadInput(opts evaluateOptions) (*matrixio.Input, error) {
	if opts.File != "" {
		in, err := matrixio.ReadFile(opts.File)
		if err != nil {
			return nil, eris.Wrapf(err, "evaluate: read %s", opts.File)
		}
		return in, nil
	}

	rows, err := opts.Random.generate()
	if err != nil {
		return nil, eris.Wrap(err, "evaluate")
	}
	m, err := decision.Validate(rows)
	if err != nil {
		return nil, eris.Wrap(err, "evaluate")
	}
	return &matrixio.Input{Source: "random", Matrix: m}, nil
}

// resolveOptimism picks the coefficient: CLI flag, then file, then config.
func resolveOptimism(dc config.DecisionConfig, fromFile, fromFlag *float64) float64 {
	switch {
	case fromFlag != nil:
		return *fromFlag
	case fromFile != nil:
		return *fromFile
	default:
		return dc.Optimism
	}
}
