package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/decision-cli/internal/config"
	"github.com/sells-group/decision-cli/internal/matrixio"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random payoff matrix file",
	Long: `Generate a random integer payoff matrix and write it as a YAML document that
'evaluate' accepts. Cells are drawn uniformly from [low, high).

Examples:
  random --rows 3 --cols 4 > payoffs.yaml
  random --rows 5 --cols 5 --low -20 --high 20 --seed 42 -o payoffs.yaml`,
	RunE: runRandom,
}

func init() {
	addRandomFlags(randomCmd)
	randomCmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")

	rootCmd.AddCommand(randomCmd)
}

// randomOptions configures random matrix generation.
type randomOptions struct {
	Rows int
	Cols int
	Low  int
	High int
	Seed int64
}

func addRandomFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("rows", 0, "number of alternatives for a random matrix")
	f.Int("cols", 0, "number of states of nature for a random matrix")
	f.Int("low", 0, "lower limit, inclusive (overrides config)")
	f.Int("high", 0, "upper limit, exclusive (overrides config)")
	f.Int64("seed", 0, "random seed (0 = time-seeded, overrides config)")
}

// randomFromFlags returns the configured limits with CLI overrides applied.
func randomFromFlags(cmd *cobra.Command, base config.RandomConfig) randomOptions {
	opts := randomOptions{Low: base.Low, High: base.High, Seed: base.Seed}
	opts.Rows, _ = cmd.Flags().GetInt("rows")
	opts.Cols, _ = cmd.Flags().GetInt("cols")
	if cmd.Flags().Changed("low") {
		opts.Low, _ = cmd.Flags().GetInt("low")
	}
	if cmd.Flags().Changed("high") {
		opts.High, _ = cmd.Flags().GetInt("high")
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	return opts
}

func (o randomOptions) generate() ([][]float64, error) {
	return matrixio.Generate(o.Rows, o.Cols, o.Low, o.High, matrixio.NewRand(o.Seed))
}

func runRandom(cmd *cobra.Command, _ []string) error {
	opts := randomFromFlags(cmd, cfg.Random)
	rows, err := opts.generate()
	if err != nil {
		return eris.Wrap(err, "random")
	}

	path, _ := cmd.Flags().GetString("output")
	w, closeOut, err := openOutput(path, cmd.OutOrStdout())
	if err != nil {
		return eris.Wrap(err, "random")
	}
	defer closeOut()

	coef := cfg.Decision.Optimism
	if err := matrixio.WriteYAML(w, rows, &coef); err != nil {
		return eris.Wrap(err, "random")
	}

	zap.L().Debug("random: matrix generated",
		zap.Int("rows", opts.Rows),
		zap.Int("cols", opts.Cols),
		zap.Int("low", opts.Low),
		zap.Int("high", opts.High),
	)
	return nil
}
