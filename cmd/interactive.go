package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/decision-cli/internal/decision"
	"github.com/sells-group/decision-cli/internal/matrixio"
	"github.com/sells-group/decision-cli/internal/prompt"
	"github.com/sells-group/decision-cli/internal/render"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Enter or generate matrices interactively and print every criterion",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		style := render.Style{Color: render.ColorEnabled(cfg.Output.Color, out)}
		return runSession(out, prompt.New(cmd.InOrStdin(), out), matrixio.NewRand(cfg.Random.Seed), style)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// asker is the question/answer surface of an interactive session.
type asker interface {
	Setup() (*prompt.Setup, error)
	Cells(rows, cols int) ([][]float64, error)
	Limits() (low, high int, err error)
	Again() (bool, error)
}

// runSession repeats setup, evaluation and printing until the user exits.
func runSession(w io.Writer, a asker, rng *rand.Rand, style render.Style) error {
	for {
		setup, err := a.Setup()
		if err != nil {
			return err
		}

		rows, err := sessionCells(a, setup, rng)
		if err != nil {
			return err
		}

		m, err := decision.Validate(rows)
		if err != nil {
			return eris.Wrap(err, "interactive: evaluate")
		}
		report, err := decision.EvaluateMatrix(m, setup.Optimism)
		if err != nil {
			return eris.Wrap(err, "interactive: evaluate")
		}

		env := render.NewEnvelope(setup.Source, m, report)
		zap.L().Debug("interactive: evaluated",
			zap.String("run_id", env.RunID),
			zap.String("winners", env.Summary()),
		)
		if err := render.Table(w, env, style); err != nil {
			return err
		}

		again, err := a.Again()
		if err != nil {
			return err
		}
		if !again {
			_, err := fmt.Fprintln(w, "Bye!")
			return err
		}
	}
}

func sessionCells(a asker, setup *prompt.Setup, rng *rand.Rand) ([][]float64, error) {
	if setup.Source == prompt.SourceRandom {
		low, high, err := a.Limits()
		if err != nil {
			return nil, err
		}
		return matrixio.Generate(setup.Rows, setup.Cols, low, high, rng)
	}
	return a.Cells(setup.Rows, setup.Cols)
}
