// Package prompt collects evaluation inputs interactively. Each field is
// validated as it is entered, so a bad answer is re-asked rather than
// failing the session.
package prompt

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rotisserie/eris"
	"golang.org/x/term"
)

// Matrix sources offered by the setup form.
const (
	SourceManual = "manual"
	SourceRandom = "random"
)

// Setup holds the answers to the first form of a session.
type Setup struct {
	Rows     int
	Cols     int
	Optimism float64
	Source   string
}

// Prompter asks questions on in/out. Non-terminal input switches huh to
// accessible mode, which reads plain lines (tests, piped input).
type Prompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	f, ok := in.(*os.File)
	return &Prompter{
		in:         in,
		out:        out,
		accessible: !ok || !term.IsTerminal(int(f.Fd())),
	}
}

func (p *Prompter) run(groups ...*huh.Group) error {
	return huh.NewForm(groups...).
		WithInput(p.in).
		WithOutput(p.out).
		WithAccessible(p.accessible).
		Run()
}

// Setup asks for the matrix dimensions, the optimism coefficient and where
// the cells come from.
func (p *Prompter) Setup() (*Setup, error) {
	var rowsRaw, colsRaw, coefRaw string
	source := SourceManual

	err := p.run(huh.NewGroup(
		huh.NewInput().
			Title("Enter the number of rows").
			Value(&rowsRaw).
			Validate(PositiveInt("rows")),
		huh.NewInput().
			Title("Enter the number of columns").
			Value(&colsRaw).
			Validate(PositiveInt("columns")),
		huh.NewInput().
			Title("Enter the optimism coefficient").
			Description("A number between 0 and 1").
			Value(&coefRaw).
			Validate(Coefficient),
		huh.NewSelect[string]().
			Title("How should the matrix be filled?").
			Options(
				huh.NewOption("Enter values manually", SourceManual),
				huh.NewOption("Generate random values", SourceRandom),
			).
			Value(&source),
	))
	if err != nil {
		return nil, eris.Wrap(err, "prompt: setup form")
	}

	rows, _ := strconv.Atoi(strings.TrimSpace(rowsRaw))
	cols, _ := strconv.Atoi(strings.TrimSpace(colsRaw))
	coef, _ := strconv.ParseFloat(strings.TrimSpace(coefRaw), 64)
	return &Setup{Rows: rows, Cols: cols, Optimism: coef, Source: source}, nil
}

// Cells asks for each row as space-separated numbers.
func (p *Prompter) Cells(rows, cols int) ([][]float64, error) {
	raw := make([]string, rows)
	fields := make([]huh.Field, rows)
	for i := range raw {
		fields[i] = huh.NewInput().
			Title("Please enter values of row " + strconv.Itoa(i+1)).
			Description("Separate values with spaces, e.g.: 1 2 3").
			Value(&raw[i]).
			Validate(Row(cols))
	}

	if err := p.run(huh.NewGroup(fields...)); err != nil {
		return nil, eris.Wrap(err, "prompt: matrix form")
	}

	out := make([][]float64, rows)
	for i, line := range raw {
		row, err := ParseRow(line, cols)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}

// Limits asks for the random generation range [low, high).
func (p *Prompter) Limits() (low, high int, err error) {
	var lowRaw, highRaw string
	err = p.run(huh.NewGroup(
		huh.NewInput().
			Title("Enter the lower limit").
			Value(&lowRaw).
			Validate(Integer("lower limit")),
		huh.NewInput().
			Title("Enter the upper limit").
			Value(&highRaw).
			Validate(func(s string) error {
				if err := Integer("upper limit")(s); err != nil {
					return err
				}
				return Limits(lowRaw, s)
			}),
	))
	if err != nil {
		return 0, 0, eris.Wrap(err, "prompt: limits form")
	}

	low, _ = strconv.Atoi(strings.TrimSpace(lowRaw))
	high, _ = strconv.Atoi(strings.TrimSpace(highRaw))
	return low, high, nil
}

// Again asks whether to run another evaluation.
func (p *Prompter) Again() (bool, error) {
	again := true
	err := p.run(huh.NewGroup(
		huh.NewConfirm().
			Title("Evaluate another matrix?").
			Affirmative("Continue").
			Negative("Exit").
			Value(&again),
	))
	if err != nil {
		return false, eris.Wrap(err, "prompt: continue form")
	}
	return again, nil
}
