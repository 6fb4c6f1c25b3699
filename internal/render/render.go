// Package render presents decision reports: console tables with optional
// color, JSON, CSV and XLSX. It only reads decision values and never
// computes scores itself.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/decision-cli/internal/decision"
)

var titleCaser = cases.Title(language.English)

// Title returns the display name of a criterion, e.g. "Hurwicz".
func Title(c decision.Criterion) string {
	return titleCaser.String(string(c))
}

// AltLabel returns the 1-based label of alternative i ("A1", "A2", ...).
func AltLabel(i int) string { return "A" + strconv.Itoa(i+1) }

// StateLabel returns the 1-based label of state j ("S1", "S2", ...).
func StateLabel(j int) string { return "S" + strconv.Itoa(j+1) }

// FormatNumber prints v with at most two decimals and no trailing zeros.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// ResultView is the serialized form of one criterion result.
type ResultView struct {
	Criterion   string      `json:"criterion"`
	Mode        string      `json:"mode"`
	Scores      []float64   `json:"scores"`
	Winner      int         `json:"winner"`
	WinnerLabel string      `json:"winner_label"`
	Best        float64     `json:"best"`
	Regret      [][]float64 `json:"regret,omitempty"`
}

// Envelope is a complete, serializable evaluation: inputs plus results.
type Envelope struct {
	RunID    string       `json:"run_id"`
	Source   string       `json:"source,omitempty"`
	Rows     int          `json:"rows"`
	Cols     int          `json:"cols"`
	Optimism float64      `json:"optimism"`
	Matrix   [][]float64  `json:"matrix"`
	Results  []ResultView `json:"results"`
}

// NewEnvelope pairs a matrix with its report under a fresh run ID.
func NewEnvelope(source string, m *decision.Matrix, report *decision.Report) *Envelope {
	env := &Envelope{
		RunID:    uuid.NewString(),
		Source:   source,
		Rows:     m.Rows(),
		Cols:     m.Cols(),
		Optimism: report.Optimism,
		Matrix:   m.Values(),
		Results:  make([]ResultView, 0, len(report.Results)),
	}
	for _, r := range report.Results {
		view := ResultView{
			Criterion:   string(r.Criterion),
			Mode:        string(r.Mode),
			Scores:      append([]float64(nil), r.Scores...),
			Winner:      r.Winner,
			WinnerLabel: AltLabel(r.Winner),
			Best:        r.Scores[r.Winner],
		}
		if r.Regret != nil {
			view.Regret = r.Regret.Values()
		}
		env.Results = append(env.Results, view)
	}
	return env
}

// Summary returns a one-line digest of the winners, e.g.
// "laplace=A1 pessimistic=A1 optimistic=A2 hurwicz=A1 savage=A1".
func (e *Envelope) Summary() string {
	parts := make([]string, len(e.Results))
	for i, r := range e.Results {
		parts[i] = fmt.Sprintf("%s=%s", r.Criterion, r.WinnerLabel)
	}
	return strings.Join(parts, " ")
}
