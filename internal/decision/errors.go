// Package decision evaluates payoff matrices under the classical
// decision-under-uncertainty criteria: Laplace, optimistic (maximax),
// pessimistic (maximin), Hurwicz and Savage (minimax regret).
//
// Every function in this package is pure. A Matrix is immutable after
// Validate, so one matrix may be shared by concurrent evaluations.
package decision

import "github.com/rotisserie/eris"

// Sentinel errors. Callers match them with errors.Is; returned errors wrap
// them with positional context.
var (
	// ErrShape is returned for an empty or ragged matrix.
	ErrShape = eris.New("decision: invalid matrix shape")

	// ErrValue is returned for a non-numeric or non-finite cell.
	ErrValue = eris.New("decision: invalid cell value")

	// ErrRange is returned for an optimism coefficient outside [0, 1]
	// or an unknown selection mode.
	ErrRange = eris.New("decision: value out of range")

	// ErrEmptyInput is returned when selecting from an empty score vector.
	ErrEmptyInput = eris.New("decision: empty input")
)
