package decision

import (
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Matrix is a validated payoff matrix: alternatives are rows, states of
// nature are columns. The zero value is not usable; build one with Validate.
type Matrix struct {
	cells [][]float64
	rows  int
	cols  int
}

// Validate checks that rows form a non-empty rectangular matrix of finite
// numbers and returns an immutable copy of it.
func Validate(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, eris.Wrap(ErrShape, "matrix has no rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, eris.Wrap(ErrShape, "matrix has no columns")
	}

	cells := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != cols {
			return nil, eris.Wrapf(ErrShape, "row %d has %d columns, want %d", i, len(row), cols)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, eris.Wrapf(ErrValue, "cell [%d][%d] is not finite (%v)", i, j, v)
			}
		}
		cells[i] = append([]float64(nil), row...)
	}

	return &Matrix{cells: cells, rows: len(rows), cols: cols}, nil
}

// ParseCells converts textual cells into numbers. Surrounding whitespace is
// ignored; anything strconv.ParseFloat rejects, and any NaN or infinity,
// fails with ErrValue. Shape is left to Validate.
func ParseCells(rows [][]string) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, raw := range row {
			s := strings.TrimSpace(raw)
			v, err := strconv.ParseFloat(s, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, eris.Wrapf(ErrValue, "cell [%d][%d] %q is not a number", i, j, s)
			}
			out[i][j] = v
		}
	}
	return out, nil
}

// Rows returns the number of alternatives.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of states of nature.
func (m *Matrix) Cols() int { return m.cols }

// At returns the payoff of alternative i under state j. It panics when the
// index is out of range, like a slice index.
func (m *Matrix) At(i, j int) float64 { return m.cells[i][j] }

// Row returns a copy of alternative i's payoffs.
func (m *Matrix) Row(i int) []float64 {
	return append([]float64(nil), m.cells[i]...)
}

// Values returns a deep copy of the cells.
func (m *Matrix) Values() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range m.cells {
		out[i] = m.Row(i)
	}
	return out
}
