package decision

import (
	"math"

	"github.com/rotisserie/eris"
)

// Round2 rounds v to two decimal places, halves away from zero. Laplace and
// Hurwicz scores both go through it.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Laplace scores each alternative by its mean payoff, treating every state
// of nature as equally likely. The mean is rounded to two decimals, so a
// constant row scores its own value only when that value has at most two
// decimals: a row of 0.125 scores 0.13.
func Laplace(m *Matrix) []float64 {
	scores := make([]float64, m.rows)
	for i, row := range m.cells {
		var sum float64
		for _, v := range row {
			sum += v
		}
		scores[i] = Round2(sum / float64(m.cols))
	}
	return scores
}

// Optimistic scores each alternative by its best payoff (maximax).
func Optimistic(m *Matrix) []float64 {
	scores := make([]float64, m.rows)
	for i, row := range m.cells {
		scores[i] = rowMax(row)
	}
	return scores
}

// Pessimistic scores each alternative by its worst payoff (maximin).
func Pessimistic(m *Matrix) []float64 {
	scores := make([]float64, m.rows)
	for i, row := range m.cells {
		scores[i] = rowMin(row)
	}
	return scores
}

// Hurwicz blends best and worst payoffs: max*coef + min*(1-coef).
// coef must lie in [0, 1].
func Hurwicz(m *Matrix, coef float64) ([]float64, error) {
	if err := CheckOptimism(coef); err != nil {
		return nil, err
	}

	pess := 1 - coef
	scores := make([]float64, m.rows)
	for i, row := range m.cells {
		hi, lo := rowBounds(row)
		scores[i] = Round2(hi*coef + lo*pess)
	}
	return scores, nil
}

// CheckOptimism returns ErrRange unless 0 <= coef <= 1. NaN is rejected.
func CheckOptimism(coef float64) error {
	if !(coef >= 0 && coef <= 1) {
		return eris.Wrapf(ErrRange, "optimism coefficient %v must be between 0 and 1", coef)
	}
	return nil
}

func rowMax(row []float64) float64 {
	hi, _ := rowBounds(row)
	return hi
}

func rowMin(row []float64) float64 {
	_, lo := rowBounds(row)
	return lo
}

// rowBounds returns max and min of a non-empty row in one pass.
func rowBounds(row []float64) (hi, lo float64) {
	hi, lo = row[0], row[0]
	for _, v := range row[1:] {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	return hi, lo
}
