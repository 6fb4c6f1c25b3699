package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegret(t *testing.T) {
	m := mustMatrix(t, [][]float64{{2, 4}, {5, 1}})
	assert.Equal(t, [][]float64{{3, 0}, {0, 3}}, Regret(m).Values())
}

func TestRegret_UsesOriginalColumnMaxima(t *testing.T) {
	// A column-by-column in-place rewrite would see regretted values here.
	m := mustMatrix(t, [][]float64{{10, 0, 3}, {4, 6, 3}, {7, 2, 8}})
	assert.Equal(t, [][]float64{{0, 6, 5}, {6, 0, 5}, {3, 4, 0}}, Regret(m).Values())
	assert.Equal(t, [][]float64{{10, 0, 3}, {4, 6, 3}, {7, 2, 8}}, m.Values())
}

func TestRegret_ZeroInEveryColumn(t *testing.T) {
	m := mustMatrix(t, [][]float64{{-3, 8, 1.5, 0}, {2, 8, -1, 4}, {2, -6, 0.5, 9}})
	r := Regret(m)

	assert.Equal(t, m.Rows(), r.Rows())
	assert.Equal(t, m.Cols(), r.Cols())
	for j := 0; j < r.Cols(); j++ {
		hasZero := false
		for i := 0; i < r.Rows(); i++ {
			assert.GreaterOrEqual(t, r.At(i, j), 0.0)
			if r.At(i, j) == 0 {
				hasZero = true
			}
		}
		assert.True(t, hasZero, "column %d has no zero regret", j)
	}
}

func TestSavage(t *testing.T) {
	m := mustMatrix(t, [][]float64{{10, 0, 3}, {4, 6, 3}, {7, 2, 8}})
	regret, scores := Savage(m)

	assert.Equal(t, [][]float64{{0, 6, 5}, {6, 0, 5}, {3, 4, 0}}, regret.Values())
	assert.Equal(t, []float64{6, 6, 4}, scores)
}
