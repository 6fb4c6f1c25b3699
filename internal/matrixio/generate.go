package matrixio

import (
	"math/rand/v2"

	"github.com/rotisserie/eris"
)

// NewRand returns a generator seeded with seed, or with a random seed when
// seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Generate returns a rows x cols matrix of integers drawn uniformly from
// [low, high). Any low < high is accepted, including ranges wider than
// math.MaxInt.
func Generate(rows, cols, low, high int, rng *rand.Rand) ([][]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, eris.Errorf("matrixio: rows and columns must be greater than zero (got %dx%d)", rows, cols)
	}
	if low >= high {
		return nil, eris.Errorf("matrixio: lower limit %d must be less than upper limit %d", low, high)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	// high-low can overflow int; the unsigned difference cannot.
	span := uint64(high) - uint64(low)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = float64(int(uint64(low) + rng.Uint64N(span)))
		}
	}
	return out, nil
}
