package decision

import "github.com/rotisserie/eris"

// Mode says whether a criterion's winner has the highest or lowest score.
type Mode string

const (
	Maximize Mode = "maximize"
	Minimize Mode = "minimize"
)

// Select returns the index of the first score holding the extreme value for
// mode. Ties go to the lowest index.
func Select(scores []float64, mode Mode) (int, error) {
	if len(scores) == 0 {
		return 0, eris.Wrap(ErrEmptyInput, "no scores to select from")
	}

	var better func(a, b float64) bool
	switch mode {
	case Maximize:
		better = func(a, b float64) bool { return a > b }
	case Minimize:
		better = func(a, b float64) bool { return a < b }
	default:
		return 0, eris.Wrapf(ErrRange, "unknown selection mode %q", mode)
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if better(scores[i], scores[best]) {
			best = i
		}
	}
	return best, nil
}
