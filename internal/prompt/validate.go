package prompt

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/decision-cli/internal/decision"
)

// PositiveInt returns a validator accepting integers greater than zero.
func PositiveInt(name string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return eris.Errorf("the %s value must be an integer", name)
		}
		if n <= 0 {
			return eris.Errorf("the %s value must be greater than zero", name)
		}
		return nil
	}
}

// Integer returns a validator accepting any integer.
func Integer(name string) func(string) error {
	return func(s string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return eris.Errorf("the %s must be an integer", name)
		}
		return nil
	}
}

// Coefficient accepts a number in [0, 1].
func Coefficient(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return eris.New("the value must be a number")
	}
	if err := decision.CheckOptimism(v); err != nil {
		return eris.New("the number must be between 0 and 1")
	}
	return nil
}

// Limits accepts a lower and upper limit where lower < upper.
func Limits(lowRaw, highRaw string) error {
	low, err := strconv.Atoi(strings.TrimSpace(lowRaw))
	if err != nil {
		return eris.New("limits must be integer values")
	}
	high, err := strconv.Atoi(strings.TrimSpace(highRaw))
	if err != nil {
		return eris.New("limits must be integer values")
	}
	if low >= high {
		return eris.New("the upper limit must be greater than the lower limit")
	}
	return nil
}

// Row returns a validator for one line of exactly cols numbers.
func Row(cols int) func(string) error {
	return func(s string) error {
		_, err := ParseRow(s, cols)
		return err
	}
}

// ParseRow splits a whitespace-separated line into exactly cols numbers.
func ParseRow(line string, cols int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != cols {
		return nil, eris.Wrapf(decision.ErrShape, "expected %d values, got %d", cols, len(fields))
	}
	rows, err := decision.ParseCells([][]string{fields})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}
