package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/decision-cli/internal/decision"
)

func TestPositiveInt(t *testing.T) {
	v := PositiveInt("rows")

	assert.NoError(t, v("3"))
	assert.NoError(t, v(" 12 "))

	err := v("0")
	require.Error(t, err)
	assert.Equal(t, "the rows value must be greater than zero", err.Error())

	err = v("two")
	require.Error(t, err)
	assert.Equal(t, "the rows value must be an integer", err.Error())
}

func TestInteger(t *testing.T) {
	v := Integer("lower limit")
	assert.NoError(t, v("-4"))
	assert.Error(t, v("4.5"))
	assert.Error(t, v(""))
}

func TestCoefficient(t *testing.T) {
	for _, ok := range []string{"0", "1", "0.5", " .25 "} {
		assert.NoError(t, Coefficient(ok), ok)
	}

	err := Coefficient("1.5")
	require.Error(t, err)
	assert.Equal(t, "the number must be between 0 and 1", err.Error())

	err = Coefficient("NaN")
	require.Error(t, err)
	assert.Equal(t, "the number must be between 0 and 1", err.Error())

	err = Coefficient("half")
	require.Error(t, err)
	assert.Equal(t, "the value must be a number", err.Error())
}

func TestValidators_MessagesAreBare(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "integer", err: Integer("upper limit")("x"), want: "the upper limit must be an integer"},
		{name: "limits order", err: Limits("3", "1"), want: "the upper limit must be greater than the lower limit"},
		{name: "limits type", err: Limits("3", "z"), want: "limits must be integer values"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestLimits(t *testing.T) {
	assert.NoError(t, Limits("1", "10"))
	assert.NoError(t, Limits("-9223372036854775808", "9223372036854775807"))
	assert.NoError(t, Limits("-10", "-9"))
	assert.Error(t, Limits("5", "5"))
	assert.Error(t, Limits("7", "3"))
	assert.Error(t, Limits("a", "3"))
	assert.Error(t, Limits("1", "b"))
}

func TestParseRow(t *testing.T) {
	row, err := ParseRow(" 1  2.5\t-3 ", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, row)

	_, err = ParseRow("1 2", 3)
	assert.ErrorIs(t, err, decision.ErrShape)

	_, err = ParseRow("1 x 3", 3)
	assert.ErrorIs(t, err, decision.ErrValue)

	assert.NoError(t, Row(2)("4 5"))
	assert.Error(t, Row(2)("4 5 6"))
}

func TestNew_NonTerminalIsAccessible(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	assert.True(t, p.accessible)
}
