package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	cases := []struct {
		expr     string
		expected string
	}{
		// Precedence and associativity.
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		{"2 ^ 10", "1024"},
		{"10 - 4 - 3", "3"},
		{"100 / 10 / 2", "5"},
		{"2 ^ 3 ^ 2", "64"}, // left associative, (2^3)^2
		// Display form strips trailing fractional zeros.
		{"1 / 8", "0.125"},
		{"10 / 4", "2.5"},
		{"5 - 5", "0"},
		{"100", "100"},
		// Signed and decimal literals.
		{"-3 + 5", "2"},
		{"2 * -3", "-6"},
		{"(-2) ^ 2", "4"},
		{"0.1 + 0.2", "0.3"},
		{"1.5e3 + 500", "2000"},
		// Whitespace is insignificant.
		{"  2+3\t*4 ", "14"},
		// Nested parentheses.
		{"((1 + 2) * (3 + 4))", "21"},
	}

	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			actual, err := Eval(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestEvalExactness(t *testing.T) {
	// 0.1 + 0.2 must go through exact decimals, not binary floats.
	actual, err := Eval("0.1 + 0.2 - 0.3")
	require.NoError(t, err)
	assert.Equal(t, "0", actual)
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"division by zero", "1 / 0"},
		{"division by zero expression", "5 / (3 - 3)"},
		{"malformed numeral", "2 + ."},
		{"unmatched open paren", "(2 + 3"},
		{"unmatched close paren", "2 + 3)"},
		{"dangling operator", "2 +"},
		{"doubled operator", "2 * * 3"},
		{"stray characters", "2 + three"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Eval(tc.expr)

			var evalErr *Error
			assert.ErrorAs(t, err, &evalErr)
		})
	}
}
