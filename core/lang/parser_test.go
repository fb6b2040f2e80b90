package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected []Instruction
	}{
		{"empty", "", []Instruction{}},
		{"only newlines", "\n\n\n", []Instruction{}},
		{"bare command", "paste", []Instruction{{Name: "paste", Args: ""}}},
		{"command with args", "write \"hi\"", []Instruction{{Name: "write", Args: "\"hi\""}}},
		{
			"args keep interior spaces and quotes",
			`replace "a"  with   "b"`,
			[]Instruction{{Name: "replace", Args: `"a"  with   "b"`}},
		},
		{
			"only the first space run separates",
			"cmd  double  spaced",
			[]Instruction{{Name: "cmd", Args: "double  spaced"}},
		},
		{
			"blank lines are skipped",
			"rem one\n\nrem two\n",
			[]Instruction{{Name: "rem", Args: "one"}, {Name: "rem", Args: "two"}},
		},
		{
			"no trailing newline",
			"rem one\nrem two",
			[]Instruction{{Name: "rem", Args: "one"}, {Name: "rem", Args: "two"}},
		},
		{
			"windows line endings",
			"rem one\r\nrem two\r\n",
			[]Instruction{{Name: "rem", Args: "one"}, {Name: "rem", Args: "two"}},
		},
		{
			"tab inside args",
			"write \"a\tb\"",
			[]Instruction{{Name: "write", Args: "\"a\tb\""}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"whitespace only line", "   "},
		{"tab after name", "cmd\targs"},
		{"trailing spaces without args", "cmd   "},
		{"error on later line", "rem fine\ncmd \n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Parse(tc.text)

			assert.Nil(t, out, "no partial result on error")
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseErrorLineNumbers(t *testing.T) {
	_, err := Parse("rem ok\n\ncmd\tbad")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
}

// Serializing a parsed instruction and reparsing it yields the same
// instruction back, for any args without embedded newlines.
func TestParseRoundTrip(t *testing.T) {
	texts := []string{
		"rem",
		"rem a comment",
		`write "hello  world"`,
		"switch Editor",
		"count \"a\tb\"",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			first, err := Parse(text)
			require.NoError(t, err)
			require.Len(t, first, 1)

			second, err := Parse(first[0].String())
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestInstructionString(t *testing.T) {
	assert.Equal(t, "paste", Instruction{Name: "paste"}.String())
	assert.Equal(t, "rem a b", Instruction{Name: "rem", Args: "a b"}.String())
}
