// Package lang implements the logos command language: line-oriented
// instruction text where each line is a command name optionally
// followed by verbatim arguments.
package lang

import (
	"fmt"
	"strings"
)

// Instruction is a single parsed command line.
type Instruction struct {
	// Name is the command name, never contains whitespace.
	Name string
	// Args is everything after the first run of spaces, verbatim.
	// Empty if the line had no arguments.
	Args string
}

// String renders the instruction back into command-text form.
func (i Instruction) String() string {
	if i.Args == "" {
		return i.Name
	}
	return i.Name + " " + i.Args
}

// ParseError reports command text that can't be tokenized.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Parse converts command text into an ordered instruction sequence.
//
// The grammar is one instruction per line: a name made of non-whitespace
// characters, optionally followed by a single run of spaces and then the
// arguments, which run verbatim to the end of the line. Blank lines
// contribute nothing, the final line need not be newline terminated, and
// empty input yields an empty sequence. Malformed text fails with a
// *ParseError and no partial result.
func Parse(text string) ([]Instruction, error) {
	if text == "" {
		return []Instruction{}, nil
	}

	var out []Instruction
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		ins, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: n + 1, Text: line, Msg: err.Error()}
		}
		out = append(out, ins)
	}

	if out == nil {
		out = []Instruction{}
	}
	return out, nil
}

func parseLine(line string) (Instruction, error) {
	// Name is the maximal leading run of non-whitespace characters.
	nameEnd := strings.IndexFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\v' || r == '\f'
	})
	if nameEnd == 0 {
		return Instruction{}, fmt.Errorf("expected command name")
	}
	if nameEnd < 0 {
		return Instruction{Name: line}, nil
	}

	name, rest := line[:nameEnd], line[nameEnd:]
	if rest[0] != ' ' {
		// Only plain spaces may separate a name from its arguments.
		return Instruction{}, fmt.Errorf("illegal whitespace after command name")
	}

	args := strings.TrimLeft(rest, " ")
	if args == "" {
		return Instruction{}, fmt.Errorf("trailing spaces without arguments")
	}
	return Instruction{Name: name, Args: args}, nil
}

// MustParse is Parse for known-good text, such as source embedded in the
// binary. It panics on error.
func MustParse(text string) []Instruction {
	ins, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return ins
}
