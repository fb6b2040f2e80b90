package programs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephlewis42/logos/core/interp"
)

// Editor is the text manipulation program, themed around a notepad.
// Its commands speak in units (characters, words, lines) and quoted
// text, e.g. `replace "colour" with "color"` or `backspace 2 words`.
type Editor struct {
	interp.TextBuffer
}

func NewEditor(cfg Config, initialBuffer string) interp.Program {
	return &Editor{TextBuffer: interp.NewTextBuffer(initialBuffer)}
}

func (e *Editor) Command(name string) (interp.Handler, error) {
	return interp.LookupCommand("Editor", map[string]interp.Handler{
		"write":     interp.FuncCommand(editorWrite),
		"backspace": interp.FuncCommand(editorBackspace),
		"replace":   interp.FuncCommand(editorReplace),
		"count":     interp.FuncCommand(editorCount),
		"append":    editorAppend,
		"tailor":    interp.FuncCommand(editorTailor),
	}, name)
}

// units gives the separators ending each unit, e.g. lines end at \n.
// The empty separator means single characters.
var units = map[string][]string{
	"characters": {""},
	"words":      {" ", "\n"},
	"lines":      {"\n"},
}

// unitSplit cuts a string at every delimiter in the unit's set. The
// empty delimiter splits into characters.
func unitSplit(s string, delimiters []string) []string {
	parts := []string{s}
	for _, delim := range delimiters {
		if delim == "" {
			return strings.Split(s, "")
		}

		var next []string
		for _, part := range parts {
			next = append(next, strings.Split(part, delim)...)
		}
		parts = next
	}
	return parts
}

// parseUnitCount reads `[number] [unit]` arguments shared by backspace
// and tailor; both default to one character.
func parseUnitCount(args string) (count int, unit []string, err error) {
	fields := strings.Fields(args)
	switch len(fields) {
	case 0:
		return 1, units["characters"], nil

	case 1:
		if unit, ok := units[fields[0]]; ok {
			return 1, unit, nil
		}
		count, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, nil, fmt.Errorf("%q isn't a number or unit", fields[0])
		}
		return count, units["characters"], nil

	case 2:
		unit, ok := units[fields[1]]
		if !ok {
			return 0, nil, fmt.Errorf("unknown unit %q", fields[1])
		}
		count, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, nil, fmt.Errorf("%q isn't a number", fields[0])
		}
		return count, unit, nil

	default:
		return 0, nil, fmt.Errorf("want `[number] [unit]`, got %q", args)
	}
}

func endsWithAny(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// editorWrite appends quoted text, a newline or a quotemark to the
// buffer.
func editorWrite(args, buffer string) (string, error) {
	args = strings.TrimSpace(args)
	switch args {
	case "", "newline", "a newline":
		return buffer + "\n", nil
	case `"`, "quotemark", "a quotemark":
		return buffer + `"`, nil
	}

	if len(args) < 2 || !strings.HasPrefix(args, `"`) || !strings.HasSuffix(args, `"`) {
		return "", fmt.Errorf("write wants quoted text, got %q", args)
	}
	return buffer + args[1:len(args)-1], nil
}

// editorBackspace removes some number of units, default one character,
// from the end of the buffer.
func editorBackspace(args, buffer string) (string, error) {
	count, unit, err := parseUnitCount(args)
	if err != nil {
		return "", err
	}

	runes := []rune(buffer)
	for i := 0; i < count; i++ {
		// Remove characters until a unit separator, then the separator.
		for len(runes) > 0 && !endsWithAny(string(runes), unit) {
			runes = runes[:len(runes)-1]
		}
		if len(runes) > 0 {
			runes = runes[:len(runes)-1]
		}
	}
	return string(runes), nil
}

// replacementOperands are the symbolic spellings replace understands
// besides double-quoted text.
var (
	quotemarkNames = map[string]bool{
		"quotemark": true, "a quotemark": true, "Otto von Quotemark": true,
	}
	newlineNames = map[string]bool{
		"newline": true, "a newline": true,
	}
)

// extractReplacement interprets one replace operand: a symbolic name or
// double-quoted text. Returns false if the operand doesn't parse.
func extractReplacement(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if quotemarkNames[s] {
		return `"`, true
	}
	if newlineNames[s] {
		return "\n", true
	}
	if len(s) < 2 {
		return "", false
	}
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1], true
	}
	return "", false
}

// editorReplace handles `replace A with B`. Since both operands may
// contain the word " with ", it tries every split point left to right
// until both sides parse as operands.
func editorReplace(args, buffer string) (string, error) {
	const sep = " with "

	parts := strings.Split(args, sep)
	first, rest := parts[0], parts[1:]

	for {
		a, okA := extractReplacement(first)
		b, okB := extractReplacement(strings.Join(rest, sep))
		if okA && okB {
			return strings.ReplaceAll(buffer, a, b), nil
		}
		if len(rest) == 0 {
			return "", fmt.Errorf("%s can't be parsed as replacement", args)
		}
		first += sep + rest[0]
		rest = rest[1:]
	}
}

// editorCount replaces the buffer with the number of units, or of
// occurrences of quoted text, it contains.
func editorCount(args, buffer string) (string, error) {
	if args == "" {
		args = "characters"
	}

	if unit, ok := units[args]; ok {
		if buffer == "" {
			return "0", nil
		}
		count := 0
		for _, part := range unitSplit(buffer, unit) {
			if part != "" {
				count++
			}
		}
		return strconv.Itoa(count), nil
	}

	args = strings.TrimSpace(args)
	if len(args) < 2 || !strings.HasPrefix(args, `"`) || !strings.HasSuffix(args, `"`) {
		return "", fmt.Errorf("count wants a unit or quoted text, got %q", args)
	}
	return strconv.Itoa(strings.Count(buffer, strings.Trim(args, `"`))), nil
}

// editorAppend moves the clipboard onto the end of the buffer. Not a
// functional command: it consumes the clipboard.
func editorAppend(args string, s *interp.State) (interp.Transform, error) {
	if args != "the clipboard" && args != "from clipboard" {
		return nil, fmt.Errorf(`append wants "the clipboard", got %q`, args)
	}

	buffer, err := s.Buffer()
	if err != nil {
		return nil, err
	}
	if err := s.SetBuffer(buffer + s.Clipboard); err != nil {
		return nil, err
	}
	s.Clipboard = ""
	return nil, nil
}

// editorTailor keeps only the last n units of the buffer.
func editorTailor(args, buffer string) (string, error) {
	count, unit, err := parseUnitCount(args)
	if err != nil {
		return "", err
	}

	runes := []rune(buffer)
	selection := []rune{}
	selectionPlusSep := []rune{}
	for i := 0; i < count; i++ {
		selection = selectionPlusSep

		// Pull characters off the end until a unit separator.
		for len(runes) > 0 && !endsWithAny(string(runes), unit) {
			last := runes[len(runes)-1]
			runes = runes[:len(runes)-1]
			selection = append([]rune{last}, selection...)
		}
		selectionPlusSep = selection

		// Then pull the separator itself, keeping it for the next
		// round so inner separators survive.
		for len(runes) > 0 && endsWithAny(string(runes), unit) {
			last := runes[len(runes)-1]
			runes = runes[:len(runes)-1]
			selectionPlusSep = append([]rune{last}, selection...)
		}
	}
	return string(selection), nil
}

func init() {
	register("Editor", NewEditor)
}
