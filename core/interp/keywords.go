package interp

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/logos/core/lang"
)

// keywords are resolved before any program lookup.
var keywords = map[string]Handler{
	"rem":      keywordRem,
	"cut":      keywordCut,
	"copy":     keywordCopy,
	"paste":    keywordPaste,
	"minimise": keywordMinimise,
	"switch":   keywordSwitch,
	"name":     keywordName,
	"execute":  keywordExecute,
	"run":      keywordRun,
}

// IsKeyword reports whether name resolves globally, before any program
// lookup.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// rem is a comment: any args, no effect.
func keywordRem(args string, s *State) (Transform, error) {
	return nil, nil
}

func wholeBufferArgs(keyword, args string) error {
	if args != "" && args != "all" {
		return fmt.Errorf("%s wants no arguments or %q, got %q", keyword, "all", args)
	}
	return nil
}

func noArgs(keyword, args string) error {
	if args != "" {
		return fmt.Errorf("%s wants no arguments, got %q", keyword, args)
	}
	return nil
}

func keywordCut(args string, s *State) (Transform, error) {
	if err := wholeBufferArgs("cut", args); err != nil {
		return nil, err
	}
	buffer, err := s.Buffer()
	if err != nil {
		return nil, err
	}
	s.Clipboard = buffer
	return nil, s.SetBuffer("")
}

func keywordCopy(args string, s *State) (Transform, error) {
	if err := wholeBufferArgs("copy", args); err != nil {
		return nil, err
	}
	buffer, err := s.Buffer()
	if err != nil {
		return nil, err
	}
	s.Clipboard = buffer
	return nil, nil
}

func keywordPaste(args string, s *State) (Transform, error) {
	if err := noArgs("paste", args); err != nil {
		return nil, err
	}
	return nil, s.SetBuffer(s.Clipboard)
}

func keywordMinimise(args string, s *State) (Transform, error) {
	if err := noArgs("minimise", args); err != nil {
		return nil, err
	}
	s.Current = DesktopName
	return nil, nil
}

// switch changes the active program without checking it's open; a bad
// name surfaces on the next command instead.
func keywordSwitch(args string, s *State) (Transform, error) {
	if strings.Contains(args, " ") {
		return nil, fmt.Errorf("switch wants a single program name, got %q", args)
	}
	s.Current = args
	return nil, nil
}

func keywordName(args string, s *State) (Transform, error) {
	if err := noArgs("name", args); err != nil {
		return nil, err
	}
	return nil, s.SetBuffer(s.Current)
}

// execute parses args plus the clipboard as command text and queues only
// the first parsed instruction ahead of the remaining stream. Any
// further instructions in the clipboard are discarded for this
// invocation.
func keywordExecute(args string, s *State) (Transform, error) {
	if args != "" && !strings.HasSuffix(args, " ") {
		args += " "
	}
	seq, err := lang.Parse(args + s.Clipboard)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, nil
	}
	return PrependOne(seq[0]), nil
}

// run parses the active buffer as command text, replaces the entire
// remaining stream with it and clears the buffer.
func keywordRun(args string, s *State) (Transform, error) {
	if err := noArgs("run", args); err != nil {
		return nil, err
	}
	buffer, err := s.Buffer()
	if err != nil {
		return nil, err
	}
	seq, err := lang.Parse(buffer)
	if err != nil {
		return nil, err
	}
	if err := s.SetBuffer(""); err != nil {
		return nil, err
	}
	return ReplaceAll(seq), nil
}
