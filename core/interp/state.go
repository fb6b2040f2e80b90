package interp

import (
	"fmt"
	"sort"
	"strings"
)

// Constructor builds a program instance with its initial buffer. Any
// variant-specific configuration is captured when the library is built.
type Constructor func(initialBuffer string) Program

// Library maps program names to their constructors.
type Library map[string]Constructor

// State is the mutable session state: the open-program registry, the
// name of the active program, the program library and the clipboard.
// Exactly one State exists per session and it's owned by the dispatcher;
// handlers mutate it only inside a step.
type State struct {
	// Open maps names to open program instances.
	Open map[string]Program
	// Current names the active program. The switch keyword sets it
	// without an existence check, so resolution can fail on the next
	// command rather than at switch time.
	Current string
	// Library maps names to program constructors. Mutable: the
	// Assembler program adds entries at runtime.
	Library Library
	// Clipboard is the single session-wide text slot.
	Clipboard string
}

// CurrentProgram resolves the active program.
func (s *State) CurrentProgram() (Program, error) {
	p, ok := s.Open[s.Current]
	if !ok {
		return nil, fmt.Errorf("no open program named %q", s.Current)
	}
	return p, nil
}

// Buffer reads the active program's buffer.
func (s *State) Buffer() (string, error) {
	p, err := s.CurrentProgram()
	if err != nil {
		return "", err
	}
	return p.Buffer(), nil
}

// SetBuffer replaces the active program's buffer.
func (s *State) SetBuffer(buffer string) error {
	p, err := s.CurrentProgram()
	if err != nil {
		return err
	}
	p.SetBuffer(buffer)
	return nil
}

// Snapshot renders the state for error annotation and logging.
func (s *State) Snapshot() string {
	names := make([]string, 0, len(s.Open))
	for name := range s.Open {
		names = append(names, name)
	}
	sort.Strings(names)

	buffer, err := s.Buffer()
	if err != nil {
		buffer = "<unresolved>"
	}
	return fmt.Sprintf("current=%q open=[%s] clipboard=%q buffer=%q",
		s.Current, strings.Join(names, " "), s.Clipboard, abbreviate(buffer))
}

func abbreviate(s string) string {
	if len(s) > 25 {
		return s[:20] + "..."
	}
	return s
}
