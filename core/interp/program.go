// Package interp implements the logos runtime: the program capability
// contract, the mutable session state and the dispatcher that executes
// parsed instructions one step at a time.
package interp

// Handler is the executable behavior bound to a command name. It may
// mutate the session state and may return a Transform reshaping the
// remaining instruction stream.
type Handler func(args string, s *State) (Transform, error)

// Program is a capability-bearing entity: a mutable text buffer plus a
// named command lookup. Anything that satisfies this contract can be
// registered in a library; the runtime makes no other assumptions about
// what its commands do.
type Program interface {
	Buffer() string
	SetBuffer(buffer string)

	// Command returns the handler for name, or fails with
	// *UnknownCommandError (or *NotSupportedError for note programs).
	Command(name string) (Handler, error)
}

// TextBuffer is the common buffer implementation programs embed to
// satisfy the buffer half of the contract.
type TextBuffer struct {
	text string
}

// NewTextBuffer returns a buffer holding initial.
func NewTextBuffer(initial string) TextBuffer {
	return TextBuffer{text: initial}
}

func (b *TextBuffer) Buffer() string {
	return b.text
}

func (b *TextBuffer) SetBuffer(buffer string) {
	b.text = buffer
}

// FuncCommand wraps a pure buffer transformation as a Handler: the old
// buffer goes in, the new buffer comes out, and nothing else changes.
// Most program commands are written this way.
func FuncCommand(fn func(args, buffer string) (string, error)) Handler {
	return func(args string, s *State) (Transform, error) {
		buffer, err := s.Buffer()
		if err != nil {
			return nil, err
		}
		out, err := fn(args, buffer)
		if err != nil {
			return nil, err
		}
		return nil, s.SetBuffer(out)
	}
}

// LookupCommand resolves name in a fixed command table, failing with
// *UnknownCommandError naming the program when absent.
func LookupCommand(program string, table map[string]Handler, name string) (Handler, error) {
	if h, ok := table[name]; ok {
		return h, nil
	}
	return nil, &UnknownCommandError{Program: program, Command: name}
}

// Note is the inert fallback program: opening an unregistered name
// creates one, so unrecognized program names behave as plain notes.
type Note struct {
	TextBuffer
	name string
}

// NewNote returns a note program named name holding buffer.
func NewNote(name, buffer string) *Note {
	return &Note{TextBuffer: NewTextBuffer(buffer), name: name}
}

func (n *Note) Command(name string) (Handler, error) {
	return nil, &NotSupportedError{Program: n.name, Command: name}
}
