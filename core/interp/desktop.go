package interp

// DesktopName is the registry key of the bootstrap launcher.
const DesktopName = "Desktop"

// Desktop is the bootstrap launcher program. It has no fixed command
// set: every command name is interpreted as "open the program named X",
// with the arguments becoming the new program's initial buffer.
type Desktop struct {
	TextBuffer
}

// NewDesktop returns a launcher with the given initial buffer.
func NewDesktop(initialBuffer string) *Desktop {
	return &Desktop{TextBuffer: NewTextBuffer(initialBuffer)}
}

func (d *Desktop) Command(name string) (Handler, error) {
	return func(args string, s *State) (Transform, error) {
		if _, open := s.Open[name]; open {
			return nil, &AlreadyOpenError{Program: name}
		}

		var program Program
		if build, ok := s.Library[name]; ok {
			program = build(args)
		} else {
			// Unregistered names become plain notes.
			program = NewNote(name, args)
		}

		s.Open[name] = program
		s.Current = name
		return nil, nil
	}, nil
}
