package programs

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/logos/core/interp"
	"github.com/josephlewis42/logos/core/lang"
)

// Assembler turns recorded command text into new programs. `compile X`
// parses the buffer, cuts it into sections at `name SECTION` lines
// (everything before the first one is the default section), and adds a
// constructor for program X to the session library. Running a command
// on the assembled program queues that section's instructions ahead of
// the remaining stream.
type Assembler struct {
	interp.TextBuffer
}

func NewAssembler(cfg Config, initialBuffer string) interp.Program {
	return &Assembler{TextBuffer: interp.NewTextBuffer(initialBuffer)}
}

func (a *Assembler) Command(name string) (interp.Handler, error) {
	return interp.LookupCommand("Assembler", map[string]interp.Handler{
		"compile": assemblerCompile,
	}, name)
}

func assemblerCompile(args string, s *interp.State) (interp.Transform, error) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return nil, fmt.Errorf("compile wants a single program name, got %q", args)
	}
	programName := fields[0]

	buffer, err := s.Buffer()
	if err != nil {
		return nil, err
	}
	code, err := lang.Parse(buffer)
	if err != nil {
		return nil, err
	}

	section := ""
	commands := map[string][]lang.Instruction{"": nil}
	for _, ins := range code {
		if ins.Name == "name" && ins.Args != "" {
			section = ins.Args
			continue
		}
		commands[section] = append(commands[section], ins)
	}

	s.Library[programName] = func(initialBuffer string) interp.Program {
		return &assembled{
			TextBuffer: interp.NewTextBuffer(initialBuffer),
			name:       programName,
			commands:   commands,
		}
	}
	return nil, nil
}

// assembled is a data-carrying program variant: a name plus a command
// table of recorded instruction sequences.
type assembled struct {
	interp.TextBuffer
	name     string
	commands map[string][]lang.Instruction
}

func (p *assembled) Command(name string) (interp.Handler, error) {
	code, ok := p.commands[name]
	if !ok {
		// Unknown commands fall back to the default section.
		code = p.commands[""]
	}
	if len(code) == 0 {
		return nil, &interp.UnknownCommandError{Program: p.name, Command: name}
	}

	return func(args string, s *interp.State) (interp.Transform, error) {
		return interp.Prepend(code...), nil
	}, nil
}

func init() {
	register("Assembler", NewAssembler)
}
