package interp

import (
	"fmt"

	"github.com/josephlewis42/logos/core/lang"
)

// Observer is notified after each committed step. Used by hosts to
// record session event logs.
type Observer func(ins lang.Instruction, transform Transform, s *State)

// Options configure a new session.
type Options struct {
	// Library maps program names to constructors. Opening a name outside
	// the library falls back to a note program. Nil means empty.
	Library Library

	// Initial is the program the session starts in. Nil means a fresh
	// bootstrap launcher.
	Initial Program
	// InitialName is the registry key for Initial, DesktopName if empty.
	InitialName string

	// Observer, if set, is called after every committed step.
	Observer Observer
}

// Interp drives one session: it owns the runtime state and the stream
// of instructions awaiting execution. Execution is strictly step-based
// and single-threaded; the host calls RunOnce or RunAll.
type Interp struct {
	state     *State
	remaining []lang.Instruction
	history   []lang.Instruction
	observer  Observer
}

// New parses source as command text and prepares a session around it.
func New(source string, opts Options) (*Interp, error) {
	code, err := lang.Parse(source)
	if err != nil {
		return nil, err
	}
	return NewFromInstructions(code, opts), nil
}

// NewFromInstructions prepares a session over already-parsed code.
func NewFromInstructions(code []lang.Instruction, opts Options) *Interp {
	initial := opts.Initial
	if initial == nil {
		initial = NewDesktop("")
	}
	initialName := opts.InitialName
	if initialName == "" {
		initialName = DesktopName
	}
	library := opts.Library
	if library == nil {
		library = Library{}
	}

	return &Interp{
		state: &State{
			Open:    map[string]Program{initialName: initial},
			Current: initialName,
			Library: library,
		},
		remaining: append([]lang.Instruction(nil), code...),
		observer:  opts.Observer,
	}
}

// State exposes the session state to the host driver.
func (in *Interp) State() *State {
	return in.state
}

// Remaining returns the instructions awaiting execution.
func (in *Interp) Remaining() []lang.Instruction {
	return append([]lang.Instruction(nil), in.remaining...)
}

// History returns every instruction executed so far, in order.
func (in *Interp) History() []lang.Instruction {
	return append([]lang.Instruction(nil), in.history...)
}

// Done reports whether the stream is empty.
func (in *Interp) Done() bool {
	return len(in.remaining) == 0
}

// RunOnce pops the head of the instruction stream and executes it.
// Returns ErrEmptyStream when nothing is queued.
func (in *Interp) RunOnce() error {
	if len(in.remaining) == 0 {
		return ErrEmptyStream
	}
	ins := in.remaining[0]
	in.remaining = in.remaining[1:]
	return in.step(ins)
}

// RunInstruction executes an explicit instruction without touching the
// head of the stream. Interactive drivers feed REPL input through here.
func (in *Interp) RunInstruction(ins lang.Instruction) error {
	return in.step(ins)
}

// RunAll executes instructions until the stream is empty.
func (in *Interp) RunAll() error {
	for len(in.remaining) > 0 {
		if err := in.RunOnce(); err != nil {
			return err
		}
	}
	return nil
}

// step resolves and invokes one instruction, then commits: the state
// mutation lands and any returned transform is applied to the stream as
// it stands after the instruction's removal. Every failure — including
// panics in collaborator programs — is caught exactly once, annotated
// with the instruction and a state snapshot, and returned fatally.
func (in *Interp) step(ins lang.Instruction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = in.fatal(ins, fmt.Errorf("panic: %v", r))
		}
	}()

	in.history = append(in.history, ins)

	handler, ok := keywords[ins.Name]
	if !ok {
		program, perr := in.state.CurrentProgram()
		if perr != nil {
			return in.fatal(ins, perr)
		}
		handler, perr = program.Command(ins.Name)
		if perr != nil {
			return in.fatal(ins, perr)
		}
	}

	transform, herr := handler(ins.Args, in.state)
	if herr != nil {
		return in.fatal(ins, herr)
	}

	// The transform sees the stream with the triggering instruction
	// already removed; applying it earlier would duplicate the trigger.
	if transform != nil {
		in.remaining = transform.Apply(in.remaining)
	}

	if in.observer != nil {
		in.observer(ins, transform, in.state)
	}
	return nil
}

func (in *Interp) fatal(ins lang.Instruction, cause error) error {
	return &Error{
		Name:  ins.Name,
		Args:  ins.Args,
		State: in.state.Snapshot(),
		Err:   cause,
	}
}
