package session

import (
	"fmt"
	"io"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"github.com/josephlewis42/logos/core/interp"
	"github.com/josephlewis42/logos/core/lang"
)

const Prompt = ">>>> "

var (
	colorClipboard = color.New(color.FgCyan, color.Bold)
	colorBuffer    = color.New(color.FgGreen, color.Bold)
)

// REPL drives an interpreter session interactively: drain the queued
// instructions, read one command line, execute it, then show the
// clipboard and the active buffer.
type REPL struct {
	interp   *interp.Interp
	readline *readline.Instance
	out      io.Writer
}

// NewREPL attaches a line editor to an interpreter session.
func NewREPL(in *interp.Interp, stdin io.Reader, stdout, stderr io.Writer) (*REPL, error) {
	cfg := &readline.Config{
		Prompt: Prompt,
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: stdout,
		Stderr: stderr,
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &REPL{
		interp:   in,
		readline: rl,
		out:      stdout,
	}, nil
}

// Run loops until input closes or a step fails fatally.
func (r *REPL) Run() error {
	for {
		switch err := r.RunOnce(); err {
		case nil:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
	}
}

// RunOnce drains the instruction stream, reads one line of input and
// executes it. Returns io.EOF when input is exhausted; any interpreter
// failure is fatal to the session, per the runtime's error policy.
func (r *REPL) RunOnce() error {
	if err := r.interp.RunAll(); err != nil {
		return err
	}

	line, err := r.readline.Readline()
	switch {
	case err == io.EOF:
		return io.EOF
	case err == readline.ErrInterrupt:
		return io.EOF
	case err != nil:
		return err
	case len(line) == 0:
		return nil
	}

	seq, perr := lang.Parse(line)
	if perr != nil {
		// Typos shouldn't tear down an interactive session before the
		// instruction ever reaches the runtime.
		fmt.Fprintf(r.out, "-logos: %v\n", perr)
		return nil
	}
	if len(seq) == 0 {
		return nil
	}

	if err := r.interp.RunInstruction(seq[0]); err != nil {
		return err
	}

	r.printStatus()
	return nil
}

func (r *REPL) printStatus() {
	state := r.interp.State()

	buffer, err := state.Buffer()
	if err != nil {
		buffer = "<no open program>"
	}

	fmt.Fprintf(r.out, "%s %s\n", colorClipboard.Sprint("Clipboard:"), state.Clipboard)
	fmt.Fprintf(r.out, "%s %s\n", colorBuffer.Sprintf("Buffer of %s:", state.Current), buffer)
}

// Close releases the line editor.
func (r *REPL) Close() error {
	return r.readline.Close()
}
