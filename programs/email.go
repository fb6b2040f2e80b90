package programs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/josephlewis42/logos/core/interp"
)

// Email is the I/O program: send writes the buffer to the session
// output, refresh replaces the buffer with a line of session input.
type Email struct {
	interp.TextBuffer
	out io.Writer
	in  *bufio.Reader
}

func NewEmail(cfg Config, initialBuffer string) interp.Program {
	return &Email{
		TextBuffer: interp.NewTextBuffer(initialBuffer),
		out:        cfg.Stdout,
		in:         bufio.NewReader(cfg.Stdin),
	}
}

func (e *Email) Command(name string) (interp.Handler, error) {
	return interp.LookupCommand("Email", map[string]interp.Handler{
		"send":    interp.FuncCommand(e.send),
		"refresh": interp.FuncCommand(e.refresh),
	}, name)
}

func (e *Email) send(args, buffer string) (string, error) {
	if args != "" {
		return "", fmt.Errorf("send wants no arguments, got %q", args)
	}
	if _, err := fmt.Fprintln(e.out, buffer); err != nil {
		return "", err
	}
	return buffer, nil
}

func (e *Email) refresh(args, buffer string) (string, error) {
	if args != "" {
		return "", fmt.Errorf("refresh wants no arguments, got %q", args)
	}
	fmt.Fprint(e.out, "Program requests input: ")
	line, err := e.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	register("Email", NewEmail)
}
