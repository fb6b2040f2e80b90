package interp

import (
	"errors"
	"fmt"
)

// ErrEmptyStream is returned by RunOnce when no instruction is available
// to execute.
var ErrEmptyStream = errors.New("no instruction available to run")

// UnknownCommandError reports a command the active program doesn't have.
type UnknownCommandError struct {
	Program string
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("program %q has no command %q", e.Program, e.Command)
}

// AlreadyOpenError reports an attempt to open a program that's already
// in the open set.
type AlreadyOpenError struct {
	Program string
}

func (e *AlreadyOpenError) Error() string {
	return fmt.Sprintf("%s already started", e.Program)
}

// NotSupportedError reports a command sent to a note program, which
// supports no commands at all.
type NotSupportedError struct {
	Program string
	Command string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("can't run command %q on note program %q", e.Command, e.Program)
}

// Error is the fatal dispatch error: any failure inside a step is caught
// exactly once, annotated with the failing instruction and a state
// snapshot, and returned as one of these. Execution doesn't continue.
type Error struct {
	Name  string
	Args  string
	State string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("error while interpreting %q (args %q): %v; state: %s",
		e.Name, e.Args, e.Err, e.State)
}

func (e *Error) Unwrap() error {
	return e.Err
}
