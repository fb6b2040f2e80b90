package interp

import (
	"fmt"

	"github.com/josephlewis42/logos/core/lang"
)

// Transform describes how the remaining instruction stream changes after
// a step. It's applied strictly after the instruction that produced it
// has been removed from the stream. A nil Transform is the identity.
//
// The set is deliberately closed so the dispatcher can apply, log and
// test transforms without running arbitrary captured logic.
type Transform interface {
	Apply(rest []lang.Instruction) []lang.Instruction
	fmt.Stringer
}

// ReplaceAll produces a transform that discards the remaining stream and
// substitutes seq.
func ReplaceAll(seq []lang.Instruction) Transform {
	return replaceAll{seq: seq}
}

// Prepend produces a transform that queues seq ahead of the remaining
// stream.
func Prepend(seq ...lang.Instruction) Transform {
	return prepend{seq: seq}
}

// PrependOne queues a single instruction ahead of the remaining stream.
func PrependOne(ins lang.Instruction) Transform {
	return prepend{seq: []lang.Instruction{ins}}
}

type replaceAll struct {
	seq []lang.Instruction
}

func (t replaceAll) Apply(rest []lang.Instruction) []lang.Instruction {
	return append([]lang.Instruction(nil), t.seq...)
}

func (t replaceAll) String() string {
	return fmt.Sprintf("replace-all(%d)", len(t.seq))
}

type prepend struct {
	seq []lang.Instruction
}

func (t prepend) Apply(rest []lang.Instruction) []lang.Instruction {
	out := append([]lang.Instruction(nil), t.seq...)
	return append(out, rest...)
}

func (t prepend) String() string {
	return fmt.Sprintf("prepend(%d)", len(t.seq))
}
