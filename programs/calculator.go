package programs

import (
	"fmt"

	"github.com/josephlewis42/logos/core/calc"
	"github.com/josephlewis42/logos/core/interp"
)

// Calculator evaluates the buffer as an arithmetic expression. `=`
// computes the buffer in place; each operator command appends itself
// plus its argument before computing, so `+ 3` means "buffer + 3".
type Calculator struct {
	interp.TextBuffer
}

func NewCalculator(cfg Config, initialBuffer string) interp.Program {
	return &Calculator{TextBuffer: interp.NewTextBuffer(initialBuffer)}
}

func (c *Calculator) Command(name string) (interp.Handler, error) {
	table := map[string]interp.Handler{
		"=": interp.FuncCommand(calculatorEquals),
	}
	for _, op := range []string{"+", "-", "*", "/", "^"} {
		table[op] = interp.FuncCommand(appendAndEquals(op))
	}
	return interp.LookupCommand("Calculator", table, name)
}

func calculatorEquals(args, buffer string) (string, error) {
	if args != "" {
		return "", fmt.Errorf("= wants no arguments, got %q", args)
	}
	return calc.Eval(buffer)
}

func appendAndEquals(op string) func(args, buffer string) (string, error) {
	return func(args, buffer string) (string, error) {
		return calc.Eval(buffer + op + args)
	}
}

func init() {
	register("Calculator", NewCalculator)
}
