package programs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/josephlewis42/logos/core/interp"
)

// Mines generates random bits: `generate N` fills the buffer with N
// cryptographically random binary digits.
type Mines struct {
	interp.TextBuffer
	rand io.Reader
}

func NewMines(cfg Config, initialBuffer string) interp.Program {
	return &Mines{
		TextBuffer: interp.NewTextBuffer(initialBuffer),
		rand:       cfg.Rand,
	}
}

func (m *Mines) Command(name string) (interp.Handler, error) {
	return interp.LookupCommand("Mines", map[string]interp.Handler{
		"generate": interp.FuncCommand(m.generate),
	}, name)
}

func (m *Mines) generate(args, buffer string) (string, error) {
	bits, err := strconv.Atoi(args)
	if err != nil || bits < 0 {
		return "", fmt.Errorf("generate wants a number of bits, got %q", args)
	}
	if bits == 0 {
		return "", nil
	}

	raw := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(m.rand, raw); err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(bits)
	for i := 0; i < bits; i++ {
		if raw[i/8]&(1<<(uint(i)%8)) != 0 {
			out.WriteByte('1')
		} else {
			out.WriteByte('0')
		}
	}
	return out.String(), nil
}

func init() {
	register("Mines", NewMines)
}
