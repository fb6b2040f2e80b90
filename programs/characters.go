package programs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/josephlewis42/logos/core/interp"
)

// Characters converts between text and Unicode codepoints.
type Characters struct {
	interp.TextBuffer
}

func NewCharacters(cfg Config, initialBuffer string) interp.Program {
	return &Characters{TextBuffer: interp.NewTextBuffer(initialBuffer)}
}

func (c *Characters) Command(name string) (interp.Handler, error) {
	return interp.LookupCommand("Characters", map[string]interp.Handler{
		"Unicode":    interp.FuncCommand(charactersUnicode),
		"codepoints": interp.FuncCommand(charactersCodepoints),
	}, name)
}

// charactersUnicode turns a buffer of decimal codepoints into text.
func charactersUnicode(args, buffer string) (string, error) {
	var out strings.Builder
	for _, field := range strings.Fields(buffer) {
		d, _, err := apd.NewFromString(field)
		if err != nil {
			return "", fmt.Errorf("%q isn't a number", field)
		}
		codepoint, err := d.Int64()
		if err != nil {
			return "", fmt.Errorf("%q isn't a codepoint: %v", field, err)
		}
		out.WriteRune(rune(codepoint))
	}
	return out.String(), nil
}

// charactersCodepoints turns text into space-separated decimal
// codepoints.
func charactersCodepoints(args, buffer string) (string, error) {
	var points []string
	for _, r := range buffer {
		points = append(points, strconv.Itoa(int(r)))
	}
	return strings.Join(points, " "), nil
}

func init() {
	register("Characters", NewCharacters)
}
