package programs

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/josephlewis42/logos/core/interp"
)

// Clock tells the time and pauses execution. wait understands decimal
// durations in several units; time renders a friendly local, UTC or
// unix timestamp into the buffer.
type Clock struct {
	interp.TextBuffer
	now   func() time.Time
	sleep func(d time.Duration)
}

func NewClock(cfg Config, initialBuffer string) interp.Program {
	return &Clock{
		TextBuffer: interp.NewTextBuffer(initialBuffer),
		now:        cfg.Now,
		sleep:      cfg.Sleep,
	}
}

func (c *Clock) Command(name string) (interp.Handler, error) {
	return interp.LookupCommand("Clock", map[string]interp.Handler{
		"wait": interp.FuncCommand(c.wait),
		"time": interp.FuncCommand(c.time),
	}, name)
}

// waitUnits maps unit names to their ratio to seconds. Longest names
// first so "milliseconds" isn't matched as "seconds".
var waitUnits = []struct {
	name  string
	ratio string
}{
	{"milliseconds", "0.001"},
	{"seconds", "1"},
	{"minutes", "60"},
	{"secs", "1"},
	{"mins", "60"},
}

func (c *Clock) wait(args, buffer string) (string, error) {
	args = strings.TrimSpace(args)

	ratio := "1"
	for _, unit := range waitUnits {
		if strings.HasSuffix(args, unit.name) {
			ratio = unit.ratio
			args = strings.TrimSpace(strings.TrimSuffix(args, unit.name))
			break
		}
	}

	scalar, _, err := apd.NewFromString(args)
	if err != nil {
		return "", fmt.Errorf("%q isn't a number", args)
	}
	ratioDec, _, err := apd.NewFromString(ratio)
	if err != nil {
		return "", err
	}

	seconds := new(apd.Decimal)
	ctx := apd.BaseContext.WithPrecision(50)
	if _, err := ctx.Mul(seconds, scalar, ratioDec); err != nil {
		return "", err
	}
	f, err := seconds.Float64()
	if err != nil {
		return "", err
	}

	c.sleep(time.Duration(f * float64(time.Second)))
	return buffer, nil
}

func (c *Clock) time(args, buffer string) (string, error) {
	now := c.now()

	switch args {
	case "in terms of the unix epoch":
		return fmt.Sprintf("%d", now.Unix()), nil
	case "in terms of utc":
		return prettyTime(now.UTC()), nil
	case "in terms of local time", "":
		return prettyTime(now.Local()), nil
	default:
		return "", fmt.Errorf("unknown time format %q", args)
	}
}

// prettyTime formats like:
// 8 seconds past 9:06 AM on Monday the 3rd of August, 2019
func prettyTime(t time.Time) string {
	secIndicator := "seconds"
	if t.Second() == 1 {
		secIndicator = "second"
	}

	return fmt.Sprintf("%d %s past %s on %s the %s of %s",
		t.Second(),
		secIndicator,
		strings.TrimPrefix(t.Format("3:04 PM"), "0"),
		t.Format("Monday"),
		ordinalDay(t.Day()),
		t.Format("January, 2006"))
}

// ordinalDay converts a day of the month to "1st", "22nd", "13th", ...
func ordinalDay(day int) string {
	if day%100 >= 10 && day%100 < 20 {
		return fmt.Sprintf("%dth", day)
	}
	switch day % 10 {
	case 1:
		return fmt.Sprintf("%dst", day)
	case 2:
		return fmt.Sprintf("%dnd", day)
	case 3:
		return fmt.Sprintf("%drd", day)
	default:
		return fmt.Sprintf("%dth", day)
	}
}

func init() {
	register("Clock", NewClock)
}
