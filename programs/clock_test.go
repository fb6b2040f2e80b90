package programs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/logos/core/interp"
	"github.com/josephlewis42/logos/core/lang"
)

func newClockSession(slept *[]time.Duration) *interp.Interp {
	cfg := Config{
		Now: func() time.Time {
			return time.Date(2019, time.August, 5, 9, 6, 8, 0, time.UTC)
		},
		Sleep: func(d time.Duration) {
			*slept = append(*slept, d)
		},
	}

	return interp.NewFromInstructions(nil, interp.Options{
		Initial:     NewClock(cfg, ""),
		InitialName: "Clock",
	})
}

func TestClockTime(t *testing.T) {
	cases := []struct {
		name     string
		args     string
		expected string
	}{
		{"utc", "in terms of utc", "8 seconds past 9:06 AM on Monday the 5th of August, 2019"},
		{"unix", "in terms of the unix epoch", "1564995968"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var slept []time.Duration
			in := newClockSession(&slept)

			require.NoError(t, in.RunInstruction(lang.Instruction{Name: "time", Args: tc.args}))

			buffer, err := in.State().Buffer()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, buffer)
		})
	}
}

func TestClockTimeLocal(t *testing.T) {
	cfg := Config{
		Now: func() time.Time {
			return time.Date(2019, time.August, 5, 9, 6, 8, 0, time.Local)
		},
		Sleep: func(d time.Duration) {},
	}
	in := interp.NewFromInstructions(nil, interp.Options{
		Initial:     NewClock(cfg, ""),
		InitialName: "Clock",
	})

	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "time"}))

	buffer, err := in.State().Buffer()
	require.NoError(t, err)
	assert.Equal(t, "8 seconds past 9:06 AM on Monday the 5th of August, 2019", buffer)
}

func TestClockTimeRejectsUnknownFormat(t *testing.T) {
	var slept []time.Duration
	in := newClockSession(&slept)

	err := in.RunInstruction(lang.Instruction{Name: "time", Args: "in dog years"})
	assert.Error(t, err)
}

func TestClockWait(t *testing.T) {
	cases := []struct {
		args     string
		expected time.Duration
	}{
		{"2", 2 * time.Second},
		{"2 secs", 2 * time.Second},
		{"1.5 seconds", 1500 * time.Millisecond},
		{"500 milliseconds", 500 * time.Millisecond},
		{"2 mins", 2 * time.Minute},
		{"0.5 minutes", 30 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.args, func(t *testing.T) {
			var slept []time.Duration
			in := newClockSession(&slept)

			require.NoError(t, in.RunInstruction(lang.Instruction{Name: "wait", Args: tc.args}))
			require.Len(t, slept, 1)
			assert.Equal(t, tc.expected, slept[0])
		})
	}
}

func TestOrdinalDay(t *testing.T) {
	cases := map[int]string{
		1:  "1st",
		2:  "2nd",
		3:  "3rd",
		4:  "4th",
		11: "11th",
		12: "12th",
		13: "13th",
		21: "21st",
		22: "22nd",
		23: "23rd",
		30: "30th",
	}

	for day, expected := range cases {
		assert.Equal(t, expected, ordinalDay(day))
	}
}
