package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharactersUnicode(t *testing.T) {
	cases := []struct {
		name     string
		buffer   string
		expected string
	}{
		{"ascii", "104 105", "hi"},
		{"empty", "", ""},
		{"beyond the basic plane", "128175", "\U0001F4AF"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := charactersUnicode("", tc.buffer)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	t.Run("not a number", func(t *testing.T) {
		_, err := charactersUnicode("", "one")
		assert.Error(t, err)
	})
}

func TestCharactersCodepoints(t *testing.T) {
	actual, err := charactersCodepoints("", "hi")
	require.NoError(t, err)
	assert.Equal(t, "104 105", actual)

	empty, err := charactersCodepoints("", "")
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestCharactersRoundTrip(t *testing.T) {
	points, err := charactersCodepoints("", "round trip ✓")
	require.NoError(t, err)

	back, err := charactersUnicode("", points)
	require.NoError(t, err)
	assert.Equal(t, "round trip ✓", back)
}
