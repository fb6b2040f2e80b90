package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/logos/core/interp"
	"github.com/josephlewis42/logos/core/lang"
)

func TestEditorWrite(t *testing.T) {
	cases := []struct {
		name     string
		args     string
		buffer   string
		expected string
	}{
		{"quoted text", `"hello"`, "", "hello"},
		{"quoted text keeps spaces", `"a b "`, "x", "xa b "},
		{"empty args is newline", "", "x", "x\n"},
		{"newline word", "newline", "x", "x\n"},
		{"a newline", "a newline", "x", "x\n"},
		{"quotemark word", "quotemark", "x", `x"`},
		{"bare quote", `"`, "x", `x"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := editorWrite(tc.args, tc.buffer)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	t.Run("unquoted text fails", func(t *testing.T) {
		_, err := editorWrite("hello", "")
		assert.Error(t, err)
	})
}

func TestEditorBackspace(t *testing.T) {
	cases := []struct {
		name     string
		args     string
		buffer   string
		expected string
	}{
		{"default one character", "", "abc", "ab"},
		{"several characters", "2", "abc", "a"},
		{"unit only", "words", "one two", "one"},
		{"count and unit", "2 words", "one two three", "one"},
		{"lines", "lines", "one\ntwo", "one"},
		{"past the start", "10", "ab", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := editorBackspace(tc.args, tc.buffer)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	t.Run("bad count", func(t *testing.T) {
		_, err := editorBackspace("two words", "abc")
		assert.Error(t, err)
	})
}

func TestEditorReplace(t *testing.T) {
	cases := []struct {
		name     string
		args     string
		buffer   string
		expected string
	}{
		{"simple", `"colour" with "color"`, "a colour b", "a color b"},
		{"operand containing with", `"go with it" with "stay"`, "go with it!", "stay!"},
		{"newline replacement", `"," with a newline`, "a,b", "a\nb"},
		{"quotemark replacement", `quotemark with "'"`, `say "hi"`, "say 'hi'"},
		{"honorific quotemark", `Otto von Quotemark with "_"`, `"x"`, "_x_"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := editorReplace(tc.args, tc.buffer)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	t.Run("unparseable", func(t *testing.T) {
		_, err := editorReplace("no quotes here", "buffer")
		assert.Error(t, err)
	})
}

func TestEditorCount(t *testing.T) {
	cases := []struct {
		name     string
		args     string
		buffer   string
		expected string
	}{
		{"default characters", "", "abc", "3"},
		{"characters", "characters", "ab cd", "5"},
		{"words", "words", "one two  three", "3"},
		{"lines", "lines", "a\nb\nc", "3"},
		{"empty buffer", "words", "", "0"},
		{"quoted substring", `"ab"`, "ab cab", "2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := editorCount(tc.args, tc.buffer)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestEditorTailor(t *testing.T) {
	cases := []struct {
		name     string
		args     string
		buffer   string
		expected string
	}{
		{"last word", "words", "one two three", "three"},
		{"last two words", "2 words", "one two three", "two three"},
		{"last line", "lines", "first\nsecond", "second"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := editorTailor(tc.args, tc.buffer)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestEditorAppendConsumesClipboard(t *testing.T) {
	editor := NewEditor(Config{}, "head ")
	in := interp.NewFromInstructions(nil, interp.Options{
		Initial:     editor,
		InitialName: "Editor",
	})
	in.State().Clipboard = "tail"

	err := in.RunInstruction(lang.Instruction{Name: "append", Args: "the clipboard"})
	require.NoError(t, err)

	buffer, err := in.State().Buffer()
	require.NoError(t, err)
	assert.Equal(t, "head tail", buffer)
	assert.Equal(t, "", in.State().Clipboard)
}

func TestEditorUnknownCommand(t *testing.T) {
	editor := NewEditor(Config{}, "")

	_, err := editor.Command("paint")
	var unknown *interp.UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Editor", unknown.Program)
}
