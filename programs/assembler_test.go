package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/logos/core/interp"
	"github.com/josephlewis42/logos/core/lang"
)

func TestAssemblerCompileAndInvoke(t *testing.T) {
	in := interp.NewFromInstructions(nil, interp.Options{
		Library: Sandbox(Config{}),
	})

	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "Assembler"}))
	require.NoError(t, in.State().SetBuffer("copy\nname stamp\npaste"))

	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "compile", Args: "Stamper"}))
	require.Contains(t, in.State().Library, "Stamper")

	// Open the freshly assembled program from the launcher.
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "minimise"}))
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "Stamper", Args: "seed"}))

	buffer, err := in.State().Buffer()
	require.NoError(t, err)
	assert.Equal(t, "seed", buffer)

	// stamp queues its recorded section ahead of the stream.
	in.State().Clipboard = "pasted"
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "stamp"}))
	assert.Equal(t, []lang.Instruction{{Name: "paste"}}, in.Remaining())

	require.NoError(t, in.RunAll())
	buffer, err = in.State().Buffer()
	require.NoError(t, err)
	assert.Equal(t, "pasted", buffer)
}

func TestAssemblerDefaultSectionFallback(t *testing.T) {
	in := interp.NewFromInstructions(nil, interp.Options{
		Library: Sandbox(Config{}),
	})

	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "Assembler"}))
	require.NoError(t, in.State().SetBuffer("copy\nname stamp\npaste"))
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "compile", Args: "Stamper"}))
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "minimise"}))
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "Stamper", Args: "hello"}))

	// An unrecorded command runs the default section, here a single copy.
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "anything"}))
	require.NoError(t, in.RunAll())
	assert.Equal(t, "hello", in.State().Clipboard)
}

func TestAssemblerEmptyDefaultSection(t *testing.T) {
	in := interp.NewFromInstructions(nil, interp.Options{
		Library: Sandbox(Config{}),
	})

	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "Assembler"}))
	require.NoError(t, in.State().SetBuffer("name only\npaste"))
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "compile", Args: "Sparse"}))
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "minimise"}))
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "Sparse"}))

	err := in.RunInstruction(lang.Instruction{Name: "mystery"})
	require.Error(t, err)

	var unknown *interp.UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Sparse", unknown.Program)
	assert.Equal(t, "mystery", unknown.Command)
}

func TestAssemblerCompileArgValidation(t *testing.T) {
	in := interp.NewFromInstructions(nil, interp.Options{
		Library: Sandbox(Config{}),
	})
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "Assembler"}))

	assert.Error(t, in.RunInstruction(lang.Instruction{Name: "compile"}))
	assert.Error(t, in.RunInstruction(lang.Instruction{Name: "compile", Args: "two words"}))
}

func TestAssemblerCompileBadBuffer(t *testing.T) {
	in := interp.NewFromInstructions(nil, interp.Options{
		Library: Sandbox(Config{}),
	})
	require.NoError(t, in.RunInstruction(lang.Instruction{Name: "Assembler"}))
	require.NoError(t, in.State().SetBuffer("\tindented"))

	err := in.RunInstruction(lang.Instruction{Name: "compile", Args: "Broken"})
	require.Error(t, err)

	var parseErr *lang.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
