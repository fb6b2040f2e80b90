package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardLibrary(t *testing.T) {
	lib := Standard(Config{})

	for _, name := range []string{
		"Email", "Editor", "Calculator", "Clock", "Characters",
		"Mines", "Assembler", "Files", "Browser",
	} {
		assert.Contains(t, lib, name)
	}
}

func TestSandboxLibrary(t *testing.T) {
	lib := Sandbox(Config{})

	for _, name := range []string{
		"Email", "Editor", "Calculator", "Clock", "Characters",
		"Mines", "Assembler",
	} {
		assert.Contains(t, lib, name)
	}

	assert.NotContains(t, lib, "Files", "sandbox excludes host filesystem access")
	assert.NotContains(t, lib, "Browser", "sandbox excludes network access")
}

func TestLibraryConstructorsSeedBuffers(t *testing.T) {
	lib := Standard(Config{})

	for name, build := range lib {
		program := build("initial text")
		assert.Equal(t, "initial text", program.Buffer(), name)
	}
}
