// Package programs holds the collaborator programs that ship with
// logos. Each program registers itself into a library the session host
// hands to the runtime; the capability tag picks the safe subset or the
// whole set.
package programs

import (
	"crypto/rand"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/josephlewis42/logos/core/interp"
)

// Config carries the capabilities programs are built with. Hosts inject
// fakes (in-memory fs, scripted input, fixed clock) for deterministic
// tests.
type Config struct {
	// Stdin feeds Email's refresh command.
	Stdin io.Reader
	// Stdout receives Email's send output and prompts.
	Stdout io.Writer

	// FS backs the Files program.
	FS afero.Fs

	// HTTPClient performs Browser navigation.
	HTTPClient *http.Client
	// DownloadBytesPerSecond throttles Browser response bodies.
	// Zero disables throttling.
	DownloadBytesPerSecond int64

	// Now and Sleep drive the Clock program.
	Now   func() time.Time
	Sleep func(d time.Duration)

	// Rand sources Mines randomness.
	Rand io.Reader
}

func (c Config) withDefaults() Config {
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.FS == nil {
		c.FS = afero.NewMemMapFs()
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}
	if c.Rand == nil {
		c.Rand = rand.Reader
	}
	return c
}

type builder func(cfg Config, initialBuffer string) interp.Program

type registration struct {
	build  builder
	unsafe bool
}

// registry holds every registered program keyed by library name.
var registry = make(map[string]registration)

// register adds a program to the safe set.
func register(name string, build builder) {
	registry[name] = registration{build: build}
}

// registerUnsafe adds a program that touches the host filesystem or
// network; the sandbox library leaves these out.
func registerUnsafe(name string, build builder) {
	registry[name] = registration{build: build, unsafe: true}
}

// Standard returns the full registered library.
func Standard(cfg Config) interp.Library {
	return library(cfg, true)
}

// Sandbox returns the library without the unsafe programs.
func Sandbox(cfg Config) interp.Library {
	return library(cfg, false)
}

func library(cfg Config, includeUnsafe bool) interp.Library {
	cfg = cfg.withDefaults()

	lib := interp.Library{}
	for name, reg := range registry {
		if reg.unsafe && !includeUnsafe {
			continue
		}
		build := reg.build
		lib[name] = func(initialBuffer string) interp.Program {
			return build(cfg, initialBuffer)
		}
	}
	return lib
}
