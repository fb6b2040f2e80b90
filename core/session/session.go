// Package session wires interpreter sessions to their hosts: the
// interactive REPL and the SSH front end.
package session

import (
	"net/http"
	"time"

	"github.com/josephlewis42/logos/core/config"
	"github.com/josephlewis42/logos/core/interp"
	"github.com/josephlewis42/logos/programs"
)

// NewInterp builds an interpreter session over source using the library
// the configuration's capability tag selects.
func NewInterp(cfg *config.Configuration, pcfg programs.Config, source string, observer interp.Observer) (*interp.Interp, error) {
	var library interp.Library
	if cfg.Sandboxed() {
		library = programs.Sandbox(pcfg)
	} else {
		library = programs.Standard(pcfg)
	}

	return interp.New(source, interp.Options{
		Library:  library,
		Observer: observer,
	})
}

// ProgramsConfig derives the collaborator capabilities from the host
// configuration. IO is left for the caller to attach.
func ProgramsConfig(cfg *config.Configuration) programs.Config {
	return programs.Config{
		FS: cfg.ProgramsFs(),
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
		DownloadBytesPerSecond: cfg.DownloadBytesPerSecond,
	}
}
