// Package config holds the host configuration for logos sessions: the
// capability tag that selects the program library, collaborator limits
// and the SSH front end settings.
package config

import (
	_ "embed"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	LogsDirName       = "session_logs"
	FilesDirName      = "files"
	HostKeyName       = "host_key"

	// CapabilitySafe excludes the programs that touch the real
	// filesystem and network; CapabilityUnsafe includes everything.
	CapabilitySafe   = "safe"
	CapabilityUnsafe = "unsafe"
)

type Configuration struct {
	configFs afero.Fs

	// Motd is printed when an interactive session starts.
	Motd string `json:"motd"`

	// Capability selects the program library. Enforcement is the
	// host's concern; the tag only chooses which constructors are
	// registered.
	Capability string `json:"capability" validate:"required,oneof=safe unsafe"`

	// FilesRoot jails the Files program. Relative paths are resolved
	// against the configuration directory.
	FilesRoot string `json:"files_root" validate:"required"`

	// HTTPTimeoutSeconds bounds Browser navigation.
	HTTPTimeoutSeconds int `json:"http_timeout_seconds" validate:"gt=0"`

	// DownloadBytesPerSecond throttles Browser response bodies.
	DownloadBytesPerSecond int64 `json:"download_bytes_per_second" validate:"gt=0"`

	SSHPort   int    `json:"ssh_port" validate:"gte=0,lte=65535"`
	SSHBanner string `json:"ssh_banner"`

	// StartupScript is command text run before a REPL begins.
	StartupScript string `json:"startup_script"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// CreateSessionLog creates a session log with the given name.
func (c *Configuration) CreateSessionLog(name string) (afero.File, error) {
	return c.fs().Create(filepath.Join(LogsDirName, name))
}

// HostKeyPem returns the bytes of the SSH host key.
func (c *Configuration) HostKeyPem() ([]byte, error) {
	return afero.ReadFile(c.fs(), HostKeyName)
}

// ProgramsFs returns the filesystem the Files program operates on,
// jailed to FilesRoot.
func (c *Configuration) ProgramsFs() afero.Fs {
	root := c.FilesRoot
	if !filepath.IsAbs(root) {
		return afero.NewBasePathFs(c.fs(), root)
	}
	return afero.NewBasePathFs(afero.NewOsFs(), root)
}

// Sandboxed reports whether the safe program subset is selected.
func (c *Configuration) Sandboxed() bool {
	return c.Capability != CapabilityUnsafe
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

func dirFs(path string) afero.Fs {
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	return afero.NewBasePathFs(afero.NewOsFs(), path)
}
