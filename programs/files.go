package programs

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/josephlewis42/logos/core/interp"
)

// Files interfaces with the filesystem the host injected; hosts
// typically jail it with a base-path fs. Unsafe: left out of the
// sandbox library.
type Files struct {
	interp.TextBuffer
	fs afero.Fs
}

func NewFiles(cfg Config, initialBuffer string) interp.Program {
	return &Files{
		TextBuffer: interp.NewTextBuffer(initialBuffer),
		fs:         cfg.FS,
	}
}

func (f *Files) Command(name string) (interp.Handler, error) {
	return interp.LookupCommand("Files", map[string]interp.Handler{
		"create": interp.FuncCommand(f.create),
		"delete": interp.FuncCommand(f.delete),
		"load":   interp.FuncCommand(f.load),
		"save":   interp.FuncCommand(f.save),
	}, name)
}

const folderModePrefix = "the folder at"

// targetPath splits `[the folder at] PATH` arguments.
func targetPath(args string) (path string, folder bool) {
	if strings.HasPrefix(args, folderModePrefix) {
		return strings.TrimSpace(strings.TrimPrefix(args, folderModePrefix)), true
	}
	return strings.TrimSpace(args), false
}

func (f *Files) create(args, buffer string) (string, error) {
	path, folder := targetPath(args)
	if path == "" {
		return "", fmt.Errorf("create wants a path")
	}

	if folder {
		if err := f.fs.MkdirAll(path, os.FileMode(0755)); err != nil {
			return "", err
		}
		return buffer, nil
	}

	fd, err := f.fs.Create(path)
	if err != nil {
		return "", err
	}
	return buffer, fd.Close()
}

func (f *Files) delete(args, buffer string) (string, error) {
	path, folder := targetPath(args)
	if path == "" {
		return "", fmt.Errorf("delete wants a path")
	}

	if folder {
		// Folders must be empty, matching rmdir semantics.
		entries, err := afero.ReadDir(f.fs, path)
		if err != nil {
			return "", err
		}
		if len(entries) > 0 {
			return "", fmt.Errorf("%s: directory not empty", path)
		}
	}
	return buffer, f.fs.Remove(path)
}

// load reads the file into the buffer.
func (f *Files) load(args, buffer string) (string, error) {
	contents, err := afero.ReadFile(f.fs, strings.TrimSpace(args))
	if err != nil {
		return "", err
	}
	return string(contents), nil
}

// save writes the buffer to the file and clears the buffer.
func (f *Files) save(args, buffer string) (string, error) {
	if err := afero.WriteFile(f.fs, strings.TrimSpace(args), []byte(buffer), os.FileMode(0644)); err != nil {
		return "", err
	}
	return "", nil
}

func init() {
	registerUnsafe("Files", NewFiles)
}
