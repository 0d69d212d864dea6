// Package output persists rendered artifacts, opens them for viewing and
// describes assemblies as JSON.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ukaji3/conspire-go/pkg/conspire/backend"
)

// DefaultPath is where artifacts land when no path is given.
const DefaultPath = "render.html"

// ErrNoArtifact indicates Persist was called without content to write.
var ErrNoArtifact = errors.New("no artifact to persist")

// PersistError records a failed artifact write.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist error for %q: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// NewPersistError creates a new PersistError.
func NewPersistError(path string, err error) *PersistError {
	return &PersistError{Path: path, Err: err}
}

// Persister writes artifacts to a filesystem.
type Persister struct {
	Fs afero.Fs
}

// NewPersister returns a Persister backed by the OS filesystem.
func NewPersister() *Persister {
	return &Persister{Fs: afero.NewOsFs()}
}

// Persist writes the artifact to path and returns the absolute path written.
// The content goes to a temporary file in the destination directory first and
// is renamed into place, so an existing file is only replaced by a complete one.
func (p *Persister) Persist(a *backend.Artifact, path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", NewPersistError(path, err)
	}
	if a == nil {
		return "", NewPersistError(abs, ErrNoArtifact)
	}

	fs := p.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	dir := filepath.Dir(abs)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", NewPersistError(abs, err)
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(abs)+"-*")
	if err != nil {
		return "", NewPersistError(abs, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(a.Content); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return "", NewPersistError(abs, err)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return "", NewPersistError(abs, err)
	}
	if err := fs.Chmod(tmpName, 0o644); err != nil && !errors.Is(err, os.ErrNotExist) {
		fs.Remove(tmpName)
		return "", NewPersistError(abs, err)
	}
	if err := fs.Rename(tmpName, abs); err != nil {
		fs.Remove(tmpName)
		return "", NewPersistError(abs, err)
	}
	return abs, nil
}
