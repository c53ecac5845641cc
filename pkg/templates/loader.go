// Package templates loads cadence templates from a base directory.
package templates

import (
	"io/fs"
	"path"

	arenatoken "github.com/bjartek/arenatoken"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// DefaultBaseDir is the project relative directory holding the cadence templates
const DefaultBaseDir = "cadence"

// ErrTemplateNotFound is reported when a template path does not exist
var ErrTemplateNotFound = errors.New("template not found")

// Loader reads templates rooted at BaseDir. It keeps no state between calls.
type Loader struct {
	fs      afero.Fs
	baseDir string
}

// NewLoader creates a loader reading from fs relative to baseDir
func NewLoader(fs afero.Fs, baseDir string) *Loader {
	return &Loader{fs: fs, baseDir: baseDir}
}

// NewOsLoader creates a loader reading from the os filesystem
func NewOsLoader(baseDir string) *Loader {
	return NewLoader(afero.NewOsFs(), baseDir)
}

// NewEmbeddedLoader creates a loader reading the templates compiled into the module
func NewEmbeddedLoader() *Loader {
	return NewLoader(afero.FromIOFS{FS: arenatoken.Cadence}, DefaultBaseDir)
}

// BaseDir returns the directory template paths are resolved against
func (l *Loader) BaseDir() string {
	return l.baseDir
}

// Path returns the full path of a template
func (l *Loader) Path(relativePath string) string {
	return path.Join(l.baseDir, relativePath)
}

// Load returns the raw text of the template at relativePath.
// Missing files are marked with ErrTemplateNotFound, other errors are returned wrapped.
func (l *Loader) Load(relativePath string) (string, error) {
	full := l.Path(relativePath)
	data, err := afero.ReadFile(l.fs, full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Mark(errors.Wrapf(err, "loading template %s", full), ErrTemplateNotFound)
		}
		return "", errors.Wrapf(err, "reading template %s", full)
	}
	return string(data), nil
}
