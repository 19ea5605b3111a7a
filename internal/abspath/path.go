package abspath

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// defaultFs is used by paths that were not given a filesystem explicitly
var defaultFs afero.Fs = afero.NewOsFs()

// Path is an immutable absolute filesystem path, or the unset path
type Path struct {
	abs string
	fs  afero.Fs
}

// New resolves p to a cleaned absolute path on the OS filesystem.
// Relative paths are resolved against the process working directory.
func New(p string) (Path, error) {
	if p == "" {
		return Path{}, fmt.Errorf("empty path")
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return Path{}, fmt.Errorf("failed to resolve path %s: %w", p, err)
	}
	return Path{abs: abs}, nil
}

// MustNew is like New but panics on error
func MustNew(p string) Path {
	path, err := New(p)
	if err != nil {
		panic(err)
	}
	return path
}

// NewOn returns p on the given filesystem. p must already be absolute.
func NewOn(fs afero.Fs, p string) (Path, error) {
	if !filepath.IsAbs(p) {
		return Path{}, fmt.Errorf("path %s is not absolute", p)
	}
	return Path{abs: filepath.Clean(p), fs: fs}, nil
}

// Unset returns the unset path
func Unset() Path {
	return Path{}
}

// IsSet reports whether the path holds a value
func (p Path) IsSet() bool {
	return p.abs != ""
}

// String returns the absolute path, or "" when unset
func (p Path) String() string {
	return p.abs
}

// Fs returns the filesystem the path is resolved against
func (p Path) Fs() afero.Fs {
	if p.fs == nil {
		return defaultFs
	}
	return p.fs
}

// WithFs returns the same path bound to another filesystem
func (p Path) WithFs(fs afero.Fs) Path {
	return Path{abs: p.abs, fs: fs}
}

func (p Path) derive(abs string) Path {
	return Path{abs: abs, fs: p.fs}
}

// Add joins segments onto the path. The result is cleaned, so ".." segments
// are resolved lexically.
func (p Path) Add(segments ...string) Path {
	if !p.IsSet() {
		return p
	}
	return p.derive(filepath.Join(append([]string{p.abs}, segments...)...))
}

// Base returns the last element of the path
func (p Path) Base() string {
	if !p.IsSet() {
		return ""
	}
	return filepath.Base(p.abs)
}

// Ext returns the file name extension, including the dot
func (p Path) Ext() string {
	return filepath.Ext(p.Base())
}

// IsRoot reports whether the path is the filesystem root
func (p Path) IsRoot() bool {
	if !p.IsSet() {
		return false
	}
	return filepath.Dir(p.abs) == p.abs
}

// Parent returns the containing directory. The root is its own parent.
func (p Path) Parent() Path {
	if !p.IsSet() {
		return p
	}
	return p.derive(filepath.Dir(p.abs))
}

// Up returns the ancestor n levels above the path, stopping at the root
func (p Path) Up(n int) Path {
	cur := p
	for i := 0; i < n && !cur.IsRoot(); i++ {
		cur = cur.Parent()
	}
	return cur
}

// Ancestors returns the path followed by each of its ancestors up to and
// including the root
func (p Path) Ancestors() []Path {
	if !p.IsSet() {
		return nil
	}
	var chain []Path
	cur := p
	for {
		chain = append(chain, cur)
		if cur.IsRoot() {
			return chain
		}
		cur = cur.Parent()
	}
}

// Equal reports whether both paths hold the same absolute path string
func (p Path) Equal(o Path) bool {
	return p.abs == o.abs
}

// Contains reports whether o is p or lies below p
func (p Path) Contains(o Path) bool {
	if !p.IsSet() || !o.IsSet() {
		return false
	}
	if p.abs == o.abs {
		return true
	}
	prefix := p.abs
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(o.abs, prefix)
}

// Rel returns the path relative to base
func (p Path) Rel(base Path) (string, error) {
	if !p.IsSet() || !base.IsSet() {
		return "", fmt.Errorf("relative path of unset path")
	}
	return filepath.Rel(base.abs, p.abs)
}
