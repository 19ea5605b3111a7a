package abspath

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/afero"

	scaffkiterrors "scaffkit.dev/scaffkit/internal/errors"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// WalkEvent says where in a guarded delete a callback fires
type WalkEvent int

const (
	// EnterDir fires before descending into a subdirectory
	EnterDir WalkEvent = iota
	// LeaveDir fires after a subdirectory's contents are gone, before it is removed
	LeaveDir
	// VisitFile fires before a non-directory entry is removed
	VisitFile
)

func (e WalkEvent) String() string {
	switch e {
	case EnterDir:
		return "enter"
	case LeaveDir:
		return "leave"
	default:
		return "file"
	}
}

// WalkFunc is called by RmrfDir. Returning true aborts the traversal.
type WalkFunc func(entry Path, event WalkEvent) (abort bool)

// ReadFile returns the file's contents
func (p Path) ReadFile() ([]byte, error) {
	data, err := afero.ReadFile(p.Fs(), p.abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.abs, err)
	}
	return data, nil
}

// WriteFile creates or truncates the file and writes data to it
func (p Path) WriteFile(data []byte) error {
	if !p.IsSet() {
		return fmt.Errorf("write to unset path")
	}
	if err := afero.WriteFile(p.Fs(), p.abs, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.abs, err)
	}
	return nil
}

// WriteString is WriteFile for text content
func (p Path) WriteString(content string) error {
	return p.WriteFile([]byte(content))
}

// Mkdirp creates the directory and any missing parents
func (p Path) Mkdirp() error {
	if !p.IsSet() {
		return fmt.Errorf("mkdir of unset path")
	}
	if err := p.Fs().MkdirAll(p.abs, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.abs, err)
	}
	return nil
}

// Rename moves the path to dest and returns dest
func (p Path) Rename(dest Path) (Path, error) {
	if !p.IsSet() || !dest.IsSet() {
		return Unset(), fmt.Errorf("rename with unset path")
	}
	if err := p.Fs().Rename(p.abs, dest.abs); err != nil {
		return Unset(), fmt.Errorf("failed to rename %s to %s: %w", p.abs, dest.abs, err)
	}
	return dest.WithFs(p.fs), nil
}

// RmFile deletes a non-directory entry
func (p Path) RmFile() error {
	fi, err := p.Lstat()
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", p.abs, err)
	}
	if fi.IsDir() {
		return fmt.Errorf("failed to remove %s: is a directory", p.abs)
	}
	if err := p.Fs().Remove(p.abs); err != nil {
		return fmt.Errorf("failed to remove %s: %w", p.abs, err)
	}
	return nil
}

// isRealDir reports a directory that is not reached through a symlink
func (p Path) isRealDir() bool {
	fi, err := p.Lstat()
	return err == nil && fi.IsDir()
}

// RmrfDir recursively deletes the directory's contents, and the directory
// itself when removeSelf is set.
//
// Every path that would be deleted must match pattern. All paths are checked
// before the first deletion, so a single mismatch leaves the tree untouched
// and returns an *errors.UnsafePathError. fn may be nil; if it returns true
// the traversal stops with errors.ErrAborted. Symlinks are removed, never
// followed.
func (p Path) RmrfDir(pattern *regexp.Regexp, removeSelf bool, fn WalkFunc) error {
	if pattern == nil {
		return fmt.Errorf("rmrfdir of %s: pattern is required", p.abs)
	}
	if !p.isRealDir() {
		return fmt.Errorf("rmrfdir of %s: not a directory", p.abs)
	}
	if removeSelf && !pattern.MatchString(p.abs) {
		return scaffkiterrors.NewUnsafePathError(p.abs, pattern.String())
	}
	if err := p.checkTree(pattern); err != nil {
		return err
	}
	if fn == nil {
		fn = func(Path, WalkEvent) bool { return false }
	}
	if err := p.removeTree(fn); err != nil {
		return err
	}
	if removeSelf {
		if err := p.Fs().Remove(p.abs); err != nil {
			return fmt.Errorf("failed to remove %s: %w", p.abs, err)
		}
	}
	return nil
}

func (p Path) checkTree(pattern *regexp.Regexp) error {
	entries, err := p.List()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !pattern.MatchString(entry.abs) {
			return scaffkiterrors.NewUnsafePathError(entry.abs, pattern.String())
		}
		if entry.isRealDir() {
			if err := entry.checkTree(pattern); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p Path) removeTree(fn WalkFunc) error {
	entries, err := p.List()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.isRealDir() {
			if fn(entry, EnterDir) {
				return scaffkiterrors.ErrAborted
			}
			if err := entry.removeTree(fn); err != nil {
				return err
			}
			if fn(entry, LeaveDir) {
				return scaffkiterrors.ErrAborted
			}
		} else if fn(entry, VisitFile) {
			return scaffkiterrors.ErrAborted
		}
		if err := p.Fs().Remove(entry.abs); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entry.abs, err)
		}
	}
	return nil
}
