package abspath

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// sniffLen matches the prefix git inspects when deciding a blob is binary
const sniffLen = 8000

// Stat returns file info, following symlinks
func (p Path) Stat() (os.FileInfo, error) {
	if !p.IsSet() {
		return nil, fmt.Errorf("stat of unset path")
	}
	return p.Fs().Stat(p.abs)
}

// Lstat returns file info without following a final symlink when the
// filesystem supports it
func (p Path) Lstat() (os.FileInfo, error) {
	if !p.IsSet() {
		return nil, fmt.Errorf("lstat of unset path")
	}
	if lst, ok := p.Fs().(afero.Lstater); ok {
		fi, _, err := lst.LstatIfPossible(p.abs)
		return fi, err
	}
	return p.Fs().Stat(p.abs)
}

// Exists reports whether anything exists at the path
func (p Path) Exists() bool {
	_, err := p.Stat()
	return err == nil
}

// IsFile reports whether the path is a regular file
func (p Path) IsFile() bool {
	fi, err := p.Stat()
	return err == nil && fi.Mode().IsRegular()
}

// IsDir reports whether the path is a directory
func (p Path) IsDir() bool {
	fi, err := p.Stat()
	return err == nil && fi.IsDir()
}

// IsSymlink reports whether the path itself is a symbolic link
func (p Path) IsSymlink() bool {
	fi, err := p.Lstat()
	return err == nil && fi.Mode()&os.ModeSymlink != 0
}

// IsBinaryFile reports whether the file looks binary: a NUL byte within the
// first 8000 bytes
func (p Path) IsBinaryFile() (bool, error) {
	f, err := p.Fs().Open(p.abs)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", p.abs, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, fmt.Errorf("failed to read %s: %w", p.abs, err)
	}
	return bytes.IndexByte(buf[:n], 0) >= 0, nil
}

// IsEmptyDir reports whether the path is a directory with no entries
func (p Path) IsEmptyDir() (bool, error) {
	return afero.IsEmpty(p.Fs(), p.abs)
}

// ListNames returns the entry names of the directory, sorted
func (p Path) ListNames() ([]string, error) {
	infos, err := afero.ReadDir(p.Fs(), p.abs)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", p.abs, err)
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	return names, nil
}

// List returns the entries of the directory as paths, sorted by name
func (p Path) List() ([]Path, error) {
	names, err := p.ListNames()
	if err != nil {
		return nil, err
	}
	entries := make([]Path, 0, len(names))
	for _, name := range names {
		entries = append(entries, p.Add(name))
	}
	return entries, nil
}

// FindUpwards returns the nearest ancestor, starting with the path itself,
// that contains a file called name. Directories match too when allowDir is
// set. It returns the unset path when no ancestor up to the root matches.
func (p Path) FindUpwards(name string, allowDir bool) Path {
	for _, dir := range p.Ancestors() {
		candidate := dir.Add(name)
		fi, err := candidate.Stat()
		if err != nil {
			continue
		}
		if fi.IsDir() && !allowDir {
			continue
		}
		return dir
	}
	return Unset()
}

// FindUpwardsEntry is like FindUpwards but returns the matching entry itself
func (p Path) FindUpwardsEntry(name string, allowDir bool) Path {
	dir := p.FindUpwards(name, allowDir)
	if !dir.IsSet() {
		return dir
	}
	return dir.Add(name)
}
