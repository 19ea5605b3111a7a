package abspath

import (
	"strconv"
	"strings"
)

// MaxVer returns the highest N among siblings named "<base>.<N>", where N is
// a run of decimal digits. ok is false when no such sibling exists.
func (p Path) MaxVer() (n int, ok bool, err error) {
	if !p.IsSet() || p.IsRoot() {
		return 0, false, nil
	}
	dir := p.Parent()
	if !dir.IsDir() {
		return 0, false, nil
	}
	names, err := dir.ListNames()
	if err != nil {
		return 0, false, err
	}

	prefix := p.Base() + "."
	for _, name := range names {
		suffix, found := strings.CutPrefix(name, prefix)
		if !found || !isDigits(suffix) {
			continue
		}
		v, convErr := strconv.Atoi(suffix)
		if convErr != nil {
			continue
		}
		if !ok || v > n {
			n, ok = v, true
		}
	}
	return n, ok, nil
}

// NextVer returns "<path>.<max+1>", or "<path>.1" when no version exists yet
func (p Path) NextVer() (Path, error) {
	n, ok, err := p.MaxVer()
	if err != nil {
		return Unset(), err
	}
	next := 1
	if ok {
		next = n + 1
	}
	return p.derive(p.abs + "." + strconv.Itoa(next)), nil
}

// RenameToNextVer moves the path out of the way to its next version and
// returns where it went
func (p Path) RenameToNextVer() (Path, error) {
	dest, err := p.NextVer()
	if err != nil {
		return Unset(), err
	}
	return p.Rename(dest)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
