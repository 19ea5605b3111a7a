// Package errors provides sentinel errors and custom error types for scaffkit.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies failures raised by the git wrapper.
type Kind int

const (
	// KindGeneric is any failure without a more specific classification
	KindGeneric Kind = iota
	// KindNotConnected means no repository path was configured
	KindNotConnected
	// KindInvalidPath means the repository path is missing or not a directory
	KindInvalidPath
	// KindAddFailed means staging a file failed
	KindAddFailed
	// KindCheckIgnoreFailed means git check-ignore failed outside its allowed statuses
	KindCheckIgnoreFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotConnected:
		return "not connected"
	case KindInvalidPath:
		return "invalid path"
	case KindAddFailed:
		return "add failed"
	case KindCheckIgnoreFailed:
		return "check-ignore failed"
	default:
		return "generic"
	}
}

// Sentinel errors for common conditions
var (
	// ErrNotConnected indicates an operation was attempted before a repository path was set
	ErrNotConnected = errors.New("repository path not set")

	// ErrInvalidPath indicates the repository path does not exist or is not a directory
	ErrInvalidPath = errors.New("invalid repository path")

	// ErrAddFailed indicates that git add failed
	ErrAddFailed = errors.New("git add failed")

	// ErrCheckIgnoreFailed indicates that git check-ignore failed
	ErrCheckIgnoreFailed = errors.New("git check-ignore failed")

	// ErrUnsafePath indicates a recursive delete met a path outside its allowed pattern
	ErrUnsafePath = errors.New("path does not match deletion pattern")

	// ErrAborted indicates a traversal callback asked to stop
	ErrAborted = errors.New("traversal aborted")
)

var kindSentinels = map[Kind]error{
	KindNotConnected:      ErrNotConnected,
	KindInvalidPath:       ErrInvalidPath,
	KindAddFailed:         ErrAddFailed,
	KindCheckIgnoreFailed: ErrCheckIgnoreFailed,
}

// Error is a classified failure carrying a message and an optional cause
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is returns true if the target is the sentinel for this error's kind
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// NewError creates a new classified Error
func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewNotConnectedError creates an error for an operation on a repo without a path
func NewNotConnectedError() *Error {
	return NewError(KindNotConnected, "repository path not set", nil)
}

// NewInvalidPathError creates an error for a repository path that is not a directory
func NewInvalidPathError(path string) *Error {
	return NewError(KindInvalidPath, fmt.Sprintf("%s is not an existing directory", path), nil)
}

// NewAddFailedError wraps a failed git add
func NewAddFailedError(paths []string, err error) *Error {
	return NewError(KindAddFailed, fmt.Sprintf("failed to add %s", strings.Join(paths, ", ")), err)
}

// NewCheckIgnoreFailedError wraps a failed git check-ignore
func NewCheckIgnoreFailedError(err error) *Error {
	return NewError(KindCheckIgnoreFailed, "failed to check ignored paths", err)
}

// KindOf returns the Kind of the first classified error in err's chain,
// or KindGeneric if there is none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneric
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command  string
	Args     []string
	Dir      string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError. exitCode is -1 when the
// process did not exit normally.
func NewGitCommandError(command string, args []string, dir, stdout, stderr string, exitCode int, err error) *GitCommandError {
	return &GitCommandError{
		Command:  command,
		Args:     args,
		Dir:      dir,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// UnsafePathError reports the first path a guarded delete refused to touch
type UnsafePathError struct {
	Path    string
	Pattern string
}

func (e *UnsafePathError) Error() string {
	return fmt.Sprintf("refusing to delete %s: does not match %q", e.Path, e.Pattern)
}

// Is returns true if the target error is ErrUnsafePath
func (e *UnsafePathError) Is(target error) bool {
	return target == ErrUnsafePath
}

// NewUnsafePathError creates a new UnsafePathError
func NewUnsafePathError(path, pattern string) *UnsafePathError {
	return &UnsafePathError{Path: path, Pattern: pattern}
}
