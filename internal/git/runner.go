package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	scaffkiterrors "scaffkit.dev/scaffkit/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

const gitBinary = "git"

// Invocation describes one git process
type Invocation struct {
	Dir   string
	Args  []string
	Env   []string
	Input string
}

// Executor runs git processes. exitCode is -1 when the process could not be
// started or was killed.
type Executor interface {
	Execute(ctx context.Context, inv Invocation) (stdout, stderr string, exitCode int, err error)
}

// CommandRunner executes the git binary found on PATH
type CommandRunner struct{}

var _ Executor = CommandRunner{}

// Execute runs git with the invocation's arguments in its directory
func (CommandRunner) Execute(ctx context.Context, inv Invocation) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, gitBinary, inv.Args...)
	cmd.Dir = inv.Dir
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}
	if inv.Input != "" {
		cmd.Stdin = strings.NewReader(inv.Input)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0, nil
	}
	if ctx.Err() != nil {
		return stdout.String(), stderr.String(), -1, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), stderr.String(), exitErr.ExitCode(), err
	}
	return stdout.String(), stderr.String(), -1, err
}

// RunOption adjusts a single git invocation
type RunOption func(*runConfig)

type runConfig struct {
	allowed   []int
	keepColor bool
	quiet     bool
	input     string
}

// AllowStatus treats the listed non-zero exit codes as an empty, successful result
func AllowStatus(codes ...int) RunOption {
	return func(c *runConfig) {
		c.allowed = append(c.allowed, codes...)
	}
}

// KeepColor forces git to colour its output and echoes it untouched
func KeepColor() RunOption {
	return func(c *runConfig) {
		c.keepColor = true
	}
}

// Quiet skips the echo for this invocation
func Quiet() RunOption {
	return func(c *runConfig) {
		c.quiet = true
	}
}

// WithInput feeds input to git's stdin
func WithInput(input string) RunOption {
	return func(c *runConfig) {
		c.input = input
	}
}

// Run executes "git <sub> <args...>" in the repository directory and returns
// its raw standard output
func (r *Repo) Run(ctx context.Context, sub string, args []string, opts ...RunOption) (string, error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := r.checkDir(); err != nil {
		return "", err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	fullArgs := make([]string, 0, len(args)+3)
	if cfg.keepColor {
		fullArgs = append(fullArgs, "-c", "color.ui=always")
	}
	fullArgs = append(fullArgs, sub)
	fullArgs = append(fullArgs, args...)

	echo := r.echo
	if r.silent || cfg.quiet {
		echo = nil
	}
	if echo != nil {
		echo.Command(r.dir.String(), fullArgs)
	}

	stdout, stderr, code, err := r.exec.Execute(ctx, Invocation{
		Dir:   r.dir.String(),
		Args:  fullArgs,
		Env:   r.env,
		Input: cfg.input,
	})
	if err != nil {
		if code > 0 && slices.Contains(cfg.allowed, code) {
			return "", nil
		}
		if echo != nil && stdout+stderr != "" {
			echo.Output(stdout+stderr, cfg.keepColor)
		}
		return "", scaffkiterrors.NewGitCommandError(gitBinary, fullArgs, r.dir.String(), stdout, stderr, code, err)
	}

	if echo != nil && stdout != "" {
		echo.Output(stdout, cfg.keepColor)
	}
	return stdout, nil
}

// Exec runs an arbitrary git subcommand and returns its non-empty output lines
func (r *Repo) Exec(ctx context.Context, sub string, args []string, opts ...RunOption) ([]string, error) {
	out, err := r.Run(ctx, sub, args, opts...)
	if err != nil {
		return nil, err
	}
	return ParseLines(out), nil
}

// runTrimmed runs a command and trims surrounding whitespace from its output
func (r *Repo) runTrimmed(ctx context.Context, sub string, args []string, opts ...RunOption) (string, error) {
	out, err := r.Run(ctx, sub, args, opts...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// runNul runs a command whose output is NUL-terminated (-z) and returns the
// entries verbatim, without git's path quoting
func (r *Repo) runNul(ctx context.Context, sub string, args []string, opts ...RunOption) ([]string, error) {
	out, err := r.Run(ctx, sub, args, opts...)
	if err != nil {
		return nil, err
	}
	entries := []string{}
	for _, entry := range strings.Split(out, "\x00") {
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// ParseLines splits command output into non-empty lines. It accepts a
// string or []byte; a []string is returned unchanged.
func ParseLines(output any) []string {
	var text string
	switch v := output.(type) {
	case []string:
		return v
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return nil
	}

	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
