package git

import (
	"scaffkit.dev/scaffkit/internal/abspath"
	scaffkiterrors "scaffkit.dev/scaffkit/internal/errors"
)

// Echo receives every git invocation a Repo makes, for display
type Echo interface {
	// Command is called before git starts
	Command(dir string, args []string)
	// Output is called with git's standard output after it succeeds.
	// keepColor is set when the output carries git's own colour codes.
	Output(output string, keepColor bool)
}

// Repo binds a directory to git invocations. Each invocation runs with the
// directory as its explicit working directory; the process working
// directory is never changed.
type Repo struct {
	dir    abspath.Path
	echo   Echo
	env    []string
	silent bool
	exec   Executor
}

// Option configures a Repo
type Option func(*Repo)

// WithEcho reports invocations to e
func WithEcho(e Echo) Option {
	return func(r *Repo) {
		r.echo = e
	}
}

// WithEnv adds environment variables ("KEY=value") to every invocation
func WithEnv(env ...string) Option {
	return func(r *Repo) {
		r.env = append(r.env, env...)
	}
}

// Silent disables the echo entirely
func Silent() Option {
	return func(r *Repo) {
		r.silent = true
	}
}

// WithExecutor replaces the process executor, mainly for tests
func WithExecutor(e Executor) Option {
	return func(r *Repo) {
		r.exec = e
	}
}

// New creates a Repo for dir. dir may be unset; operations then fail with
// errors.ErrNotConnected.
func New(dir abspath.Path, opts ...Option) *Repo {
	r := &Repo{dir: dir, exec: CommandRunner{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the repository directory
func (r *Repo) Path() abspath.Path {
	return r.dir
}

// at returns a Repo with the same settings bound to dir
func (r *Repo) at(dir abspath.Path) *Repo {
	clone := *r
	clone.dir = dir
	clone.env = append([]string(nil), r.env...)
	return &clone
}

// checkDir validates the directory before any process is spawned
func (r *Repo) checkDir() error {
	if !r.dir.IsSet() {
		return scaffkiterrors.NewNotConnectedError()
	}
	if !r.dir.IsDir() {
		return scaffkiterrors.NewInvalidPathError(r.dir.String())
	}
	return nil
}
