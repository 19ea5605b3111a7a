package runtime

import (
	"context"
	"errors"
	"path/filepath"

	"scaffkit.dev/scaffkit/internal/abspath"
	"scaffkit.dev/scaffkit/internal/config"
	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/internal/output"
)

// Context provides access to configuration, output and the repository for
// commands. It is also the context.Context git invocations run under.
type Context struct {
	context.Context

	Config *config.Config
	Splog  *output.Splog
	// Cwd is the directory commands resolve relative paths against
	Cwd abspath.Path
	// Repo is bound to Cwd
	Repo *git.Repo
	// Verbose reports errors with their full cause chain
	Verbose bool

	gitOpts []git.Option
}

// NewContext creates a context for cwd. Git invocations are echoed through
// splog unless cfg.QuietGit is set; their output is shown when the config or
// the DEBUG environment variable asks for detail. gitOpts are applied to every Repo the
// context hands out.
func NewContext(ctx context.Context, cfg *config.Config, splog *output.Splog, cwd abspath.Path, gitOpts ...git.Option) *Context {
	verbose := cfg.Verbose || splog.DebugEnabled()
	opts := []git.Option{}
	if cfg.QuietGit {
		opts = append(opts, git.Silent())
	} else {
		opts = append(opts, git.WithEcho(output.NewGitEcho(splog, verbose)))
	}
	opts = append(opts, gitOpts...)
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		Context: ctx,
		Config:  cfg,
		Splog:   splog,
		Cwd:     cwd,
		Repo:    git.New(cwd, opts...),
		Verbose: verbose,
		gitOpts: opts,
	}
}

// Resolve turns a command-line path into an absolute one relative to Cwd
func (c *Context) Resolve(p string) abspath.Path {
	if p == "" {
		return c.Cwd
	}
	if filepath.IsAbs(p) {
		if abs, err := abspath.New(p); err == nil {
			return abs
		}
	}
	return c.Cwd.Add(p)
}

// RepoAt returns a Repo with the context's settings bound to dir
func (c *Context) RepoAt(dir abspath.Path) *git.Repo {
	return git.New(dir, c.gitOpts...)
}

// Close releases the log file
func (c *Context) Close() error {
	if c.Splog == nil {
		return nil
	}
	return c.Splog.Close()
}

type contextKey struct{}

// ErrNoContext is returned by FromContext when no runtime context was stored
var ErrNoContext = errors.New("runtime context not initialized")

// WithContext stores rc in ctx
func WithContext(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the runtime context stored by WithContext
func FromContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		return nil, ErrNoContext
	}
	rc, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || rc == nil {
		return nil, ErrNoContext
	}
	return rc, nil
}
