package testhelpers

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"scaffkit.dev/scaffkit/internal/abspath"
	"scaffkit.dev/scaffkit/internal/config"
	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/internal/output"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// NewContext returns a runtime context rooted at dir whose output lands in
// the returned buffer. Git echo is off and git runs with GitEnv.
func NewContext(t *testing.T, dir abspath.Path) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.QuietGit = true
	cfg.Clean.Confirm = false

	var buf bytes.Buffer
	splog, err := output.NewSplogWithOptions(output.Options{Writer: &buf})
	require.NoError(t, err)
	rc := runtime.NewContext(context.Background(), cfg, splog, dir, git.WithEnv(GitEnv()...))
	t.Cleanup(func() { _ = rc.Close() })
	return rc, &buf
}

// Context returns a runtime context rooted at the scene directory
func (s *Scene) Context(t *testing.T) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	return NewContext(t, s.Dir)
}
