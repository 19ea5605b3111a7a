package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	scaffkiterrors "scaffkit.dev/scaffkit/internal/errors"
)

func TestKinds(t *testing.T) {
	t.Run("constructors map to their sentinel", func(t *testing.T) {
		require.ErrorIs(t, scaffkiterrors.NewNotConnectedError(), scaffkiterrors.ErrNotConnected)
		require.ErrorIs(t, scaffkiterrors.NewInvalidPathError("/nope"), scaffkiterrors.ErrInvalidPath)
		require.ErrorIs(t, scaffkiterrors.NewAddFailedError([]string{"a"}, nil), scaffkiterrors.ErrAddFailed)
		require.ErrorIs(t, scaffkiterrors.NewCheckIgnoreFailedError(nil), scaffkiterrors.ErrCheckIgnoreFailed)
		require.False(t, errors.Is(scaffkiterrors.NewNotConnectedError(), scaffkiterrors.ErrInvalidPath))
	})

	t.Run("KindOf looks through wrapping", func(t *testing.T) {
		err := fmt.Errorf("status: %w", scaffkiterrors.NewInvalidPathError("/nope"))
		require.Equal(t, scaffkiterrors.KindInvalidPath, scaffkiterrors.KindOf(err))
		require.Equal(t, scaffkiterrors.KindGeneric, scaffkiterrors.KindOf(errors.New("plain")))
		require.Equal(t, scaffkiterrors.KindGeneric, scaffkiterrors.KindOf(nil))
	})

	t.Run("cause stays reachable", func(t *testing.T) {
		cause := scaffkiterrors.NewGitCommandError("git", []string{"add", "x"}, "/repo", "", "fatal: pathspec", 128, errors.New("exit status 128"))
		err := scaffkiterrors.NewAddFailedError([]string{"x"}, cause)

		var cmdErr *scaffkiterrors.GitCommandError
		require.True(t, errors.As(err, &cmdErr))
		require.Equal(t, 128, cmdErr.ExitCode)
		require.Contains(t, err.Error(), "failed to add x")
		require.Contains(t, err.Error(), "fatal: pathspec")
	})

	t.Run("kind names", func(t *testing.T) {
		require.Equal(t, "not connected", scaffkiterrors.KindNotConnected.String())
	})
}

func TestUnsafePathError(t *testing.T) {
	err := fmt.Errorf("clean: %w", scaffkiterrors.NewUnsafePathError("/etc/passwd", "^/tmp/"))
	require.ErrorIs(t, err, scaffkiterrors.ErrUnsafePath)
	require.Contains(t, err.Error(), "/etc/passwd")
}
