package actions_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"scaffkit.dev/scaffkit/internal/abspath"
	"scaffkit.dev/scaffkit/internal/actions"
	scaffkiterrors "scaffkit.dev/scaffkit/internal/errors"
	"scaffkit.dev/scaffkit/testhelpers"
)

// buildDir creates <tmp>/build/{obj/a.o,out.bin} and returns the build directory
func buildDir(t *testing.T) abspath.Path {
	t.Helper()
	build := testhelpers.TempDir(t).Add("build")
	require.NoError(t, build.Add("obj").Mkdirp())
	require.NoError(t, build.Add("obj", "a.o").WriteString("a"))
	require.NoError(t, build.Add("out.bin").WriteString("b"))
	return build
}

func TestCleanAction(t *testing.T) {
	t.Run("removes the tree by default", func(t *testing.T) {
		build := buildDir(t)
		ctx, buf := testhelpers.NewContext(t, build.Parent())

		require.NoError(t, actions.CleanAction(ctx, actions.CleanOptions{Dir: "build"}))
		require.False(t, build.Exists())
		require.True(t, build.Parent().IsDir())
		require.Contains(t, buf.String(), "Removed 2 files and 1 directories")
	})

	t.Run("keep root empties the directory", func(t *testing.T) {
		build := buildDir(t)
		ctx, _ := testhelpers.NewContext(t, testhelpers.TempDir(t))

		require.NoError(t, actions.CleanAction(ctx, actions.CleanOptions{Dir: build.String(), KeepRoot: true}))
		require.True(t, build.IsDir())
		empty, err := build.IsEmptyDir()
		require.NoError(t, err)
		require.True(t, empty)
	})

	t.Run("mismatching match deletes nothing", func(t *testing.T) {
		build := buildDir(t)
		ctx, _ := testhelpers.NewContext(t, build)

		err := actions.CleanAction(ctx, actions.CleanOptions{Dir: ".", Match: regexp.QuoteMeta(build.String()) + `(/obj.*)?$`})
		require.True(t, errors.Is(err, scaffkiterrors.ErrUnsafePath))
		require.True(t, build.Add("obj", "a.o").Exists())
		require.True(t, build.Add("out.bin").Exists())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		build := buildDir(t)
		ctx, _ := testhelpers.NewContext(t, build)
		require.Error(t, actions.CleanAction(ctx, actions.CleanOptions{}))
		require.Error(t, actions.CleanAction(ctx, actions.CleanOptions{Dir: "out.bin"}))
		require.Error(t, actions.CleanAction(ctx, actions.CleanOptions{Dir: ".", Match: "("}))
	})
}
