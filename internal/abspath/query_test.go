package abspath_test

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"scaffkit.dev/scaffkit/internal/abspath"
)

func memPath(t *testing.T, p string) abspath.Path {
	t.Helper()
	path, err := abspath.NewOn(afero.NewMemMapFs(), p)
	require.NoError(t, err)
	return path
}

func TestKinds(t *testing.T) {
	dir := abspath.MustNew(t.TempDir())
	file := dir.Add("plain.txt")
	require.NoError(t, file.WriteString("hello"))

	require.True(t, dir.Exists())
	require.True(t, dir.IsDir())
	require.False(t, dir.IsFile())
	require.True(t, file.IsFile())
	require.False(t, file.IsDir())
	require.False(t, dir.Add("missing").Exists())

	t.Run("symlinks", func(t *testing.T) {
		link := dir.Add("link")
		if err := os.Symlink(file.String(), link.String()); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
		require.True(t, link.IsSymlink())
		require.True(t, link.IsFile())
		require.False(t, file.IsSymlink())
	})
}

func TestIsBinaryFile(t *testing.T) {
	dir := abspath.MustNew(t.TempDir())

	text := dir.Add("text.md")
	require.NoError(t, text.WriteString("# title\n\nbody\n"))
	binary := dir.Add("blob.bin")
	require.NoError(t, binary.WriteFile([]byte{0x89, 'P', 'N', 'G', 0x00, 0x01}))
	empty := dir.Add("empty")
	require.NoError(t, empty.WriteFile(nil))

	isBin, err := text.IsBinaryFile()
	require.NoError(t, err)
	require.False(t, isBin)

	isBin, err = binary.IsBinaryFile()
	require.NoError(t, err)
	require.True(t, isBin)

	isBin, err = empty.IsBinaryFile()
	require.NoError(t, err)
	require.False(t, isBin)

	_, err = dir.Add("nope").IsBinaryFile()
	require.Error(t, err)
}

func TestList(t *testing.T) {
	dir := memPath(t, "/work")
	require.NoError(t, dir.Add("b").Mkdirp())
	require.NoError(t, dir.Add("a.txt").WriteString("a"))
	require.NoError(t, dir.Add("c.txt").WriteString("c"))

	names, err := dir.ListNames()
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt", "b", "c.txt"}, names)

	entries, err := dir.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "/work/b", entries[1].String())
	require.True(t, entries[1].IsDir())

	empty, err := dir.Add("b").IsEmptyDir()
	require.NoError(t, err)
	require.True(t, empty)
}

func TestFindUpwards(t *testing.T) {
	root := memPath(t, "/proj")
	deep := root.Add("pkg", "sub", "leaf")
	require.NoError(t, deep.Mkdirp())
	require.NoError(t, root.Add("go.mod").WriteString("module x\n"))
	require.NoError(t, root.Add("pkg", "go.mod").WriteString("module y\n"))
	require.NoError(t, root.Add("pkg", "sub", ".git").Mkdirp())

	t.Run("returns the nearest ancestor", func(t *testing.T) {
		require.Equal(t, "/proj/pkg", deep.FindUpwards("go.mod", false).String())
		require.Equal(t, "/proj/pkg/go.mod", deep.FindUpwardsEntry("go.mod", false).String())
	})

	t.Run("includes the starting path", func(t *testing.T) {
		require.Equal(t, "/proj", root.FindUpwards("go.mod", false).String())
	})

	t.Run("skips directories unless allowed", func(t *testing.T) {
		require.False(t, deep.FindUpwards(".git", false).IsSet())
		require.Equal(t, "/proj/pkg/sub", deep.FindUpwards(".git", true).String())
	})

	t.Run("returns unset when nothing matches", func(t *testing.T) {
		found := deep.FindUpwards("does-not-exist", true)
		require.False(t, found.IsSet())
		require.False(t, deep.FindUpwardsEntry("does-not-exist", true).IsSet())
	})

	t.Run("sees entries created after a previous search", func(t *testing.T) {
		require.False(t, deep.FindUpwards("late.txt", false).IsSet())
		require.NoError(t, deep.Add("late.txt").WriteString("x"))
		require.True(t, deep.FindUpwards("late.txt", false).Equal(deep))
	})
}
