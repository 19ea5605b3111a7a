package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"scaffkit.dev/scaffkit/internal/actions"
	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/testhelpers"
)

func TestCollectStatus(t *testing.T) {
	t.Run("clean repository with history", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChangeAndCommit("second", "2"))
		ctx, _ := scene.Context(t)

		report, err := actions.CollectStatus(ctx, ctx.Repo)
		require.NoError(t, err)
		require.Equal(t, git.StateClean, report.State)
		require.Equal(t, "main", report.Branch)
		require.Equal(t, 2, report.Commits)
		require.NotNil(t, report.Head)
		require.Equal(t, "second", report.Head.Subject)
	})

	t.Run("empty repository stops early", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		ctx, _ := scene.Context(t)

		report, err := actions.CollectStatus(ctx, ctx.Repo)
		require.NoError(t, err)
		require.Equal(t, git.StateNoCommits, report.State)
		require.Empty(t, report.Branch)
		require.Nil(t, report.Head)
	})
}

func TestStatusAction(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CreateChange("wip", "wip", true))
	ctx, buf := testhelpers.NewContext(t, testhelpers.TempDir(t))

	require.NoError(t, actions.StatusAction(ctx, actions.StatusOptions{Dir: scene.Dir.String()}))
	out := buf.String()
	require.Contains(t, out, scene.Dir.String())
	require.Contains(t, out, "dirty")
	require.Contains(t, out, "main")

	buf.Reset()
	require.NoError(t, actions.StatusAction(ctx, actions.StatusOptions{}))
	require.Contains(t, buf.String(), "not a repository")
}
