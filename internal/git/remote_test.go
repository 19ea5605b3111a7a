package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/testhelpers"
)

func TestRemotes(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	repo := scene.Git()

	remotes, err := repo.Remotes(ctx)
	require.NoError(t, err)
	require.Empty(t, remotes)

	require.NoError(t, repo.AddRemote(ctx, "origin", "https://example.com/origin.git"))
	require.NoError(t, repo.AddRemote(ctx, "upstream", "https://example.com/upstream.git"))
	remotes, err = repo.Remotes(ctx)
	require.NoError(t, err)
	require.Equal(t, []git.Remote{
		{Name: "origin", URL: "https://example.com/origin.git"},
		{Name: "upstream", URL: "https://example.com/upstream.git"},
	}, remotes)

	require.NoError(t, repo.RenameRemote(ctx, "upstream", "fork"))
	require.NoError(t, repo.RemoveRemote(ctx, "origin"))
	remotes, err = repo.Remotes(ctx)
	require.NoError(t, err)
	require.Equal(t, []git.Remote{{Name: "fork", URL: "https://example.com/upstream.git"}}, remotes)

	require.Error(t, repo.RemoveRemote(ctx, "origin"))

	require.NoError(t, repo.AddRemote(ctx, "mirror", "/srv/my repos/proj.git"))
	remotes, err = repo.Remotes(ctx)
	require.NoError(t, err)
	require.Equal(t, []git.Remote{
		{Name: "fork", URL: "https://example.com/upstream.git"},
		{Name: "mirror", URL: "/srv/my repos/proj.git"},
	}, remotes)
}

func TestCloneFetchPush(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	bare, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))

	repo := scene.Git()
	require.NoError(t, repo.Push(ctx, "origin", "main", git.PushOptions{SetUpstream: true}))
	require.NoError(t, repo.Push(ctx, "origin", "feature", git.PushOptions{}))

	dest := testhelpers.TempDir(t).Add("nested", "clone")
	clone, err := repo.Clone(ctx, bare, dest, git.CloneOptions{Origin: "upstream", Branch: "feature"})
	require.NoError(t, err)
	require.True(t, clone.Path().Equal(dest))

	branch, err := clone.CurrentBranch(ctx)
	require.NoError(t, err)
	require.Equal(t, "feature", branch)

	remotes, err := clone.Remotes(ctx)
	require.NoError(t, err)
	require.Equal(t, []git.Remote{{Name: "upstream", URL: bare}}, remotes)

	count, err := clone.CommitCount(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.NoError(t, clone.Fetch(ctx, "", git.FetchOptions{Prune: true, Tags: true}))
	require.NoError(t, clone.Fetch(ctx, "upstream", git.FetchOptions{}))
}

func TestInit(t *testing.T) {
	ctx := context.Background()
	dir := testhelpers.TempDir(t).Add("fresh")
	repo := testhelpers.NewTestRepo(dir)

	require.NoError(t, repo.Init(ctx, git.InitOptions{Branch: "trunk"}))
	require.True(t, repo.IsRepo(ctx))

	state, err := repo.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, git.StateNoCommits, state)

	require.NoError(t, repo.Commit(ctx, "empty", git.CommitOptions{AllowEmpty: true}))
	branch, err := repo.CurrentBranch(ctx)
	require.NoError(t, err)
	require.Equal(t, "trunk", branch)
}
