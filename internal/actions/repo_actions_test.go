package actions_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"scaffkit.dev/scaffkit/internal/actions"
	scaffkiterrors "scaffkit.dev/scaffkit/internal/errors"
	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/testhelpers"
)

func TestRemoteActions(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx, buf := scene.Context(t)

	require.NoError(t, actions.RemoteListAction(ctx))
	require.Contains(t, buf.String(), "No remotes configured.")

	require.NoError(t, actions.RemoteAddAction(ctx, "origin", "https://example.com/a.git"))
	require.NoError(t, actions.RemoteAddAction(ctx, "upstream", "https://example.com/b.git"))
	require.Error(t, actions.RemoteAddAction(ctx, "origin", "https://example.com/c.git"))

	buf.Reset()
	require.NoError(t, actions.RemoteListAction(ctx))
	require.Contains(t, buf.String(), "https://example.com/a.git")
	require.Contains(t, buf.String(), "upstream")

	require.NoError(t, actions.RemoteRenameAction(ctx, "upstream", "fork"))
	require.Error(t, actions.RemoteRemoveAction(ctx, []string{"origin", "nope"}))
	require.NoError(t, actions.RemoteRemoveAction(ctx, []string{"origin", "origin"}))
	remotes, err := ctx.Repo.Remotes(ctx)
	require.NoError(t, err)
	require.Equal(t, []git.Remote{{Name: "fork", URL: "https://example.com/b.git"}}, remotes)
}

func TestTagAction(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx, buf := scene.Context(t)

	require.NoError(t, actions.TagAction(ctx, actions.TagOptions{Name: "v1", Message: "first release"}))
	require.Contains(t, buf.String(), "as v1.")
	require.Error(t, actions.TagAction(ctx, actions.TagOptions{Name: "v1"}))

	require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))
	require.NoError(t, actions.TagAction(ctx, actions.TagOptions{Name: "v1", Move: true}))
	head, err := ctx.Repo.HeadSha(ctx)
	require.NoError(t, err)
	tagged, err := ctx.Repo.ResolveTag(ctx, "v1")
	require.NoError(t, err)
	require.Equal(t, head, tagged)

	buf.Reset()
	require.NoError(t, actions.TagAction(ctx, actions.TagOptions{}))
	require.Equal(t, "v1\n", buf.String())

	require.NoError(t, actions.TagAction(ctx, actions.TagOptions{Name: "v1", Delete: true}))
	tags, err := ctx.Repo.Tags(ctx)
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestNewAction(t *testing.T) {
	t.Run("creates a repository with a first commit", func(t *testing.T) {
		base := testhelpers.TempDir(t)
		ctx, buf := testhelpers.NewContext(t, base)

		err := actions.NewAction(ctx, actions.NewOptions{
			Dir:    "project",
			Branch: "trunk",
			Remote: "https://example.com/project.git",
		})
		require.NoError(t, err)

		dir := base.Add("project")
		repo := testhelpers.NewTestRepo(dir)
		state, err := repo.Status(ctx)
		require.NoError(t, err)
		require.Equal(t, git.StateClean, state)

		branch, err := repo.CurrentBranch(ctx)
		require.NoError(t, err)
		require.Equal(t, "trunk", branch)

		files, err := repo.LsFiles(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{actions.ReadmeName}, files)

		data, err := dir.Add(actions.ReadmeName).ReadFile()
		require.NoError(t, err)
		require.Equal(t, "# project\n", string(data))

		remotes, err := repo.Remotes(ctx)
		require.NoError(t, err)
		require.Equal(t, []git.Remote{{Name: "origin", URL: "https://example.com/project.git"}}, remotes)
		require.Contains(t, buf.String(), "Initial commit")
		require.NotContains(t, buf.String(), "remote add origin")
	})

	t.Run("backs up an existing readme in an existing repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile(actions.ReadmeName, "old\n", false))
		ctx, buf := testhelpers.NewContext(t, scene.Dir.Parent())

		err := actions.NewAction(ctx, actions.NewOptions{Dir: scene.Dir.String(), Readme: "new\n", Message: "Replace readme"})
		require.NoError(t, err)
		require.Contains(t, buf.String(), "remote add origin <url>")

		backup, err := scene.Dir.Add(actions.ReadmeName + ".1").ReadFile()
		require.NoError(t, err)
		require.Equal(t, "old\n", string(backup))
		testhelpers.ExpectCommitMessage(t, scene.Repo, "HEAD", "Replace readme")

		count, err := scene.Git().CommitCount(ctx, "")
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})

	t.Run("ignored readme is refused", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.Repo.WriteFile(".gitignore", "*.md\n", false))
		ctx, _ := scene.Context(t)
		err := actions.NewAction(ctx, actions.NewOptions{Dir: "."})
		require.ErrorContains(t, err, "ignored")
	})
}

func TestGitAction(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx, buf := scene.Context(t)

	require.NoError(t, actions.GitAction(ctx, actions.GitOptions{Subcommand: "rev-parse", Args: []string{"--abbrev-ref", "HEAD"}}))
	require.Equal(t, "main\n", buf.String())

	err := actions.GitAction(ctx, actions.GitOptions{Subcommand: "diff", Args: []string{"--quiet", "HEAD~0"}, AllowStatus: []int{1}})
	require.NoError(t, err)

	require.NoError(t, scene.Repo.WriteFile("1_test.txt", "changed", false))
	err = actions.GitAction(ctx, actions.GitOptions{Subcommand: "diff", Args: []string{"--quiet"}})
	require.Error(t, err)
	var cmdErr *scaffkiterrors.GitCommandError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, 1, cmdErr.ExitCode)

	buf.Reset()
	require.NoError(t, actions.GitAction(ctx, actions.GitOptions{Subcommand: "log", Args: []string{"--oneline", "-1"}, Color: true}))
	require.True(t, strings.Contains(buf.String(), "\x1b["), "git colours are kept")

	require.NoError(t, scene.Repo.WriteFile("note.txt", "no newline", true))
	require.NoError(t, scene.Repo.RunGitCommand("commit", "-m", "note"))
	buf.Reset()
	require.NoError(t, actions.GitAction(ctx, actions.GitOptions{Subcommand: "cat-file", Args: []string{"-p", "HEAD:note.txt"}}))
	require.Equal(t, "no newline\n", buf.String())
}
