package testhelpers

import (
	"os"
	"testing"

	"scaffkit.dev/scaffkit/internal/abspath"
	"scaffkit.dev/scaffkit/internal/git"
)

// Scene represents a test scene with a temporary directory and Git repository.
// Scenes never change the process working directory.
type Scene struct {
	Dir  abspath.Path
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// TempDir creates a temporary directory that is removed after the test
// unless DEBUG is set.
func TempDir(t *testing.T) abspath.Path {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "scaffkit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			_ = os.RemoveAll(tmpDir)
		}
	})
	return abspath.MustNew(tmpDir)
}

// NewScene creates a new test scene with a temporary directory and Git repository.
// It automatically handles cleanup using t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	dir := TempDir(t)

	repo, err := NewGitRepo(dir.String())
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  dir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// Git returns a silent git.Repo bound to the scene directory with an
// isolated git environment
func (s *Scene) Git(opts ...git.Option) *git.Repo {
	return NewTestRepo(s.Dir, opts...)
}

// NewTestRepo returns a silent git.Repo for dir with an isolated git environment
func NewTestRepo(dir abspath.Path, opts ...git.Option) *git.Repo {
	base := []git.Option{git.WithEnv(GitEnv()...), git.Silent()}
	return git.New(dir, append(base, opts...)...)
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
