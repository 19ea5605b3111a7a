package git

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"scaffkit.dev/scaffkit/internal/abspath"
)

// ErrNoHead is returned by HeadCommit when the repository has no commits
var ErrNoHead = errors.New("repository has no commits")

// CommitInfo summarizes a commit
type CommitInfo struct {
	Hash    string
	Author  string
	Email   string
	When    time.Time
	Subject string
}

// ShortHash returns the first seven characters of the hash
func (c CommitInfo) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// open reads the repository containing the Repo directory with go-git
func (r *Repo) open() (*gogit.Repository, error) {
	if err := r.checkDir(); err != nil {
		return nil, err
	}
	repo, err := gogit.PlainOpenWithOptions(r.dir.String(), &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return repo, nil
}

// Root returns the top-level directory of the working tree that contains
// the Repo directory
func (r *Repo) Root() (abspath.Path, error) {
	repo, err := r.open()
	if err != nil {
		return abspath.Unset(), err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return abspath.Unset(), fmt.Errorf("failed to get worktree: %w", err)
	}
	return abspath.New(worktree.Filesystem.Root())
}

// HeadCommit returns the commit HEAD points at
func (r *Repo) HeadCommit() (CommitInfo, error) {
	repo, err := r.open()
	if err != nil {
		return CommitInfo{}, err
	}
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return CommitInfo{}, ErrNoHead
		}
		return CommitInfo{}, fmt.Errorf("failed to get HEAD: %w", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return CommitInfo{}, fmt.Errorf("failed to get commit: %w", err)
	}
	subject, _, _ := strings.Cut(commit.Message, "\n")
	return CommitInfo{
		Hash:    commit.Hash.String(),
		Author:  commit.Author.Name,
		Email:   commit.Author.Email,
		When:    commit.Author.When,
		Subject: subject,
	}, nil
}
