package git

import (
	"context"
	"fmt"
)

// CurrentBranch returns the name of the checked-out branch. It returns
// "HEAD" for a detached HEAD and fails when HEAD does not resolve, as in a
// repository without commits.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := r.runTrimmed(ctx, "rev-parse", []string{"--abbrev-ref", "HEAD"}, Quiet())
	if err != nil {
		return "", fmt.Errorf("failed to resolve current branch: %w", err)
	}
	return branch, nil
}

// DescribeBranch returns the current branch name, or the short commit hash
// when HEAD is detached
func (r *Repo) DescribeBranch(ctx context.Context) (string, error) {
	branch, err := r.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}
	if branch != "HEAD" {
		return branch, nil
	}
	sha, err := r.runTrimmed(ctx, "rev-parse", []string{"--short", "HEAD"}, Quiet())
	if err != nil {
		return "", fmt.Errorf("failed to describe detached HEAD: %w", err)
	}
	return sha, nil
}

// HasCommits reports whether HEAD points at a commit
func (r *Repo) HasCommits(ctx context.Context) (bool, error) {
	sha, err := r.runTrimmed(ctx, "rev-parse", []string{"--verify", "--quiet", "HEAD"}, Quiet(), AllowStatus(1))
	if err != nil {
		return false, err
	}
	return sha != "", nil
}

// HeadSha returns the full hash of HEAD
func (r *Repo) HeadSha(ctx context.Context) (string, error) {
	sha, err := r.runTrimmed(ctx, "rev-parse", []string{"HEAD"}, Quiet())
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return sha, nil
}

// Branches returns all local branch names
func (r *Repo) Branches(ctx context.Context) ([]string, error) {
	branches, err := r.Exec(ctx, "for-each-ref", []string{"--format=%(refname:short)", "refs/heads"}, Quiet())
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}
