package git

import (
	"context"
	"fmt"
)

// Tags returns all tag names, sorted by git
func (r *Repo) Tags(ctx context.Context) ([]string, error) {
	tags, err := r.Exec(ctx, "tag", []string{"--list"}, Quiet())
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func tagArgs(name, ref, message string, force bool) []string {
	args := []string{}
	if force {
		args = append(args, "-f")
	}
	if message != "" {
		args = append(args, "-a", "-m", message)
	}
	args = append(args, name)
	if ref != "" {
		args = append(args, ref)
	}
	return args
}

// CreateTag tags ref (HEAD when empty). A non-empty message makes an
// annotated tag.
func (r *Repo) CreateTag(ctx context.Context, name, ref, message string) error {
	if _, err := r.Run(ctx, "tag", tagArgs(name, ref, message, false)); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	return nil
}

// MoveTag points an existing or new tag at ref (HEAD when empty)
func (r *Repo) MoveTag(ctx context.Context, name, ref, message string) error {
	if _, err := r.Run(ctx, "tag", tagArgs(name, ref, message, true)); err != nil {
		return fmt.Errorf("failed to move tag %s: %w", name, err)
	}
	return nil
}

// DeleteTag deletes a tag
func (r *Repo) DeleteTag(ctx context.Context, name string) error {
	if _, err := r.Run(ctx, "tag", []string{"-d", name}); err != nil {
		return fmt.Errorf("failed to delete tag %s: %w", name, err)
	}
	return nil
}

// ResolveTag returns the commit hash a tag points at
func (r *Repo) ResolveTag(ctx context.Context, name string) (string, error) {
	sha, err := r.runTrimmed(ctx, "rev-list", []string{"-n", "1", "refs/tags/" + name}, Quiet())
	if err != nil {
		return "", fmt.Errorf("failed to resolve tag %s: %w", name, err)
	}
	return sha, nil
}

// Describe returns the nearest tag description of HEAD, falling back to an
// abbreviated hash when no tag is reachable
func (r *Repo) Describe(ctx context.Context) (string, error) {
	out, err := r.runTrimmed(ctx, "describe", []string{"--tags", "--always"}, Quiet())
	if err != nil {
		return "", fmt.Errorf("failed to describe HEAD: %w", err)
	}
	return out, nil
}
