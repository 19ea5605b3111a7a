package git

import (
	"context"
	"fmt"
)

// CreateBranch creates a branch at startPoint, or at HEAD when startPoint is empty
func (r *Repo) CreateBranch(ctx context.Context, name, startPoint string) error {
	args := []string{name}
	if startPoint != "" {
		args = append(args, startPoint)
	}
	if _, err := r.Run(ctx, "branch", args); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranch deletes a branch. force also deletes unmerged branches.
func (r *Repo) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := r.Run(ctx, "branch", []string{flag, name}); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}

// RenameBranch renames a branch
func (r *Repo) RenameBranch(ctx context.Context, oldName, newName string) error {
	if _, err := r.Run(ctx, "branch", []string{"-m", oldName, newName}); err != nil {
		return fmt.Errorf("failed to rename branch %s to %s: %w", oldName, newName, err)
	}
	return nil
}

// Checkout checks out an existing branch or revision
func (r *Repo) Checkout(ctx context.Context, ref string) error {
	if _, err := r.Run(ctx, "checkout", []string{ref}); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", ref, err)
	}
	return nil
}

// CheckoutNew creates a branch at startPoint (or HEAD) and checks it out
func (r *Repo) CheckoutNew(ctx context.Context, name, startPoint string) error {
	args := []string{"-b", name}
	if startPoint != "" {
		args = append(args, startPoint)
	}
	if _, err := r.Run(ctx, "checkout", args); err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", name, err)
	}
	return nil
}
