// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/abspath"
	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/internal/runtime"
	"scaffkit.dev/scaffkit/internal/utils"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.FromContext(cmd.Context())
	if err != nil {
		return err
	}
	return fn(ctx)
}

// RunWithArgs is Run for commands taking positional arguments. The
// arguments are canonicalised first: trimmed, split on commas and
// stripped of empty entries.
func RunWithArgs(cmd *cobra.Command, args []string, fn func(ctx *runtime.Context, args []string) error) error {
	return Run(cmd, func(ctx *runtime.Context) error {
		return fn(ctx, utils.CanonicalArgs(args))
	})
}

// completionRepo returns a silent Repo for shell completion, which runs
// without the usual command setup
func completionRepo(cmd *cobra.Command) *git.Repo {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd == "" {
		cwd = "."
	}
	dir, err := abspath.New(cwd)
	if err != nil {
		return nil
	}
	return git.New(dir, git.Silent())
}

// CompleteRemotes is a helper for cobra.ValidArgsFunction that returns all
// remote names in the repository.
func CompleteRemotes(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	repo := completionRepo(cmd)
	if repo == nil {
		return nil, cobra.ShellCompDirectiveError
	}
	remotes, err := repo.Remotes(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(remotes))
	for _, r := range remotes {
		names = append(names, r.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// CompleteTags returns all tag names in the repository
func CompleteTags(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	repo := completionRepo(cmd)
	if repo == nil {
		return nil, cobra.ShellCompDirectiveError
	}
	tags, err := repo.Tags(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return tags, cobra.ShellCompDirectiveNoFileComp
}
