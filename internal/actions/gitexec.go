package actions

import (
	"strings"

	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// GitOptions contains options for the git command
type GitOptions struct {
	Subcommand string
	Args       []string
	// AllowStatus lists non-zero exit codes that are not failures
	AllowStatus []int
	// Color keeps git's own colours in the output
	Color bool
}

// GitAction runs an arbitrary git subcommand in the working directory and
// prints its output
func GitAction(ctx *runtime.Context, opts GitOptions) error {
	runOpts := []git.RunOption{git.Quiet()}
	if len(opts.AllowStatus) > 0 {
		runOpts = append(runOpts, git.AllowStatus(opts.AllowStatus...))
	}
	if opts.Color {
		runOpts = append(runOpts, git.KeepColor())
	}
	out, err := ctx.Repo.Run(ctx, opts.Subcommand, opts.Args, runOpts...)
	if err != nil {
		return err
	}
	ctx.Splog.Page(out)
	if out != "" && !strings.HasSuffix(out, "\n") {
		ctx.Splog.Newline()
	}
	return nil
}
