package actions

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"scaffkit.dev/scaffkit/internal/abspath"
	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/internal/output"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	// Dir is inspected instead of the working directory when set
	Dir string
}

// StatusReport describes one directory
type StatusReport struct {
	Dir       abspath.Path
	State     git.State
	Branch    string
	Operation string
	Commits   int
	Head      *git.CommitInfo
}

// CollectStatus probes repo and gathers what is known about it. Details
// that do not apply to the state are left empty.
func CollectStatus(ctx context.Context, repo *git.Repo) (StatusReport, error) {
	report := StatusReport{Dir: repo.Path()}
	state, err := repo.Status(ctx)
	if err != nil {
		return report, err
	}
	report.State = state

	switch state {
	case git.StateUndefined, git.StateNonRepo, git.StateNoCommits:
		return report, nil
	}

	if report.Branch, err = repo.DescribeBranch(ctx); err != nil {
		return report, err
	}
	if state == git.StateOpInProgress {
		if report.Operation, err = repo.OperationInProgress(ctx); err != nil {
			return report, err
		}
	}
	if report.Commits, err = repo.CommitCount(ctx, ""); err != nil {
		return report, err
	}
	head, err := repo.HeadCommit()
	if err != nil && !errors.Is(err, git.ErrNoHead) {
		return report, err
	}
	if err == nil {
		report.Head = &head
	}
	return report, nil
}

// StatusAction prints the status of a directory as a table
func StatusAction(ctx *runtime.Context, opts StatusOptions) error {
	repo := ctx.Repo
	if opts.Dir != "" {
		repo = ctx.RepoAt(ctx.Resolve(opts.Dir))
	}

	report, err := CollectStatus(ctx, repo)
	if err != nil {
		return err
	}

	rows := [][]string{
		{"Path", report.Dir.String()},
		{"State", stateLabel(report)},
	}
	if report.Branch != "" {
		rows = append(rows, []string{"Branch", report.Branch})
	}
	if report.Commits > 0 {
		rows = append(rows, []string{"Commits", strconv.Itoa(report.Commits)})
	}
	if report.Head != nil {
		rows = append(rows, []string{"Last commit", fmt.Sprintf("%s %s (%s)", report.Head.ShortHash(), report.Head.Subject, report.Head.Author)})
	}
	return output.RenderTable(ctx.Splog.Writer(), []string{"Field", "Value"}, rows)
}

func stateLabel(report StatusReport) string {
	switch report.State {
	case git.StateClean:
		return output.ColorSuccess(report.State.String())
	case git.StateDirty:
		return output.ColorWarn(report.State.String())
	case git.StateOpInProgress:
		return output.ColorError(report.State.String() + ": " + report.Operation)
	default:
		return output.ColorDim(report.State.String())
	}
}
