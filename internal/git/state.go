package git

import (
	"context"
	"errors"
	"fmt"

	"scaffkit.dev/scaffkit/internal/abspath"
	scaffkiterrors "scaffkit.dev/scaffkit/internal/errors"
)

// State classifies a repository directory
type State int

const (
	// StateUndefined means the Repo has no path
	StateUndefined State = iota
	// StateNonRepo means git status fails in the directory
	StateNonRepo
	// StateNoCommits means HEAD does not resolve to a branch yet
	StateNoCommits
	// StateOpInProgress means a merge, rebase, cherry-pick or revert is unfinished
	StateOpInProgress
	// StateDirty means the working tree has changes or untracked files
	StateDirty
	// StateClean means none of the above
	StateClean
)

func (s State) String() string {
	switch s {
	case StateNonRepo:
		return "not a repository"
	case StateNoCommits:
		return "no commits"
	case StateOpInProgress:
		return "operation in progress"
	case StateDirty:
		return "dirty"
	case StateClean:
		return "clean"
	default:
		return "undefined"
	}
}

// Operation names reported by OperationInProgress
const (
	OpMerge      = "merge"
	OpRebase     = "rebase"
	OpCherryPick = "cherry-pick"
	OpRevert     = "revert"
)

// operationMarkers are entries git leaves in its directory while an
// operation waits for the user
var operationMarkers = []struct {
	name string
	op   string
}{
	{"rebase-merge", OpRebase},
	{"rebase-apply", OpRebase},
	{"MERGE_HEAD", OpMerge},
	{"CHERRY_PICK_HEAD", OpCherryPick},
	{"REVERT_HEAD", OpRevert},
}

// Status probes the repository and classifies it. Nothing is cached: every
// call re-runs the probes, since the repository can change underneath us.
func (r *Repo) Status(ctx context.Context) (State, error) {
	if !r.dir.IsSet() {
		return StateUndefined, nil
	}

	porcelain, err := r.Run(ctx, "status", []string{"--porcelain"}, Quiet())
	if err != nil {
		var cmdErr *scaffkiterrors.GitCommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
			return StateNonRepo, nil
		}
		return StateUndefined, err
	}

	if _, err := r.CurrentBranch(ctx); err != nil {
		return StateNoCommits, nil
	}

	op, err := r.OperationInProgress(ctx)
	if err != nil {
		return StateUndefined, err
	}
	if op != "" {
		return StateOpInProgress, nil
	}

	if len(ParseLines(porcelain)) > 0 {
		return StateDirty, nil
	}
	return StateClean, nil
}

// IsRepo reports whether the directory is inside a git working tree
func (r *Repo) IsRepo(ctx context.Context) bool {
	out, err := r.runTrimmed(ctx, "rev-parse", []string{"--is-inside-work-tree"}, Quiet())
	return err == nil && out == "true"
}

// GitDir returns the absolute path of the repository's git directory
func (r *Repo) GitDir(ctx context.Context) (abspath.Path, error) {
	out, err := r.runTrimmed(ctx, "rev-parse", []string{"--absolute-git-dir"}, Quiet())
	if err != nil {
		return abspath.Unset(), fmt.Errorf("failed to locate git directory: %w", err)
	}
	return abspath.New(out)
}

// OperationInProgress returns the name of the unfinished operation, or ""
// when there is none. It only inspects the git directory and never changes
// repository state.
func (r *Repo) OperationInProgress(ctx context.Context) (string, error) {
	gitDir, err := r.GitDir(ctx)
	if err != nil {
		return "", err
	}
	for _, marker := range operationMarkers {
		if gitDir.Add(marker.name).Exists() {
			return marker.op, nil
		}
	}
	return "", nil
}
