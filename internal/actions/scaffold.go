package actions

import (
	"fmt"

	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// DefaultBranch is the initial branch of repositories created by NewAction
const DefaultBranch = "main"

// ReadmeName is the file NewAction writes
const ReadmeName = "README.md"

// NewOptions contains options for the new command
type NewOptions struct {
	Dir    string
	Branch string
	// Remote is added as origin when set
	Remote  string
	Message string
	// Readme replaces the generated README content
	Readme string
}

// NewAction scaffolds a repository: it creates the directory, initializes
// git unless it is already a repository, writes a README (backing up any
// existing one), then stages and commits it
func NewAction(ctx *runtime.Context, opts NewOptions) error {
	if opts.Dir == "" {
		return fmt.Errorf("directory is required")
	}
	dir := ctx.Resolve(opts.Dir)
	if err := dir.Mkdirp(); err != nil {
		return err
	}
	repo := ctx.RepoAt(dir)

	state, err := repo.Status(ctx)
	if err != nil {
		return err
	}
	switch state {
	case git.StateNonRepo:
		branch := opts.Branch
		if branch == "" {
			branch = DefaultBranch
		}
		if err := repo.Init(ctx, git.InitOptions{Branch: branch}); err != nil {
			return err
		}
		ctx.Splog.Info("Initialized repository in %s.", dir)
	case git.StateOpInProgress:
		op, _ := repo.OperationInProgress(ctx)
		return fmt.Errorf("%s has a %s in progress; finish or abort it first", dir, op)
	default:
		if opts.Branch != "" {
			ctx.Splog.Warn("%s is already a repository; ignoring --branch.", dir)
		}
	}

	readme := dir.Add(ReadmeName)
	if readme.Exists() {
		backup, err := readme.RenameToNextVer()
		if err != nil {
			return err
		}
		ctx.Splog.Info("Backed up existing %s to %s.", ReadmeName, backup.Base())
	}
	content := opts.Readme
	if content == "" {
		content = fmt.Sprintf("# %s\n", dir.Base())
	}
	if err := readme.WriteString(content); err != nil {
		return err
	}

	ignored, err := repo.IsIgnored(ctx, ReadmeName)
	if err != nil {
		return err
	}
	if ignored {
		return fmt.Errorf("%s is ignored by git in %s", ReadmeName, dir)
	}
	if err := repo.Add(ctx, ReadmeName); err != nil {
		return err
	}

	message := opts.Message
	if message == "" {
		message = "Initial commit"
	}
	if err := repo.Commit(ctx, message, git.CommitOptions{}); err != nil {
		return err
	}

	if opts.Remote != "" {
		if err := repo.AddRemote(ctx, "origin", opts.Remote); err != nil {
			return err
		}
	}

	head, err := repo.HeadCommit()
	if err != nil {
		return err
	}
	ctx.Splog.Info("Created %s at %s: %s", dir.Base(), head.ShortHash(), head.Subject)
	if opts.Remote == "" {
		ctx.Splog.Tip("Add a remote with: scaffkit -C %s remote add origin <url>", dir)
	}
	return nil
}
