package actions

import (
	"fmt"

	"scaffkit.dev/scaffkit/internal/runtime"
	"scaffkit.dev/scaffkit/internal/utils"
)

// TagOptions contains options for the tag command
type TagOptions struct {
	Name string
	// Ref is tagged instead of HEAD when set
	Ref string
	// Message makes an annotated tag; "-" reads it from stdin
	Message string
	// Move re-points an existing tag
	Move bool
	// Delete removes the tag
	Delete bool
}

// TagAction creates, moves, deletes or (without a name) lists tags
func TagAction(ctx *runtime.Context, opts TagOptions) error {
	repo := ctx.Repo
	if opts.Name == "" {
		tags, err := repo.Tags(ctx)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			ctx.Splog.Info("%s", tag)
		}
		return nil
	}

	if opts.Delete {
		if err := repo.DeleteTag(ctx, opts.Name); err != nil {
			return err
		}
		ctx.Splog.Info("Deleted tag %s.", opts.Name)
		return nil
	}

	message := opts.Message
	if message == "-" {
		var err error
		if message, err = utils.ReadFromStdin(); err != nil {
			return fmt.Errorf("failed to read tag message: %w", err)
		}
	}

	var err error
	if opts.Move {
		err = repo.MoveTag(ctx, opts.Name, opts.Ref, message)
	} else {
		err = repo.CreateTag(ctx, opts.Name, opts.Ref, message)
	}
	if err != nil {
		return err
	}

	sha, err := repo.ResolveTag(ctx, opts.Name)
	if err != nil {
		return err
	}
	if len(sha) > 7 {
		sha = sha[:7]
	}
	ctx.Splog.Info("Tagged %s as %s.", sha, opts.Name)
	return nil
}
