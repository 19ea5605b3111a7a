package actions

import (
	"scaffkit.dev/scaffkit/internal/runtime"
)

// FilesOptions contains options for the files command
type FilesOptions struct {
	Paths []string
	// Absolute prints absolute paths
	Absolute bool
	// Binary limits the listing to files git's NUL heuristic calls binary
	Binary bool
}

// FilesAction lists tracked files
func FilesAction(ctx *runtime.Context, opts FilesOptions) error {
	files, err := ctx.Repo.LsFilesAsAbspath(ctx, opts.Paths...)
	if err != nil {
		return err
	}
	for _, f := range files {
		if opts.Binary {
			binary, err := f.IsBinaryFile()
			if err != nil {
				ctx.Splog.Debug("Skipping %s: %v", f, err)
				continue
			}
			if !binary {
				continue
			}
		}
		if opts.Absolute {
			ctx.Splog.Info("%s", f)
			continue
		}
		rel, err := f.Rel(ctx.Cwd)
		if err != nil {
			return err
		}
		ctx.Splog.Info("%s", rel)
	}
	return nil
}
