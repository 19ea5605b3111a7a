package actions

import (
	"fmt"
	"slices"
	"strings"

	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/internal/output"
	"scaffkit.dev/scaffkit/internal/runtime"
	"scaffkit.dev/scaffkit/internal/utils"
)

// RemoteListAction prints the configured remotes as a table
func RemoteListAction(ctx *runtime.Context) error {
	remotes, err := ctx.Repo.Remotes(ctx)
	if err != nil {
		return err
	}
	if len(remotes) == 0 {
		ctx.Splog.Info("No remotes configured.")
		return nil
	}
	rows := make([][]string, 0, len(remotes))
	for _, r := range remotes {
		rows = append(rows, []string{r.Name, r.URL})
	}
	return output.RenderTable(ctx.Splog.Writer(), []string{"Name", "URL"}, rows)
}

func remoteNames(remotes []git.Remote) []string {
	names := make([]string, 0, len(remotes))
	for _, r := range remotes {
		names = append(names, r.Name)
	}
	return names
}

// RemoteAddAction adds a remote, refusing to replace an existing one
func RemoteAddAction(ctx *runtime.Context, name, url string) error {
	remotes, err := ctx.Repo.Remotes(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(remoteNames(remotes), name) {
		return fmt.Errorf("remote %s already exists", name)
	}
	if err := ctx.Repo.AddRemote(ctx, name, url); err != nil {
		return err
	}
	ctx.Splog.Info("Added remote %s (%s).", name, url)
	return nil
}

// RemoteRemoveAction removes remotes by name. Nothing is removed when any
// of the names is unknown.
func RemoteRemoveAction(ctx *runtime.Context, names []string) error {
	names = utils.UniqueStrings(names)
	remotes, err := ctx.Repo.Remotes(ctx)
	if err != nil {
		return err
	}
	if missing := utils.MissingStrings(remoteNames(remotes), names); len(missing) > 0 {
		return fmt.Errorf("no such remote: %s", strings.Join(missing, ", "))
	}
	for _, name := range names {
		if err := ctx.Repo.RemoveRemote(ctx, name); err != nil {
			return err
		}
		ctx.Splog.Info("Removed remote %s.", name)
	}
	return nil
}

// RemoteRenameAction renames a remote
func RemoteRenameAction(ctx *runtime.Context, oldName, newName string) error {
	if err := ctx.Repo.RenameRemote(ctx, oldName, newName); err != nil {
		return err
	}
	ctx.Splog.Info("Renamed remote %s to %s.", oldName, newName)
	return nil
}
