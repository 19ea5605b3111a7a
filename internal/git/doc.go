// Package git wraps the git executable.
//
// A Repo binds a directory to git invocations and provides:
//   - Repository state classification (Status)
//   - Branch management (create, delete, rename, checkout)
//   - Merge and rebase-onto
//   - Tags (create, move, delete, describe)
//   - Remotes (add, remove, rename, list, fetch, clone)
//   - Commits, staging, ignore checks and tracked-file listings
//   - A generic escape hatch (Exec) for any other subcommand
//
// Every invocation gets the Repo directory as its working directory, so the
// process working directory is never touched. go-git is only used to read
// the repository layout and HEAD; it never writes.
//
// This package should be the only place where git commands are executed.
package git
