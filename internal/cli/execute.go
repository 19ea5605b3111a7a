package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	scaffkiterrors "scaffkit.dev/scaffkit/internal/errors"
	"scaffkit.dev/scaffkit/internal/output"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// Execute runs the root command, reports any error to stderr and returns
// the process exit code
func Execute(rootCmd *cobra.Command, stderr io.Writer) int {
	cmd, err := rootCmd.ExecuteC()
	if cmd != nil {
		// PersistentPostRunE is skipped when the command fails
		_ = afterCommand(cmd)
	}
	if err == nil {
		return 0
	}

	verbose := false
	if cmd != nil {
		if ctx, ctxErr := runtime.FromContext(cmd.Context()); ctxErr == nil {
			verbose = ctx.Verbose
		} else if v, flagErr := cmd.Flags().GetBool("verbose"); flagErr == nil {
			verbose = v
		}
	}
	ReportError(stderr, err, verbose)

	var cmdErr *scaffkiterrors.GitCommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return 1
}

// ReportError writes err to w. Verbose reports list the whole cause chain
// and git's streams; otherwise a single line is written.
func ReportError(w io.Writer, err error, verbose bool) {
	if !verbose {
		_, _ = fmt.Fprintln(w, output.ColorError("Error: ")+summarize(err))
		return
	}

	_, _ = fmt.Fprintln(w, output.ColorError("Error: ")+firstLine(err.Error()))
	depth := 1
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		_, _ = fmt.Fprintf(w, "%s%T: %s\n", strings.Repeat("  ", depth), cause, firstLine(cause.Error()))
		depth++
	}

	var cmdErr *scaffkiterrors.GitCommandError
	if errors.As(err, &cmdErr) {
		_, _ = fmt.Fprintf(w, "command: %s %s\n", cmdErr.Command, strings.Join(cmdErr.Args, " "))
		_, _ = fmt.Fprintf(w, "directory: %s\n", cmdErr.Dir)
		_, _ = fmt.Fprintf(w, "exit code: %d\n", cmdErr.ExitCode)
		if s := strings.TrimSpace(cmdErr.Stderr); s != "" {
			_, _ = fmt.Fprintf(w, "stderr:\n%s\n", s)
		}
		if s := strings.TrimSpace(cmdErr.Stdout); s != "" {
			_, _ = fmt.Fprintf(w, "stdout:\n%s\n", s)
		}
	}
	if kind := scaffkiterrors.KindOf(err); kind != scaffkiterrors.KindGeneric {
		_, _ = fmt.Fprintf(w, "kind: %s\n", kind)
	}
}

// summarize reduces err to one line. Git failures show git's own complaint
// instead of the wrapper's multi-line description.
func summarize(err error) string {
	var cmdErr *scaffkiterrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return firstLine(err.Error())
	}
	msg := fmt.Sprintf("git %s failed", strings.Join(cmdErr.Args, " "))
	if cmdErr.ExitCode > 0 {
		msg += fmt.Sprintf(" (exit %d)", cmdErr.ExitCode)
	}
	if s := firstLine(strings.TrimSpace(cmdErr.Stderr)); s != "" {
		msg += ": " + s
	}
	return msg
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
