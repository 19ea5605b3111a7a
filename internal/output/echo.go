package output

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// GitEcho prints git invocations and their output through a Splog.
// Command lines are always shown; output only when ShowOutput is set.
type GitEcho struct {
	splog      *Splog
	showOutput bool
}

// NewGitEcho creates a GitEcho. showOutput also prints what git wrote to stdout.
func NewGitEcho(splog *Splog, showOutput bool) *GitEcho {
	return &GitEcho{splog: splog, showOutput: showOutput}
}

// Command prints "$ git <args>" followed by the directory git runs in
func (e *GitEcho) Command(dir string, args []string) {
	line := commandStyle.Render("$ git " + strings.Join(args, " "))
	e.splog.Info("%s %s", line, dirStyle.Render("("+dir+")"))
}

// Output prints git's output. Git's own colour codes are dropped and the
// text dimmed unless keepColor is set, in which case it is printed untouched.
func (e *GitEcho) Output(out string, keepColor bool) {
	if !e.showOutput {
		return
	}
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return
	}
	if keepColor {
		e.splog.Info("%s", out)
		return
	}
	lines := strings.Split(ansi.Strip(out), "\n")
	for i, line := range lines {
		lines[i] = outputStyle.Render(line)
	}
	e.splog.Info("%s", strings.Join(lines, "\n"))
}
