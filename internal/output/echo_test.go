package output_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"scaffkit.dev/scaffkit/internal/git"
	"scaffkit.dev/scaffkit/internal/output"
)

var _ git.Echo = (*output.GitEcho)(nil)

func newEcho(t *testing.T, showOutput bool) (*output.GitEcho, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	splog, err := output.NewSplogWithOptions(output.Options{Writer: &buf})
	require.NoError(t, err)
	return output.NewGitEcho(splog, showOutput), &buf
}

func TestGitEcho(t *testing.T) {
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	t.Run("plain profile", func(t *testing.T) {
		lipgloss.SetColorProfile(termenv.Ascii)
		echo, buf := newEcho(t, true)

		echo.Command("/work/repo", []string{"status", "--short"})
		echo.Output("\x1b[32mM\x1b[m file.go\n", false)

		require.Equal(t, "$ git status --short (/work/repo)\nM file.go\n", buf.String())
	})

	t.Run("keep color leaves git output untouched", func(t *testing.T) {
		lipgloss.SetColorProfile(termenv.TrueColor)
		echo, buf := newEcho(t, true)

		raw := "\x1b[33mabc1234\x1b[m first"
		echo.Output(raw+"\n", true)
		require.Equal(t, raw+"\n", buf.String())
	})

	t.Run("highlighting replaces git colours", func(t *testing.T) {
		lipgloss.SetColorProfile(termenv.TrueColor)
		echo, buf := newEcho(t, true)

		echo.Output("\x1b[33mabc1234\x1b[m first\n", false)
		require.NotContains(t, buf.String(), "\x1b[33m")
		require.Contains(t, buf.String(), "abc1234 first")
		require.Contains(t, buf.String(), "\x1b[")
	})

	t.Run("output hidden unless requested", func(t *testing.T) {
		echo, buf := newEcho(t, false)
		echo.Output("something\n", false)
		require.Empty(t, buf.String())
	})
}
