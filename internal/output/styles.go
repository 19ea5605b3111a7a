package output

import "github.com/charmbracelet/lipgloss"

var (
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dirStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	outputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dirStyle.Render(text)
}

// ColorSuccess colors text green
func ColorSuccess(text string) string {
	return successStyle.Render(text)
}

// ColorWarn colors text yellow
func ColorWarn(text string) string {
	return warnStyle.Render(text)
}

// ColorError colors text red
func ColorError(text string) string {
	return errorStyle.Render(text)
}
