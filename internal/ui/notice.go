package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Notice is a boxed message the user should read, such as the new WiFi
// details after a successful change.
type Notice struct {
	Title   string
	Content string
	Width   int
}

// NewNotice creates a notice box
func NewNotice(title, content string) *Notice {
	return &Notice{
		Title:   title,
		Content: content,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (n *Notice) SetWidth(width int) *Notice {
	n.Width = width
	return n
}

// Render returns the styled notice as a string
func (n *Notice) Render() string {
	width := n.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string
	if n.Title != "" {
		lines = append(lines, NoticeTitleStyle.Render(n.Title), "")
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render(n.Content))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(WarningColor).
		Width(width-4).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
