package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/routercfg/internal/routerconfig"
	"github.com/muurk/routercfg/internal/urls"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result represents a result box shown when a command finishes.
type Result struct {
	Type    ResultType // Success or failure
	Title   string     // e.g., "WiFi settings changed"
	Details []Param    // Key-value details to display
	Error   error      // Error (for failure results)
	Width   int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details []Param) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box.
// Troubleshooting text is taken from the error.
func NewFailureResult(title string, err error) *Result {
	return &Result{
		Type:  ResultFailure,
		Title: title,
		Error: err,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	if r.Type == ResultFailure {
		return boxStyle(ErrorColor, width).Render(r.failureContent())
	}
	return boxStyle(SuccessColor, width).Render(r.successContent())
}

func (r *Result) successContent() string {
	lines := []string{
		"",
		SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title)),
		"",
	}
	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render("   "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (r *Result) failureContent() string {
	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title)),
		"",
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+routerconfig.GetShortErrorMessage(r.Error)), "")

		hint := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Padding(0, 1).
			MarginLeft(3).
			Render(TroubleshootingItemStyle.Render(routerconfig.GetTroubleshootingHint(r.Error)))
		lines = append(lines, hint, "")

		if routerconfig.IsOperationFailed(r.Error) {
			lines = append(lines, TroubleshootingItemStyle.Render("   More help: "+urls.TroubleshootingGuide), "")
		}
	}

	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
