package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepStatus represents the current state of a step
type StepStatus int

const (
	StepPending  StepStatus = iota // Not yet started
	StepRunning                    // Currently executing
	StepComplete                   // Successfully completed
	StepFailed                     // Failed
)

// Step represents a single step in a multi-step command
type Step struct {
	Name    string     // Step description (e.g., "Connecting to router")
	Status  StepStatus // Current status
	Message string     // Optional note (e.g., "2s")
}

// Progress tracks the steps of a command and renders them as a list
// with an overall progress bar.
type Progress struct {
	Steps []Step
	bar   progress.Model
}

// NewProgress creates a step list from the given step names
func NewProgress(names ...string) *Progress {
	steps := make([]Step, len(names))
	for i, name := range names {
		steps[i] = Step{Name: name}
	}
	return &Progress{
		Steps: steps,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(30),
			progress.WithoutPercentage(),
		),
	}
}

// Update sets a step's status and note. Steps are numbered from 1.
// Out of range step numbers are ignored.
func (p *Progress) Update(stepNumber int, status StepStatus, message string) {
	if stepNumber < 1 || stepNumber > len(p.Steps) {
		return
	}
	p.Steps[stepNumber-1].Status = status
	p.Steps[stepNumber-1].Message = message
}

// Percent returns the completed fraction of steps (0.0 - 1.0)
func (p *Progress) Percent() float64 {
	if len(p.Steps) == 0 {
		return 0
	}
	done := 0
	for _, s := range p.Steps {
		if s.Status == StepComplete {
			done++
		}
	}
	return float64(done) / float64(len(p.Steps))
}

// RenderBar renders the progress bar with a percentage
func (p *Progress) RenderBar() string {
	return lipgloss.NewStyle().
		PaddingLeft(2).
		Render(fmt.Sprintf("%s  %3.0f%%", p.bar.ViewAs(p.Percent()), p.Percent()*100))
}

// RenderStep renders one step line, e.g. "  [2/3] Connecting to router   ✓"
func (p *Progress) RenderStep(stepNumber int) string {
	if stepNumber < 1 || stepNumber > len(p.Steps) {
		return ""
	}
	step := p.Steps[stepNumber-1]

	var marker string
	var style lipgloss.Style
	switch step.Status {
	case StepComplete:
		marker, style = StepMarkerComplete, StepCompleteStyle
	case StepRunning:
		marker, style = StepMarkerRunning, StepRunningStyle
	case StepFailed:
		marker, style = FailureMarker, ErrorTitleStyle
	default:
		marker, style = StepMarkerPending, StepPendingStyle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  [%d/%d] ", stepNumber, len(p.Steps)))
	b.WriteString(style.Render(step.Name))

	padding := 32 - lipgloss.Width(step.Name)
	if padding < 1 {
		padding = 1
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(style.Render(marker))

	if step.Message != "" {
		b.WriteString("  ")
		b.WriteString(StepNoteStyle.Render("(" + step.Message + ")"))
	}
	return b.String()
}

// Render returns all steps followed by the progress bar
func (p *Progress) Render() string {
	lines := make([]string, 0, len(p.Steps)+2)
	for i := range p.Steps {
		lines = append(lines, p.RenderStep(i+1))
	}
	lines = append(lines, "", p.RenderBar())
	return strings.Join(lines, "\n")
}

// StepCallback is the function signature for step progress updates.
type StepCallback func(stepNumber int, status StepStatus, message string)
