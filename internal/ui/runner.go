package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// RunnerConfig holds configuration for a command execution
type RunnerConfig struct {
	Title   string    // Command title (e.g., "Change WiFi")
	Command string    // Full command (e.g., "routercfg set-wifi")
	Params  []Param   // Parameters to display in header
	Steps   []string  // Names for each step
	Output  io.Writer // Output writer (default: os.Stdout)
	Width   int       // Render width (default: terminal width)
}

// Runner orchestrates the output of a multi-step command.
// It prints the header, a line per finished step, and the result box.
type Runner struct {
	config   RunnerConfig
	progress *Progress
	output   io.Writer
	width    int
}

// NewRunner creates a new runner for a command
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	width := config.Width
	if width == 0 {
		width = GetTerminalWidth()
	}

	return &Runner{
		config:   config,
		progress: NewProgress(config.Steps...),
		output:   config.Output,
		width:    width,
	}
}

// Operation is the work a Runner executes. It reports progress through
// onStep and returns the details shown in the success box.
type Operation func(ctx context.Context, onStep StepCallback) ([]Param, error)

// Run executes the operation with header, step and result output.
func (r *Runner) Run(ctx context.Context, operation Operation) error {
	start := time.Now()

	header := NewHeader(r.config.Title, r.config.Command, r.config.Params).SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, header.Render())
	_, _ = fmt.Fprintln(r.output)

	details, err := operation(ctx, r.onStep)
	duration := time.Since(start).Round(time.Millisecond)

	_, _ = fmt.Fprintln(r.output)
	_, _ = fmt.Fprintln(r.output, r.progress.RenderBar())
	_, _ = fmt.Fprintln(r.output)
	if err != nil {
		result := NewFailureResult(r.config.Title+" failed", err).SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, result.Render())
		return err
	}

	result := NewSuccessResult(r.config.Title+" complete", details).SetWidth(r.width)
	result.AddDetail("Duration", duration.String())
	_, _ = fmt.Fprintln(r.output, result.Render())
	return nil
}

// Progress returns the step tracker
func (r *Runner) Progress() *Progress {
	return r.progress
}

func (r *Runner) onStep(stepNumber int, status StepStatus, message string) {
	r.progress.Update(stepNumber, status, message)

	switch status {
	case StepComplete, StepFailed:
		_, _ = fmt.Fprintln(r.output, r.progress.RenderStep(stepNumber))
	case StepRunning:
		// Overwritten when the step finishes
		_, _ = fmt.Fprint(r.output, r.progress.RenderStep(stepNumber)+"\r")
	}
}
