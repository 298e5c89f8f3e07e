// Package ui renders the styled output of routercfg's non-interactive commands
// and asks for missing input with survey prompts.
//
// Components follow a "print and move on" pattern: a Header naming the command
// and its parameters, a Progress step list, and a Result box. The Runner ties
// these together for multi-step commands:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:   "Change WiFi",
//	    Command: "routercfg set-wifi",
//	    Params:  []ui.Param{{Key: "Router", Value: addr}},
//	    Steps:   []string{"Checking password", "Connecting to router", "Applying settings"},
//	})
//	err := runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) ([]ui.Param, error) {
//	    onStep(1, ui.StepRunning, "")
//	    // ...
//	    onStep(1, ui.StepComplete, "")
//	    return nil, nil
//	})
//
// Failure boxes take their message and troubleshooting text from
// routerconfig.GetShortErrorMessage and routerconfig.GetTroubleshootingHint.
//
// The interactive form lives in internal/wizard/tui.
package ui
