// Routercfg changes the WiFi network name and password of a home router.
//
// It provides an interactive form (the wizard), router discovery on the
// local network, and direct commands for connecting and changing the WiFi
// settings from scripts.
//
// Usage:
//
//	routercfg [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'routercfg --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/muurk/routercfg/internal/logging"
	"github.com/muurk/routercfg/internal/routerconfig"
	"github.com/muurk/routercfg/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err, followed by advice when the input was rejected
// before a result box could show it
func reportError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)

	var rendered renderedError
	if routerconfig.IsValidationError(err) && !errors.As(err, &rendered) {
		_, _ = fmt.Fprintf(w, "\n%s\n", routerconfig.GetTroubleshootingHint(err))
	}
}

// Global flags
var (
	routerAddress string
	routerUser    string
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "routercfg",
	Short: "Router WiFi Configuration Utility",
	Long: `A utility for changing the WiFi network name and password of a home router.

Provides router discovery, an interactive form, and direct commands for
connecting to the router and changing its WiFi settings.

If no command is specified, the interactive wizard will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&routerAddress, "router", "", "Router address (default from config)")
	rootCmd.PersistentFlags().StringVar(&routerUser, "username", "", "Router admin username (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); default $"+logging.LogLevelEnvVar)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("routercfg " + version.Full())
	},
}
