package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/routercfg/internal/config"
	"github.com/muurk/routercfg/internal/discovery"
	"github.com/muurk/routercfg/internal/logging"
	"github.com/muurk/routercfg/internal/routerconfig"
	"github.com/muurk/routercfg/internal/ui"
	"github.com/muurk/routercfg/internal/urls"
	"github.com/muurk/routercfg/internal/wizard/tui"
)

// Command flags
var (
	routerPassword string
	wifiPassword   string
	assumeYes      bool
	showPassword   bool
	scanTimeout    int
	scanAll        bool
	scanSave       bool
	scanNickname   string
	forceInit      bool
)

func init() {
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(checkPasswordCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(setWiFiCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
}

// wizardCmd launches the interactive form
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive router form",
	Long: `Launch a full-screen form for connecting to the router and changing
its WiFi network name and password.

The form checks the new password as you type and runs connect and apply in
the background, so both can be in progress at the same time.`,
	Example: `  # Launch the wizard
  routercfg wizard
  # Or simply (wizard is default):
  routercfg

  # Pre-fill the router address
  routercfg --router 192.168.1.1`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractive() {
		return errors.New("the wizard needs an interactive terminal; use 'routercfg set-wifi' instead")
	}

	prefs := loadPreferences()
	err := tui.Run(cmd.Context(), tui.Options{
		Router:      prefs.NewSession(),
		Defaults:    resolveCredentials(prefs, ""),
		ScanTimeout: time.Duration(prefs.DiscoverTimeout) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

// checkPasswordCmd runs the password policy on a candidate
var checkPasswordCmd = &cobra.Command{
	Use:   "check-password [password]",
	Short: "Check a candidate WiFi password",
	Long: `Check a candidate WiFi password against the password policy.

The password must be at least 10 characters long and contain an uppercase
letter, a lowercase letter and a digit. When no password is given it is
read from a hidden prompt.

Exits with a non-zero status if the password is rejected.`,
	Example: `  # Prompt for the password (not echoed)
  routercfg check-password

  # Check a password given on the command line
  routercfg check-password 'Abcdefg123'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var candidate string
		if len(args) == 1 {
			candidate = args[0]
		} else {
			var err error
			candidate, err = promptSecret("New WiFi password:", "The password is not echoed.", routerconfig.FieldWiFiPassword, nil)
			if err != nil {
				return err
			}
		}
		return checkPassword(cmd.OutOrStdout(), loadPreferences().Policy, candidate)
	},
}

// checkPassword prints the policy report and returns the first failed rule
func checkPassword(w io.Writer, policy routerconfig.PasswordPolicy, candidate string) error {
	check := policy.Check(candidate)
	_, _ = fmt.Fprint(w, routerconfig.FormatPasswordCheck(check, policy))
	if check.OK() {
		_, _ = fmt.Fprintf(w, "Strength: %s\n", policy.Strength(candidate))
		return nil
	}
	_, _ = fmt.Fprintf(w, "\nSee %s\n", urls.PasswordPolicy)
	return check.Err()
}

// connectCmd logs in to the router
var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to the router",
	Long: `Log in to the router with the admin credentials.

The router password is read from a hidden prompt unless --password is given.`,
	Example: `  # Connect with the configured defaults
  routercfg connect

  # Connect to a specific router
  routercfg connect --router 192.168.1.1 --username admin`,
	RunE: runConnect,
}

func init() {
	connectCmd.Flags().StringVar(&routerPassword, "password", "", "Router admin password (prompted if omitted)")
}

func runConnect(cmd *cobra.Command, args []string) error {
	prefs := loadPreferences()

	password, err := routerPasswordOrPrompt()
	if err != nil {
		return err
	}
	creds := resolveCredentials(prefs, password)
	if creds.Address, err = routerAddressOrPrompt(prefs); err != nil {
		return err
	}
	router := prefs.NewSession()

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   "Connect",
		Command: "routercfg connect",
		Params: []ui.Param{
			{Key: "Router", Value: creds.Address},
			{Key: "Username", Value: creds.Username},
		},
		Steps:  []string{"Check credentials", "Log in"},
		Output: cmd.OutOrStdout(),
	})

	err = runner.Run(cmd.Context(), func(ctx context.Context, onStep ui.StepCallback) ([]ui.Param, error) {
		if err := connectSteps(ctx, router, creds, 1, onStep); err != nil {
			return nil, err
		}
		return []ui.Param{{Key: "Session", Value: router.FormatSession()}}, nil
	})
	if err != nil {
		return renderedError{err}
	}
	return nil
}

// connectSteps runs the credential check and login as two runner steps
// starting at step first.
func connectSteps(ctx context.Context, router *routerconfig.Router, creds routerconfig.Credentials, first int, onStep ui.StepCallback) error {
	onStep(first, ui.StepRunning, "")
	if errs := routerconfig.ValidateCredentials(creds); len(errs) > 0 {
		onStep(first, ui.StepFailed, routerconfig.GetShortErrorMessage(errs[0]))
		return errs[0]
	}
	onStep(first, ui.StepComplete, "")

	onStep(first+1, ui.StepRunning, "")
	if err := router.Connect(ctx, creds); err != nil {
		onStep(first+1, ui.StepFailed, routerconfig.GetShortErrorMessage(err))
		return err
	}
	onStep(first+1, ui.StepComplete, creds.Address)
	return nil
}

// setWiFiCmd connects and changes the WiFi settings in one go
var setWiFiCmd = &cobra.Command{
	Use:   "set-wifi <ssid>",
	Short: "Change the WiFi network name and password",
	Long: `Connect to the router and change its WiFi network name and password.

The new password must satisfy the password policy; it is checked before the
router is contacted. Both passwords are read from hidden prompts unless given
as flags. You will be asked to confirm the change unless --yes is set.

Devices connected to the old network will need to reconnect afterwards.`,
	Example: `  # Interactive: prompts for both passwords and confirmation
  routercfg set-wifi HomeNet

  # Scripted
  routercfg set-wifi HomeNet --password secret --wifi-password 'Abcdefg123' --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runSetWiFi,
}

func init() {
	setWiFiCmd.Flags().StringVar(&routerPassword, "password", "", "Router admin password (prompted if omitted)")
	setWiFiCmd.Flags().StringVar(&wifiPassword, "wifi-password", "", "New WiFi password (prompted if omitted)")
	setWiFiCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	setWiFiCmd.Flags().BoolVar(&showPassword, "show-password", false, "Print the new WiFi password in the summary")
}

func runSetWiFi(cmd *cobra.Command, args []string) error {
	prefs := loadPreferences()
	policy := prefs.Policy

	newPassword := wifiPassword
	if newPassword == "" {
		var err error
		newPassword, err = promptSecret("New WiFi password:", strings.Join(policy.Requirements(), ", "), routerconfig.FieldWiFiPassword,
			func(s string) error { return policy.Check(s).Err() })
		if err != nil {
			return err
		}
	}

	settings := routerconfig.WiFiSettings{SSID: args[0], Password: newPassword}
	if err := checkWiFiSettings(cmd.ErrOrStderr(), settings, policy); err != nil {
		return err
	}

	password, err := routerPasswordOrPrompt()
	if err != nil {
		return err
	}
	creds := resolveCredentials(prefs, password)
	if creds.Address, err = routerAddressOrPrompt(prefs); err != nil {
		return err
	}

	if err := confirmChange(creds.Address, settings.SSID); err != nil {
		return err
	}

	router := prefs.NewSession()
	out := cmd.OutOrStdout()
	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   "Change WiFi",
		Command: "routercfg set-wifi",
		Params: []ui.Param{
			{Key: "Router", Value: creds.Address},
			{Key: "Network", Value: settings.SSID},
		},
		Steps:  []string{"Check credentials", "Log in", "Apply WiFi settings"},
		Output: out,
	})

	err = runner.Run(cmd.Context(), func(ctx context.Context, onStep ui.StepCallback) ([]ui.Param, error) {
		if err := connectSteps(ctx, router, creds, 1, onStep); err != nil {
			return nil, err
		}

		onStep(3, ui.StepRunning, "")
		result, err := router.ApplyWiFi(ctx, settings)
		if err != nil {
			onStep(3, ui.StepFailed, routerconfig.GetShortErrorMessage(err))
			return nil, err
		}
		onStep(3, ui.StepComplete, result.SSID)

		return []ui.Param{
			{Key: "Network", Value: result.SSID},
			{Key: "Change ID", Value: result.ID},
		}, nil
	})
	if err != nil {
		return renderedError{err}
	}

	ui.NewPrinter(out).PrintNotice("New WiFi details", routerconfig.FormatApplyNotice(settings, showPassword))
	return nil
}

// checkWiFiSettings validates the new settings before the router is
// contacted. When more than one rule fails, all of them are listed on w.
func checkWiFiSettings(w io.Writer, settings routerconfig.WiFiSettings, policy routerconfig.PasswordPolicy) error {
	errs := routerconfig.ValidateWiFiSettings(settings, policy)
	if len(errs) == 0 {
		return nil
	}

	logging.Debug("rejected WiFi settings", zap.Int("errors", len(errs)))
	if len(errs) > 1 {
		_, _ = fmt.Fprint(w, routerconfig.FormatValidationErrors(errs))
		_, _ = fmt.Fprintln(w)
	}
	return errs[0]
}

func confirmChange(address, ssid string) error {
	if assumeYes {
		return nil
	}
	if !ui.IsInteractive() {
		return errors.New("refusing to change WiFi settings without confirmation; pass --yes")
	}

	ok, err := ui.Confirm(fmt.Sprintf("Change the WiFi network of %s to %q?", address, ssid), false)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("cancelled")
	}
	return nil
}

// scanCmd discovers routers on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for routers on the network",
	Long: `Scan for routers using mDNS/DNS-SD discovery.

This command browses for HTTP services on the local network and lists the
hosts that look like routers. Use --all to list every HTTP host.`,
	Example: `  # Scan with the configured timeout
  routercfg scan

  # Longer scan, list every HTTP host and remember them
  routercfg scan --timeout 15 --all --save

  # Remember the only router found under a nickname
  routercfg scan --save --nickname upstairs`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 0, "Scan timeout in seconds (default from config)")
	scanCmd.Flags().BoolVar(&scanAll, "all", false, "List every HTTP host, not only likely routers")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "Remember the discovered hosts in the config file")
	scanCmd.Flags().StringVar(&scanNickname, "nickname", "", "Nickname for the discovered router (with --save; needs exactly one host)")
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanNickname != "" && !scanSave {
		return errors.New("--nickname requires --save")
	}

	out := cmd.OutOrStdout()
	registry := loadRegistry()

	timeout := scanTimeout
	if timeout <= 0 {
		timeout = registry.Preferences.DiscoverTimeout
	}

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(timeout) * time.Second
	scanner.RoutersOnly = !scanAll

	_, _ = fmt.Fprintf(out, "Scanning for routers (timeout: %ds)...\n\n", timeout)

	hosts, err := scanner.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printHosts(out, hosts, registry)

	if scanSave && len(hosts) > 0 {
		if err := rememberHosts(registry, hosts, scanNickname); err != nil {
			return err
		}
		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save discovered routers: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Saved %d router(s) to the config file\n", len(hosts))
	}

	return nil
}

// rememberHosts records discovered hosts in the registry. A nickname is only
// accepted when there is exactly one host to give it to.
func rememberHosts(registry *config.Registry, hosts []*discovery.Host, nickname string) error {
	if nickname != "" && len(hosts) != 1 {
		return fmt.Errorf("--nickname needs exactly one discovered host, found %d", len(hosts))
	}

	for _, h := range hosts {
		registry.UpdateRouterLastSeen(h.Address(), h.Hostname)
	}
	if nickname != "" {
		registry.SetRouterNickname(hosts[0].Address(), nickname)
	}
	return nil
}

func printHosts(w io.Writer, hosts []*discovery.Host, registry *config.Registry) {
	if len(hosts) == 0 {
		_, _ = fmt.Fprintln(w, "No routers found.")
		_, _ = fmt.Fprintln(w, "\nTroubleshooting:")
		_, _ = fmt.Fprintln(w, "  - Check that this computer is on the router's network")
		_, _ = fmt.Fprintln(w, "  - Many routers do not advertise themselves; try --all")
		_, _ = fmt.Fprintln(w, "  - Try increasing --timeout for slower networks")
		_, _ = fmt.Fprintln(w, "  - Use --router to give the address directly")
		_, _ = fmt.Fprintf(w, "\nMore help: %s\n", urls.RouterDiscovery)
		return
	}

	_, _ = fmt.Fprintf(w, "Found %d host(s):\n\n", len(hosts))
	for i, h := range hosts {
		name := h.String()
		if meta := registry.GetRouter(h.Address()); meta != nil && meta.Nickname != "" {
			name = fmt.Sprintf("%s (%s)", name, meta.Nickname)
		}
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, name)
		if h.Hostname != "" {
			_, _ = fmt.Fprintf(w, "   Hostname: %s\n", h.Hostname)
		}
		if len(h.Metadata) > 0 {
			_, _ = fmt.Fprintf(w, "   Metadata: %v\n", h.Metadata)
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintf(w, "Use 'routercfg connect --router %s' to log in\n", hosts[0].Address())
}

// configCmd groups the config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
	Long: `Manage the routercfg config file.

The config file holds the default router address and username, the
simulated operation delays, the password policy and the routers found by
'routercfg scan --save'. Passwords are never stored.

Every key is documented at ` + urls.Configuration,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		if err := config.CreateDefaultConfig(path, forceInit); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		data, err := registry.Marshal()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !config.Exists(path) {
			_, _ = fmt.Fprintf(out, "# %s does not exist; showing defaults\n", path)
		} else {
			_, _ = fmt.Fprintf(out, "# %s\n", path)
		}
		_, _ = out.Write(data)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// loadRegistry returns the config registry, falling back to defaults when
// the file cannot be read.
func loadRegistry() *config.Registry {
	registry, err := config.LoadRegistry()
	if err != nil {
		logging.Warn("using default configuration", zap.Error(err))
		return config.NewRegistry()
	}
	return registry
}

func loadPreferences() *config.Preferences {
	return loadRegistry().Preferences
}

// resolveCredentials applies the --router and --username flags over the
// configured defaults.
func resolveCredentials(prefs *config.Preferences, password string) routerconfig.Credentials {
	creds := prefs.Credentials()
	if routerAddress != "" {
		creds.Address = routerAddress
	}
	if routerUser != "" {
		creds.Username = routerUser
	}
	creds.Password = password
	return creds
}

// routerAddressOrPrompt returns the --router flag or the configured address.
// On a terminal with no config file the address is asked for, with the
// default pre-filled.
func routerAddressOrPrompt(prefs *config.Preferences) (string, error) {
	return chooseAddress(prefs, configFileExists(), ui.IsInteractive(), ui.PromptInput)
}

func chooseAddress(prefs *config.Preferences, configured, interactive bool, prompt func(message, def string) (string, error)) (string, error) {
	if routerAddress != "" {
		return routerAddress, nil
	}
	if configured || !interactive {
		return prefs.RouterAddress, nil
	}

	address, err := prompt("Router address:", prefs.RouterAddress)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(address), nil
}

func configFileExists() bool {
	path, err := config.GetConfigPath()
	return err == nil && config.Exists(path)
}

func routerPasswordOrPrompt() (string, error) {
	if routerPassword != "" {
		return routerPassword, nil
	}
	return promptSecret("Router password:", "The router admin password. It is not stored.", routerconfig.FieldPassword, nil)
}

// promptSecret reads a hidden value, or fails with MissingField when there
// is no terminal to prompt on.
func promptSecret(message, help, field string, validate func(string) error) (string, error) {
	if !ui.IsInteractive() {
		return "", routerconfig.NewMissingFieldError(field)
	}
	return ui.PromptPassword(message, help, validate)
}

// renderedError marks an error whose result box, hint included, was already
// printed by a ui.Runner
type renderedError struct {
	err error
}

func (e renderedError) Error() string { return e.err.Error() }

func (e renderedError) Unwrap() error { return e.err }
