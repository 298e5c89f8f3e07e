// Package config provides user configuration management for routercfg.
//
// The configuration file is YAML and stores application preferences (default
// router address and username, simulated delays, the WiFi password policy,
// discovery timeout) and metadata for routers found with `routercfg scan`.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/routercfg/config.yaml or $HOME/.config/routercfg/config.yaml
//   - macOS: $HOME/.config/routercfg/config.yaml
//   - Windows: %LOCALAPPDATA%\routercfg\config.yaml
//
// # Security
//
// This package NEVER stores router or WiFi passwords. They are always prompted
// from the user when needed.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	router := registry.Preferences.NewSession()
//	creds := registry.Preferences.Credentials()
//	creds.Password = promptPassword()
//	err = router.Connect(ctx, creds)
//
// A missing file is not an error: LoadRegistry returns the defaults.
package config
