// Package urls provides centralized constants for the documentation URLs
// printed by the CLI and the wizard.
//
// Usage:
//
//	import "github.com/muurk/routercfg/internal/urls"
//
//	fmt.Printf("For more information, see: %s\n", urls.RouterDiscovery)
package urls
