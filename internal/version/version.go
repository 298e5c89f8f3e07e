// Package version reports the build version of routercfg.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/routercfg/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/routercfg/internal/version.Commit=abc123"
var (
	Version = ""
	Commit  = ""
)

// shortCommitLength is how much of a VCS revision is shown
const shortCommitLength = 7

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	Version, Commit = resolve(Version, Commit, settings, time.Now())
}

// resolve fills in whatever ldflags left empty, first from VCS build
// settings and then from fallbacks.
func resolve(version, commit string, settings []debug.BuildSetting, now time.Time) (string, string) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if commit == "" {
		if rev := vcs["vcs.revision"]; rev != "" {
			if len(rev) > shortCommitLength {
				rev = rev[:shortCommitLength]
			}
			if vcs["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			commit = rev
		}
	}

	// Build info carries no tags, so untagged builds are named after the commit date
	if version == "" {
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			version = "dev-" + t.Format("20060102")
		} else {
			version = "dev-" + now.Format("20060102-150405")
		}
	}

	if commit == "" {
		commit = "unknown"
	}
	return version, commit
}

// Full returns the version with its commit, e.g. "v1.2.3 (commit: abc1234)"
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
