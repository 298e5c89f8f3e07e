package version

import (
	"runtime/debug"
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name        string
		version     string
		commit      string
		settings    []debug.BuildSetting
		wantVersion string
		wantCommit  string
	}{
		{
			name:        "ldflags win",
			version:     "v1.2.3",
			commit:      "abc123",
			settings:    []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffffff"}},
			wantVersion: "v1.2.3",
			wantCommit:  "abc123",
		},
		{
			name: "from vcs",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2025-11-20T10:00:00Z"},
			},
			wantVersion: "dev-20251120",
			wantCommit:  "0123456",
		},
		{
			name: "dirty tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			wantVersion: "dev-20260304-050607",
			wantCommit:  "abc-dirty",
		},
		{
			name:        "no build info",
			wantVersion: "dev-20260304-050607",
			wantCommit:  "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c := resolve(tt.version, tt.commit, tt.settings, now)
			if v != tt.wantVersion {
				t.Errorf("version = %q, want %q", v, tt.wantVersion)
			}
			if c != tt.wantCommit {
				t.Errorf("commit = %q, want %q", c, tt.wantCommit)
			}
		})
	}
}

func TestFull(t *testing.T) {
	Version, Commit = "v0.1.0", "abc1234"
	if got := Full(); got != "v0.1.0 (commit: abc1234)" {
		t.Errorf("Full() = %q", got)
	}
}
