package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := ParseLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	defer SetLogger(nil)

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is set")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "debug")
	defer SetLogger(nil)

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if !GetLogger().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled")
	}
}

func TestInitialize_UnknownLevel(t *testing.T) {
	defer SetLogger(nil)

	if err := Initialize("loud"); err == nil {
		t.Error("Initialize() should reject an unknown level")
	}
}

func TestLogOperation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogOperation("connect", "id-1", "started")
	LogOperation("connect", "id-1", "connected", zap.String("router", "192.168.100.254"))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}

	if entries[0].Level != zapcore.DebugLevel {
		t.Errorf("started event level = %v, want debug", entries[0].Level)
	}
	if entries[1].Level != zapcore.InfoLevel {
		t.Errorf("finish event level = %v, want info", entries[1].Level)
	}

	fields := entries[1].ContextMap()
	if fields["op"] != "connect" || fields["id"] != "id-1" || fields["event"] != "connected" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if fields["router"] != "192.168.100.254" {
		t.Errorf("router field = %v", fields["router"])
	}
}
