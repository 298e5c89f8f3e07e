package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/routercfg/internal/config"
	"github.com/muurk/routercfg/internal/discovery"
	"github.com/muurk/routercfg/internal/routerconfig"
	"github.com/muurk/routercfg/internal/ui"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  func(error) bool
		want     []string
	}{
		{
			name:     "accepted",
			password: "Abcdefg123",
			want:     []string{"Password accepted (10 characters)", "Strength: fair"},
		},
		{
			name:     "too short",
			password: "Abc1",
			wantErr:  routerconfig.IsTooShort,
			want:     []string{"Password rejected (4 characters)", "Requirements:", "At least 10 characters"},
		},
		{
			name:     "all lowercase",
			password: "abcdefghij",
			wantErr:  routerconfig.IsMissingCharacterClass,
			want:     []string{"Password rejected", "uppercase, lowercase and digits"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := checkPassword(&buf, routerconfig.DefaultPolicy(), tt.password)

			if tt.wantErr == nil && err != nil {
				t.Fatalf("checkPassword() error = %v", err)
			}
			if tt.wantErr != nil && !tt.wantErr(err) {
				t.Fatalf("checkPassword() error = %v", err)
			}
			for _, s := range tt.want {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("output missing %q:\n%s", s, buf.String())
				}
			}
		})
	}
}

func TestResolveCredentials(t *testing.T) {
	prefs := config.DefaultPreferences()

	t.Cleanup(func() {
		routerAddress = ""
		routerUser = ""
	})

	got := resolveCredentials(prefs, "secret")
	want := routerconfig.Credentials{
		Address:  routerconfig.DefaultAddress,
		Username: routerconfig.DefaultUsername,
		Password: "secret",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolveCredentials() mismatch (-want +got):\n%s", diff)
	}

	routerAddress = "10.0.0.1"
	routerUser = "root"
	got = resolveCredentials(prefs, "")
	want = routerconfig.Credentials{Address: "10.0.0.1", Username: "root"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolveCredentials() with flags mismatch (-want +got):\n%s", diff)
	}
}

type stepEvent struct {
	Step   int
	Status ui.StepStatus
}

func TestConnectSteps(t *testing.T) {
	tests := []struct {
		name    string
		creds   routerconfig.Credentials
		wantErr func(error) bool
		want    []stepEvent
	}{
		{
			name:  "connected",
			creds: routerconfig.Credentials{Address: "192.168.1.1", Username: "admin", Password: "secret"},
			want: []stepEvent{
				{1, ui.StepRunning}, {1, ui.StepComplete},
				{2, ui.StepRunning}, {2, ui.StepComplete},
			},
		},
		{
			name:    "missing password",
			creds:   routerconfig.Credentials{Address: "192.168.1.1", Username: "admin"},
			wantErr: routerconfig.IsMissingField,
			want:    []stepEvent{{1, ui.StepRunning}, {1, ui.StepFailed}},
		},
		{
			name:    "rejected",
			creds:   routerconfig.Credentials{Address: "192.168.1.1", Username: "guest", Password: "secret"},
			wantErr: routerconfig.IsOperationFailed,
			want: []stepEvent{
				{1, ui.StepRunning}, {1, ui.StepComplete},
				{2, ui.StepRunning}, {2, ui.StepFailed},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := routerconfig.NewRouter()
			router.SetDelays(0, 0)

			var events []stepEvent
			err := connectSteps(context.Background(), router, tt.creds, 1, func(n int, status ui.StepStatus, _ string) {
				events = append(events, stepEvent{n, status})
			})

			if tt.wantErr == nil && err != nil {
				t.Fatalf("connectSteps() error = %v", err)
			}
			if tt.wantErr != nil && !tt.wantErr(err) {
				t.Fatalf("connectSteps() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, events); diff != "" {
				t.Errorf("step events mismatch (-want +got):\n%s", diff)
			}
			if router.Connected() != (err == nil) {
				t.Errorf("Connected() = %v with error %v", router.Connected(), err)
			}
		})
	}
}

func TestConfirmChange_AssumeYes(t *testing.T) {
	assumeYes = true
	t.Cleanup(func() { assumeYes = false })

	if err := confirmChange("192.168.1.1", "HomeNet"); err != nil {
		t.Errorf("confirmChange() error = %v", err)
	}
}

func TestPrintHosts(t *testing.T) {
	registry := config.NewRegistry()
	registry.SetRouterNickname("192.168.1.1", "upstairs")

	hosts := []*discovery.Host{
		{Instance: "Archer C7", Hostname: "router.local.", IP: "192.168.1.1", Port: 80},
		{Instance: "Mesh AP", IP: "192.168.1.2", Port: 8080, Metadata: map[string]string{"model": "x1"}},
	}

	var buf bytes.Buffer
	printHosts(&buf, hosts, registry)
	out := buf.String()

	for _, s := range []string{
		"Found 2 host(s)",
		"1. Archer C7 at 192.168.1.1:80 (upstairs)",
		"Hostname: router.local.",
		"2. Mesh AP at 192.168.1.2:8080",
		"Metadata: map[model:x1]",
		"routercfg connect --router 192.168.1.1",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}

	buf.Reset()
	printHosts(&buf, nil, registry)
	if !strings.Contains(buf.String(), "No routers found.") {
		t.Errorf("empty scan output:\n%s", buf.String())
	}
}

func TestChooseAddress(t *testing.T) {
	prefs := config.DefaultPreferences()
	t.Cleanup(func() { routerAddress = "" })

	var prompted []string
	prompt := func(message, def string) (string, error) {
		prompted = append(prompted, def)
		return " 10.0.0.1 ", nil
	}

	tests := []struct {
		name        string
		flag        string
		configured  bool
		interactive bool
		want        string
		wantPrompt  bool
	}{
		{"flag wins", "192.168.1.1", false, true, "192.168.1.1", false},
		{"config file", "", true, true, routerconfig.DefaultAddress, false},
		{"no terminal", "", false, false, routerconfig.DefaultAddress, false},
		{"prompted", "", false, true, "10.0.0.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routerAddress = tt.flag
			prompted = nil

			got, err := chooseAddress(prefs, tt.configured, tt.interactive, prompt)
			if err != nil {
				t.Fatalf("chooseAddress() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("chooseAddress() = %q, want %q", got, tt.want)
			}
			if (len(prompted) > 0) != tt.wantPrompt {
				t.Errorf("prompted = %v, want prompt %v", prompted, tt.wantPrompt)
			}
			if tt.wantPrompt && prompted[0] != routerconfig.DefaultAddress {
				t.Errorf("prompt default = %q, want %q", prompted[0], routerconfig.DefaultAddress)
			}
		})
	}
}

func TestChooseAddress_Aborted(t *testing.T) {
	prompt := func(message, def string) (string, error) { return "", ui.ErrAborted }

	if _, err := chooseAddress(config.DefaultPreferences(), false, true, prompt); !errors.Is(err, ui.ErrAborted) {
		t.Errorf("chooseAddress() error = %v, want ErrAborted", err)
	}
}

func TestCheckWiFiSettings(t *testing.T) {
	policy := routerconfig.DefaultPolicy()

	var buf bytes.Buffer
	if err := checkWiFiSettings(&buf, routerconfig.WiFiSettings{SSID: "HomeNet", Password: "Abcdefg123"}, policy); err != nil {
		t.Fatalf("checkWiFiSettings() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be printed for valid settings, got %q", buf.String())
	}

	// One failed rule is left to the caller to print
	if err := checkWiFiSettings(&buf, routerconfig.WiFiSettings{SSID: "HomeNet", Password: "Abcdefgh12" + "é"}, policy); err != nil {
		t.Fatalf("checkWiFiSettings() error = %v", err)
	}
	err := checkWiFiSettings(&buf, routerconfig.WiFiSettings{SSID: "HomeNet", Password: "abcdefghijk"}, policy)
	if !routerconfig.IsMissingCharacterClass(err) {
		t.Fatalf("checkWiFiSettings() error = %v, want MissingCharacterClass", err)
	}
	if buf.Len() != 0 {
		t.Errorf("a single failure should not be listed, got %q", buf.String())
	}

	err = checkWiFiSettings(&buf, routerconfig.WiFiSettings{SSID: "HomeNet", Password: "abc"}, policy)
	if !routerconfig.IsTooShort(err) {
		t.Fatalf("checkWiFiSettings() error = %v, want TooShort first", err)
	}
	for _, s := range []string{"2 error(s)", "1. Too Short", "2. "} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("output missing %q:\n%s", s, buf.String())
		}
	}
}

func TestRememberHosts(t *testing.T) {
	one := []*discovery.Host{{Instance: "Archer C7", Hostname: "router.local.", IP: "192.168.1.1", Port: 80}}
	two := append(one, &discovery.Host{IP: "192.168.1.2", Port: 80})

	t.Run("nickname", func(t *testing.T) {
		registry := config.NewRegistry()
		if err := rememberHosts(registry, one, "upstairs"); err != nil {
			t.Fatalf("rememberHosts() error = %v", err)
		}
		meta := registry.GetRouter("192.168.1.1")
		if meta == nil || meta.Nickname != "upstairs" || meta.Hostname != "router.local." {
			t.Errorf("GetRouter() = %+v", meta)
		}
	})

	t.Run("nickname needs one host", func(t *testing.T) {
		registry := config.NewRegistry()
		if err := rememberHosts(registry, two, "upstairs"); err == nil {
			t.Fatal("rememberHosts() should refuse a nickname for two hosts")
		}
		if len(registry.Routers) != 0 {
			t.Errorf("nothing should be recorded on error, got %v", registry.Routers)
		}
	})

	t.Run("no nickname", func(t *testing.T) {
		registry := config.NewRegistry()
		if err := rememberHosts(registry, two, ""); err != nil {
			t.Fatalf("rememberHosts() error = %v", err)
		}
		if len(registry.Routers) != 2 {
			t.Errorf("Routers = %v, want 2 entries", registry.Routers)
		}
	})
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint bool
	}{
		{"validation error gets a hint", routerconfig.NewTooShortError(10, 3), true},
		{"already rendered", renderedError{routerconfig.NewMissingFieldError(routerconfig.FieldPassword)}, false},
		{"operation failure", routerconfig.NewOperationFailedError("incorrect credentials", nil), false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err)

			if !strings.HasPrefix(buf.String(), "Error: "+tt.err.Error()) {
				t.Errorf("output = %q", buf.String())
			}
			hint := routerconfig.GetTroubleshootingHint(tt.err)
			if strings.Contains(buf.String(), hint) != tt.wantHint {
				t.Errorf("hint shown = %v, want %v:\n%s", !tt.wantHint, tt.wantHint, buf.String())
			}
		})
	}
}
