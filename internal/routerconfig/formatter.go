package routerconfig

import (
	"fmt"
	"strings"
)

// MaskPassword replaces every character of a password with '•'
func MaskPassword(password string) string {
	return strings.Repeat("•", len([]rune(password)))
}

// FormatApplyNotice returns the notice shown after WiFi settings were changed.
// The password is included in clear text only when reveal is true.
func FormatApplyNotice(settings WiFiSettings, reveal bool) string {
	password := MaskPassword(settings.Password)
	if reveal {
		password = settings.Password
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Network:  %s\n", settings.SSID))
	b.WriteString(fmt.Sprintf("Password: %s\n", password))
	b.WriteString("\n")
	b.WriteString("IMPORTANT: store these details somewhere safe.")
	return b.String()
}

// FormatPasswordCheck returns a multi-line report of a password check
func FormatPasswordCheck(check *PasswordCheck, policy PasswordPolicy) string {
	var b strings.Builder

	if check.OK() {
		b.WriteString(fmt.Sprintf("✓ Password accepted (%d characters)\n", check.Length))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("✗ Password rejected (%d characters)\n", check.Length))
	for _, err := range check.Errors {
		b.WriteString(fmt.Sprintf("  - %s\n", GetShortErrorMessage(err)))
	}

	b.WriteString("\nRequirements:\n")
	for _, req := range policy.Requirements() {
		b.WriteString(fmt.Sprintf("  • %s\n", req))
	}

	return b.String()
}

// FormatSession returns a one-line summary of the router session
func (r *Router) FormatSession() string {
	if !r.Connected() {
		return "Not connected"
	}

	line := fmt.Sprintf("Connected to %s", r.Address())
	if wifi := r.CurrentWiFi(); wifi != nil {
		line += fmt.Sprintf(" • WiFi: %s", wifi.SSID)
	}
	if pending := r.Pending(); len(pending) > 0 {
		names := make([]string, len(pending))
		for i, op := range pending {
			names[i] = string(op)
		}
		line += fmt.Sprintf(" • busy: %s", strings.Join(names, ", "))
	}
	return line
}
