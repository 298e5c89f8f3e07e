package routerconfig

import (
	"fmt"
	"time"
)

const (
	// DefaultAddress is the router address the form starts with
	DefaultAddress = "192.168.100.254"

	// DefaultUsername is the router admin username the form starts with
	DefaultUsername = "admin"
)

// Form field names used in MissingField/InvalidField errors
const (
	FieldAddress      = "router address"
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldSSID         = "network name"
	FieldWiFiPassword = "network password"
)

// MaxSSIDLength is the WiFi limit on network name length in bytes.
const MaxSSIDLength = 32

// Credentials is the input of a connect operation.
type Credentials struct {
	Address  string // Router address (e.g., "192.168.100.254")
	Username string // Router admin username
	Password string // Router admin password
}

// String returns a representation safe for logs (password elided)
func (c Credentials) String() string {
	return fmt.Sprintf("%s@%s", c.Username, c.Address)
}

// WiFiSettings is the input of an apply operation.
type WiFiSettings struct {
	SSID     string // New network name
	Password string // New network password (subject to the password policy)
}

// CharacterClass is one of the character classes the password policy requires.
type CharacterClass int

const (
	ClassUppercase CharacterClass = iota
	ClassLowercase
	ClassDigit
)

// String returns a human-readable name for the class
func (c CharacterClass) String() string {
	switch c {
	case ClassUppercase:
		return "uppercase letter"
	case ClassLowercase:
		return "lowercase letter"
	case ClassDigit:
		return "digit"
	default:
		return fmt.Sprintf("CharacterClass(%d)", int(c))
	}
}

// SessionState is the connection state of a Router.
type SessionState int

const (
	StateIdle SessionState = iota
	StateConnected
)

// String returns the state name
func (s SessionState) String() string {
	if s == StateConnected {
		return "connected"
	}
	return "idle"
}

// ApplyResult describes a successful WiFi settings change.
type ApplyResult struct {
	// ID identifies this apply in logs
	ID string

	// SSID is the network name now in effect
	SSID string

	// AppliedAt is when the router reported success
	AppliedAt time.Time

	// Duration is how long the apply took
	Duration time.Duration
}
