package routerconfig

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/routercfg/internal/logging"
)

const (
	// DefaultConnectDelay is how long a connect takes to complete
	DefaultConnectDelay = 2 * time.Second

	// DefaultApplyDelay is how long a WiFi settings change takes to complete
	DefaultApplyDelay = 3 * time.Second
)

// Authenticator decides whether a set of router credentials is accepted.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) bool
}

// PlaceholderAuthenticator accepts a fixed username with any password of at
// least MinPasswordLength characters. It stands in for a real router login
// and is not a security boundary.
type PlaceholderAuthenticator struct {
	Username          string
	MinPasswordLength int
}

// DefaultAuthenticator returns the placeholder login: "admin" and a password of 4+ characters.
func DefaultAuthenticator() PlaceholderAuthenticator {
	return PlaceholderAuthenticator{
		Username:          DefaultUsername,
		MinPasswordLength: 4,
	}
}

// Authenticate implements Authenticator
func (a PlaceholderAuthenticator) Authenticate(_ context.Context, creds Credentials) bool {
	return creds.Username == a.Username && utf8.RuneCountInString(creds.Password) >= a.MinPasswordLength
}

// Router is a simulated router session. Connect and ApplyWiFi complete after
// a fixed delay; no traffic leaves the process.
type Router struct {
	// ConnectDelay is the artificial duration of Connect
	ConnectDelay time.Duration

	// ApplyDelay is the artificial duration of ApplyWiFi
	ApplyDelay time.Duration

	// Auth decides whether Connect succeeds
	Auth Authenticator

	// Policy is the password policy applied to new WiFi passwords
	Policy PasswordPolicy

	pending *InFlight

	// mu protects the session fields below
	mu      sync.RWMutex
	state   SessionState
	address string
	current *WiFiSettings
}

// NewRouter creates an idle router session with default delays and policy
func NewRouter() *Router {
	return &Router{
		ConnectDelay: DefaultConnectDelay,
		ApplyDelay:   DefaultApplyDelay,
		Auth:         DefaultAuthenticator(),
		Policy:       DefaultPolicy(),
		pending:      NewInFlight(),
	}
}

// SetDelays overrides both artificial delays
func (r *Router) SetDelays(connect, apply time.Duration) {
	r.ConnectDelay = connect
	r.ApplyDelay = apply
}

// State returns the session state
func (r *Router) State() SessionState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Connected reports whether the session is connected
func (r *Router) Connected() bool {
	return r.State() == StateConnected
}

// Address returns the address of the connected router, or "" when idle
func (r *Router) Address() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.address
}

// CurrentWiFi returns the last applied WiFi settings, or nil
func (r *Router) CurrentWiFi() *WiFiSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return nil
	}
	settings := *r.current
	return &settings
}

// Pending returns the operations currently in flight
func (r *Router) Pending() []Operation {
	return r.pending.List()
}

// Busy reports whether op is in flight
func (r *Router) Busy(op Operation) bool {
	return r.pending.Contains(op)
}

// Connect logs in to the router. Missing fields are rejected immediately;
// otherwise the call takes ConnectDelay before the Authenticator decides.
func (r *Router) Connect(ctx context.Context, creds Credentials) error {
	if errs := ValidateCredentials(creds); len(errs) > 0 {
		return errs[0]
	}

	if !r.pending.Begin(OpConnect) {
		return NewBusyError(OpConnect)
	}
	defer r.pending.End(OpConnect)

	id := uuid.NewString()
	logging.LogOperation(OpConnect, id, "started", zap.String("router", creds.String()))

	if err := wait(ctx, r.ConnectDelay); err != nil {
		logging.LogOperation(OpConnect, id, "canceled")
		return NewOperationFailedError("could not connect to the router", err)
	}

	if !r.auth().Authenticate(ctx, creds) {
		logging.LogOperation(OpConnect, id, "rejected")
		return NewOperationFailedError("incorrect credentials", nil)
	}

	r.mu.Lock()
	r.state = StateConnected
	r.address = creds.Address
	r.mu.Unlock()

	logging.LogOperation(OpConnect, id, "connected", zap.String("router", creds.Address))
	return nil
}

// Disconnect returns the session to idle
func (r *Router) Disconnect() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = StateIdle
	r.address = ""
}

// ApplyWiFi changes the router's WiFi name and password.
// The session must be connected and the settings must pass validation;
// the change then takes ApplyDelay to complete.
func (r *Router) ApplyWiFi(ctx context.Context, settings WiFiSettings) (*ApplyResult, error) {
	if !r.Connected() {
		return nil, NewNotConnectedError()
	}

	if errs := ValidateWiFiSettings(settings, r.Policy); len(errs) > 0 {
		return nil, errs[0]
	}

	if !r.pending.Begin(OpApplyWiFi) {
		return nil, NewBusyError(OpApplyWiFi)
	}
	defer r.pending.End(OpApplyWiFi)

	id := uuid.NewString()
	start := time.Now()
	logging.LogOperation(OpApplyWiFi, id, "started", zap.String("ssid", settings.SSID))

	if err := wait(ctx, r.ApplyDelay); err != nil {
		logging.LogOperation(OpApplyWiFi, id, "canceled")
		return nil, NewOperationFailedError("could not change the WiFi settings", err)
	}

	r.mu.Lock()
	applied := settings
	r.current = &applied
	r.mu.Unlock()

	result := &ApplyResult{
		ID:        id,
		SSID:      settings.SSID,
		AppliedAt: time.Now(),
		Duration:  time.Since(start),
	}

	logging.LogOperation(OpApplyWiFi, id, "applied",
		zap.String("ssid", settings.SSID),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

func (r *Router) auth() Authenticator {
	if r.Auth == nil {
		return DefaultAuthenticator()
	}
	return r.Auth
}

// wait blocks for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for router: %w", ctx.Err())
	}
}
