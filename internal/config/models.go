package config

import (
	"time"

	"github.com/muurk/routercfg/internal/routerconfig"
)

// Registry represents the entire user configuration file.
// It stores application preferences and metadata for routers seen on the network.
type Registry struct {
	Version     int                    `yaml:"version"`
	Routers     map[string]*RouterMeta `yaml:"routers,omitempty"` // Keyed by router address
	Preferences *Preferences           `yaml:"preferences,omitempty"`
}

// RouterMeta represents user-defined metadata for a single router.
type RouterMeta struct {
	Nickname string    `yaml:"nickname,omitempty"`  // User-friendly name
	Hostname string    `yaml:"hostname,omitempty"`  // Last advertised mDNS hostname
	LastSeen time.Time `yaml:"last_seen,omitempty"` // Last discovery time
}

// Preferences represents application-wide user preferences.
// Note: Passwords are NEVER stored - they are always prompted from the user.
type Preferences struct {
	RouterAddress   string                      `yaml:"router_address"`   // Router address the form starts with
	Username        string                      `yaml:"username"`         // Router admin username the form starts with
	ConnectDelay    time.Duration               `yaml:"connect_delay"`    // Simulated connect duration
	ApplyDelay      time.Duration               `yaml:"apply_delay"`      // Simulated WiFi apply duration
	DiscoverTimeout int                         `yaml:"discover_timeout"` // mDNS discovery timeout in seconds
	Policy          routerconfig.PasswordPolicy `yaml:"password_policy"`  // WiFi password policy
}

// DefaultPreferences returns the preferences used when no config file exists.
func DefaultPreferences() *Preferences {
	return &Preferences{
		RouterAddress:   routerconfig.DefaultAddress,
		Username:        routerconfig.DefaultUsername,
		ConnectDelay:    routerconfig.DefaultConnectDelay,
		ApplyDelay:      routerconfig.DefaultApplyDelay,
		DiscoverTimeout: 5,
		Policy:          routerconfig.DefaultPolicy(),
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Routers:     make(map[string]*RouterMeta),
		Preferences: DefaultPreferences(),
	}
}

// GetRouter retrieves router metadata by address.
// Returns nil if the router doesn't exist in the registry.
func (r *Registry) GetRouter(address string) *RouterMeta {
	return r.Routers[address]
}

// EnsureRouter ensures a router entry exists in the registry.
// Returns the router entry (existing or newly created).
func (r *Registry) EnsureRouter(address string) *RouterMeta {
	if r.Routers == nil {
		r.Routers = make(map[string]*RouterMeta)
	}

	if router, exists := r.Routers[address]; exists {
		return router
	}

	router := &RouterMeta{}
	r.Routers[address] = router
	return router
}

// UpdateRouterLastSeen records a discovery of the router at address.
func (r *Registry) UpdateRouterLastSeen(address, hostname string) {
	router := r.EnsureRouter(address)
	router.LastSeen = time.Now()
	if hostname != "" {
		router.Hostname = hostname
	}
}

// SetRouterNickname sets a user-friendly nickname for a router.
func (r *Registry) SetRouterNickname(address, nickname string) {
	router := r.EnsureRouter(address)
	router.Nickname = nickname
}

// NewSession creates a router session configured from the preferences.
func (p *Preferences) NewSession() *routerconfig.Router {
	router := routerconfig.NewRouter()
	router.SetDelays(p.ConnectDelay, p.ApplyDelay)
	router.Policy = p.Policy
	return router
}

// Credentials returns the connect form defaults. The password is always empty.
func (p *Preferences) Credentials() routerconfig.Credentials {
	return routerconfig.Credentials{
		Address:  p.RouterAddress,
		Username: p.Username,
	}
}

// fillDefaults replaces zero values left by a partial config file.
func (p *Preferences) fillDefaults() {
	def := DefaultPreferences()
	if p.RouterAddress == "" {
		p.RouterAddress = def.RouterAddress
	}
	if p.Username == "" {
		p.Username = def.Username
	}
	if p.ConnectDelay < 0 {
		p.ConnectDelay = def.ConnectDelay
	}
	if p.ApplyDelay < 0 {
		p.ApplyDelay = def.ApplyDelay
	}
	if p.DiscoverTimeout <= 0 {
		p.DiscoverTimeout = def.DiscoverTimeout
	}
	if p.Policy.MinLength <= 0 {
		p.Policy = def.Policy
	}
}
