package discovery

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// Host represents an HTTP service advertised on the local network.
// Routers usually expose their admin page this way.
type Host struct {
	// Instance is the advertised service instance name (e.g., "Archer C7")
	Instance string

	// Hostname is the mDNS hostname (e.g., "router.local.")
	Hostname string

	// IP is the preferred address (IPv4 when available)
	IP string

	// Port is the HTTP port (typically 80)
	Port int

	// Metadata contains the TXT record data
	Metadata map[string]string

	// DiscoveredAt is when the host was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the host
func (h *Host) String() string {
	name := h.Instance
	if name == "" {
		name = h.Hostname
	}
	return fmt.Sprintf("%s at %s:%d", name, h.IP, h.Port)
}

// Address returns the address to pass as --router.
// The port is omitted when it is the HTTP default.
func (h *Host) Address() string {
	if h.Port == DefaultPort || h.Port == 0 {
		return h.IP
	}
	return net.JoinHostPort(h.IP, fmt.Sprint(h.Port))
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (h *Host) GetMetadata(key string) string {
	if h.Metadata == nil {
		return ""
	}
	return h.Metadata[key]
}

var routerKeywords = []string{"router", "gateway", "modem", "wifi", "wlan", "ap"}

// LikelyRouter reports whether the host looks like a home router: it sits on a
// typical gateway address or advertises a router-like name.
func (h *Host) LikelyRouter() bool {
	if ip := net.ParseIP(h.IP).To4(); ip != nil && (ip[3] == 1 || ip[3] == 254) {
		return true
	}

	names := strings.ToLower(h.Instance + " " + h.Hostname)
	for _, word := range strings.FieldsFunc(names, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	}) {
		for _, kw := range routerKeywords {
			if word == kw {
				return true
			}
		}
	}
	return false
}
