package discovery

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/routercfg/internal/logging"
)

const (
	// ServiceType is the mDNS service type routers advertise their admin page under
	ServiceType = "_http._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for host discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is the default HTTP port
	DefaultPort = 80
)

// Scanner handles mDNS host discovery
type Scanner struct {
	// Timeout is the maximum time to wait for discovery
	Timeout time.Duration

	// RoutersOnly drops hosts that do not look like routers
	RoutersOnly bool
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan discovers HTTP hosts on the local network until the timeout elapses
// or ctx is canceled. Results are sorted by IP and deduplicated.
func (s *Scanner) Scan(ctx context.Context) ([]*Host, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var (
		mu    sync.Mutex
		hosts []*Host
	)
	go func() {
		for entry := range entries {
			host := s.parseServiceEntry(entry)
			if host == nil {
				continue
			}
			logging.Debug("Discovered host", zap.String("host", host.String()))

			mu.Lock()
			hosts = append(hosts, host)
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return dedupe(hosts), nil
}

// parseServiceEntry converts a zeroconf service entry to a Host.
// Returns nil if the entry has no usable address or is filtered out.
func (s *Scanner) parseServiceEntry(entry *zeroconf.ServiceEntry) *Host {
	if entry == nil {
		return nil
	}

	// Prefer IPv4
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	}
	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	// TXT records are in "key=value" format
	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			metadata[parts[0]] = ""
		}
	}

	host := &Host{
		Instance:     entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}

	if s.RoutersOnly && !host.LikelyRouter() {
		return nil
	}
	return host
}

// dedupe keeps the first host per address and sorts by IP
func dedupe(hosts []*Host) []*Host {
	seen := make(map[string]bool, len(hosts))
	out := make([]*Host, 0, len(hosts))
	for _, h := range hosts {
		key := h.Address()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return bytes.Compare(net.ParseIP(out[i].IP).To16(), net.ParseIP(out[j].IP).To16()) < 0
	})
	return out
}

// ScanForRouters is a convenience function that scans for likely routers
func ScanForRouters(ctx context.Context, timeout time.Duration) ([]*Host, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	scanner.RoutersOnly = true
	return scanner.Scan(ctx)
}
