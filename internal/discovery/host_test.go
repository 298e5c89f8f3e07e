package discovery

import "testing"

func TestHost_String(t *testing.T) {
	tests := []struct {
		host *Host
		want string
	}{
		{&Host{Instance: "Home Router", Hostname: "router.local.", IP: "192.168.1.1", Port: 80}, "Home Router at 192.168.1.1:80"},
		{&Host{Hostname: "router.local.", IP: "192.168.1.1", Port: 80}, "router.local. at 192.168.1.1:80"},
	}

	for _, tt := range tests {
		if got := tt.host.String(); got != tt.want {
			t.Errorf("Host.String() = %v, want %v", got, tt.want)
		}
	}
}

func TestHost_Address(t *testing.T) {
	tests := []struct {
		name string
		host *Host
		want string
	}{
		{"standard HTTP port", &Host{IP: "192.168.1.1", Port: 80}, "192.168.1.1"},
		{"custom port", &Host{IP: "10.0.0.1", Port: 8080}, "10.0.0.1:8080"},
		{"IPv6 custom port", &Host{IP: "fe80::1", Port: 8080}, "[fe80::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.host.Address(); got != tt.want {
				t.Errorf("Host.Address() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHost_GetMetadata(t *testing.T) {
	host := &Host{Metadata: map[string]string{"path": "/"}}

	if got := host.GetMetadata("path"); got != "/" {
		t.Errorf("GetMetadata(path) = %q, want /", got)
	}
	if got := host.GetMetadata("missing"); got != "" {
		t.Errorf("GetMetadata(missing) = %q, want empty", got)
	}

	var empty Host
	if got := empty.GetMetadata("path"); got != "" {
		t.Errorf("GetMetadata on nil map = %q, want empty", got)
	}
}

func TestHost_LikelyRouter(t *testing.T) {
	tests := []struct {
		name string
		host Host
		want bool
	}{
		{"gateway .1 address", Host{IP: "192.168.0.1"}, true},
		{"default router address", Host{IP: "192.168.100.254"}, true},
		{"router in instance name", Host{Instance: "TP-Link Router", IP: "192.168.0.50"}, true},
		{"gateway hostname", Host{Hostname: "gateway.local.", IP: "192.168.0.50"}, true},
		{"printer", Host{Instance: "Office Printer", Hostname: "printer.local.", IP: "192.168.0.37"}, false},
		{"keyword inside another word", Host{Hostname: "laptop.local.", IP: "192.168.0.12"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.host.LikelyRouter(); got != tt.want {
				t.Errorf("LikelyRouter() = %v, want %v", got, tt.want)
			}
		})
	}
}
