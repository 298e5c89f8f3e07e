// Package discovery finds routers on the local network using multicast DNS.
//
// Most home routers advertise their admin page as an "_http._tcp" service.
// The Scanner browses for that service type for a fixed time and returns the
// hosts it saw, optionally filtered to the ones that look like routers.
//
// # Usage Example
//
//	hosts, err := discovery.ScanForRouters(ctx, 5*time.Second)
//	if err != nil {
//	    return err
//	}
//	for _, h := range hosts {
//	    fmt.Println(h.Address())
//	}
//
// Discovery is a convenience only. The router session never talks to the
// discovered host.
package discovery
