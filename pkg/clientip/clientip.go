package clientip

import (
	"net"
	"net/http"
	"strings"
)

// RealClientIP returns the peer address of r without its port. Forwarding
// headers are ignored so clients cannot pick their own rate-limit bucket.
func RealClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}
