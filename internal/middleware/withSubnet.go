package middleware

import (
	"net/http"
	"net/netip"
	"strings"
)

// WithSubnet lets through only requests whose X-Real-IP falls inside the
// trusted CIDR. An empty or unparsable CIDR rejects everything.
func WithSubnet(cidr string) func(next http.Handler) http.Handler {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(cidr))
	trusted := err == nil

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !trusted {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			ip, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP")))
			if err != nil || !prefix.Contains(ip.Unmap()) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
