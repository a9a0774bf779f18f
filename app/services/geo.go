package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const (
	ipCacheTTL = 5 * time.Minute
	fallbackIP = "127.0.0.1"
)

// IPResolver fetches the caller's public IP address with a short-lived
// cache. Resolve never fails hard: on a fetch error it falls back to
// the last known value, or the loopback sentinel when nothing was ever
// fetched. Concurrent calls during cache expiry may issue redundant
// lookups; the fetch is idempotent so that is fine.
type IPResolver struct {
	mu        sync.Mutex
	fetch     func() (string, error)
	now       func() time.Time
	cached    string
	fetchedAt time.Time
}

// NewIPResolver returns a resolver backed by the ipify.com lookup service.
func NewIPResolver() *IPResolver {
	return &IPResolver{
		fetch: fetchPublicIP,
		now:   time.Now,
	}
}

// NewIPResolverWith builds a resolver with an injected clock and fetch
// function, used by tests and callers that need a different source.
func NewIPResolverWith(now func() time.Time, fetch func() (string, error)) *IPResolver {
	return &IPResolver{fetch: fetch, now: now}
}

// Resolve returns the public IP. The returned error is advisory: the
// IP value is always usable, but err is non-nil when the lookup failed
// and no previously fetched value exists.
func (r *IPResolver) Resolve() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != "" && r.now().Sub(r.fetchedAt) < ipCacheTTL {
		return r.cached, nil
	}

	ip, err := r.fetch()
	if err != nil {
		if r.cached != "" {
			return r.cached, nil
		}
		return fallbackIP, err
	}

	r.cached = ip
	r.fetchedAt = r.now()
	return ip, nil
}

func fetchPublicIP() (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get("https://api.ipify.org?format=json")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ip lookup returned status %d", resp.StatusCode)
	}

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return payload.IP, nil
}
