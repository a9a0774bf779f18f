package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveCachesWithinTTL(t *testing.T) {
	current := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	calls := 0
	resolver := NewIPResolverWith(
		func() time.Time { return current },
		func() (string, error) {
			calls++
			return "203.0.113.7", nil
		},
	)

	ip, err := resolver.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, "203.0.113.7", ip)

	current = current.Add(4 * time.Minute)
	ip, err = resolver.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, "203.0.113.7", ip)
	assert.Equal(t, 1, calls)
}

func TestResolveRefetchesAfterTTL(t *testing.T) {
	current := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	calls := 0
	resolver := NewIPResolverWith(
		func() time.Time { return current },
		func() (string, error) {
			calls++
			if calls == 1 {
				return "203.0.113.7", nil
			}
			return "203.0.113.8", nil
		},
	)

	ip, _ := resolver.Resolve()
	assert.Equal(t, "203.0.113.7", ip)

	current = current.Add(6 * time.Minute)
	ip, err := resolver.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, "203.0.113.8", ip)
	assert.Equal(t, 2, calls)
}

func TestResolveFallsBackToLoopbackWhenNothingCached(t *testing.T) {
	resolver := NewIPResolverWith(time.Now, func() (string, error) {
		return "", errors.New("network down")
	})

	ip, err := resolver.Resolve()
	assert.Error(t, err)
	assert.Equal(t, "127.0.0.1", ip)
}

func TestResolveKeepsStaleValueOnFetchError(t *testing.T) {
	current := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	calls := 0
	resolver := NewIPResolverWith(
		func() time.Time { return current },
		func() (string, error) {
			calls++
			if calls == 1 {
				return "203.0.113.7", nil
			}
			return "", errors.New("network down")
		},
	)

	ip, _ := resolver.Resolve()
	assert.Equal(t, "203.0.113.7", ip)

	current = current.Add(10 * time.Minute)
	ip, err := resolver.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, "203.0.113.7", ip)
}
