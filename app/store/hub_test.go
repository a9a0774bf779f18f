package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubPublishReachesSubscribers(t *testing.T) {
	hub := NewHub()

	var got []string
	hub.Subscribe(SetAttendance, func(set string) {
		got = append(got, set)
	})

	hub.Publish(SetAttendance)
	hub.Publish(SetAttendance)

	assert.Equal(t, []string{SetAttendance, SetAttendance}, got)
}

func TestHubPublishIsScopedToSet(t *testing.T) {
	hub := NewHub()

	calls := 0
	hub.Subscribe(SetShifts, func(string) { calls++ })

	hub.Publish(SetUsers)
	hub.Publish(SetAttendance)

	assert.Equal(t, 0, calls)
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()

	calls := 0
	unsubscribe := hub.Subscribe(SetUsers, func(string) { calls++ })

	hub.Publish(SetUsers)
	unsubscribe()
	hub.Publish(SetUsers)
	// Unsubscribing twice is harmless.
	unsubscribe()

	assert.Equal(t, 1, calls)
}

func TestHubMultipleSubscribers(t *testing.T) {
	hub := NewHub()

	first, second := 0, 0
	hub.Subscribe(SetSettings, func(string) { first++ })
	hub.Subscribe(SetSettings, func(string) { second++ })

	hub.Publish(SetSettings)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestHubPublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()

	assert.NotPanics(t, func() { hub.Publish(SetAdjustments) })
}
