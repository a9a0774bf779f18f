package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinReminderWindow(t *testing.T) {
	day := func(hour, min int) time.Time {
		return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
	}

	cases := []struct {
		name       string
		now        time.Time
		start, end string
		want       bool
	}{
		{"half hour before start", day(7, 30), "08:00", "12:00", true},
		{"just before start", day(7, 59), "08:00", "12:00", true},
		{"at start", day(8, 0), "08:00", "12:00", true},
		{"late but shift running", day(8, 10), "08:00", "12:00", true},
		{"mid shift", day(10, 0), "08:00", "12:00", true},
		{"at end", day(12, 0), "08:00", "12:00", true},
		{"too early", day(7, 29), "08:00", "12:00", false},
		{"after end", day(12, 1), "08:00", "12:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := withinReminderWindow(tc.now, tc.now.Format("15:04"), tc.start, tc.end)
			assert.Equal(t, tc.want, got)
		})
	}
}
