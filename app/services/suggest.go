package services

import (
	"fmt"
	"time"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

// earlyCheckInWindow is how long before a registered shift starts that
// the shift already counts as the relevant one.
const earlyCheckInWindow = 30 * time.Minute

// SuggestShift picks the most relevant shift for a user right now.
// An approved registration for today whose window (start - 30min,
// through end) contains now wins; otherwise the first configured shift
// whose [start, end] window contains the current time of day. Returns
// nil when nothing matches; the caller supplies its own default.
func SuggestShift(now time.Time, shifts []models.Shift, userRegistrations []models.ShiftRegistration) *models.Shift {
	today := now.Format("2006-01-02")

	for _, reg := range userRegistrations {
		if reg.Date != today || reg.Status != models.StatusApproved {
			continue
		}
		shift := findShift(shifts, reg.ShiftID)
		if shift == nil {
			continue
		}
		start := clockOn(now, shift.StartTime)
		end := clockOn(now, shift.EndTime)
		if !now.Before(start.Add(-earlyCheckInWindow)) && !now.After(end) {
			return shift
		}
	}

	currentHM := now.Format("15:04")
	for i := range shifts {
		if currentHM >= shifts[i].StartTime && currentHM <= shifts[i].EndTime {
			return &shifts[i]
		}
	}
	return nil
}

func findShift(shifts []models.Shift, id string) *models.Shift {
	for i := range shifts {
		if shifts[i].ID == id {
			return &shifts[i]
		}
	}
	return nil
}

// clockOn anchors a zero-padded "HH:mm" wall-clock string on the date
// of the given instant. Malformed strings resolve to midnight.
func clockOn(day time.Time, hm string) time.Time {
	var h, m int
	fmt.Sscanf(hm, "%d:%d", &h, &m)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}
