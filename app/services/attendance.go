package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

const millisPerHour = 3600000

// FindActiveRecord scans the user's attendance records and returns the
// open one, or nil. At most one open record per user should exist; the
// store does not enforce that, so callers must check before creating a
// new session.
func FindActiveRecord(records []models.AttendanceRecord, userID string) *models.AttendanceRecord {
	for i := range records {
		if records[i].UserID == userID && records[i].Open() {
			return &records[i]
		}
	}
	return nil
}

// NewCheckIn builds the attendance record for an approved check-in at
// the given instant. UserName is a write-time snapshot so later renames
// do not rewrite history.
func NewCheckIn(user *models.User, shiftID, ip string, now time.Time) models.AttendanceRecord {
	return models.AttendanceRecord{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		UserName:    user.Name,
		Date:        now.Format("2006-01-02"),
		CheckInTime: now.UnixMilli(),
		Status:      models.StatusApproved,
		IPAddress:   ip,
		ShiftID:     shiftID,
	}
}

// CloseRecord stamps the checkout time and computes the worked hours
// as exact fractional hours, no rounding.
func CloseRecord(record *models.AttendanceRecord, now time.Time) {
	record.CheckOutTime = now.UnixMilli()
	record.WorkHours = float64(record.CheckOutTime-record.CheckInTime) / millisPerHour
}
