package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

var dashNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

var dashShifts = []models.Shift{
	{ID: "morning", Name: "Ca Sáng", StartTime: "08:00", EndTime: "12:00", AllowedLateMinutes: 15, HourlyRate: 25000},
}

func dashUsers() []models.User {
	return []models.User{
		{ID: "admin1", Name: "Admin", Role: models.RoleAdmin},
		{ID: "u1", Code: "NV01", Name: "Nguyễn Văn A", Role: models.RoleStaff, Department: "Pha chế"},
		{ID: "u2", Code: "NV02", Name: "Trần Thị B", Role: models.RoleStaff},
		{ID: "u3", Code: "NV03", Name: "Lê Văn C", Role: models.RoleStaff},
	}
}

func at(hour, min int) int64 {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC).UnixMilli()
}

func TestBuildDashboardCounts(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{ID: "r1", UserID: "u1", UserName: "Nguyễn Văn A", Date: "2025-03-10", CheckInTime: at(8, 10), ShiftID: "morning"},
		{ID: "r2", UserID: "u2", UserName: "Trần Thị B", Date: "2025-03-10", CheckInTime: at(8, 20),
			CheckOutTime: at(11, 50), WorkHours: 3.5, ShiftID: "morning"},
	}

	snap := BuildDashboard(dashUsers(), dashShifts, attendance, dashNow)

	assert.Equal(t, 3, snap.TotalStaff)
	assert.Equal(t, 1, snap.CurrentlyWorking)
	assert.Equal(t, 1, snap.FinishedToday)
	assert.Equal(t, 2, snap.ActualPresent)
	assert.Len(t, snap.AbsentStaff, 1)
	assert.Equal(t, "u3", snap.AbsentStaff[0].ID)
	assert.InDelta(t, 200.0/3.0, snap.ParticipationRate, 1e-9)
	assert.Equal(t, AssessmentGood, snap.AssessmentTier)
	assert.Equal(t, "Ca Sáng (08:00 - 12:00)", snap.ActiveShiftName)
}

func TestBuildDashboardLateBoundary(t *testing.T) {
	// Allowed late minutes is 15, so 08:15 is still on time and 08:16
	// is late.
	attendance := []models.AttendanceRecord{
		{ID: "r1", UserID: "u1", Date: "2025-03-10", CheckInTime: at(8, 15), ShiftID: "morning"},
		{ID: "r2", UserID: "u2", Date: "2025-03-10", CheckInTime: at(8, 16), ShiftID: "morning"},
	}

	snap := BuildDashboard(dashUsers(), dashShifts, attendance, dashNow)

	assert.Equal(t, 1, snap.Performance.OnTime)
	assert.Equal(t, 1, snap.Performance.Late)
	assert.Equal(t, 50, snap.Performance.Score)
}

func TestBuildDashboardUnknownShiftCountsOnTime(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{ID: "r1", UserID: "u1", Date: "2025-03-10", CheckInTime: at(13, 0), ShiftID: "deleted-shift"},
	}

	snap := BuildDashboard(dashUsers(), dashShifts, attendance, dashNow)

	assert.Equal(t, 1, snap.Performance.OnTime)
	assert.Equal(t, 0, snap.Performance.Late)
}

func TestBuildDashboardEarlyLeavers(t *testing.T) {
	attendance := []models.AttendanceRecord{
		// 3.5 worked on a 4h shift, half an hour short: flagged.
		{ID: "r1", UserID: "u1", Date: "2025-03-10", CheckInTime: at(8, 0),
			CheckOutTime: at(11, 30), WorkHours: 3.5, ShiftID: "morning"},
		// 3.8 worked, within the 0.25h tolerance: not flagged.
		{ID: "r2", UserID: "u2", Date: "2025-03-10", CheckInTime: at(8, 0),
			CheckOutTime: at(11, 48), WorkHours: 3.8, ShiftID: "morning"},
	}

	snap := BuildDashboard(dashUsers(), dashShifts, attendance, dashNow)

	assert.Len(t, snap.EarlyLeavers, 1)
	assert.Equal(t, "r1", snap.EarlyLeavers[0].Record.ID)
	assert.InDelta(t, 0.5, snap.EarlyLeavers[0].MissingHours, 1e-9)
}

func TestBuildDashboardLowParticipationAlert(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{ID: "r1", UserID: "u1", Date: "2025-03-10", CheckInTime: at(8, 0), ShiftID: "morning"},
	}

	snap := BuildDashboard(dashUsers(), dashShifts, attendance, dashNow)

	assert.Equal(t, AssessmentAlert, snap.AssessmentTier)
	assert.Contains(t, snap.Assessment, "CẢNH BÁO")
}

func TestBuildDashboardMostlyLateCaution(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{ID: "r1", UserID: "u1", Date: "2025-03-10", CheckInTime: at(9, 0), ShiftID: "morning"},
		{ID: "r2", UserID: "u2", Date: "2025-03-10", CheckInTime: at(9, 30), ShiftID: "morning"},
	}

	snap := BuildDashboard(dashUsers(), dashShifts, attendance, dashNow)

	assert.Equal(t, AssessmentCaution, snap.AssessmentTier)
	assert.Contains(t, snap.Assessment, "LƯU Ý")
}

func TestBuildDashboardActivityFeed(t *testing.T) {
	var attendance []models.AttendanceRecord
	for i := 0; i < 8; i++ {
		attendance = append(attendance, models.AttendanceRecord{
			ID: fmt.Sprintf("r%d", i), UserID: "u1", Date: "2025-03-10",
			CheckInTime: at(8, i), CheckOutTime: at(9, i), WorkHours: 1, ShiftID: "morning",
		})
	}

	snap := BuildDashboard(dashUsers(), dashShifts, attendance, dashNow)

	// 8 closed records produce 16 events, capped at the 10 newest.
	assert.Len(t, snap.RecentActivity, 10)
	for i := 1; i < len(snap.RecentActivity); i++ {
		assert.GreaterOrEqual(t, snap.RecentActivity[i-1].Time, snap.RecentActivity[i].Time)
	}
	assert.Equal(t, "check-out", snap.RecentActivity[0].Type)
}

func TestBuildDashboardOutsideShiftHours(t *testing.T) {
	night := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)

	snap := BuildDashboard(dashUsers(), dashShifts, nil, night)

	assert.Equal(t, "Ngoài giờ làm việc", snap.ActiveShiftName)
	assert.Equal(t, 100, snap.Performance.Score)
}

func TestBuildDashboardIsDeterministic(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{ID: "r1", UserID: "u1", UserName: "Nguyễn Văn A", Date: "2025-03-10", CheckInTime: at(8, 10), ShiftID: "morning"},
		{ID: "r2", UserID: "u2", UserName: "Trần Thị B", Date: "2025-03-10", CheckInTime: at(8, 20),
			CheckOutTime: at(11, 50), WorkHours: 3.5, ShiftID: "morning"},
	}

	first := BuildDashboard(dashUsers(), dashShifts, attendance, dashNow)
	second := BuildDashboard(dashUsers(), dashShifts, attendance, dashNow)

	assert.Equal(t, first, second)
}
