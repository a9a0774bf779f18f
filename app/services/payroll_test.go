package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

var payrollShifts = []models.Shift{
	{ID: "morning", Name: "Ca Sáng", StartTime: "08:00", EndTime: "12:00", HourlyRate: 25000},
}

func payrollUsers() []models.User {
	return []models.User{
		{ID: "admin1", Name: "Admin", Role: models.RoleAdmin},
		{ID: "u1", Code: "NV01", Name: "Nguyễn Văn A", Role: models.RoleStaff, BaseHourlyRate: 20000},
		{ID: "u2", Code: "NV02", Name: "Trần Thị B", Role: models.RoleStaff, BaseHourlyRate: 30000},
	}
}

func TestSalaryReportFullScenario(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{UserID: "u1", Date: "2025-03-05", Status: models.StatusApproved, ShiftID: "morning", WorkHours: 4, CheckOutTime: 1},
		{UserID: "u1", Date: "2025-03-06", Status: models.StatusApproved, ShiftID: "morning", WorkHours: 5.5, CheckOutTime: 1},
	}
	adjustments := []models.SalaryAdjustment{
		{UserID: "u1", Date: "2025-03-07", Amount: 50000, Type: models.AdjustmentBonus},
		{UserID: "u1", Date: "2025-03-08", Amount: 10000, Type: models.AdjustmentFine},
	}

	report := BuildSalaryReport(payrollUsers(), attendance, adjustments, payrollShifts, "2025-03-01", "2025-03-31", "u1")

	assert.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, 2, row.ShiftCount)
	assert.Equal(t, 9.5, row.Hours)
	assert.Equal(t, 9.5*25000, row.Salary)
	assert.Equal(t, 50000.0, row.Bonus)
	assert.Equal(t, 10000.0, row.Fine)
	assert.Equal(t, 9.5*25000+50000-10000, row.Net)
}

func TestSalaryReportExcludesAdmins(t *testing.T) {
	report := BuildSalaryReport(payrollUsers(), nil, nil, payrollShifts, "2025-03-01", "2025-03-31", "all")

	assert.Len(t, report.Rows, 2)
	for _, row := range report.Rows {
		assert.NotEqual(t, "admin1", row.UserID)
	}
}

func TestSalaryReportSkipsUnapprovedAndOutOfRange(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{UserID: "u1", Date: "2025-03-05", Status: models.StatusPending, ShiftID: "morning", WorkHours: 4, CheckOutTime: 1},
		{UserID: "u1", Date: "2025-02-28", Status: models.StatusApproved, ShiftID: "morning", WorkHours: 4, CheckOutTime: 1},
		{UserID: "u1", Date: "2025-04-01", Status: models.StatusApproved, ShiftID: "morning", WorkHours: 4, CheckOutTime: 1},
	}

	report := BuildSalaryReport(payrollUsers(), attendance, nil, payrollShifts, "2025-03-01", "2025-03-31", "u1")

	assert.Equal(t, 0, report.Rows[0].ShiftCount)
	assert.Equal(t, 0.0, report.Rows[0].Salary)
}

func TestSalaryReportOpenRecordCountsButEarnsNothing(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{UserID: "u1", Date: "2025-03-05", Status: models.StatusApproved, ShiftID: "morning", WorkHours: 0},
	}

	report := BuildSalaryReport(payrollUsers(), attendance, nil, payrollShifts, "2025-03-01", "2025-03-31", "u1")

	row := report.Rows[0]
	assert.Equal(t, 1, row.ShiftCount)
	assert.Equal(t, 0.0, row.Hours)
	assert.Equal(t, 0.0, row.Salary)
}

func TestSalaryReportUsesBaseRateWhenShiftUnknown(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{UserID: "u2", Date: "2025-03-05", Status: models.StatusApproved, ShiftID: "deleted-shift", WorkHours: 3, CheckOutTime: 1},
	}

	report := BuildSalaryReport(payrollUsers(), attendance, nil, payrollShifts, "2025-03-01", "2025-03-31", "u2")

	assert.Equal(t, 3*30000.0, report.Rows[0].Salary)
}

func TestSalaryReportTotalsInvariant(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{UserID: "u1", Date: "2025-03-05", Status: models.StatusApproved, ShiftID: "morning", WorkHours: 4, CheckOutTime: 1},
		{UserID: "u2", Date: "2025-03-05", Status: models.StatusApproved, ShiftID: "morning", WorkHours: 4, CheckOutTime: 1},
	}
	adjustments := []models.SalaryAdjustment{
		{UserID: "u1", Date: "2025-03-06", Amount: 20000, Type: models.AdjustmentBonus},
		{UserID: "u2", Date: "2025-03-06", Amount: 15000, Type: models.AdjustmentFine},
	}

	report := BuildSalaryReport(payrollUsers(), attendance, adjustments, payrollShifts, "2025-03-01", "2025-03-31", "all")

	var salary, bonus, fine, hours float64
	for _, row := range report.Rows {
		salary += row.Salary
		bonus += row.Bonus
		fine += row.Fine
		hours += row.Hours
		assert.Equal(t, row.Salary+row.Bonus-row.Fine, row.Net)
	}
	assert.Equal(t, salary, report.TotalSalary)
	assert.Equal(t, bonus, report.TotalBonus)
	assert.Equal(t, fine, report.TotalFine)
	assert.Equal(t, hours, report.TotalHours)
	assert.Equal(t, report.TotalSalary+report.TotalBonus-report.TotalFine, report.TotalNet)
}
