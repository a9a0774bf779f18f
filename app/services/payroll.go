package services

import (
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

// SalaryRow is one user's payroll line over the report range.
type SalaryRow struct {
	UserID     string  `json:"user_id"`
	Code       string  `json:"code,omitempty"`
	Name       string  `json:"name"`
	ShiftCount int     `json:"shift_count"`
	Hours      float64 `json:"hours"`
	Salary     float64 `json:"salary"`
	Bonus      float64 `json:"bonus"`
	Fine       float64 `json:"fine"`
	Net        float64 `json:"net"`
	BaseRate   float64 `json:"base_rate,omitempty"`
}

// SalaryReport aggregates payroll rows with their totals. TotalNet is
// always TotalSalary + TotalBonus - TotalFine.
type SalaryReport struct {
	Rows        []SalaryRow `json:"rows"`
	TotalHours  float64     `json:"total_hours"`
	TotalSalary float64     `json:"total_salary"`
	TotalBonus  float64     `json:"total_bonus"`
	TotalFine   float64     `json:"total_fine"`
	TotalNet    float64     `json:"total_net"`
}

// BuildSalaryReport computes per-user hours, base pay, bonuses, fines
// and net pay over [startDate, endDate] (inclusive, "YYYY-MM-DD").
// Admin accounts are excluded; userFilter narrows the report to one
// user when non-empty and not "all". Each record is paid at its
// shift's hourly rate when the shift still resolves, otherwise at the
// user's base rate (0 when unset). The result is deterministic for a
// fixed snapshot; no rounding is applied here.
func BuildSalaryReport(users []models.User, attendance []models.AttendanceRecord, adjustments []models.SalaryAdjustment, shifts []models.Shift, startDate, endDate, userFilter string) SalaryReport {
	report := SalaryReport{Rows: make([]SalaryRow, 0)}

	for _, user := range users {
		if user.Role == models.RoleAdmin {
			continue
		}
		if userFilter != "" && userFilter != "all" && user.ID != userFilter {
			continue
		}

		row := SalaryRow{UserID: user.ID, Code: user.Code, Name: user.Name, BaseRate: user.BaseHourlyRate}

		for _, r := range attendance {
			if r.UserID != user.ID || r.Status != models.StatusApproved {
				continue
			}
			if r.Date < startDate || r.Date > endDate {
				continue
			}
			row.ShiftCount++
			if r.WorkHours <= 0 {
				continue
			}
			row.Hours += r.WorkHours
			rate := user.BaseHourlyRate
			if shift := findShift(shifts, r.ShiftID); shift != nil {
				rate = shift.HourlyRate
			}
			row.Salary += r.WorkHours * rate
		}

		for _, adj := range adjustments {
			if adj.UserID != user.ID || adj.Date < startDate || adj.Date > endDate {
				continue
			}
			switch adj.Type {
			case models.AdjustmentBonus:
				row.Bonus += adj.Amount
			case models.AdjustmentFine:
				row.Fine += adj.Amount
			}
		}

		row.Net = row.Salary + row.Bonus - row.Fine

		report.TotalHours += row.Hours
		report.TotalSalary += row.Salary
		report.TotalBonus += row.Bonus
		report.TotalFine += row.Fine
		report.Rows = append(report.Rows, row)
	}

	report.TotalNet = report.TotalSalary + report.TotalBonus - report.TotalFine
	return report
}
