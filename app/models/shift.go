package models

// Shift is a named recurring daily work window. Times are zero-padded
// "HH:mm" local wall-clock strings; startTime < endTime is assumed
// (no overnight-spanning shifts).
type Shift struct {
	ID                 string  `json:"id" gorm:"primaryKey"`
	Name               string  `json:"name" validate:"required"`
	StartTime          string  `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime            string  `json:"end_time" gorm:"type:varchar(5);not null"`
	AllowedLateMinutes int     `json:"allowed_late_minutes"`
	HourlyRate         float64 `json:"hourly_rate"`
}

// ShiftRegistration is a claim that a user will work a shift on a date.
// UserName and ShiftName are write-time snapshots, never re-joined.
type ShiftRegistration struct {
	ID        string       `json:"id" gorm:"primaryKey"`
	UserID    string       `json:"user_id" gorm:"not null;index"`
	UserName  string       `json:"user_name"`
	ShiftID   string       `json:"shift_id" gorm:"not null"`
	ShiftName string       `json:"shift_name"`
	Date      string       `json:"date" gorm:"type:varchar(10);not null;index"`
	Status    RecordStatus `json:"status" gorm:"type:varchar(20);not null"`
}
