package models

// AttendanceRecord is one open-or-closed work session. CheckInTime and
// CheckOutTime are epoch milliseconds; a zero CheckOutTime means the
// record is still open. WorkHours is computed exactly once on checkout
// as (checkOut-checkIn)/3600000, fractional and unrounded.
type AttendanceRecord struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	UserID       string       `json:"user_id" gorm:"not null;index"`
	UserName     string       `json:"user_name"`
	Date         string       `json:"date" gorm:"type:varchar(10);not null;index"`
	CheckInTime  int64        `json:"check_in_time" gorm:"not null"`
	CheckOutTime int64        `json:"check_out_time,omitempty"`
	Status       RecordStatus `json:"status" gorm:"type:varchar(20);not null"`
	IPAddress    string       `json:"ip_address"`
	WorkHours    float64      `json:"work_hours,omitempty"`
	Note         string       `json:"note,omitempty"`
	ShiftID      string       `json:"shift_id,omitempty"`
}

// Open reports whether the session has not been checked out yet.
func (r *AttendanceRecord) Open() bool {
	return r.CheckOutTime == 0
}
