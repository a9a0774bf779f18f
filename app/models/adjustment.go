package models

// SalaryAdjustment is a one-off bonus or fine applied to a user's pay
// for a given date. Amount is always positive; Type decides the sign.
// UserName is a write-time snapshot like on attendance records.
// Adjustments are immutable once created.
type SalaryAdjustment struct {
	ID       string         `json:"id" gorm:"primaryKey"`
	UserID   string         `json:"user_id" gorm:"not null;index"`
	UserName string         `json:"user_name"`
	Date     string         `json:"date" gorm:"type:varchar(10);not null"`
	Amount   float64        `json:"amount" validate:"gt=0"`
	Type     AdjustmentType `json:"type" gorm:"type:varchar(10);not null"`
	Reason   string         `json:"reason"`
}
