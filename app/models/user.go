package models

// User is an employee account. Password is stored as-is to stay
// compatible with the legacy dataset; see routes/auth before reusing
// this in another deployment.
type User struct {
	ID             string          `json:"id" gorm:"primaryKey"`
	Code           string          `json:"code,omitempty"`
	Name           string          `json:"name" validate:"required"`
	Email          string          `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password       string          `json:"-"`
	Role           UserRole        `json:"role" gorm:"type:varchar(20);not null"`
	Permissions    []PermissionKey `json:"permissions" gorm:"-"`
	Phone          string          `json:"phone,omitempty"`
	BankAccount    string          `json:"bank_account,omitempty"`
	FirstLogin     bool            `json:"first_login"`
	BaseHourlyRate float64         `json:"base_hourly_rate,omitempty"`
	Department     string          `json:"department,omitempty"`
	Avatar         string          `json:"avatar,omitempty"`
}

// HasPermission reports whether the user carries the given capability.
func (u *User) HasPermission(key PermissionKey) bool {
	for _, p := range u.Permissions {
		if p == key {
			return true
		}
	}
	return false
}
