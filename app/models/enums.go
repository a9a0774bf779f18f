package models

// UserRole defines the access level of an account.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

// RecordStatus defines the approval state of attendance records and
// shift registrations. Records are created approved in the normal flow.
type RecordStatus string

const (
	StatusPending  RecordStatus = "pending"
	StatusApproved RecordStatus = "approved"
	StatusRejected RecordStatus = "rejected"
)

// AdjustmentType partitions salary adjustments into bonuses and fines.
type AdjustmentType string

const (
	AdjustmentBonus AdjustmentType = "bonus"
	AdjustmentFine  AdjustmentType = "fine"
)

// PermissionKey is a capability flag attached to a user account.
type PermissionKey string

const (
	PermViewDashboard     PermissionKey = "view_dashboard"
	PermManageUsers       PermissionKey = "manage_users"
	PermManageShiftConfig PermissionKey = "manage_shifts_config"
	PermApproveShiftReg   PermissionKey = "approve_shift_reg"
	PermViewReports       PermissionKey = "view_reports"
	PermViewSalary        PermissionKey = "view_salary"
	PermApproveAttendance PermissionKey = "approve_attendance"
	PermManageSettings    PermissionKey = "manage_settings"
	PermManageRules       PermissionKey = "manage_rules"
)

// RolePermissions returns the default permission set granted to a role.
func RolePermissions(role UserRole) []PermissionKey {
	switch role {
	case RoleAdmin:
		return []PermissionKey{
			PermViewDashboard, PermManageUsers, PermManageShiftConfig,
			PermApproveShiftReg, PermViewReports, PermViewSalary,
			PermApproveAttendance, PermManageSettings, PermManageRules,
		}
	case RoleManager:
		return []PermissionKey{
			PermViewDashboard, PermApproveShiftReg, PermViewReports,
			PermApproveAttendance, PermManageShiftConfig,
		}
	default:
		return []PermissionKey{}
	}
}
