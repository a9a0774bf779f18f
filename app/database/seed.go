package database

import (
	"database/sql"
	"log"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

var defaultShifts = []models.Shift{
	{ID: "1", Name: "Ca Sáng", StartTime: "08:00", EndTime: "12:00", AllowedLateMinutes: 15, HourlyRate: 25000},
	{ID: "2", Name: "Ca Chiều", StartTime: "13:00", EndTime: "17:00", AllowedLateMinutes: 10, HourlyRate: 25000},
	{ID: "3", Name: "Ca Tối", StartTime: "18:00", EndTime: "22:00", AllowedLateMinutes: 5, HourlyRate: 30000},
}

var defaultDepartments = []string{"Gói Hàng", "Đóng Hàng", "Vận Chuyển", "Kế Toán", "Bán Hàng"}

const defaultRules = "1. Đi làm đúng giờ.\n2. Mặc đồng phục đúng quy định.\n3. Hoàn thành công việc được giao.\n4. Tuyệt đối tuân thủ giờ check-in/out."

func defaultUsers() []models.User {
	return []models.User{
		{
			ID: "admin1", Code: "AD01", Name: "Quản Trị Viên", Email: "admin@cafune.com",
			Password: "123", Role: models.RoleAdmin,
			Permissions: models.RolePermissions(models.RoleAdmin),
			FirstLogin:  false, Department: "Ban Giám Đốc",
		},
		{
			ID: "manager1", Code: "QL01", Name: "Lê Quản Lý", Email: "manager@cafune.com",
			Password: "123", Role: models.RoleManager,
			Permissions: models.RolePermissions(models.RoleManager),
			FirstLogin:  false, Department: "Nhân Sự",
		},
		{
			ID: "staff1", Code: "NV01", Name: "Nguyễn Văn A", Email: "nva@cafune.com",
			Password: "123", Role: models.RoleStaff,
			Permissions: models.RolePermissions(models.RoleStaff),
			FirstLogin:  false, Phone: "0901234567", BankAccount: "123456789",
			BaseHourlyRate: 25000, Department: "Gói Hàng",
		},
	}
}

// SeedDefaults populates empty tables with the bootstrap dataset:
// demo accounts, the three standard shifts, department names, company
// rules and the settings singleton. Existing data is never touched.
func SeedDefaults(db *sql.DB) error {
	var count int

	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		for _, u := range defaultUsers() {
			user := u
			if err := CreateUser(db, &user); err != nil {
				return err
			}
		}
		log.Println("Seeded default user accounts")
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM shifts").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		for _, s := range defaultShifts {
			shift := s
			if err := SaveShift(db, &shift); err != nil {
				return err
			}
		}
		log.Println("Seeded default shifts")
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM departments").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if err := SaveDepartments(db, defaultDepartments); err != nil {
			return err
		}
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM app_settings").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if err := SaveSettings(db, models.DefaultSettings()); err != nil {
			return err
		}
		log.Println("Seeded default settings")
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM company_rules").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if err := SaveRules(db, defaultRules); err != nil {
			return err
		}
	}

	return nil
}
