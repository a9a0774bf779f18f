package staff

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/services"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

const defaultPassword = "123"

// newEmployeeCode derives a short unique code from the clock, the same
// shape the seed data uses (NV01, NV02, ...).
func newEmployeeCode() string {
	ms := time.Now().UnixMilli()
	return fmt.Sprintf("NV%04d", ms%10000)
}

func ListUsersAPI(c *fiber.Ctx) error {
	users, err := database.GetAllUsers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

func CreateUserAPI(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if user.Name == "" || user.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Tên và email là bắt buộc."})
	}
	switch user.Role {
	case models.RoleAdmin, models.RoleManager, models.RoleStaff:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role"})
	}

	db := config.GetDB()
	if _, err := database.GetUserByEmail(db, user.Email); err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "Email đã được sử dụng."})
	} else if err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	user.ID = uuid.New().String()
	if user.Code == "" {
		user.Code = newEmployeeCode()
	}
	// New accounts start on the shared default password and must change
	// it on first login.
	user.Password = defaultPassword
	user.FirstLogin = true
	if user.BaseHourlyRate == 0 {
		user.BaseHourlyRate = 20000
	}
	if len(user.Permissions) == 0 {
		user.Permissions = models.RolePermissions(user.Role)
	}

	if err := database.CreateUser(db, &user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	changeHub.Publish(store.SetUsers)

	return c.Status(201).JSON(fiber.Map{"user": user})
}

func UpdateUserAPI(c *fiber.Ctx) error {
	userID := c.Params("id")
	db := config.GetDB()

	existing, err := database.GetUserByID(db, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	var update models.User
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if update.Name == "" || update.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Tên và email là bắt buộc."})
	}
	switch update.Role {
	case models.RoleAdmin, models.RoleManager, models.RoleStaff:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role"})
	}

	update.ID = existing.ID
	if update.Code == "" {
		update.Code = existing.Code
	}
	update.FirstLogin = existing.FirstLogin
	if len(update.Permissions) == 0 {
		update.Permissions = models.RolePermissions(update.Role)
	}

	if err := database.UpdateUser(db, &update); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	changeHub.Publish(store.SetUsers)

	return c.JSON(fiber.Map{"user": update})
}

func DeleteUserAPI(c *fiber.Ctx) error {
	userID := c.Params("id")
	if userID == c.Locals("user_id").(string) {
		return c.Status(400).JSON(fiber.Map{"error": "Không thể xóa tài khoản của chính bạn."})
	}

	if err := database.DeleteUser(config.GetDB(), userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	changeHub.Publish(store.SetUsers)

	return c.JSON(fiber.Map{"message": "User deleted"})
}

func ResetPasswordAPI(c *fiber.Ctx) error {
	userID := c.Params("id")

	if err := database.ResetUserPassword(config.GetDB(), userID, defaultPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reset password"})
	}

	return c.JSON(fiber.Map{"message": "Đã đặt lại mật khẩu mặc định."})
}

func UpdateAvatarAPI(c *fiber.Ctx) error {
	type AvatarRequest struct {
		Avatar string `json:"avatar"`
	}

	var req AvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	userID := c.Locals("user_id").(string)
	if err := database.UpdateUserAvatar(config.GetDB(), userID, req.Avatar); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update avatar"})
	}

	changeHub.Publish(store.SetUsers)

	return c.JSON(fiber.Map{"message": "Avatar updated"})
}

// ExportUsersAPI serves the staff list as an Excel-compatible file.
func ExportUsersAPI(c *fiber.Ctx) error {
	users, err := database.GetAllUsers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	headers := []string{"Mã NV", "Họ tên", "Email", "Vai trò", "Phòng ban", "SĐT", "Số tài khoản", "Lương giờ cơ bản"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.Code,
			u.Name,
			u.Email,
			string(u.Role),
			u.Department,
			u.Phone,
			u.BankAccount,
			fmt.Sprintf("%.0f", u.BaseHourlyRate),
		})
	}

	content := services.BuildExcelHTML("Danh sách nhân viên", headers, rows)

	c.Set("Content-Type", "application/vnd.ms-excel; charset=UTF-8")
	c.Set("Content-Disposition", `attachment; filename="danh-sach-nhan-vien.xls"`)
	return c.SendString(content)
}
