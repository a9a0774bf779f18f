package schedule

import (
	"database/sql"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/auth"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// newRegistration snapshots the user and shift names at write time.
// Registrations are created approved in both flows; the status-update
// endpoint exists for managers to revoke or restore one afterwards.
func newRegistration(user *models.User, shift *models.Shift, date string) models.ShiftRegistration {
	return models.ShiftRegistration{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		UserName:  user.Name,
		ShiftID:   shift.ID,
		ShiftName: shift.Name,
		Date:      date,
		Status:    models.StatusApproved,
	}
}

// ListRegistrationsAPI returns registrations, optionally narrowed to a
// date range via start/end query parameters.
func ListRegistrationsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	start := c.Query("start")
	end := c.Query("end")

	var (
		regs []models.ShiftRegistration
		err  error
	)
	if start != "" && end != "" {
		if !datePattern.MatchString(start) || !datePattern.MatchString(end) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		regs, err = database.GetRegistrationsByDateRange(db, start, end)
	} else {
		regs, err = database.GetAllRegistrations(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registrations"})
	}

	return c.JSON(fiber.Map{
		"registrations": regs,
		"count":         len(regs),
	})
}

func MyRegistrationsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	regs, err := database.GetRegistrationsByUser(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registrations"})
	}

	return c.JSON(fiber.Map{
		"registrations": regs,
		"count":         len(regs),
	})
}

// RegisterShiftAPI lets staff sign up for one or more shifts on a
// given day. Shifts the user already holds for that date are skipped
// silently; the rest are created approved right away.
func RegisterShiftAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		ShiftIDs []string `json:"shift_ids"`
		Date     string   `json:"date"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.ShiftIDs) == 0 || !datePattern.MatchString(req.Date) {
		return c.Status(400).JSON(fiber.Map{"error": "Shifts and date are required"})
	}

	db := config.GetDB()
	user := auth.CurrentUser(c)

	created := make([]models.ShiftRegistration, 0, len(req.ShiftIDs))
	for _, shiftID := range req.ShiftIDs {
		shift, err := database.GetShiftByID(db, shiftID)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"error": "Shift not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shift"})
		}

		exists, err := database.RegistrationExists(db, user.ID, shiftID, req.Date)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registrations"})
		}
		if exists {
			continue
		}

		reg := newRegistration(user, shift, req.Date)
		if err := database.CreateRegistration(db, &reg); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save registration"})
		}
		created = append(created, reg)
	}

	if len(created) > 0 {
		changeHub.Publish(store.SetRegistrations)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":       "Đăng ký ca thành công.",
		"registrations": created,
		"count":         len(created),
	})
}

// AssignShiftAPI lets a manager place someone on a shift directly.
func AssignShiftAPI(c *fiber.Ctx) error {
	type AssignRequest struct {
		UserID  string `json:"user_id"`
		ShiftID string `json:"shift_id"`
		Date    string `json:"date"`
	}

	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.UserID == "" || req.ShiftID == "" || !datePattern.MatchString(req.Date) {
		return c.Status(400).JSON(fiber.Map{"error": "User, shift and date are required"})
	}

	db := config.GetDB()

	target, err := database.GetUserByID(db, req.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	shift, err := database.GetShiftByID(db, req.ShiftID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Shift not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shift"})
	}

	exists, err := database.RegistrationExists(db, target.ID, shift.ID, req.Date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registrations"})
	}
	if exists {
		return c.Status(409).JSON(fiber.Map{"error": "Nhân viên đã có ca này."})
	}

	reg := newRegistration(target, shift, req.Date)
	if err := database.CreateRegistration(db, &reg); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save registration"})
	}

	changeHub.Publish(store.SetRegistrations)

	return c.Status(201).JSON(fiber.Map{"registration": reg})
}

func UpdateRegistrationStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status models.RecordStatus `json:"status"`
	}

	regID := c.Params("id")
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Status != models.StatusApproved && req.Status != models.StatusRejected && req.Status != models.StatusPending {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	if err := database.UpdateRegistrationStatus(config.GetDB(), regID, req.Status); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update registration"})
	}

	changeHub.Publish(store.SetRegistrations)

	return c.JSON(fiber.Map{"message": "Registration updated"})
}

// DeleteRegistrationAPI removes a registration. Staff may withdraw
// their own; approvers may remove anyone's.
func DeleteRegistrationAPI(c *fiber.Ctx) error {
	regID := c.Params("id")
	db := config.GetDB()
	user := auth.CurrentUser(c)

	reg, err := database.GetRegistrationByID(db, regID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Registration not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registration"})
	}

	if reg.UserID != user.ID && !user.HasPermission(models.PermApproveShiftReg) {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	if err := database.DeleteRegistration(db, regID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete registration"})
	}

	changeHub.Publish(store.SetRegistrations)

	return c.JSON(fiber.Map{"message": "Registration deleted"})
}
