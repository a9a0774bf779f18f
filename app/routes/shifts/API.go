package shifts

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

// Times must stay zero-padded HH:mm so lexicographic comparisons against
// the wall clock remain correct.
var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func validateShift(s *models.Shift) string {
	if s.Name == "" {
		return "Tên ca không được để trống."
	}
	if !hhmmPattern.MatchString(s.StartTime) || !hhmmPattern.MatchString(s.EndTime) {
		return "Giờ ca phải theo định dạng HH:mm."
	}
	if s.AllowedLateMinutes < 0 {
		return "Số phút đi trễ cho phép không hợp lệ."
	}
	if s.HourlyRate < 0 {
		return "Mức lương giờ không hợp lệ."
	}
	return ""
}

func ListShiftsAPI(c *fiber.Ctx) error {
	shifts, err := database.GetAllShifts(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shifts"})
	}

	return c.JSON(fiber.Map{
		"shifts": shifts,
		"count":  len(shifts),
	})
}

func CreateShiftAPI(c *fiber.Ctx) error {
	var shift models.Shift
	if err := c.BodyParser(&shift); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	// The add-shift button submits an empty body; fill in the stock
	// new-shift template for whatever is missing.
	if shift.Name == "" {
		shift.Name = "Ca Mới"
	}
	if shift.StartTime == "" {
		shift.StartTime = "08:00"
	}
	if shift.EndTime == "" {
		shift.EndTime = "17:00"
	}
	if shift.AllowedLateMinutes == 0 {
		shift.AllowedLateMinutes = 15
	}
	if shift.HourlyRate == 0 {
		shift.HourlyRate = 20000
	}

	if msg := validateShift(&shift); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}

	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}

	if err := database.SaveShift(config.GetDB(), &shift); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save shift"})
	}

	changeHub.Publish(store.SetShifts)

	return c.Status(201).JSON(fiber.Map{"shift": shift})
}

func UpdateShiftAPI(c *fiber.Ctx) error {
	var shift models.Shift
	if err := c.BodyParser(&shift); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	shift.ID = c.Params("id")

	if msg := validateShift(&shift); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}

	if err := database.SaveShift(config.GetDB(), &shift); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save shift"})
	}

	changeHub.Publish(store.SetShifts)

	return c.JSON(fiber.Map{"shift": shift})
}

// BulkSaveShiftsAPI replaces shift definitions in one request, matching
// the all-at-once save the shift settings screen performs.
func BulkSaveShiftsAPI(c *fiber.Ctx) error {
	type BulkRequest struct {
		Shifts []models.Shift `json:"shifts"`
	}

	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()
	for i := range req.Shifts {
		shift := &req.Shifts[i]
		if msg := validateShift(shift); msg != "" {
			return c.Status(400).JSON(fiber.Map{"error": msg})
		}
		if shift.ID == "" {
			shift.ID = uuid.New().String()
		}
		if err := database.SaveShift(db, shift); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save shift"})
		}
	}

	changeHub.Publish(store.SetShifts)

	return c.JSON(fiber.Map{
		"shifts": req.Shifts,
		"count":  len(req.Shifts),
	})
}

func DeleteShiftAPI(c *fiber.Ctx) error {
	shiftID := c.Params("id")
	if shiftID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Shift ID is required"})
	}

	if err := database.DeleteShift(config.GetDB(), shiftID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete shift"})
	}

	changeHub.Publish(store.SetShifts)

	return c.JSON(fiber.Map{"message": "Shift deleted"})
}
