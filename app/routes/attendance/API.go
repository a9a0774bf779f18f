package attendance

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/auth"
	"github.com/lexuantruongseo-gif/cham-cong/app/services"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

// StatusAPI reports everything the clock screen needs in one call: the
// open record if any, the suggested shift, and whether a check-in
// would currently pass the time and IP rules.
func StatusAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	userID := c.Locals("user_id").(string)
	now := time.Now()

	active, err := database.GetActiveRecordForUser(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	shifts, err := database.GetAllShifts(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shifts"})
	}

	regs, err := database.GetRegistrationsByUser(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registrations"})
	}

	settings, err := database.GetSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	check := services.ValidateCheckIn(now, settings, ipResolver)

	return c.JSON(fiber.Map{
		"active_record":   active,
		"suggested_shift": services.SuggestShift(now, shifts, regs),
		"check":           check,
		"server_time":     now.UnixMilli(),
	})
}

func CheckInAPI(c *fiber.Ctx) error {
	type CheckInRequest struct {
		ShiftID string `json:"shift_id"`
	}

	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()
	user := auth.CurrentUser(c)
	now := time.Now()

	settings, err := database.GetSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	check := services.ValidateCheckIn(now, settings, ipResolver)
	if !check.Allowed {
		return c.Status(403).JSON(fiber.Map{
			"error": strings.Join(check.Reasons, " "),
			"check": check,
		})
	}

	active, err := database.GetActiveRecordForUser(db, user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	if active != nil {
		return c.Status(409).JSON(fiber.Map{"error": "Bạn đang có ca làm việc chưa kết thúc."})
	}

	record := services.NewCheckIn(user, req.ShiftID, check.ResolvedIP, now)
	if err := database.CreateAttendance(db, &record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	changeHub.Publish(store.SetAttendance)

	return c.Status(201).JSON(fiber.Map{
		"message": "Chấm công vào thành công.",
		"record":  record,
	})
}

func CheckOutAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	userID := c.Locals("user_id").(string)
	now := time.Now()

	settings, err := database.GetSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	check := services.ValidateCheckIn(now, settings, ipResolver)
	if !check.Allowed {
		return c.Status(403).JSON(fiber.Map{
			"error": strings.Join(check.Reasons, " "),
			"check": check,
		})
	}

	active, err := database.GetActiveRecordForUser(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	if active == nil {
		return c.Status(409).JSON(fiber.Map{"error": "Bạn chưa chấm công vào."})
	}

	services.CloseRecord(active, now)
	if err := database.CloseAttendance(db, active.ID, active.CheckOutTime, active.WorkHours); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	changeHub.Publish(store.SetAttendance)

	return c.JSON(fiber.Map{
		"message": "Chấm công ra thành công.",
		"record":  active,
	})
}

func HistoryAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	userID := c.Locals("user_id").(string)

	records, err := database.GetAttendanceByUser(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}

func AllRecordsAPI(c *fiber.Ctx) error {
	records, err := database.GetAllAttendance(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}

func UpdateStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status models.RecordStatus `json:"status"`
	}

	recordID := c.Params("id")
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Status != models.StatusApproved && req.Status != models.StatusRejected && req.Status != models.StatusPending {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	if err := database.UpdateAttendanceStatus(config.GetDB(), recordID, req.Status); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update record"})
	}

	changeHub.Publish(store.SetAttendance)

	return c.JSON(fiber.Map{"message": "Record updated"})
}
