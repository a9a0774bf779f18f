package adjustments

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

// ListAdjustmentsAPI returns adjustments, optionally narrowed by user
// and/or a start/end date range.
func ListAdjustmentsAPI(c *fiber.Ctx) error {
	all, err := database.GetAllAdjustments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch adjustments"})
	}

	userFilter := c.Query("user")
	start := c.Query("start")
	end := c.Query("end")

	adjustments := make([]models.SalaryAdjustment, 0, len(all))
	for _, a := range all {
		if userFilter != "" && userFilter != "all" && a.UserID != userFilter {
			continue
		}
		if start != "" && a.Date < start {
			continue
		}
		if end != "" && a.Date > end {
			continue
		}
		adjustments = append(adjustments, a)
	}

	return c.JSON(fiber.Map{
		"adjustments": adjustments,
		"count":       len(adjustments),
	})
}

func CreateAdjustmentAPI(c *fiber.Ctx) error {
	type AdjustmentRequest struct {
		UserID string                `json:"user_id"`
		Amount float64               `json:"amount"`
		Type   models.AdjustmentType `json:"type"`
		Reason string                `json:"reason"`
		Date   string                `json:"date"`
	}

	var req AdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Số tiền phải lớn hơn 0."})
	}
	if req.Type != models.AdjustmentBonus && req.Type != models.AdjustmentFine {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid adjustment type"})
	}

	db := config.GetDB()
	user, err := database.GetUserByID(db, req.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	reason := req.Reason
	if reason == "" {
		if req.Type == models.AdjustmentBonus {
			reason = "Thưởng"
		} else {
			reason = "Phạt"
		}
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	adjustment := models.SalaryAdjustment{
		ID:       uuid.New().String(),
		UserID:   user.ID,
		UserName: user.Name,
		Amount:   req.Amount,
		Type:     req.Type,
		Reason:   reason,
		Date:     date,
	}
	if err := database.CreateAdjustment(db, &adjustment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save adjustment"})
	}

	changeHub.Publish(store.SetAdjustments)

	return c.Status(201).JSON(fiber.Map{"adjustment": adjustment})
}
