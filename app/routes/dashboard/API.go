package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/services"
)

// StatsAPI computes today's overview from a fresh snapshot of the data.
func StatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	users, err := database.GetAllUsers(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	shifts, err := database.GetAllShifts(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shifts"})
	}

	attendance, err := database.GetAllAttendance(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	snapshot := services.BuildDashboard(users, shifts, attendance, time.Now())

	return c.JSON(snapshot)
}
