package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/adjustments"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/attendance"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/auth"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/dashboard"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/reports"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/schedule"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/settings"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/shifts"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/staff"
	"github.com/lexuantruongseo-gif/cham-cong/app/services"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// All HH:mm comparisons assume Vietnam wall-clock time.
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Ho_Chi_Minh location, falling back to UTC+7: %v", err)
		time.Local = time.FixedZone("ICT", 7*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.SeedDefaults(config.GetDB()); err != nil {
		log.Fatal("Failed to seed defaults:", err)
	}

	hub := store.NewHub()
	resolver := services.NewIPResolver()
	mailer := services.NewMailer(config.AppConfig.SMTP)

	services.StartScheduler(config.GetDB(), hub, mailer)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	auth.SetupAuthRoutes(app)
	attendance.SetupAttendanceRoutes(app, hub, resolver)
	dashboard.SetupDashboardRoutes(app)
	shifts.SetupShiftRoutes(app, hub)
	schedule.SetupScheduleRoutes(app, hub)
	staff.SetupStaffRoutes(app, hub)
	reports.SetupReportRoutes(app)
	adjustments.SetupAdjustmentRoutes(app, hub)
	settings.SetupSettingsRoutes(app, hub, resolver)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Println("Server starting on", config.AppConfig.Listen)
	log.Fatal(app.Listen(config.AppConfig.Listen))
}
