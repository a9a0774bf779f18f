package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	group := app.Group("/api/dashboard")
	group.Use(auth.AuthMiddleware)
	group.Use(auth.RequirePermission(models.PermViewDashboard))

	group.Get("/stats", StatsAPI)
}
