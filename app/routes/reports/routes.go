package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/auth"
)

func SetupReportRoutes(app *fiber.App) {
	group := app.Group("/api/reports")
	group.Use(auth.AuthMiddleware)
	group.Use(auth.RequirePermission(models.PermViewReports))

	group.Get("/salary", SalaryReportAPI)
	group.Get("/salary/export", ExportSalaryReportAPI)
}
