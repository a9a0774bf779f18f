package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/auth"
	"github.com/lexuantruongseo-gif/cham-cong/app/services"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

var (
	changeHub  *store.Hub
	ipResolver *services.IPResolver
)

func SetupAttendanceRoutes(app *fiber.App, hub *store.Hub, resolver *services.IPResolver) {
	changeHub = hub
	ipResolver = resolver

	group := app.Group("/api/attendance")
	group.Use(auth.AuthMiddleware)

	group.Get("/status", StatusAPI)
	group.Post("/check-in", CheckInAPI)
	group.Post("/check-out", CheckOutAPI)
	group.Get("/history", HistoryAPI)
	group.Get("/all", auth.RequirePermission(models.PermApproveAttendance), AllRecordsAPI)
	group.Put("/:id/status", auth.RequirePermission(models.PermApproveAttendance), UpdateStatusAPI)
}
