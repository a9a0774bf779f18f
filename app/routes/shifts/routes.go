package shifts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/auth"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

var changeHub *store.Hub

func SetupShiftRoutes(app *fiber.App, hub *store.Hub) {
	changeHub = hub

	group := app.Group("/api/shifts")
	group.Use(auth.AuthMiddleware)

	// Everyone needs the shift list to clock in and register.
	group.Get("/", ListShiftsAPI)

	manage := group.Group("", auth.RequirePermission(models.PermManageShiftConfig))
	manage.Post("/", CreateShiftAPI)
	manage.Put("/bulk", BulkSaveShiftsAPI)
	manage.Put("/:id", UpdateShiftAPI)
	manage.Delete("/:id", DeleteShiftAPI)
}
