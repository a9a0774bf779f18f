package schedule

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/auth"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

var changeHub *store.Hub

func SetupScheduleRoutes(app *fiber.App, hub *store.Hub) {
	changeHub = hub

	group := app.Group("/api/registrations")
	group.Use(auth.AuthMiddleware)

	group.Get("/", ListRegistrationsAPI)
	group.Get("/mine", MyRegistrationsAPI)
	group.Post("/", RegisterShiftAPI)
	group.Delete("/:id", DeleteRegistrationAPI)

	approve := group.Group("", auth.RequirePermission(models.PermApproveShiftReg))
	approve.Post("/assign", AssignShiftAPI)
	approve.Put("/:id/status", UpdateRegistrationStatusAPI)
}
