package adjustments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/auth"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

var changeHub *store.Hub

func SetupAdjustmentRoutes(app *fiber.App, hub *store.Hub) {
	changeHub = hub

	group := app.Group("/api/adjustments")
	group.Use(auth.AuthMiddleware)
	group.Use(auth.RequirePermission(models.PermViewSalary))

	group.Get("/", ListAdjustmentsAPI)
	group.Post("/", CreateAdjustmentAPI)
}
