package settings

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

func SetupSettingsRoutes(app *fiber.App, hub *store.Hub, resolver *services.IPResolver) {
	changeHub = hub
	ipResolver = resolver

	group := app.Group("/api/settings")
	group.Use(auth.AuthMiddleware)

	group.Get("/", GetSettingsAPI)
	group.Get("/departments", GetDepartmentsAPI)
	group.Get("/rules", GetRulesAPI)

	group.Put("/", auth.RequirePermission(models.PermManageSettings), SaveSettingsAPI)
	group.Get("/current-ip", auth.RequirePermission(models.PermManageSettings), CurrentIPAPI)
	group.Put("/departments", auth.RequirePermission(models.PermManageSettings), SaveDepartmentsAPI)
	group.Put("/rules", auth.RequirePermission(models.PermManageRules), SaveRulesAPI)
}
