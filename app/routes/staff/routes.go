package staff

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/routes/auth"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

var changeHub *store.Hub

func SetupStaffRoutes(app *fiber.App, hub *store.Hub) {
	changeHub = hub

	group := app.Group("/api/users")
	group.Use(auth.AuthMiddleware)

	group.Get("/", ListUsersAPI)
	group.Post("/avatar", UpdateAvatarAPI)

	manage := group.Group("", auth.RequirePermission(models.PermManageUsers))
	manage.Post("/", CreateUserAPI)
	manage.Get("/export", ExportUsersAPI)
	manage.Put("/:id", UpdateUserAPI)
	manage.Delete("/:id", DeleteUserAPI)
	manage.Post("/:id/reset-password", ResetPasswordAPI)
}
