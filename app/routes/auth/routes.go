package auth

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	// Public routes
	authGroup.Post("/login", LoginAPI)
	authGroup.Post("/logout", LogoutAPI)
	authGroup.Post("/forgot-password", ForgotPasswordAPI)

	// Protected routes
	authGroup.Use(AuthMiddleware)
	authGroup.Get("/me", MeAPI)
	authGroup.Post("/change-password", ChangePasswordAPI)
}
