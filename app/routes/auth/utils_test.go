package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func testUser() *models.User {
	return &models.User{
		ID:          "u1",
		Email:       "nva@cafune.com",
		Name:        "Nguyễn Văn A",
		Role:        models.RoleStaff,
		Permissions: models.RolePermissions(models.RoleStaff),
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser())
	assert.NoError(t, err)

	claims, err := ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, models.RoleStaff, claims.Role)
	assert.Equal(t, models.RolePermissions(models.RoleStaff), claims.Permissions)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestAuthMiddlewareBearerHeader(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})

	token, _ := GenerateJWT(testUser())
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequirePermission(t *testing.T) {
	app := fiber.New()
	app.Get("/admin-only", AuthMiddleware, RequirePermission(models.PermManageUsers), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})

	// Staff lack the manage-users permission.
	staffToken, _ := GenerateJWT(testUser())
	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	admin := testUser()
	admin.Role = models.RoleAdmin
	admin.Permissions = models.RolePermissions(models.RoleAdmin)
	adminToken, _ := GenerateJWT(admin)
	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
