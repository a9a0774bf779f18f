package settings

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/models"
	"github.com/lexuantruongseo-gif/cham-cong/app/store"
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func GetSettingsAPI(c *fiber.Ctx) error {
	settings, err := database.GetSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	return c.JSON(fiber.Map{"settings": settings})
}

func SaveSettingsAPI(c *fiber.Ctx) error {
	var settings models.Settings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if !hhmmPattern.MatchString(settings.AllowedCheckInStart) || !hhmmPattern.MatchString(settings.AllowedCheckInEnd) {
		return c.Status(400).JSON(fiber.Map{"error": "Giờ chấm công phải theo định dạng HH:mm."})
	}

	if err := database.SaveSettings(config.GetDB(), settings); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save settings"})
	}

	changeHub.Publish(store.SetSettings)

	return c.JSON(fiber.Map{"settings": settings})
}

// CurrentIPAPI tells an admin what public IP the server currently
// resolves, so the office IP field can be filled without guessing.
func CurrentIPAPI(c *fiber.Ctx) error {
	ip, err := ipResolver.Resolve()
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Không thể xác thực địa chỉ IP."})
	}

	return c.JSON(fiber.Map{"ip": ip})
}

func GetDepartmentsAPI(c *fiber.Ctx) error {
	departments, err := database.GetDepartments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch departments"})
	}

	return c.JSON(fiber.Map{"departments": departments})
}

func SaveDepartmentsAPI(c *fiber.Ctx) error {
	type DepartmentsRequest struct {
		Departments []string `json:"departments"`
	}

	var req DepartmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.SaveDepartments(config.GetDB(), req.Departments); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save departments"})
	}

	changeHub.Publish(store.SetSettings)

	return c.JSON(fiber.Map{"departments": req.Departments})
}

func GetRulesAPI(c *fiber.Ctx) error {
	rules, err := database.GetRules(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch rules"})
	}

	return c.JSON(fiber.Map{"rules": rules})
}

func SaveRulesAPI(c *fiber.Ctx) error {
	type RulesRequest struct {
		Rules string `json:"rules"`
	}

	var req RulesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.SaveRules(config.GetDB(), req.Rules); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save rules"})
	}

	changeHub.Publish(store.SetSettings)

	return c.JSON(fiber.Map{"rules": req.Rules})
}
