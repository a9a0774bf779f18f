package reports

import (
	"fmt"
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
	"github.com/lexuantruongseo-gif/cham-cong/app/services"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func buildReport(c *fiber.Ctx) (*services.SalaryReport, string, error) {
	start := c.Query("start")
	end := c.Query("end")
	userFilter := c.Query("user", "all")

	if !datePattern.MatchString(start) || !datePattern.MatchString(end) {
		return nil, "Invalid date format. Use YYYY-MM-DD", nil
	}
	if start > end {
		return nil, "Khoảng thời gian không hợp lệ.", nil
	}

	db := config.GetDB()

	users, err := database.GetAllUsers(db)
	if err != nil {
		return nil, "", err
	}
	attendance, err := database.GetAllAttendance(db)
	if err != nil {
		return nil, "", err
	}
	adjustments, err := database.GetAllAdjustments(db)
	if err != nil {
		return nil, "", err
	}
	shifts, err := database.GetAllShifts(db)
	if err != nil {
		return nil, "", err
	}

	report := services.BuildSalaryReport(users, attendance, adjustments, shifts, start, end, userFilter)
	return &report, "", nil
}

// SalaryReportAPI computes pay for the requested period. Admin accounts
// never appear in the rows.
func SalaryReportAPI(c *fiber.Ctx) error {
	report, badRequest, err := buildReport(c)
	if badRequest != "" {
		return c.Status(400).JSON(fiber.Map{"error": badRequest})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
	}

	return c.JSON(report)
}

func ExportSalaryReportAPI(c *fiber.Ctx) error {
	report, badRequest, err := buildReport(c)
	if badRequest != "" {
		return c.Status(400).JSON(fiber.Map{"error": badRequest})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
	}

	headers := []string{"Mã NV", "Họ tên", "Số ca", "Tổng giờ", "Lương", "Thưởng", "Phạt", "Thực nhận"}
	rows := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, []string{
			row.Code,
			row.Name,
			fmt.Sprintf("%d", row.ShiftCount),
			fmt.Sprintf("%.2f", row.Hours),
			fmt.Sprintf("%.0f", row.Salary),
			fmt.Sprintf("%.0f", row.Bonus),
			fmt.Sprintf("%.0f", row.Fine),
			fmt.Sprintf("%.0f", row.Net),
		})
	}
	rows = append(rows, []string{
		"", "Tổng cộng", "",
		fmt.Sprintf("%.2f", report.TotalHours),
		fmt.Sprintf("%.0f", report.TotalSalary),
		fmt.Sprintf("%.0f", report.TotalBonus),
		fmt.Sprintf("%.0f", report.TotalFine),
		fmt.Sprintf("%.0f", report.TotalNet),
	})

	title := fmt.Sprintf("Bảng lương %s - %s", c.Query("start"), c.Query("end"))
	content := services.BuildExcelHTML(title, headers, rows)

	filename := fmt.Sprintf("bang-luong-%s-%s.xls", c.Query("start"), c.Query("end"))
	c.Set("Content-Type", "application/vnd.ms-excel; charset=UTF-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.SendString(content)
}
