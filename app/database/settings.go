package database

import (
	"database/sql"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

// GetSettings loads the settings singleton, falling back to defaults
// when the row has never been written.
func GetSettings(db *sql.DB) (models.Settings, error) {
	var s models.Settings
	err := db.QueryRow(`SELECT company_name, company_logo, office_ip, allowed_check_in_start, allowed_check_in_end
						FROM app_settings WHERE id = 1`).
		Scan(&s.CompanyName, &s.CompanyLogo, &s.OfficeIP, &s.AllowedCheckInStart, &s.AllowedCheckInEnd)
	if err == sql.ErrNoRows {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	return s, nil
}

func SaveSettings(db *sql.DB, s models.Settings) error {
	query := `INSERT INTO app_settings (id, company_name, company_logo, office_ip, allowed_check_in_start, allowed_check_in_end)
			  VALUES (1, $1, $2, $3, $4, $5)
			  ON CONFLICT (id)
			  DO UPDATE SET company_name = EXCLUDED.company_name,
							company_logo = EXCLUDED.company_logo,
							office_ip = EXCLUDED.office_ip,
							allowed_check_in_start = EXCLUDED.allowed_check_in_start,
							allowed_check_in_end = EXCLUDED.allowed_check_in_end`
	_, err := db.Exec(query, s.CompanyName, s.CompanyLogo, s.OfficeIP, s.AllowedCheckInStart, s.AllowedCheckInEnd)
	return err
}

func GetDepartments(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT name FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		departments = append(departments, name)
	}
	return departments, rows.Err()
}

// SaveDepartments replaces the department list wholesale, matching the
// save-the-whole-array shape the settings screen submits.
func SaveDepartments(db *sql.DB, departments []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM departments`); err != nil {
		tx.Rollback()
		return err
	}
	for _, name := range departments {
		if _, err := tx.Exec(`INSERT INTO departments (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func GetRules(db *sql.DB) (string, error) {
	var content string
	err := db.QueryRow(`SELECT content FROM company_rules WHERE id = 1`).Scan(&content)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return content, nil
}

func SaveRules(db *sql.DB, content string) error {
	query := `INSERT INTO company_rules (id, content) VALUES (1, $1)
			  ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content`
	_, err := db.Exec(query, content)
	return err
}
