package database

import (
	"database/sql"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

const registrationColumns = `id, user_id, user_name, shift_id, shift_name, date, status`

func scanRegistration(row interface{ Scan(...interface{}) error }) (models.ShiftRegistration, error) {
	var reg models.ShiftRegistration
	err := row.Scan(&reg.ID, &reg.UserID, &reg.UserName, &reg.ShiftID, &reg.ShiftName, &reg.Date, &reg.Status)
	return reg, err
}

func collectRegistrations(rows *sql.Rows) ([]models.ShiftRegistration, error) {
	defer rows.Close()
	regs := make([]models.ShiftRegistration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func GetAllRegistrations(db *sql.DB) ([]models.ShiftRegistration, error) {
	rows, err := db.Query(`SELECT ` + registrationColumns + ` FROM shift_registrations ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	return collectRegistrations(rows)
}

func GetRegistrationsByUser(db *sql.DB, userID string) ([]models.ShiftRegistration, error) {
	rows, err := db.Query(`SELECT `+registrationColumns+` FROM shift_registrations
						   WHERE user_id = $1 ORDER BY date DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collectRegistrations(rows)
}

func GetRegistrationsByDateRange(db *sql.DB, startDate, endDate string) ([]models.ShiftRegistration, error) {
	rows, err := db.Query(`SELECT `+registrationColumns+` FROM shift_registrations
						   WHERE date >= $1 AND date <= $2 ORDER BY date`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return collectRegistrations(rows)
}

func GetRegistrationByID(db *sql.DB, regID string) (*models.ShiftRegistration, error) {
	row := db.QueryRow(`SELECT `+registrationColumns+` FROM shift_registrations WHERE id = $1`, regID)
	reg, err := scanRegistration(row)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// RegistrationExists reports whether the user already holds a
// registration for the shift on the given date, regardless of status.
func RegistrationExists(db *sql.DB, userID, shiftID, date string) (bool, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM shift_registrations
						WHERE user_id = $1 AND shift_id = $2 AND date = $3`, userID, shiftID, date).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func CreateRegistration(db *sql.DB, reg *models.ShiftRegistration) error {
	query := `INSERT INTO shift_registrations (` + registrationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := db.Exec(query, reg.ID, reg.UserID, reg.UserName, reg.ShiftID, reg.ShiftName, reg.Date, reg.Status)
	return err
}

func UpdateRegistrationStatus(db *sql.DB, regID string, status models.RecordStatus) error {
	_, err := db.Exec(`UPDATE shift_registrations SET status = $1 WHERE id = $2`, status, regID)
	return err
}

func DeleteRegistration(db *sql.DB, regID string) error {
	_, err := db.Exec(`DELETE FROM shift_registrations WHERE id = $1`, regID)
	return err
}
