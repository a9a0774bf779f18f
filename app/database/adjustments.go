package database

import (
	"database/sql"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

func GetAllAdjustments(db *sql.DB) ([]models.SalaryAdjustment, error) {
	rows, err := db.Query(`SELECT id, user_id, user_name, amount, type, reason, date
						   FROM salary_adjustments ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	adjustments := make([]models.SalaryAdjustment, 0)
	for rows.Next() {
		var a models.SalaryAdjustment
		if err := rows.Scan(&a.ID, &a.UserID, &a.UserName, &a.Amount, &a.Type, &a.Reason, &a.Date); err != nil {
			return nil, err
		}
		adjustments = append(adjustments, a)
	}
	return adjustments, rows.Err()
}

func CreateAdjustment(db *sql.DB, adjustment *models.SalaryAdjustment) error {
	query := `INSERT INTO salary_adjustments (id, user_id, user_name, amount, type, reason, date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := db.Exec(query, adjustment.ID, adjustment.UserID, adjustment.UserName,
		adjustment.Amount, adjustment.Type, adjustment.Reason, adjustment.Date)
	return err
}
