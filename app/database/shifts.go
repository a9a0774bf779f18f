package database

import (
	"database/sql"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

func GetAllShifts(db *sql.DB) ([]models.Shift, error) {
	rows, err := db.Query(`SELECT id, name, start_time, end_time, allowed_late_minutes, hourly_rate
						   FROM shifts ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]models.Shift, 0)
	for rows.Next() {
		var s models.Shift
		if err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.AllowedLateMinutes, &s.HourlyRate); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func GetShiftByID(db *sql.DB, shiftID string) (*models.Shift, error) {
	s := &models.Shift{}
	err := db.QueryRow(`SELECT id, name, start_time, end_time, allowed_late_minutes, hourly_rate
						FROM shifts WHERE id = $1`, shiftID).
		Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.AllowedLateMinutes, &s.HourlyRate)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SaveShift inserts or fully replaces a shift, matching the document
// store's put-by-id semantics.
func SaveShift(db *sql.DB, shift *models.Shift) error {
	query := `INSERT INTO shifts (id, name, start_time, end_time, allowed_late_minutes, hourly_rate)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (id)
			  DO UPDATE SET name = EXCLUDED.name, start_time = EXCLUDED.start_time,
							end_time = EXCLUDED.end_time,
							allowed_late_minutes = EXCLUDED.allowed_late_minutes,
							hourly_rate = EXCLUDED.hourly_rate`
	_, err := db.Exec(query, shift.ID, shift.Name, shift.StartTime, shift.EndTime, shift.AllowedLateMinutes, shift.HourlyRate)
	return err
}

func DeleteShift(db *sql.DB, shiftID string) error {
	_, err := db.Exec(`DELETE FROM shifts WHERE id = $1`, shiftID)
	return err
}
