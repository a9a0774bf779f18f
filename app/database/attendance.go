package database

import (
	"database/sql"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

const attendanceColumns = `id, user_id, user_name, date, check_in_time, check_out_time, work_hours, status, note, shift_id, ip_address`

func scanAttendance(row interface{ Scan(...interface{}) error }) (models.AttendanceRecord, error) {
	var r models.AttendanceRecord
	err := row.Scan(&r.ID, &r.UserID, &r.UserName, &r.Date, &r.CheckInTime, &r.CheckOutTime,
		&r.WorkHours, &r.Status, &r.Note, &r.ShiftID, &r.IPAddress)
	return r, err
}

func GetAllAttendance(db *sql.DB) ([]models.AttendanceRecord, error) {
	rows, err := db.Query(`SELECT ` + attendanceColumns + ` FROM attendance_records ORDER BY check_in_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.AttendanceRecord, 0)
	for rows.Next() {
		r, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func GetAttendanceByUser(db *sql.DB, userID string) ([]models.AttendanceRecord, error) {
	rows, err := db.Query(`SELECT `+attendanceColumns+` FROM attendance_records
						   WHERE user_id = $1 ORDER BY check_in_time DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.AttendanceRecord, 0)
	for rows.Next() {
		r, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetActiveRecordForUser returns the user's open record, if any.
// A zero check-out time marks a record as still open.
func GetActiveRecordForUser(db *sql.DB, userID string) (*models.AttendanceRecord, error) {
	row := db.QueryRow(`SELECT `+attendanceColumns+` FROM attendance_records
						WHERE user_id = $1 AND check_out_time = 0
						ORDER BY check_in_time DESC LIMIT 1`, userID)
	r, err := scanAttendance(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func CreateAttendance(db *sql.DB, record *models.AttendanceRecord) error {
	query := `INSERT INTO attendance_records (` + attendanceColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := db.Exec(query, record.ID, record.UserID, record.UserName, record.Date,
		record.CheckInTime, record.CheckOutTime, record.WorkHours, record.Status,
		record.Note, record.ShiftID, record.IPAddress)
	return err
}

// CloseAttendance writes the check-out time and computed hours for an
// open record. The check_out_time = 0 guard keeps a double check-out
// from overwriting an already closed record.
func CloseAttendance(db *sql.DB, recordID string, checkOutTime int64, workHours float64) error {
	result, err := db.Exec(`UPDATE attendance_records
							SET check_out_time = $1, work_hours = $2
							WHERE id = $3 AND check_out_time = 0`, checkOutTime, workHours, recordID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func UpdateAttendanceStatus(db *sql.DB, recordID string, status models.RecordStatus) error {
	_, err := db.Exec(`UPDATE attendance_records SET status = $1 WHERE id = $2`, status, recordID)
	return err
}
