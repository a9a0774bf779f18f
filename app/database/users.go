package database

import (
	"database/sql"
	"encoding/json"

	"github.com/lexuantruongseo-gif/cham-cong/app/models"
)

const userColumns = `id, code, name, email, password, role, permissions, phone, bank_account, first_login, base_hourly_rate, department, avatar`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	user := &models.User{}
	var permissions []byte
	err := row.Scan(
		&user.ID, &user.Code, &user.Name, &user.Email, &user.Password,
		&user.Role, &permissions, &user.Phone, &user.BankAccount,
		&user.FirstLogin, &user.BaseHourlyRate, &user.Department, &user.Avatar,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(permissions, &user.Permissions); err != nil {
		user.Permissions = []models.PermissionKey{}
	}
	return user, nil
}

func GetAllUsers(db *sql.DB) ([]models.User, error) {
	rows, err := db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	return scanUser(db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	return scanUser(db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
}

func CreateUser(db *sql.DB, user *models.User) error {
	permissions, err := json.Marshal(user.Permissions)
	if err != nil {
		return err
	}
	query := `INSERT INTO users (` + userColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = db.Exec(query,
		user.ID, user.Code, user.Name, user.Email, user.Password,
		user.Role, permissions, user.Phone, user.BankAccount,
		user.FirstLogin, user.BaseHourlyRate, user.Department, user.Avatar,
	)
	return err
}

func UpdateUser(db *sql.DB, user *models.User) error {
	permissions, err := json.Marshal(user.Permissions)
	if err != nil {
		return err
	}
	query := `UPDATE users SET code = $2, name = $3, email = $4, role = $5, permissions = $6,
			  phone = $7, bank_account = $8, first_login = $9, base_hourly_rate = $10,
			  department = $11, avatar = $12
			  WHERE id = $1`
	_, err = db.Exec(query,
		user.ID, user.Code, user.Name, user.Email, user.Role, permissions,
		user.Phone, user.BankAccount, user.FirstLogin, user.BaseHourlyRate,
		user.Department, user.Avatar,
	)
	return err
}

// UpdateUserPassword also clears the first-login flag: a user who has
// set their own password no longer needs the forced change.
func UpdateUserPassword(db *sql.DB, userID, password string) error {
	_, err := db.Exec(`UPDATE users SET password = $2, first_login = false WHERE id = $1`, userID, password)
	return err
}

// ResetUserPassword puts the account back into the first-login flow
// with the given temporary password.
func ResetUserPassword(db *sql.DB, userID, password string) error {
	_, err := db.Exec(`UPDATE users SET password = $2, first_login = true WHERE id = $1`, userID, password)
	return err
}

func UpdateUserAvatar(db *sql.DB, userID, avatar string) error {
	_, err := db.Exec(`UPDATE users SET avatar = $2 WHERE id = $1`, userID, avatar)
	return err
}

// DeleteUser removes the account only. Historical attendance keeps its
// user_id and user_name snapshot and is left in place on purpose.
func DeleteUser(db *sql.DB, userID string) error {
	_, err := db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	return err
}
