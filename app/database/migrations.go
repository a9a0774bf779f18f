package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'staff',
			permissions JSONB NOT NULL DEFAULT '[]',
			phone TEXT NOT NULL DEFAULT '',
			bank_account TEXT NOT NULL DEFAULT '',
			first_login BOOLEAN NOT NULL DEFAULT true,
			base_hourly_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			department TEXT NOT NULL DEFAULT '',
			avatar TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS shifts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL,
			allowed_late_minutes INT NOT NULL DEFAULT 0,
			hourly_rate DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			user_name TEXT NOT NULL DEFAULT '',
			date VARCHAR(10) NOT NULL,
			check_in_time BIGINT NOT NULL,
			check_out_time BIGINT NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'approved',
			ip_address TEXT NOT NULL DEFAULT '',
			work_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
			note TEXT NOT NULL DEFAULT '',
			shift_id TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_user ON attendance_records (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance_records (date)`,
		`CREATE TABLE IF NOT EXISTS shift_registrations (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			user_name TEXT NOT NULL DEFAULT '',
			shift_id TEXT NOT NULL,
			shift_name TEXT NOT NULL DEFAULT '',
			date VARCHAR(10) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'approved'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_registrations_user ON shift_registrations (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_registrations_date ON shift_registrations (date)`,
		`CREATE TABLE IF NOT EXISTS salary_adjustments (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			user_name TEXT NOT NULL DEFAULT '',
			date VARCHAR(10) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			type VARCHAR(10) NOT NULL,
			reason TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS app_settings (
			id INT PRIMARY KEY CHECK (id = 1),
			company_name TEXT NOT NULL DEFAULT '',
			company_logo TEXT NOT NULL DEFAULT '',
			office_ip TEXT NOT NULL DEFAULT '',
			allowed_check_in_start VARCHAR(5) NOT NULL DEFAULT '00:00',
			allowed_check_in_end VARCHAR(5) NOT NULL DEFAULT '23:59'
		)`,
		`CREATE TABLE IF NOT EXISTS departments (
			name TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS company_rules (
			id INT PRIMARY KEY CHECK (id = 1),
			content TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run migration: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
