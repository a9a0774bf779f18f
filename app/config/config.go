package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	SMTP      SMTPConfig
	JWTSecret string
	Listen    string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var AppConfig *Config

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the PostgreSQL connection and loads the rest of the
// process configuration from the environment. Call godotenv.Load
// before this so a local .env file is honored.
func InitDB() {
	host := env("DB_HOST", "localhost")
	port := env("DB_PORT", "5432")
	user := env("DB_USER", "postgres")
	password := os.Getenv("DB_PASS")
	dbname := env("DB_NAME", "chamcong")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Fatal("Cannot establish database connection")
	}

	smtpPort, err := strconv.Atoi(env("MAIL_PORT", "587"))
	if err != nil {
		log.Printf("Invalid MAIL_PORT, falling back to 587: %v", err)
		smtpPort = 587
	}

	AppConfig = &Config{
		DB: db,
		SMTP: SMTPConfig{
			Host:     os.Getenv("MAIL_HOST"),
			Port:     smtpPort,
			Username: os.Getenv("MAIL_USER"),
			Password: os.Getenv("MAIL_PASS"),
			From:     env("MAIL_FROM", os.Getenv("MAIL_USER")),
		},
		JWTSecret: env("JWT_SECRET", "cham-cong-secret-key"),
		Listen:    env("LISTEN_ADDR", ":8080"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
