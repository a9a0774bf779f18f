package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/lexuantruongseo-gif/cham-cong/app/config"
	"github.com/lexuantruongseo-gif/cham-cong/app/database"
)

// Runs migrations and seeding without starting the HTTP server, for
// preparing a fresh database from CI or the command line.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.SeedDefaults(db); err != nil {
		log.Fatal("Failed to seed defaults:", err)
	}

	log.Println("Migration completed successfully")
}
