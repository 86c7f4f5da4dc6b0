package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/dsj-tournaments/internal/database"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "local.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
		"SEED_HILL":         "Kulm",
		"SEED_LIVE_BOARD":   "true",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

// newTournament builds a demo tournament opening a minute after creation and
// closing an hour after it.
func newTournament(hill string, liveBoard bool, now time.Time) *tournament.Tournament {
	start := now.Add(time.Minute)
	return &tournament.Tournament{
		Code:      strings.ToUpper(uuid.NewString()[:6]),
		Hill:      hill,
		CreatedBy: jump.User{ID: "seeder", Username: "seeder"},
		CreatedAt: now,
		StartDate: &start,
		EndDate:   now.Add(time.Hour),
		Settings:  tournament.Settings{LiveBoard: liveBoard},
	}
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := tournament.New(db)
	t := newTournament(cfg["SEED_HILL"], cfg["SEED_LIVE_BOARD"] == "true", time.Now().UTC())
	if err := store.Create(context.Background(), t); err != nil {
		log.Fatalf("Failed to seed tournament: %s", err)
	}

	log.Info("Seeding complete.", "code", t.Code, "hill", t.Hill, "start", t.StartDate.Format(time.RFC3339), "end", t.EndDate.Format(time.RFC3339))
}
