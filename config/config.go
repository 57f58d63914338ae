package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	Storage  string // "file" or "sqlite"
	DataDir  string // file backend root
	DBPath   string // sqlite backend database
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "Europe/Berlin"),
		Storage:  get("STORAGE", "file"),
		DataDir:  get("DATA_DIR", "data"),
		DBPath:   get("DB_PATH", "bodytracker.db"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
