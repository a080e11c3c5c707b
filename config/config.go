package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TMDBToken     string
	TelegramToken string
	Port          string

	AppID   int
	AppHash string

	WatchRegion string
	Language    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		TMDBToken:     getEnv("TMDB_TOKEN", ""),
		TelegramToken: getEnv("TELEGRAM_TOKEN", ""),
		Port:          getEnv("PORT", "8080"),
		AppHash:       getEnv("APP_HASH", ""),
		WatchRegion:   getEnv("WATCH_REGION", "US"),
		Language:      getEnv("LANGUAGE", "en-US"),
	}

	if cfg.TMDBToken == "" {
		log.Fatal("TMDB_TOKEN is required")
	}

	appID, _ := strconv.Atoi(getEnv("APP_ID", "0"))
	cfg.AppID = appID

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
