package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	SyncEndpoint    string
	AIEndpoint      string
	AIAPIKey        string
	AIModel         string
	WeatherEndpoint string
	WeatherAPIKey   string
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
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "Asia/Tokyo"),
		DBPath:          get("DB_PATH", "kaju.db"),
		SyncEndpoint:    get("SYNC_ENDPOINT", ""),
		AIEndpoint:      get("AI_ENDPOINT", ""),
		AIAPIKey:        get("AI_API_KEY", ""),
		AIModel:         get("AI_MODEL", "gpt-4o-mini"),
		WeatherEndpoint: get("WEATHER_ENDPOINT", ""),
		WeatherAPIKey:   get("WEATHER_API_KEY", ""),
	}
	log.Printf("[cfg] port=%s tz=%s db=%s sync=%t ai=%t weather=%t",
		cfg.Port, cfg.Timezone, cfg.DBPath,
		cfg.SyncEndpoint != "", cfg.AIEndpoint != "", cfg.WeatherEndpoint != "")
	return cfg
}

// Location resolves the configured timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[cfg] bad TZ %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}
