package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a .env file first
// if one exists.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(".env")

	if v := os.Getenv("TWEETX_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TWEETX_MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("TWEETX_DATABASE"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("TWEETX_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionTTL = d
		}
	}
}
