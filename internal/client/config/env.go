package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first when present;
// already-set variables win over the file.
//
// Recognized variables:
//
//	FITCOACH_API_URL        backend base URL
//	FITCOACH_DB             token database path
//	FITCOACH_TOAST_SECONDS  toast auto-dismiss delay, in seconds
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FITCOACH_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("FITCOACH_DB"); v != "" {
		cfg.TokenDBPath = v
	}
	if v := os.Getenv("FITCOACH_TOAST_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.ToastDelay = time.Duration(seconds) * time.Second
		}
	}
}
