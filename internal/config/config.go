// Package config resolves runtime settings from the environment. A
// .env file in the working directory is honored when present; real
// environment variables win over it.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "HABITUAL_"

// Settings holds everything configurable outside the CLI flags.
type Settings struct {
	OracleAPIKey     string
	OracleBaseURL    string
	OracleModel      string
	OracleMaxRetries int
	SessionTimeout   time.Duration
	AutoSaveInterval time.Duration
	Debug            bool
}

// Load reads settings from the environment, applying defaults for
// anything unset. It never fails: a missing or malformed .env file is
// ignored, and unparsable values fall back to their defaults.
func Load() Settings {
	// Best effort; absence of a .env file is the common case
	_ = godotenv.Load()

	s := Settings{
		OracleAPIKey:     envOr("ORACLE_API_KEY", ""),
		OracleBaseURL:    envOr("ORACLE_BASE_URL", ""),
		OracleModel:      envOr("ORACLE_MODEL", ""),
		OracleMaxRetries: envInt("ORACLE_MAX_RETRIES", 3),
		SessionTimeout:   envSeconds("SESSION_TIMEOUT", 300*time.Second),
		AutoSaveInterval: envSeconds("AUTO_SAVE_INTERVAL", 30*time.Second),
		Debug:            envBool("DEBUG", false),
	}

	// The oracle speaks the OpenAI chat API, so honor the conventional
	// variable when no habitual-specific key is set.
	if s.OracleAPIKey == "" {
		s.OracleAPIKey = os.Getenv("OPENAI_API_KEY")
	}

	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
