package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port                 int
	DBDSN                string
	JWTSecret            string
	GroqKey              string
	OpenAIKey            string
	SkillThreshold       int
	WSInsecureSkipVerify bool
}

func Load() Config {
	port := 8080
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	threshold := 3
	if v := os.Getenv("SKILL_THRESHOLD"); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			threshold = t
		}
	}

	wsInsecure := false
	if os.Getenv("WS_INSECURE_SKIP_VERIFY") == "true" {
		wsInsecure = true
	}

	return Config{
		Port:                 port,
		DBDSN:                buildDSN(),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		GroqKey:              os.Getenv("GROQ_KEY"),
		OpenAIKey:            os.Getenv("OPENAI_KEY"),
		SkillThreshold:       threshold,
		WSInsecureSkipVerify: wsInsecure,
	}
}

// buildDSN prefers a full DB_DSN and otherwise assembles a postgres URL
// from the discrete DB_* variables.
func buildDSN() string {
	if v := os.Getenv("DB_DSN"); v != "" {
		return v
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		os.Getenv("DB_USERNAME"),
		os.Getenv("DB_PASSWORD"),
		host,
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)
}
