package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Debug           bool
	Port            string
	AllowedOrigins  string
	AllowlistEmails string
	AnthropicAPIKey string
	GeminiAPIKey    string
	DatabaseURL     string
}

// Load reads the process environment (plus an optional .env file) once at startup.
// DATABASE_URL may be empty: the service then runs without persistence and the
// endpoints that need it answer 503.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Debug:           getEnvBool("DEBUG", false),
		Port:            getEnv("PORT", "8080"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		AllowlistEmails: getEnv("ALLOWLIST_EMAILS", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
	}
}

// AllowedEmails parses the comma-separated allowlist. An empty allowlist
// admits every authenticated caller.
func (c *Config) AllowedEmails() map[string]struct{} {
	set := make(map[string]struct{})
	for _, e := range strings.Split(c.AllowlistEmails, ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return set
}

func (c *Config) AllowedOriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
