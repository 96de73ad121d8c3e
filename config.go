package flashdeck

import (
	"os"
	"strconv"
	"strings"
)

// Config holds everything the server binary needs from the environment
type Config struct {
	HTTPAddr      string
	OpenAIAPIKey  string
	DBPath        string
	LogDir        string
	SessionSecret string
	CORSOrigins   []string
	NumCards      int
	MaxSessions   int
	Verbose       bool
}

// FromEnv builds a Config from environment variables with sensible
// defaults for local development
func FromEnv() Config {
	return Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		DBPath:        envOr("DB_PATH", "flashdeck.db"),
		LogDir:        envOr("LOG_DIR", "log"),
		SessionSecret: envOr("SESSION_SECRET", "flashdeck-dev-secret"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		NumCards:      envInt("NUM_CARDS", 10),
		MaxSessions:   envInt("MAX_SESSIONS", 1024),
		Verbose:       envBool("VERBOSE", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := os.Getenv(k)
	if v == "" {
		v = def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
