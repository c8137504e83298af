package database

import (
	"os"
	"strconv"
)

// Config holds database configuration.
type Config struct {
	// Path of the SQLite database file.
	Path string

	// PreserveOldDB controls what happens to a database whose schema
	// version no longer matches: rename it aside when true, delete it
	// when false.
	PreserveOldDB bool
}

// LoadConfigFromEnv loads database configuration from environment
// variables.
func LoadConfigFromEnv() Config {
	preserve, _ := strconv.ParseBool(getEnvOrDefault("PRESERVE_OLD_DB", "true"))
	return Config{
		Path:          getEnvOrDefault("DB_PATH", "data/llimit.db"),
		PreserveOldDB: preserve,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
