// Package config provides application configuration loaded from environment
// variables with defaults. It centralizes the server port, MongoDB connection
// settings, and logging options.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration values for the application.
type Config struct {
	Port      string // PORT, just the number
	MongoURI  string // MONGO_URI
	DBName    string // DB_NAME
	LogLevel  string // LOG_LEVEL: debug|info|warn|error
	LogPretty bool   // LOG_PRETTY: pretty console logs in dev
}

// Load reads the configuration from the environment, applying defaults
// for anything unset.
func Load() Config {
	return Config{
		Port:      getenv("PORT", "3000"),
		MongoURI:  getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getenv("DB_NAME", "studypal"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogPretty: getbool("LOG_PRETTY", false),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
