package server

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the HTTP surface needs, resolved once at start.
type Config struct {
	Port    string
	FeedURL string
}

// Load reads the configuration from a .env file when present, the process
// environment otherwise.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables")
	}

	return &Config{
		Port:    getEnv("SERVER_PORT", "8080"),
		FeedURL: getEnv("EGG_FEED_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
