package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config returns the value of key from .env or the process environment.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})
	return os.Getenv(key)
}

// ConfigOr returns fallback when key is unset or empty.
func ConfigOr(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}

// ConfigUint returns key parsed as an unsigned integer, or fallback when the
// key is unset or malformed.
func ConfigUint(key string, fallback uint64) uint64 {
	value := Config(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Printf("Warning: %s=%q is not a valid number, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}
