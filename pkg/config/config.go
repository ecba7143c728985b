package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads ./configs/.env once. A missing file is fine: deployments may
// set plain environment variables instead.
func New() *Config {
	once.Do(func() {
		if err := godotenv.Load("./configs/.env"); err != nil {
			log.Println("no .env file loaded, relying on environment: " + err.Error())
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// GetStringOr falls back to def when the key is unset or empty.
func (c *Config) GetStringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
