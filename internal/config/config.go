package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	TGBotToken string `env:"TG_BOT_TOKEN"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"weatherbot_db"`
	DBUser     string `env:"DB_USER" envDefault:"weatherbot"`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`

	WikiUserAgent string `env:"WIKI_USER_AGENT" envDefault:"WikiBot/1.0 (contact: your_email@example.com)"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// DSN builds the lib/pq connection string. Encoding is pinned to UTF-8 so
// Cyrillic queries and summaries survive the round trip.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=disable client_encoding=UTF8",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword,
	)
}
