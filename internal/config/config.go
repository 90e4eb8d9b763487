package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the static process configuration, read once at startup from the
// environment (optionally seeded from a .env file).
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	Prefix       string `env:"PREFIX" envDefault:"!"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"data/herald.json"`
	LogFile      string `env:"LOG_FILE" envDefault:"data/herald.log"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	// DevChannelID, when set, receives detailed classic-path error replies
	// instead of the generic line.
	DevChannelID string `env:"DISCORD_BOTDEV_CHANNEL"`
}

// Load reads the configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
