// Package config loads host configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Bank configures the account directory.
type Bank struct {
	// Prefix is the fixed account-number prefix; the directory issues
	// numbers of the form "<Prefix>-<8-digit sequence>".
	Prefix string `envconfig:"PREFIX" default:"20172019"`
}

// Log configures the demo host's logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankledger]"`
}

// App is the root configuration.
type App struct {
	Bank Bank `envconfig:"BANK"`
	Log  Log  `envconfig:"LOG"`
}

// Load reads the App configuration from the environment. A missing .env file
// is not an error; system environment variables always apply.
func Load() (*App, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system environment variables")
	}
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
