package config

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Load reads the TOML file at path on top of Default, then lets environment
// variables (optionally from a .env file) override tagged fields.
func Load(path string) (Configs, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, err
	}

	if err := cfg.Catalog.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
