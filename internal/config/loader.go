package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type validator interface {
	Validate() error
}

// Load reads the server configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := load("CONFIG_PATH", "./config.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadClient reads the client configuration. A .env file in the working
// directory is applied to the environment first; variables already set win.
// The YAML path comes from LEXITABLE_CONFIG (fallback "./lexitable.yaml").
func LoadClient() (*ClientConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	var cfg ClientConfig
	if err := load("LEXITABLE_CONFIG", "./lexitable.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(pathEnv, fallback string, cfg validator) error {
	path := os.Getenv(pathEnv)
	explicitPath := path != ""
	if !explicitPath {
		path = fallback
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}

// DefaultTokenFile is where the client keeps its bearer token when
// session.token_file is not set.
func DefaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "lexitable", "token")
}
