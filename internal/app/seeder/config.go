package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the demo account and vocabulary settings.
type Config struct {
	Email    string `yaml:"email"     env:"SEEDER_EMAIL"     env-default:"demo@lexitable.local"`
	Password string `yaml:"password"  env:"SEEDER_PASSWORD"  env-default:"demo-password"`
	Name     string `yaml:"name"      env:"SEEDER_NAME"      env-default:"Demo"`
	SetTitle string `yaml:"set_title" env:"SEEDER_SET_TITLE" env-default:"Sample vocabulary"`
	DryRun   bool   `yaml:"dry_run"   env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
