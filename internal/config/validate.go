package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the server configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}
	if (c.Auth.GoogleClientID == "") != (c.Auth.GoogleClientSecret == "") {
		return fmt.Errorf("auth: google_client_id and google_client_secret must be set together")
	}
	if err := c.Vocab.validate(); err != nil {
		return fmt.Errorf("vocab: %w", err)
	}
	if c.Jobs.TokenCleanupInterval <= 0 {
		return fmt.Errorf("jobs.token_cleanup_interval must be > 0 (got %v)", c.Jobs.TokenCleanupInterval)
	}
	return nil
}

func (v *VocabConfig) validate() error {
	if v.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", v.MaxPageSize)
	}
	if v.MaxTrainCards <= 0 {
		return fmt.Errorf("max_train_cards must be > 0 (got %d)", v.MaxTrainCards)
	}
	if v.ImportChunkSize < 1 || v.ImportChunkSize > 1000 {
		return fmt.Errorf("import_chunk_size must be between 1 and 1000 (got %d)", v.ImportChunkSize)
	}
	if v.ImportMaxRows <= 0 {
		return fmt.Errorf("import_max_rows must be > 0 (got %d)", v.ImportMaxRows)
	}
	if v.ExportMaxWords <= 0 {
		return fmt.Errorf("export_max_words must be > 0 (got %d)", v.ExportMaxWords)
	}
	return nil
}

// Validate checks the client configuration and fills derived defaults.
func (c *ClientConfig) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL (got %q)", c.API.BaseURL)
	}
	if c.Editor.PageSize <= 0 {
		return fmt.Errorf("editor.page_size must be > 0 (got %d)", c.Editor.PageSize)
	}
	if c.Training.TapThreshold >= c.Training.SwipeThreshold {
		return fmt.Errorf("training.tap_threshold (%v) must be below swipe_threshold (%v)",
			c.Training.TapThreshold, c.Training.SwipeThreshold)
	}
	if c.Training.PixelsPerCell <= 0 {
		return fmt.Errorf("training.pixels_per_cell must be > 0 (got %v)", c.Training.PixelsPerCell)
	}
	if c.OAuth.Timeout <= 0 {
		return fmt.Errorf("oauth.timeout must be > 0 (got %v)", c.OAuth.Timeout)
	}
	if c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be > 0 (got %d)", c.Cache.Size)
	}
	if c.Session.TokenFile == "" {
		c.Session.TokenFile = DefaultTokenFile()
	}
	return nil
}
