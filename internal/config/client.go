package config

import "time"

// ClientConfig is the configuration of the terminal client.
type ClientConfig struct {
	API      APIConfig      `yaml:"api"`
	Session  SessionConfig  `yaml:"session"`
	Editor   EditorConfig   `yaml:"editor"`
	Cards    CardsConfig    `yaml:"cards"`
	Training TrainingConfig `yaml:"training"`
	OAuth    OAuthConfig    `yaml:"oauth"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
}

// APIConfig points the client at the REST API.
type APIConfig struct {
	BaseURL string `yaml:"base_url" env:"LEXITABLE_API_BASE_URL" env-default:"http://localhost:3000"`
}

// SessionConfig holds where the fallback bearer token is persisted.
type SessionConfig struct {
	TokenFile string `yaml:"token_file" env:"LEXITABLE_TOKEN_FILE"`
}

// EditorConfig holds table editor timings.
type EditorConfig struct {
	PageSize       int           `yaml:"page_size"       env:"LEXITABLE_PAGE_SIZE"       env-default:"50"`
	SearchDebounce time.Duration `yaml:"search_debounce" env:"LEXITABLE_SEARCH_DEBOUNCE" env-default:"1000ms"`
}

// CardsConfig holds card-settings timings.
type CardsConfig struct {
	AutosaveDelay time.Duration `yaml:"autosave_delay" env:"LEXITABLE_AUTOSAVE_DELAY" env-default:"800ms"`
	CountDelay    time.Duration `yaml:"count_delay"    env:"LEXITABLE_COUNT_DELAY"    env-default:"500ms"`
}

// TrainingConfig holds swipe geometry.
type TrainingConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold" env:"LEXITABLE_SWIPE_THRESHOLD" env-default:"80"`
	TapThreshold   float64 `yaml:"tap_threshold"   env:"LEXITABLE_TAP_THRESHOLD"   env-default:"10"`
	PixelsPerCell  float64 `yaml:"pixels_per_cell" env:"LEXITABLE_PIXELS_PER_CELL" env-default:"8"`
}

// OAuthConfig holds the browser sign-in settings.
type OAuthConfig struct {
	Timeout      time.Duration `yaml:"timeout"       env:"LEXITABLE_OAUTH_TIMEOUT"       env-default:"30s"`
	CallbackHost string        `yaml:"callback_host" env:"LEXITABLE_OAUTH_CALLBACK_HOST" env-default:"127.0.0.1"`
}

// CacheConfig sizes the client query cache.
type CacheConfig struct {
	Size      int           `yaml:"size"       env:"LEXITABLE_CACHE_SIZE"       env-default:"256"`
	StaleTime time.Duration `yaml:"stale_time" env:"LEXITABLE_CACHE_STALE_TIME" env-default:"30s"`
}
