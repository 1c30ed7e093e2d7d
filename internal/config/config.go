// Package config loads the hotboard configuration from YAML, an optional
// .env file, and environment variable overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"hotboard/internal/board"
	"hotboard/internal/heatmap"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the hotboard clients.
type Config struct {
	Backend Backend `yaml:"backend"`
	Logging Logging `yaml:"logging"`
	Console Console `yaml:"console"`
	Watch   Watch   `yaml:"watch"`
}

// Backend locates the stock-analysis REST backend.
type Backend struct {
	BaseURL         string `yaml:"base_url"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	MaxRetries      int    `yaml:"max_retries"`
	RateLimitPerMin int    `yaml:"rate_limit_per_min"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

// Console holds the interactive console defaults.
type Console struct {
	DefaultScheme   string  `yaml:"default_scheme"`
	DefaultAlpha    float64 `yaml:"default_alpha"`
	DefaultCategory string  `yaml:"default_category"`
	RefreshSeconds  int     `yaml:"refresh_seconds"`
}

// Watch configures the headless monitor watcher.
type Watch struct {
	Cron            string `yaml:"cron"`
	SignalLimit     int    `yaml:"signal_limit"`
	MarketHoursOnly bool   `yaml:"market_hours_only"`
}

// Default returns the built-in configuration, used when no config file
// exists and as the base the file is merged over.
func Default() *Config {
	return &Config{
		Backend: Backend{
			BaseURL:         "http://localhost:8000",
			TimeoutSeconds:  30,
			MaxRetries:      3,
			RateLimitPerMin: 120,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Console: Console{
			DefaultScheme:   "change",
			DefaultAlpha:    0.5,
			DefaultCategory: "all",
			RefreshSeconds:  30,
		},
		Watch: Watch{
			Cron:            "0 */5 9-15 * * 1-5",
			SignalLimit:     20,
			MarketHoursOnly: true,
		},
	}
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load reads the YAML configuration file at the given path over the
// defaults, then applies .env and environment variable overrides. An empty
// path (no HOTBOARD_CONFIG, no file) yields the defaults plus overrides.
func Load(path string) (*Config, error) {
	// A missing .env is fine; an existing one feeds the overrides below.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Path resolves the config file path: HOTBOARD_CONFIG wins, then the
// conventional location if it exists, else "" (defaults only).
func Path() string {
	if p := os.Getenv("HOTBOARD_CONFIG"); p != "" {
		return p
	}
	const conventional = "config/hotboard.yaml"
	if _, err := os.Stat(conventional); err == nil {
		return conventional
	}
	return ""
}

// applyEnvOverrides checks well-known environment variables and overrides
// the corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOTBOARD_BASE_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HOTBOARD_SCHEME"); v != "" {
		cfg.Console.DefaultScheme = v
	}
	if v := os.Getenv("HOTBOARD_ALPHA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Console.DefaultAlpha = f
		}
	}
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// Validate rejects configurations no client can run with.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: backend.base_url must not be empty")
	}
	if c.Backend.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: backend.timeout_seconds must be positive, got %d", c.Backend.TimeoutSeconds)
	}
	if c.Console.DefaultAlpha < 0 || c.Console.DefaultAlpha > 1 {
		return fmt.Errorf("config: console.default_alpha must be in [0,1], got %g", c.Console.DefaultAlpha)
	}
	if !knownScheme(c.Console.DefaultScheme) {
		return fmt.Errorf("config: unknown console.default_scheme %q", c.Console.DefaultScheme)
	}
	if _, ok := board.ParseCategory(c.Console.DefaultCategory); !ok {
		return fmt.Errorf("config: unknown console.default_category %q", c.Console.DefaultCategory)
	}
	return nil
}

func knownScheme(name string) bool {
	for _, n := range heatmap.SchemeNames() {
		if n == name {
			return true
		}
	}
	return false
}
