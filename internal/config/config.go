package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nvquaan/con-bo-cham-chi/internal/credential"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "https://ddc.fis.vn"
	DefaultHistorySize = 15
	MinHistorySize     = 10
	MaxHistorySize     = 15
)

// ErrInvalidHistorySize is returned when history_size is outside 10–15.
var ErrInvalidHistorySize = errors.New("history_size must be between 10 and 15")

// Config holds the runtime settings for conbo.
type Config struct {
	BaseURL     string
	HistorySize int
	// Timeout of zero leaves the HTTP transport default in place.
	Timeout   time.Duration
	StorePath string
}

type fileConfig struct {
	BaseURL     string `yaml:"base_url"`
	HistorySize int    `yaml:"history_size"`
	Timeout     string `yaml:"timeout"`
	StorePath   string `yaml:"store_path"`
}

// Dir returns the global conbo directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".conbo")
}

// Path returns the default config file path.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.yaml")
}

// Default returns the built-in configuration for homeDir.
func Default(homeDir string) Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		HistorySize: DefaultHistorySize,
		StorePath:   credential.StorePath(homeDir),
	}
}

// Load reads the YAML config at path on top of Default(homeDir), then
// applies CONBO_BASE_URL and CONBO_STORE from getenv. A missing file is not
// an error.
func Load(homeDir, path string, getenv func(string) string) (Config, error) {
	cfg := Default(homeDir)

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := fc.apply(&cfg); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	if getenv != nil {
		if v := getenv("CONBO_BASE_URL"); v != "" {
			cfg.BaseURL = v
		}
		if v := getenv("CONBO_STORE"); v != "" {
			cfg.StorePath = v
		}
	}

	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.HistorySize != 0 {
		if fc.HistorySize < MinHistorySize || fc.HistorySize > MaxHistorySize {
			return fmt.Errorf("%w (got %d)", ErrInvalidHistorySize, fc.HistorySize)
		}
		cfg.HistorySize = fc.HistorySize
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("timeout must not be negative")
		}
		cfg.Timeout = d
	}
	if fc.StorePath != "" {
		cfg.StorePath = fc.StorePath
	}
	return nil
}
