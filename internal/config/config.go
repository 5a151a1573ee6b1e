// Package config handles configuration loading and validation for energyexe
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/energyexe/dashboard/internal/prefs"
)

// TokenEnv overrides the configured API token when set.
const TokenEnv = "ENERGYEXE_API_TOKEN"

// Config represents the main configuration for energyexe
type Config struct {
	API         APIConfig         `yaml:"api"`
	UI          UIConfig          `yaml:"ui"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Dashboard   DashboardConfig   `yaml:"dashboard"`
}

// APIConfig points at the portfolio API
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
	Token   string `yaml:"token,omitempty"`
}

// UIConfig holds presentation defaults. The live theme and mode come from
// the preference store; these only apply when nothing is persisted.
type UIConfig struct {
	DefaultTheme string `yaml:"default_theme"`
	DefaultMode  string `yaml:"default_mode"`
	NoColor      bool   `yaml:"no_color"`
	Dense        bool   `yaml:"dense"`
}

// PreferencesConfig locates the preference store
type PreferencesConfig struct {
	// Path of the preferences file; empty means the user config directory.
	Path string `yaml:"path"`
}

// DashboardConfig tunes the portfolio overview
type DashboardConfig struct {
	RecentLimit int `yaml:"recent_limit"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000/api",
			Timeout: "15s",
		},
		UI: UIConfig{
			DefaultTheme: string(prefs.DefaultTheme),
			DefaultMode:  string(prefs.DefaultMode),
		},
		Dashboard: DashboardConfig{
			RecentLimit: 5,
		},
	}
}

// Load loads configuration from a file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an http(s) URL", c.API.BaseURL)
	}
	if _, err := c.APITimeout(); err != nil {
		return err
	}
	if c.UI.DefaultTheme != "" {
		if _, ok := prefs.ParseTheme(c.UI.DefaultTheme); !ok {
			return fmt.Errorf("ui.default_theme %q is not a known theme", c.UI.DefaultTheme)
		}
	}
	if c.UI.DefaultMode != "" {
		if _, ok := prefs.ParseMode(c.UI.DefaultMode); !ok {
			return fmt.Errorf("ui.default_mode must be light or dark, got %q", c.UI.DefaultMode)
		}
	}
	if c.Dashboard.RecentLimit < 0 {
		return fmt.Errorf("dashboard.recent_limit must not be negative")
	}
	return nil
}

// APIToken returns the token from the environment, falling back to the
// config file.
func (c *Config) APIToken() string {
	if token := os.Getenv(TokenEnv); token != "" {
		return token
	}
	return c.API.Token
}

// APITimeout parses api.timeout; empty means no timeout.
func (c *Config) APITimeout() (time.Duration, error) {
	if c.API.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("api.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("api.timeout must not be negative")
	}
	return d, nil
}

// PreferencesPath returns the preferences file, defaulting to the user
// config directory.
func (c *Config) PreferencesPath() (string, error) {
	if c.Preferences.Path != "" {
		return c.Preferences.Path, nil
	}
	return prefs.DefaultFilePath()
}

// DefaultPath returns config.yaml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "energyexe", "config.yaml"), nil
}

// LoadDefault loads configuration from the default path.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}
