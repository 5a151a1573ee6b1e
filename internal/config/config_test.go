package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: https://api.example.com
ui:
  default_mode: light
dashboard:
  recent_limit: 10
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, "15s", cfg.API.Timeout, "unset keys keep defaults")
	assert.Equal(t, "light", cfg.UI.DefaultMode)
	assert.Equal(t, 10, cfg.Dashboard.RecentLimit)
}

func TestAPIToken(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Token = "from-file"

	t.Setenv(TokenEnv, "")
	assert.Equal(t, "from-file", cfg.APIToken())

	t.Setenv(TokenEnv, "from-env")
	assert.Equal(t, "from-env", cfg.APIToken())
	assert.Equal(t, "from-file", cfg.API.Token, "environment is never written back")
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.UI.Dense = true
	cfg.Preferences.Path = "/tmp/prefs.yaml"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty base url", mutate: func(c *Config) { c.API.BaseURL = "" }, wantErr: true},
		{name: "non-http base url", mutate: func(c *Config) { c.API.BaseURL = "ftp://host" }, wantErr: true},
		{name: "bad timeout", mutate: func(c *Config) { c.API.Timeout = "soon" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.API.Timeout = "-1s" }, wantErr: true},
		{name: "unknown theme", mutate: func(c *Config) { c.UI.DefaultTheme = "neon" }, wantErr: true},
		{name: "unknown mode", mutate: func(c *Config) { c.UI.DefaultMode = "sepia" }, wantErr: true},
		{name: "empty mode", mutate: func(c *Config) { c.UI.DefaultMode = "" }},
		{name: "negative limit", mutate: func(c *Config) { c.Dashboard.RecentLimit = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAPITimeout(t *testing.T) {
	cfg := DefaultConfig()
	d, err := cfg.APITimeout()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	cfg.API.Timeout = ""
	d, err = cfg.APITimeout()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestPreferencesPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preferences.Path = "/custom/prefs.yaml"

	path, err := cfg.PreferencesPath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/prefs.yaml", path)
}
