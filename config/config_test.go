package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			RapidAPI: RapidAPIConfig{
				APIKey:  "valid-api-key",
				Timeout: 30 * time.Second,
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "console",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing api key",
			mutate:  func(cfg *Config) { cfg.RapidAPI.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder api key",
			mutate:  func(cfg *Config) { cfg.RapidAPI.APIKey = "your-rapidapi-key-here" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *Config) { cfg.RapidAPI.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `rapidapi:
  api_key: test-key
  timeout: 10s

channels:
  - ninja
  - shroud

filter:
  default: "Live"
  presets:
    popular: "Viewers > 1000"

logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.RapidAPI.APIKey != "test-key" {
		t.Errorf("expected api key %q but got %q", "test-key", cfg.RapidAPI.APIKey)
	}
	if cfg.RapidAPI.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s but got %v", cfg.RapidAPI.Timeout)
	}
	if len(cfg.Channels) != 2 || cfg.Channels[0] != "ninja" || cfg.Channels[1] != "shroud" {
		t.Errorf("unexpected channels: %v", cfg.Channels)
	}
	if cfg.Filter.Default != "Live" {
		t.Errorf("unexpected default filter: %q", cfg.Filter.Default)
	}
	if cfg.Filter.Presets["popular"] != "Viewers > 1000" {
		t.Errorf("unexpected presets: %v", cfg.Filter.Presets)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug but got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("expected default format console but got %q", cfg.Logging.Format)
	}
	if !cfg.Logging.Color {
		t.Errorf("expected default color true")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	// No config file anywhere the loader searches
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RAPIDAPI_KEY", "env-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.RapidAPI.APIKey != "env-key" {
		t.Errorf("expected api key from environment but got %q", cfg.RapidAPI.APIKey)
	}
	if cfg.RapidAPI.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s but got %v", cfg.RapidAPI.Timeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
