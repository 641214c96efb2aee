package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Valid default config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "Missing app id",
			mutate:  func(c *Config) { c.Launch.AppID = "" },
			wantErr: true,
			errMsg:  "launch.app_id is required",
		},
		{
			name:    "Zero width",
			mutate:  func(c *Config) { c.Launch.Width = 0 },
			wantErr: true,
			errMsg:  "must be positive",
		},
		{
			name:    "Negative height",
			mutate:  func(c *Config) { c.Launch.Height = -10 },
			wantErr: true,
			errMsg:  "must be positive",
		},
		{
			name:    "Unknown theme",
			mutate:  func(c *Config) { c.Launch.Theme = "solarized" },
			wantErr: true,
			errMsg:  "unsupported launch.theme",
		},
		{
			name:    "Light theme",
			mutate:  func(c *Config) { c.Launch.Theme = ThemeLight },
			wantErr: false,
		},
		{
			name:    "Unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
			errMsg:  "unsupported logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateEmptyThemeFallsBackToSystem(t *testing.T) {
	cfg := Default()
	cfg.Launch.Theme = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Launch.Theme != ThemeSystem {
		t.Errorf("Expected theme %q, got %q", ThemeSystem, cfg.Launch.Theme)
	}
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Launch.AppID != "io.github.go-toolfx" {
		t.Errorf("Expected default app id, got %q", cfg.Launch.AppID)
	}
	if cfg.Launch.Width != 900 || cfg.Launch.Height != 600 {
		t.Errorf("Expected default size 900x600, got %vx%v", cfg.Launch.Width, cfg.Launch.Height)
	}
	if !cfg.Launch.Spinner {
		t.Error("Expected spinner enabled by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestDefault_MatchesSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	loaded, err := Load(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if got := Default(); *got != *loaded {
		t.Errorf("Default() %+v differs from loaded defaults %+v", *got, *loaded)
	}
}

func TestLoad_ConfigFileAndEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	content := `
launch:
  app_id: "org.example.inspector"
  width: 1280
  theme: light
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(configFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("TOOLFX_LAUNCH_HEIGHT", "720")

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(configFile)
	v.SetEnvPrefix("TOOLFX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Launch.AppID != "org.example.inspector" {
		t.Errorf("Expected app id from file, got %q", cfg.Launch.AppID)
	}
	if cfg.Launch.Width != 1280 {
		t.Errorf("Expected width from file, got %v", cfg.Launch.Width)
	}
	if cfg.Launch.Height != 720 {
		t.Errorf("Expected height from env, got %v", cfg.Launch.Height)
	}
	if cfg.Launch.Theme != ThemeLight {
		t.Errorf("Expected light theme, got %q", cfg.Launch.Theme)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Unexpected logging config: %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Loaded config should validate: %v", err)
	}
}
