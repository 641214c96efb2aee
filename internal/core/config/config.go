package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	ThemeDark   = "dark"
	ThemeLight  = "light"
	ThemeSystem = "system"
)

type Config struct {
	Launch  LaunchConfig  `yaml:"launch" mapstructure:"launch"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// LaunchConfig controls the window the GUI toolkit opens for a tool.
type LaunchConfig struct {
	AppID   string  `yaml:"app_id" mapstructure:"app_id"`
	Title   string  `yaml:"title" mapstructure:"title"`
	Width   float32 `yaml:"width" mapstructure:"width"`
	Height  float32 `yaml:"height" mapstructure:"height"`
	Theme   string  `yaml:"theme" mapstructure:"theme"` // "dark", "light" or "system"
	Spinner bool    `yaml:"spinner" mapstructure:"spinner"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load unmarshals the settings v has collected from defaults, file and env.
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("launch.app_id", "io.github.go-toolfx")
	v.SetDefault("launch.title", "go-toolfx")
	v.SetDefault("launch.width", 900)
	v.SetDefault("launch.height", 600)
	v.SetDefault("launch.theme", ThemeDark)
	v.SetDefault("launch.spinner", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Default returns the configuration used when nothing was loaded.
func Default() *Config {
	return &Config{
		Launch: LaunchConfig{
			AppID:   "io.github.go-toolfx",
			Title:   "go-toolfx",
			Width:   900,
			Height:  600,
			Theme:   ThemeDark,
			Spinner: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func (c *Config) Validate() error {
	if c.Launch.AppID == "" {
		return fmt.Errorf("launch.app_id is required")
	}
	if c.Launch.Width <= 0 || c.Launch.Height <= 0 {
		return fmt.Errorf("launch.width and launch.height must be positive (got %vx%v)", c.Launch.Width, c.Launch.Height)
	}

	switch c.Launch.Theme {
	case "":
		c.Launch.Theme = ThemeSystem
	case ThemeDark, ThemeLight, ThemeSystem:
	default:
		return fmt.Errorf("unsupported launch.theme: %s (supported: dark, light, system)", c.Launch.Theme)
	}

	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported logging.format: %s (supported: text, json)", c.Logging.Format)
	}
	return nil
}
