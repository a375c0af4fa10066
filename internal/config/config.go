package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Provider ProviderConfig `mapstructure:"provider"`
	Display  DisplayConfig  `mapstructure:"display"`
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
	Tray     TrayConfig     `mapstructure:"tray"`
}

// ProviderConfig represents holiday data provider configuration
type ProviderConfig struct {
	Type    string `mapstructure:"type"` // "timor", "file" or "builtin"
	BaseURL string `mapstructure:"base_url"`
	Timeout string `mapstructure:"timeout"`
	DataDir string `mapstructure:"data_dir"` // Directory of {year}.json files; fallback for timor
	Region  string `mapstructure:"region"`   // Holiday rules for builtin, e.g. "us"
}

// DisplayConfig represents terminal output configuration
type DisplayConfig struct {
	Theme string `mapstructure:"theme"` // "light" or "dark"
	Color string `mapstructure:"color"` // "auto", "always" or "never"
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// TrayConfig represents system tray configuration
type TrayConfig struct {
	Enabled bool `mapstructure:"enabled"` // Windows only
}

// Load loads configuration from file. A missing file is not an error
// when no explicit path was given; defaults apply.
func Load(configPath string) (*Config, error) {
	// A .env file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.holiday-calendar")
		v.AddConfigPath("/etc/holiday-calendar")
	}

	// Read environment variables, e.g. HOLIDAY_CALENDAR_PROVIDER_TYPE
	v.SetEnvPrefix("holiday_calendar")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider.type", "timor")
	v.SetDefault("provider.base_url", "http://timor.tech/api/holiday/year")
	v.SetDefault("provider.timeout", "10s")
	v.SetDefault("provider.data_dir", "")
	v.SetDefault("provider.region", "us")
	v.SetDefault("display.theme", "light")
	v.SetDefault("display.color", "auto")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("tray.enabled", false)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Provider config
	switch c.Provider.Type {
	case "timor":
		if c.Provider.BaseURL == "" {
			return fmt.Errorf("provider.base_url is required for timor type")
		}
	case "file":
		if c.Provider.DataDir == "" {
			return fmt.Errorf("provider.data_dir is required for file type")
		}
	case "builtin":
		if c.Provider.Region == "" {
			return fmt.Errorf("provider.region is required for builtin type")
		}
	default:
		return fmt.Errorf("provider.type must be 'timor', 'file' or 'builtin', got '%s'", c.Provider.Type)
	}

	// Validate Display config
	switch c.Display.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("display.theme must be 'light' or 'dark', got '%s'", c.Display.Theme)
	}
	switch c.Display.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("display.color must be 'auto', 'always' or 'never', got '%s'", c.Display.Color)
	}

	// Validate Server config
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	return nil
}

// GetTimeout returns provider request timeout duration
func (c *ProviderConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil || duration <= 0 {
		return 10 * time.Second
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Provider.BaseURL = os.ExpandEnv(c.Provider.BaseURL)
	c.Provider.DataDir = os.ExpandEnv(c.Provider.DataDir)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
