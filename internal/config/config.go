// internal/config/config.go
package config

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. STOREFRONT_SERVER_ADDR.
const EnvPrefix = "STOREFRONT"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Books     BooksConfig     `mapstructure:"books"`
	Admin     AdminConfig     `mapstructure:"admin"`
	UI        UIConfig        `mapstructure:"ui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// BooksConfig points at the remote books API.
type BooksConfig struct {
	APIURL    string        `mapstructure:"api_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"` // requests per second, 0 = unlimited
	Burst     int           `mapstructure:"burst"`
}

// AdminConfig guards the books admin. An empty PasswordHash disables auth.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

type UIConfig struct {
	CompactThreshold int `mapstructure:"compact_threshold"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
}

var defaults = map[string]any{
	"server.addr":             ":8080",
	"books.api_url":           "http://localhost:8081",
	"books.timeout":           "10s",
	"books.rate_limit":        0,
	"books.burst":             1,
	"admin.username":          "admin",
	"admin.password_hash":     "",
	"ui.compact_threshold":    60,
	"logging.level":           "info",
	"logging.format":          "json",
	"telemetry.otlp_endpoint": "",
	"telemetry.service_name":  "storefront",
}

// SetDefaults registers the default of every key on v. Keys need a default
// for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// Load reads configuration into a Config. A .env file in the working
// directory is loaded first; configFile, when set, must exist, otherwise
// config.yaml is looked up in the working directory and is optional.
// Environment variables override the file.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	// A missing .env is fine: the environment may be set directly.
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", configFile)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "read config")
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot work with.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Books.APIURL) == "":
		return errors.New("books.api_url is required")
	case c.Books.Timeout <= 0:
		return errors.New("books.timeout must be positive")
	case c.Books.RateLimit < 0:
		return errors.New("books.rate_limit must not be negative")
	case c.Books.Burst < 1:
		return errors.New("books.burst must be at least 1")
	case c.UI.CompactThreshold < 0:
		return errors.New("ui.compact_threshold must not be negative")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return errors.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
