package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/joho/godotenv"

	"github.com/Temutjin2k/rickshaw-analytics/pkg/configparser"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
)

// Errors
var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidPort     = errors.New("invalid server port")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server    ServerConfig
		Dataset   DatasetConfig
		Dashboard DashboardConfig
		Log       LogConfig
	}

	ServerConfig struct {
		Host            string        `env:"SERVER_HOST" default:"0.0.0.0"`
		Port            int           `env:"SERVER_PORT" default:"3000"`
		ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"5s"`
		ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" default:"10s"`
		WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	}

	DatasetConfig struct {
		// Source is a file path or an http(s) URL of the dataset document.
		Source string `env:"DATASET_SOURCE" default:"public/data.json"`
	}

	DashboardConfig struct {
		Title      string `env:"DASHBOARD_TITLE" default:"Chennai Auto-Rickshaw Analytics"`
		AssetsHost string `env:"DASHBOARD_ASSETS_HOST" default:"https://go-echarts.github.io/go-echarts-assets/assets/"`
	}

	LogConfig struct {
		Level   string `env:"LOG_LEVEL" default:"INFO"`
		Service string `env:"LOG_SERVICE" default:"rickshaw-dashboard"`
	}
)

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, fmt.Sprint(c.Port))
}

// NewConfig loads .env (if present), then the YAML file, then binds the
// environment to the config struct. Values already in the environment win.
func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !logger.ValidateLogLevel(c.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}
	return nil
}
