package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	GracefulTimeout time.Duration `yaml:"graceful_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

func (s ServerConfig) Address() string { return s.Host + ":" + strconv.FormatInt(int64(s.Port), 10) }

type DatabaseConfig struct {
	Driver         string `yaml:"driver"` // mysql or postgres
	DSN            string `yaml:"dsn"`
	MaxOpenConns   int    `yaml:"max_open_conns"`
	MaxIdleConns   int    `yaml:"max_idle_conns"`
	ConnMaxLifeSec int    `yaml:"conn_max_lifetime"`
}

type RotateConfig struct {
	Enabled bool `yaml:"enabled"`
	MaxSize int  `yaml:"max_size_mb"`
	MaxAge  int  `yaml:"max_age_days"`
}

type LoggingConfig struct {
	Level  string        `yaml:"level"`
	Format string        `yaml:"format"` // json or console
	Output string        `yaml:"output"` // stdout, stderr or a file path
	Rotate *RotateConfig `yaml:"rotate"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
	Path    string `yaml:"path"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil // fallback to defaults if file missing
	}
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:3001"},
		},
		Database: DatabaseConfig{
			Driver:         "mysql",
			DSN:            "root:root@tcp(127.0.0.1:3306)/stocks_analysis?parseTime=true&loc=UTC",
			MaxOpenConns:   50,
			MaxIdleConns:   10,
			ConnMaxLifeSec: 300,
		},
		Logging: LoggingConfig{Level: "INFO", Format: "json", Output: "stdout"},
		Metrics: MetricsConfig{Enabled: true, Address: ":9090", Path: "/metrics"},
	}
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Database.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn cannot be empty")
	}
	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return fmt.Errorf("metrics address cannot be empty when metrics are enabled")
	}
	return nil
}
