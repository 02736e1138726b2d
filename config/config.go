package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/go-kyugo/usersvc/validation"
)

// DefaultPath is the config file looked up when no -config flag is given.
const DefaultPath = "config.json"

type AppConfig struct {
	Name        string `json:"name" yaml:"name"`
	Environment string `json:"environment" yaml:"environment"`
	Debug       bool   `json:"debug" yaml:"debug"`
}

type ServerConfig struct {
	Host                string     `json:"host" yaml:"host" validate:"omitempty,ip|hostname"`
	Port                int        `json:"port" yaml:"port" validate:"min=1,max=65535"`
	ReadTimeoutSeconds  int        `json:"read_timeout_seconds" yaml:"read_timeout_seconds" validate:"min=0"`
	WriteTimeoutSeconds int        `json:"write_timeout_seconds" yaml:"write_timeout_seconds" validate:"min=0"`
	IdleTimeoutSeconds  int        `json:"idle_timeout_seconds" yaml:"idle_timeout_seconds" validate:"min=0"`
	Cors                CorsConfig `json:"cors,omitempty" yaml:"cors,omitempty"`
}

type CorsConfig struct {
	AllowedOrigins []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"`
	AllowedMethods []string `json:"allowed_methods,omitempty" yaml:"allowed_methods,omitempty" validate:"dive,oneof=GET HEAD POST PUT PATCH DELETE OPTIONS"`
	AllowedHeaders []string `json:"allowed_headers,omitempty" yaml:"allowed_headers,omitempty"`
	MaxAgeSeconds  int      `json:"max_age_seconds,omitempty" yaml:"max_age_seconds,omitempty" validate:"min=0"`
}

type LoggerConfig struct {
	Type  string `json:"type" yaml:"type" validate:"omitempty,oneof=color simple json none"`
	Level string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type Config struct {
	App    AppConfig    `json:"app" yaml:"app"`
	Server ServerConfig `json:"server" yaml:"server"`
	Logger LoggerConfig `json:"logger" yaml:"logger"`
}

// Default returns the configuration the service runs with when no file is
// present: listen on 0.0.0.0:3000, colored console logs at info level.
func Default() Config {
	return Config{
		App: AppConfig{Name: "usersvc", Environment: "development"},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Logger: LoggerConfig{Type: "color", Level: "info"},
	}
}

// Addr returns host:port for net.Listen.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks every field rule and returns a *validation.Error listing
// the failing ones.
func (c Config) Validate() error {
	return validation.Check(c)
}

// Load reads path into v. Files ending in .yaml or .yml are decoded as YAML,
// everything else as JSON. Values already set on v act as defaults.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, v); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, v); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return nil
}

// LoadConfig starts from Default, overlays the file at path and validates
// the result. A missing file is only tolerated at DefaultPath, so an
// explicit -config pointing nowhere still fails startup.
func LoadConfig(path string) (Config, error) {
	c := Default()
	if path == "" {
		path = DefaultPath
	}
	if err := Load(path, &c); err != nil {
		if !(errors.Is(err, fs.ErrNotExist) && path == DefaultPath) {
			return Config{}, err
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
