// Package config resolves application settings from a .env file, an
// optional YAML file and SCENARIOGEN_* environment variables, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	appDir       = ".scenariogen"
	fileName     = "config.yaml"
	dbName       = "scenariogen.db"
	defaultAddr  = "127.0.0.1:8420"
	defaultMode  = "development"
	defaultLevel = "warn"
)

// Environment variables read by Load.
const (
	EnvConfigFile = "SCENARIOGEN_CONFIG"
	EnvDB         = "SCENARIOGEN_DB"
	EnvLogMode    = "SCENARIOGEN_LOG_MODE"
	EnvLogLevel   = "SCENARIOGEN_LOG_LEVEL"
	EnvHTTPAddr   = "SCENARIOGEN_HTTP_ADDR"
)

// Config is the application configuration.
type Config struct {
	DBPath  string  `yaml:"db"`
	Logging Logging `yaml:"logging"`
	HTTP    HTTP    `yaml:"http"`
}

type Logging struct {
	// Mode is "production" for JSON output or "development" for console
	// output.
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

type HTTP struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when nothing overrides it. Files
// live under home/.scenariogen.
func Default(home string) Config {
	return Config{
		DBPath:  filepath.Join(home, appDir, dbName),
		Logging: Logging{Mode: defaultMode, Level: defaultLevel},
		HTTP:    HTTP{Addr: defaultAddr},
	}
}

// DefaultFile returns the YAML path read when SCENARIOGEN_CONFIG is unset.
func DefaultFile(home string) string {
	return filepath.Join(home, appDir, fileName)
}

// Load builds the configuration. A .env file in the working directory is
// applied to the environment first without overriding variables that are
// already set. A missing YAML file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := Default(home)

	path := os.Getenv(EnvConfigFile)
	if path == "" {
		path = DefaultFile(home)
	}
	if err := mergeFile(&cfg, path); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)
	return cfg, nil
}

// mergeFile overlays the values set in the YAML file at path onto cfg.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogMode); v != "" {
		cfg.Logging.Mode = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		cfg.HTTP.Addr = v
	}
}
