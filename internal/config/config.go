package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var validEnvs = map[string]bool{
	"local": true,
	"prod":  true,
}

type Config struct {
	AppEnv      string `yaml:"app_env" env:"APP_ENV" env-default:"local"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL" env-default:"warn"`
	DataFile    string `yaml:"data_file" env:"TODO_DATA_FILE" env-default:"todos.json"`
	DefaultTime string `yaml:"default_time" env:"TODO_DEFAULT_TIME" env-default:"23:59"`
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	if !validEnvs[c.AppEnv] {
		return fmt.Errorf("invalid APP_ENV %q: must be one of local, prod", c.AppEnv)
	}
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("TODO_DATA_FILE must not be empty")
	}
	if _, err := time.Parse("15:04", c.DefaultTime); err != nil {
		return fmt.Errorf("invalid TODO_DEFAULT_TIME %q: expected HH:MM", c.DefaultTime)
	}
	return nil
}

// Load reads configuration from the environment, layered over the YAML file
// at path when one is given. A path that does not exist falls back to the
// environment alone.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg = Config{}
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return Config{}, fmt.Errorf("cannot read env: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("cannot read config %q: %w", path, err)
	}

	return cfg, nil
}
