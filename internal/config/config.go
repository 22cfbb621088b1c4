package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything shelf needs to reach the book service and run.
type Config struct {
	APIURL string `validate:"required"`
	// MaxPublicationYear bounds the save form; zero keeps the built-in bound.
	MaxPublicationYear int `validate:"gte=0"`
	// RequestTimeout of zero means requests run until the action is cancelled.
	RequestTimeout time.Duration `validate:"gte=0"`
	LogFile        string        `validate:"required"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
	// RefreshEvery of zero disables periodic list refresh.
	RefreshEvery time.Duration `validate:"gte=0"`
}

const (
	envPrefix         = "shelf"
	defaultConfigPath = "~/.config/shelf/config.toml"
	defaultLogFile    = "~/.local/share/shelf/logs/shelf.log"
	defaultAPIURL     = "http://localhost:8000/api"
	defaultLogLevel   = "info"
)

// fileConfig mirrors config.toml. Durations are Go duration strings.
type fileConfig struct {
	APIURL             string `toml:"api_url"`
	MaxPublicationYear int    `toml:"max_publication_year"`
	RequestTimeout     string `toml:"request_timeout"`
	LogFile            string `toml:"log_file"`
	LogLevel           string `toml:"log_level"`
	RefreshEvery       string `toml:"refresh_every"`
}

// envConfig holds SHELF_* overrides. Nil fields were not set.
type envConfig struct {
	APIURL             *string        `envconfig:"API_URL"`
	MaxPublicationYear *int           `envconfig:"MAX_PUBLICATION_YEAR"`
	RequestTimeout     *time.Duration `envconfig:"REQUEST_TIMEOUT"`
	LogFile            *string        `envconfig:"LOG_FILE"`
	LogLevel           *string        `envconfig:"LOG_LEVEL"`
	RefreshEvery       *time.Duration `envconfig:"REFRESH_EVERY"`
}

// Default returns the configuration used when no file or environment is set.
func Default() Config {
	return Config{
		APIURL:   defaultAPIURL,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
	}
}

// Load reads the config file at path (or the default location), applies
// SHELF_* environment overrides and validates the result. A missing file is
// not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := applyFile(&cfg, resolved); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if strings.TrimSpace(cfg.LogFile) == "" {
		cfg.LogFile = defaultLogFile
	}
	cfg.LogFile = mustExpand(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func applyFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if raw.MaxPublicationYear != 0 {
		cfg.MaxPublicationYear = raw.MaxPublicationYear
	}
	if cfg.RequestTimeout, err = parseDuration("request_timeout", raw.RequestTimeout, cfg.RequestTimeout); err != nil {
		return err
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if cfg.RefreshEvery, err = parseDuration("refresh_every", raw.RefreshEvery, cfg.RefreshEvery); err != nil {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var env envConfig
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if env.APIURL != nil {
		cfg.APIURL = *env.APIURL
	}
	if env.MaxPublicationYear != nil {
		cfg.MaxPublicationYear = *env.MaxPublicationYear
	}
	if env.RequestTimeout != nil {
		cfg.RequestTimeout = *env.RequestTimeout
	}
	if env.LogFile != nil {
		cfg.LogFile = *env.LogFile
	}
	if env.LogLevel != nil {
		cfg.LogLevel = *env.LogLevel
	}
	if env.RefreshEvery != nil {
		cfg.RefreshEvery = *env.RefreshEvery
	}
	return nil
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", key, err)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
