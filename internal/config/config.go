package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info"`
	Dev         bool   `yaml:"dev" env:"OTHELLO_DEV" env-default:"false"`
	API         API    `yaml:"api"`
	StoragePath string `yaml:"storage-path" env:"OTHELLO_STORAGE_PATH"`
}

type API struct {
	Host      string        `yaml:"host" env:"OTHELLO_API_HOST" env-default:"localhost"`
	Port      int           `yaml:"port" env:"OTHELLO_API_PORT" env-default:"8080"`
	RateLimit int           `yaml:"rate-limit" env:"OTHELLO_RATE_LIMIT" env-default:"10"` // requests per second per IP
	Timeout   time.Duration `yaml:"timeout" env:"OTHELLO_API_TIMEOUT" env-default:"10s"`
}

// Load reads the YAML file at path with environment overrides, or the environment alone when path is empty
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if cfg.API.Port < 1 || cfg.API.Port > 65535 {
		return nil, fmt.Errorf("invalid api port: %d", cfg.API.Port)
	}
	if cfg.API.RateLimit < 1 {
		return nil, fmt.Errorf("invalid rate limit: %d", cfg.API.RateLimit)
	}

	return cfg, nil
}

// MustLoad - Load or panic.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Addr returns the API listen address
func (that *API) Addr() string {
	return fmt.Sprintf("%s:%d", that.Host, that.Port)
}

// Usage describes the environment variables understood by Load
func Usage() string {
	desc, _ := cleanenv.GetDescription(&Config{}, nil)
	return desc
}

// SetupLogging configures the global zerolog logger
func SetupLogging(cfg *Config, out io.Writer) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	if out == nil {
		out = os.Stderr
	}
	if cfg.Dev {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	return nil
}
