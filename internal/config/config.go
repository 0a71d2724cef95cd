package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	timex "github.com/ferdiebergado/parentdesk/internal/pkg/time"
)

type App struct {
	Env      string `json:"env,omitempty" env:"APP_ENV"`
	LogLevel string `json:"log_level,omitempty" env:"LOG_LEVEL"`
}

type Server struct {
	Port            int            `json:"port,omitempty" env:"PORT" validate:"required,gt=0"`
	FastCGI         bool           `json:"fastcgi,omitempty" env:"SERVER_FASTCGI"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty" env:"SERVER_MAX_BODY_BYTES"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty" validate:"required"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

// JWT holds the access token settings. The signing key is read from the
// environment and never stored here.
type JWT struct {
	Issuer          string         `json:"issuer,omitempty" env:"JWT_ISSUER" validate:"required"`
	TTL             timex.Duration `json:"ttl,omitempty" env:"JWT_TTL"`
	AuthVar         string         `json:"auth_var,omitempty" env:"JWT_AUTH_VAR"`
	RedirectAuthVar string         `json:"redirect_auth_var,omitempty" env:"JWT_REDIRECT_AUTH_VAR"`
}

type CORS struct {
	AllowedOrigin string `json:"allowed_origin,omitempty" env:"CORS_ALLOWED_ORIGIN"`
}

type Config struct {
	App    *App    `json:"app,omitempty"`
	Server *Server `json:"server,omitempty" validate:"required"`
	DB     *DB     `json:"db,omitempty" validate:"required"`
	JWT    *JWT    `json:"jwt,omitempty" validate:"required"`
	CORS   *CORS   `json:"cors,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("jwt", c.JWT),
		slog.Any("cors", c.CORS),
	)
}

// Load reads the JSON config file and applies environment overrides on top of it.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	contents, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	cfg := &Config{
		App:    &App{},
		Server: &Server{},
		DB:     &DB{},
		JWT:    &JWT{},
		CORS:   &CORS{},
	}
	if err := json.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env overrides: %w", err)
	}
	return nil
}
