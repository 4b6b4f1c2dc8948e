// Package config loads settings from the environment, an optional .env
// file and command-line flags, in increasing order of priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnvFiles loads the given .env files into the process environment.
// Missing files are skipped; variables already set are not overwritten.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		err := godotenv.Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseLevel переводит строку в уровень slog, по умолчанию info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Redis описывает необязательный общий кеш ответов
type Redis struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	Prefix   string `env:"PREFIX" envDefault:"solarsync"`
	DB       int    `env:"DB" envDefault:"0"`
	TLS      bool   `env:"TLS"`
}

// Tables имена таблиц удаленной базы по типам сущностей
type Tables struct {
	Products      string `env:"PRODUCTS" envDefault:"Products"`
	Clients       string `env:"CLIENTS" envDefault:"Clients"`
	Installations string `env:"INSTALLATIONS" envDefault:"Installations"`
	Sessions      string `env:"SESSIONS" envDefault:"Sessions"`
}

// Client is the configuration of the field client
type Client struct {
	Redis  Redis  `envPrefix:"SOLARSYNC_REDIS_"`
	Tables Tables `envPrefix:"SOLARSYNC_TABLE_"`

	APIURL     string `env:"SOLARSYNC_API_URL"`
	BaseID     string `env:"SOLARSYNC_BASE_ID"`
	APIToken   string `env:"SOLARSYNC_API_TOKEN"`
	Passphrase string `env:"SOLARSYNC_PASSPHRASE"`
	DBPath     string `env:"SOLARSYNC_DB" envDefault:"solarsync.db"`

	// ResponseCachePath файл кеша ответов перехватчика, отдельный от DBPath
	ResponseCachePath string   `env:"SOLARSYNC_RESPONSE_CACHE" envDefault:"solarsync-responses.db"`
	AppOrigin         string   `env:"SOLARSYNC_APP_ORIGIN"`
	ShellFiles        []string `env:"SOLARSYNC_SHELL_FILES" envSeparator:","`
	WorkerVersion     string   `env:"SOLARSYNC_WORKER_VERSION" envDefault:"v1"`
	ProbeAddr         string   `env:"SOLARSYNC_PROBE_ADDR"`
	LogLevel          string   `env:"SOLARSYNC_LOG_LEVEL" envDefault:"warn"`
	OTLPEndpoint      string   `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	Timeout       time.Duration `env:"SOLARSYNC_TIMEOUT" envDefault:"10s"`
	ProbeInterval time.Duration `env:"SOLARSYNC_PROBE_INTERVAL" envDefault:"5s"`
}

// LoadClient reads the client configuration from the environment
func LoadClient() (*Client, error) {
	var cfg Client
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RegisterFlags binds command-line flags. Current values become the flag
// defaults, so flags override the environment.
func (c *Client) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.APIURL, "api", c.APIURL, "Remote API URL (default from login)")
	fs.StringVar(&c.BaseID, "base", c.BaseID, "Base ID (default from login)")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "Path to local database")
	fs.StringVar(&c.ResponseCachePath, "response-cache", c.ResponseCachePath, "Path to the interceptor response cache")
	fs.StringVar(&c.Redis.Addr, "redis", c.Redis.Addr, "Redis address for a shared response cache")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "Timeout of one remote request")
	fs.StringVar(&c.ProbeAddr, "probe", c.ProbeAddr, "host:port dialed to detect connectivity (default: network interfaces)")
}

// Validate проверяет значения после разбора флагов
func (c *Client) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.ResponseCachePath == c.DBPath {
		return fmt.Errorf("response cache must not share the database file %s", c.DBPath)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.ProbeInterval <= 0 {
		return fmt.Errorf("probe interval must be positive, got %s", c.ProbeInterval)
	}
	return nil
}

// Server is the configuration of the development API server
type Server struct {
	Addr         string        `env:"SOLARSYNC_SERVER_ADDR" envDefault:":8080"`
	DBPath       string        `env:"SOLARSYNC_SERVER_DB" envDefault:"solarsync-server.db"`
	JWTSecret    string        `env:"SOLARSYNC_JWT_SECRET"`
	LogLevel     string        `env:"SOLARSYNC_LOG_LEVEL" envDefault:"info"`
	OTLPEndpoint string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	RateLimit    int           `env:"SOLARSYNC_RATE_LIMIT" envDefault:"100"`
	RateWindow   time.Duration `env:"SOLARSYNC_RATE_WINDOW" envDefault:"1s"`
	TokenTTL     time.Duration `env:"SOLARSYNC_TOKEN_TTL" envDefault:"720h"`
}

// LoadServer reads the server configuration from the environment
func LoadServer() (*Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RegisterFlags binds command-line flags over the environment values
func (s *Server) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&s.Addr, "addr", s.Addr, "Listen address")
	fs.StringVar(&s.DBPath, "db", s.DBPath, "Path to SQLite database")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Log level: debug, info, warn, error")
	fs.IntVar(&s.RateLimit, "rate-limit", s.RateLimit, "Requests per window per client and base")
}

// Validate проверяет обязательные параметры сервера
func (s *Server) Validate() error {
	if len(s.JWTSecret) < 32 {
		return fmt.Errorf("SOLARSYNC_JWT_SECRET must be at least 32 characters")
	}
	if s.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", s.RateLimit)
	}
	return nil
}
