package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends accepted by StorageConfig.Backend.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds runtime settings for the challenge client.
//
// Units: RequestTimeout and LoginTimeout are time.Duration values.
type Config struct {
	APIBaseURL     string        `env:"API_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LoginTimeout   time.Duration `env:"LOGIN_TIMEOUT"`
	Storage        StorageConfig `envPrefix:"STORAGE_"`
	Log            LogConfig     `envPrefix:"LOG_"`
}

// StorageConfig selects where the persisted session record lives.
// Path is the SQLite database file or, for the file backend, a directory.
// A non-empty Passphrase seals stored values at rest.
type StorageConfig struct {
	Backend       string `env:"BACKEND"`
	Path          string `env:"PATH"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
	RedisPrefix   string `env:"REDIS_PREFIX"`
	Passphrase    string `env:"PASSPHRASE"`
}

type LogConfig struct {
	Level  string `env:"LEVEL"`
	Format string `env:"FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.LoginTimeout = 15 * time.Second
	c.Storage = StorageConfig{
		Backend:     BackendSQLite,
		Path:        "session.db",
		RedisAddr:   "127.0.0.1:6379",
		RedisPrefix: "challengehub:",
	}
	c.Log = LogConfig{Level: "info", Format: "text"}
}

// Validate rejects settings the client cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api base url %q", c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// LoadConfig builds a Config from the process arguments and environment.
// A .env file in the working directory, if present, is loaded into the
// environment first; variables already set win.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}
	return Load(os.Args[1:])
}

// Load applies, in order of increasing precedence: defaults, the JSON file
// named by -c/-config, CHALLENGE_* environment variables, and flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
