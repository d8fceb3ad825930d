package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment leaves a setting empty
const (
	DefaultPort            = "8000"
	DefaultLogLevel        = "info"
	DefaultGinMode         = "release"
	DefaultShutdownTimeout = 10 * time.Second
)

// DefaultAllowedOrigins are the local frontend dev servers
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// Config holds the runtime settings of the API server
type Config struct {
	Port            string
	LogLevel        string
	GinMode         string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	SeedData        bool
}

// Addr returns the listen address for the configured port
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads .env.local and .env (both optional, earlier files win) and
// builds a Config from the environment.
func Load() (Config, error) {
	if err := loadDotEnv(".env.local", ".env"); err != nil {
		return Config{}, err
	}
	return FromEnv(os.Getenv)
}

// loadDotEnv applies each file that exists. A file that is present but
// unreadable or malformed is an error.
func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv builds a Config from a lookup function such as os.Getenv
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:            DefaultPort,
		LogLevel:        DefaultLogLevel,
		GinMode:         DefaultGinMode,
		AllowedOrigins:  append([]string(nil), DefaultAllowedOrigins...),
		ShutdownTimeout: DefaultShutdownTimeout,
		SeedData:        true,
	}

	if v := getenv("PORT"); v != "" {
		if err := ValidatePort(v); err != nil {
			return Config{}, err
		}
		cfg.Port = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getenv("GIN_MODE"); v != "" {
		switch v {
		case "debug", "release", "test":
			cfg.GinMode = v
		default:
			return Config{}, fmt.Errorf("config: invalid GIN_MODE %q", v)
		}
	}
	if v := getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("config: invalid SHUTDOWN_TIMEOUT %q", v)
		}
		cfg.ShutdownTimeout = d
	}
	if v := getenv("SEED_DATA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid SEED_DATA %q: %w", v, err)
		}
		cfg.SeedData = b
	}

	return cfg, nil
}

// ValidatePort checks that port is a decimal TCP port number
func ValidatePort(port string) error {
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return fmt.Errorf("config: invalid PORT %q: %w", port, err)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
