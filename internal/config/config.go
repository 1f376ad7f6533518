package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"food-delivery/internal/logger"
)

// ErrInvalidValue is wrapped by every parse failure in Load
var ErrInvalidValue = errors.New("invalid configuration value")

const (
	DefaultWindowWidth  = 420
	DefaultWindowHeight = 780
	DefaultEnvFile      = ".env"
)

// Config holds process-wide settings read at startup
type Config struct {
	LogLevel     zerolog.Level
	JSONLogs     bool
	WindowWidth  float32
	WindowHeight float32
	// DeliverySeed fixes the delivery estimate sequence; zero means random.
	DeliverySeed uint64
}

// Default returns the configuration used when no variables are set
func Default() Config {
	return Config{
		LogLevel:     zerolog.InfoLevel,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load reads the optional env file named by FOOD_ENV_FILE and then the
// process environment. Variables already set in the environment win over
// the file.
func Load() (Config, error) {
	envFile := os.Getenv("FOOD_ENV_FILE")
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("LOG_LEVEL"); ok {
		level, err := logger.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w: %v", ErrInvalidValue, err)
		}
		cfg.LogLevel = level
	}
	if v, _ := lookup("DEBUG"); v == "1" {
		cfg.LogLevel = zerolog.DebugLevel
	}

	if v, ok := lookup("FOOD_JSON_LOGS"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("FOOD_JSON_LOGS: %w: %q", ErrInvalidValue, v)
		}
		cfg.JSONLogs = b
	}

	var err error
	if cfg.WindowWidth, err = parseDimension(lookup, "FOOD_WINDOW_WIDTH", cfg.WindowWidth); err != nil {
		return Config{}, err
	}
	if cfg.WindowHeight, err = parseDimension(lookup, "FOOD_WINDOW_HEIGHT", cfg.WindowHeight); err != nil {
		return Config{}, err
	}

	if v, ok := lookup("FOOD_DELIVERY_SEED"); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("FOOD_DELIVERY_SEED: %w: %q", ErrInvalidValue, v)
		}
		cfg.DeliverySeed = seed
	}

	return cfg, nil
}

func parseDimension(lookup func(string) (string, bool), name string, fallback float32) (float32, error) {
	v, ok := lookup(name)
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%s: %w: %q", name, ErrInvalidValue, v)
	}
	return float32(f), nil
}
