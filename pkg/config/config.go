package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/cbodonnell/balloonpop/pkg/game"
	"github.com/joho/godotenv"
)

const (
	// EnvPrefix prefixes every environment variable read by Load
	EnvPrefix = "BALLOONPOP_"

	DefaultLogLevel     = "info"
	DefaultScreenWidth  = 960
	DefaultScreenHeight = 720
)

// Config is the client configuration.
type Config struct {
	LogLevel     string
	Debug        bool
	Mute         bool
	ScreenWidth  int
	ScreenHeight int
	MaxBalloons  int
	SpeedMin     float64
	SpeedMax     float64
}

// Default returns the built-in configuration.
func Default() Config {
	tuning := game.DefaultTuning()
	return Config{
		LogLevel:     DefaultLogLevel,
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		MaxBalloons:  tuning.MaxBalloons,
		SpeedMin:     tuning.Speed.Min,
		SpeedMax:     tuning.Speed.Max,
	}
}

// Load reads the optional .env files (default ".env") into the environment
// and returns the default configuration overridden by BALLOONPOP_* variables.
// Variables already set in the environment take precedence over .env files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %v", f, err)
		}
	}

	cfg := Default()
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	var err error
	if cfg.Debug, err = getEnvBool("DEBUG", cfg.Debug); err != nil {
		return Config{}, err
	}
	if cfg.Mute, err = getEnvBool("MUTE", cfg.Mute); err != nil {
		return Config{}, err
	}
	if cfg.ScreenWidth, err = getEnvInt("WIDTH", cfg.ScreenWidth); err != nil {
		return Config{}, err
	}
	if cfg.ScreenHeight, err = getEnvInt("HEIGHT", cfg.ScreenHeight); err != nil {
		return Config{}, err
	}
	if cfg.MaxBalloons, err = getEnvInt("MAX_BALLOONS", cfg.MaxBalloons); err != nil {
		return Config{}, err
	}
	if cfg.SpeedMin, err = getEnvFloat("SPEED_MIN", cfg.SpeedMin); err != nil {
		return Config{}, err
	}
	if cfg.SpeedMax, err = getEnvFloat("SPEED_MAX", cfg.SpeedMax); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Tuning returns the gameplay parameters selected by the configuration.
func (c Config) Tuning() game.Tuning {
	tuning := game.DefaultTuning()
	tuning.MaxBalloons = c.MaxBalloons
	tuning.Speed = game.Range{Min: c.SpeedMin, Max: c.SpeedMax}
	return tuning
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if err := c.Tuning().Validate(); err != nil {
		return fmt.Errorf("invalid tuning: %v", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %v", EnvPrefix, key, err)
	}
	return i, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %v", EnvPrefix, key, err)
	}
	return f, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s%s: %v", EnvPrefix, key, err)
	}
	return b, nil
}
