// Package config loads process settings from defaults, an optional .env file and SNAKE_* variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// ErrInvalidConfig is wrapped by every Load and Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the process settings
// The grid is derived from window and cell size: 800x600 at 20 gives 40x30
type Config struct {
	WindowWidth    int
	WindowHeight   int
	CellSize       int
	BaseSpeed      float64
	SpeedIncrement float64
	MaxSpeed       float64
	ScoreIncrement int
	Seed           uint64 // 0 picks a time-based seed at startup
	Debug          bool
}

// Default returns the classic board settings
func Default() Config {
	return Config{
		WindowWidth:    constants.WindowWidth,
		WindowHeight:   constants.WindowHeight,
		CellSize:       constants.CellSize,
		BaseSpeed:      constants.BaseSpeed,
		SpeedIncrement: constants.SpeedIncrement,
		MaxSpeed:       constants.MaxSpeed,
		ScoreIncrement: constants.ScoreIncrement,
	}
}

// Load applies env files then SNAKE_* variables over the defaults and validates the result
// Missing env files are skipped; variables already set in the environment win over file values
func Load(envFiles ...string) (Config, error) {
	cfg := Default()

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("[config] env file %s not found, skipping", file)
				continue
			}
			return cfg, fmt.Errorf("%w: loading %s: %w", ErrInvalidConfig, file, err)
		}
		log.Printf("[config] loaded env file %s", file)
	}

	var err error
	if cfg.WindowWidth, err = envInt("SNAKE_WINDOW_WIDTH", cfg.WindowWidth); err != nil {
		return cfg, err
	}
	if cfg.WindowHeight, err = envInt("SNAKE_WINDOW_HEIGHT", cfg.WindowHeight); err != nil {
		return cfg, err
	}
	if cfg.CellSize, err = envInt("SNAKE_CELL_SIZE", cfg.CellSize); err != nil {
		return cfg, err
	}
	if cfg.BaseSpeed, err = envFloat("SNAKE_BASE_SPEED", cfg.BaseSpeed); err != nil {
		return cfg, err
	}
	if cfg.SpeedIncrement, err = envFloat("SNAKE_SPEED_INCREMENT", cfg.SpeedIncrement); err != nil {
		return cfg, err
	}
	if cfg.MaxSpeed, err = envFloat("SNAKE_MAX_SPEED", cfg.MaxSpeed); err != nil {
		return cfg, err
	}
	if cfg.ScoreIncrement, err = envInt("SNAKE_SCORE_INCREMENT", cfg.ScoreIncrement); err != nil {
		return cfg, err
	}
	if cfg.Seed, err = envUint64("SNAKE_SEED", cfg.Seed); err != nil {
		return cfg, err
	}
	if cfg.Debug, err = envBool("SNAKE_DEBUG", cfg.Debug); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	rules := cfg.Rules()
	log.Printf("[config] grid=%dx%d speed=%.1f+%.1f max=%.1f score=%d seed=%d",
		rules.GridWidth, rules.GridHeight, cfg.BaseSpeed, cfg.SpeedIncrement, cfg.MaxSpeed, cfg.ScoreIncrement, cfg.Seed)
	return cfg, nil
}

// Rules derives gameplay rules; the grid is window size divided by cell size
func (c Config) Rules() engine.Rules {
	rules := engine.Rules{
		BaseSpeed:      c.BaseSpeed,
		SpeedIncrement: c.SpeedIncrement,
		MaxSpeed:       c.MaxSpeed,
		ScoreIncrement: c.ScoreIncrement,
	}
	if c.CellSize > 0 {
		rules.GridWidth = c.WindowWidth / c.CellSize
		rules.GridHeight = c.WindowHeight / c.CellSize
	}
	return rules
}

// Validate reports the first unusable field
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	if c.WindowWidth < c.CellSize || c.WindowHeight < c.CellSize {
		return fmt.Errorf("%w: window %dx%d smaller than one cell of %d",
			ErrInvalidConfig, c.WindowWidth, c.WindowHeight, c.CellSize)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, raw)
	}
	return val, nil
}

func envFloat(key string, def float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, raw)
	}
	return val, nil
}

func envUint64(key string, def uint64) (uint64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrInvalidConfig, key, raw)
	}
	return val, nil
}

func envBool(key string, def bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, key, raw)
	}
	return val, nil
}
