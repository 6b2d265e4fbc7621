package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/conway/patterns"
)

// Seeding modes for the initial grid
const (
	SeedingRandom   = "random"
	SeedingDensity  = "density"
	SeedingNoise    = "noise"
	SeedingPatterns = "patterns"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Size      int           `json:"size" yaml:"size"`
	TickDelay time.Duration `json:"tick_delay" yaml:"tick_delay"`
	// Seed drives every random choice of a run; 0 picks one from the clock
	Seed           int64                `json:"seed" yaml:"seed"`
	Seeding        string               `json:"seeding" yaml:"seeding"`
	Density        float64              `json:"density" yaml:"density"`
	NoiseThreshold float64              `json:"noise_threshold" yaml:"noise_threshold"`
	Patterns       []patterns.Placement `json:"patterns" yaml:"patterns"`

	Parallel      bool `json:"parallel" yaml:"parallel"`
	Workers       int  `json:"workers" yaml:"workers"`
	UseMemoryPool bool `json:"use_memory_pool" yaml:"use_memory_pool"`

	MaxGenerations      int  `json:"max_generations" yaml:"max_generations"`
	AutoRestart         bool `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int  `json:"stagnation_threshold" yaml:"stagnation_threshold"`

	CellPixels int    `json:"cell_pixels" yaml:"cell_pixels"`
	LogLevel   string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:                50,
		TickDelay:           500 * time.Millisecond,
		Seeding:             SeedingRandom,
		Density:             0.15,
		NoiseThreshold:      0.1,
		Parallel:            true,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		AutoRestart:         true,
		StagnationThreshold: 5,
		CellPixels:          10,
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Fields absent from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err = decoder.Decode(&config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to decode yaml from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	return config, nil
}

// Validate checks the config for values the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "size must be positive, got %d", c.Size)
	case c.TickDelay < 0:
		return errors.Wrapf(ErrInvalidConfig, "tick_delay must not be negative, got %s", c.TickDelay)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalidConfig, "density must be in [0, 1], got %v", c.Density)
	case c.NoiseThreshold < -1 || c.NoiseThreshold > 1:
		return errors.Wrapf(ErrInvalidConfig, "noise_threshold must be in [-1, 1], got %v", c.NoiseThreshold)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	case c.StagnationThreshold <= 0:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	case c.CellPixels <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell_pixels must be positive, got %d", c.CellPixels)
	}

	switch c.Seeding {
	case SeedingRandom, SeedingDensity, SeedingNoise, SeedingPatterns:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown seeding %q", c.Seeding)
	}
	return nil
}
