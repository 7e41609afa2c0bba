package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/dshinzaki/Life/model"
)

const (
	EngineBounded   = "bounded"
	EngineSparse    = "sparse"
	EngineReference = "reference"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Size                int           `json:"size"`
	Engine              string        `json:"engine"`
	Pattern             string        `json:"pattern"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Seed                int64         `json:"seed"`
	Window              model.Window  `json:"window"`

	Verify        bool `json:"verify"`
	VerifyTrials  int  `json:"verify_trials"`
	VerifySteps   int  `json:"verify_steps"`
	VerifyWorkers int  `json:"verify_workers"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:                50,
		Engine:              EngineBounded,
		Pattern:             "glider",
		FrameRate:           500 * time.Millisecond,
		AutoRestart:         false,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Seed:                42,
		Window:              model.DefaultWindow,
		VerifyTrials:        64,
		VerifySteps:         200,
		VerifyWorkers:       4,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the command-line overrides to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "side length of bounded universes")
	fs.StringVar(&c.Engine, "engine", c.Engine, "engine to run: bounded, sparse or reference")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: glider, blinker, pentadecathlon or random")
	fs.DurationVar(&c.FrameRate, "frame", c.FrameRate, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 = forever)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns and verification")
	fs.BoolVar(&c.Verify, "verify", c.Verify, "run the differential check instead of the simulation")
	fs.IntVar(&c.VerifyTrials, "trials", c.VerifyTrials, "number of differential trials")
}

// Validate checks the values that the engines and drivers cannot recover from
func (c Config) Validate() error {
	if c.Size < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] negative size: %+v", c.Size)
	}
	switch c.Engine {
	case EngineBounded, EngineSparse, EngineReference:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] unknown engine: %+v", c.Engine)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] density outside [0, 1]: %+v", c.RandomDensity)
	}
	if c.Verify && (c.VerifyTrials <= 0 || c.VerifySteps <= 0 || c.VerifyWorkers <= 0) {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] verify trials, steps and workers must be positive")
	}
	return nil
}
