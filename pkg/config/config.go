package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/puzzle"
)

// Inputs says where puzzle input files live
type Inputs struct {
	Dir     string `koanf:"dir" toml:"dir"`
	Pattern string `koanf:"pattern" toml:"pattern"`
}

// Output controls how results are rendered
type Output struct {
	Format  string `koanf:"format" toml:"format"`
	NoColor bool   `koanf:"no_color" toml:"no_color"`
}

// Puzzles holds knobs handed to solvers
type Puzzles struct {
	ExpenseTarget uint64 `koanf:"expense_target" toml:"expense_target"`
}

// Check configures answer verification
type Check struct {
	Answers string `koanf:"answers" toml:"answers"`
}

// Run configures batch solving
type Run struct {
	Parallelism int `koanf:"parallelism" toml:"parallelism"`
}

// Config is the main configuration structure
type Config struct {
	Inputs  Inputs  `koanf:"inputs" toml:"inputs"`
	Output  Output  `koanf:"output" toml:"output"`
	Puzzles Puzzles `koanf:"puzzles" toml:"puzzles"`
	Check   Check   `koanf:"check" toml:"check"`
	Run     Run     `koanf:"run" toml:"run"`
}

// Formats accepted by output.format
var Formats = []string{"auto", "term", "text", "json"}

// Validate checks values that the loaders cannot type check
func (c *Config) Validate() error {
	if c.Inputs.Dir == "" {
		return invalid("inputs.dir", "must not be empty")
	}
	if c.Inputs.Pattern == "" {
		return invalid("inputs.pattern", "must not be empty")
	}
	if !isKnownFormat(c.Output.Format) {
		return invalid("output.format", "must be one of auto, term, text, json").
			WithDetail("value", c.Output.Format)
	}
	if c.Run.Parallelism < 1 {
		return invalid("run.parallelism", "must be at least 1").
			WithDetail("value", c.Run.Parallelism)
	}
	return nil
}

func invalid(key, reason string) *errors.AocError {
	return errors.Newf(errors.ErrConfigValid, "invalid configuration: %s %s", key, reason).
		WithDetail("key", key)
}

func isKnownFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Params returns the solver parameters derived from the configuration
func (c *Config) Params() puzzle.Params {
	return puzzle.Params{ExpenseTarget: c.Puzzles.ExpenseTarget}
}

// ToTOML renders the effective configuration
func (c *Config) ToTOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}
