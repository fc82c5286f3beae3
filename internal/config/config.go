// Package config loads the pour harness settings from an optional YAML file.
//
// Every field is optional: Load starts from Default and overlays whatever
// keys the file sets. Command-line flags are applied on top by the caller,
// and the merged result is checked with Validate before use.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/solver"
)

// DefaultRuns is the number of repetitions a benchmark averages over.
const DefaultRuns = 10

// Config is the complete harness configuration.
type Config struct {
	CapacityA  int      `yaml:"capacity_a" validate:"gt=0"`
	CapacityB  int      `yaml:"capacity_b" validate:"gt=0"`
	Target     int      `yaml:"target" validate:"gte=0"`
	Verbose    bool     `yaml:"verbose"`
	Runs       int      `yaml:"runs" validate:"gt=0"`
	DotDir     string   `yaml:"dot_dir" validate:"required"`
	Strategies []string `yaml:"strategies" validate:"dive,oneof=bfs dfs ucs astar"`
}

var validate = validator.New()

// Default returns the textbook 4/3/2 puzzle with every strategy enabled.
func Default() Config {
	return Config{
		CapacityA:  4,
		CapacityB:  3,
		Target:     2,
		Runs:       DefaultRuns,
		DotDir:     ".",
		Strategies: solver.Names(),
	}
}

// Load reads path and merges it over Default. An empty path yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: read %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parse %s", path)
	}
	cfg.Normalize()

	return cfg, nil
}

// Normalize lowercases strategy names and resolves the "a*" alias in place.
func (c *Config) Normalize() {
	for i, s := range c.Strategies {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "a*" {
			s = "astar"
		}
		c.Strategies[i] = s
	}
}

// Validate checks field constraints and reports the first violation.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.Errorf("config: %s fails %q (got %v)", fe.Field(), fe.Tag(), fe.Value())
		}

		return errors.Wrap(err, "config: validate")
	}

	return nil
}

// Puzzle returns the puzzle described by c.
func (c Config) Puzzle() pouring.Puzzle {
	return pouring.Puzzle{CapacityA: c.CapacityA, CapacityB: c.CapacityB, Target: c.Target}
}
