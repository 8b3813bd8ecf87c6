/*
PURPOSE:
  Defines the configuration structure and loading logic for ipopt-runner.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the executable, problem files, solver
    options, and a solve timeout.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Option values arrive YAML-typed (int/float/bool/string) and must be
    converted to the solver's tagged Value type without losing the kind.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing config file falls back to defaults.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (e.g., 10m solve timeout).

USAGE:
  cfg, err := config.Load("ipopt_runner.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/daryltucker/ipopt-runner/internal/solver"
)

// Config represents the full configuration for ipopt-runner.
type Config struct {
	// Executable pins the solver binary; empty means look it up.
	Executable string `yaml:"executable"`
	// Timer optionally wraps the invocation in a stopwatch utility
	// (e.g. /usr/bin/time).
	Timer string `yaml:"timer"`
	// Problems is the list of .nl files to solve.
	Problems []string `yaml:"problems"`
	// Options are passed to the solver. Keys starting with OF_ go into
	// a generated options file; the rest onto the command line.
	Options map[string]interface{} `yaml:"options"`

	SolveTimeout time.Duration `yaml:"solve_timeout"`

	OutputDir  string `yaml:"output_dir"`
	OutputFile string `yaml:"output_file"`

	TempDir       string `yaml:"temp_dir"`
	KeepTempFiles bool   `yaml:"keep_temp_files"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Options:      map[string]interface{}{"solver": "ipopt"},
		SolveTimeout: 10 * time.Minute,
		OutputDir:    ".",
		OutputFile:   "solve_results.csv",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"runner.yaml", "runner.conf", "ipopt_runner.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// SolverOptions converts the YAML-typed options map into the solver's
// ordered, tagged option set. YAML maps don't carry order, so keys are
// sorted for deterministic output; CLI-supplied options (which do have an
// order) are appended by the caller afterwards.
func (c *Config) SolverOptions() (*solver.Options, error) {
	opts := solver.NewOptions()
	keys := make([]string, 0, len(c.Options))
	for k := range c.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := c.Options[k].(type) {
		case string:
			opts.Set(k, solver.String(v))
		case int:
			opts.Set(k, solver.Int(int64(v)))
		case int64:
			opts.Set(k, solver.Int(v))
		case float64:
			opts.Set(k, solver.Float(v))
		case bool:
			opts.Set(k, solver.Bool(v))
		default:
			return nil, fmt.Errorf("option %q has unsupported type %T", k, v)
		}
	}
	return opts, nil
}
