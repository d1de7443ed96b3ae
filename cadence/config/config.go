// Package config holds the tunable settings of a cadence
// run and loads optional YAML overrides. Every field has a
// built-in default so scheduled runs work without any
// configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/byte4ever/commit_cadence/cadence/daystamp"
	"github.com/byte4ever/commit_cadence/cadence/selector"
)

// Delay is an inclusive range of whole seconds.
type Delay struct {
	MinSeconds int `yaml:"min_seconds"`
	MaxSeconds int `yaml:"max_seconds"`
}

// Hours is the working-hours window for generated
// timestamps, inclusive on both ends.
type Hours struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Config is the full set of run settings.
type Config struct {
	// Directories is the topical directory set files
	// are picked from.
	Directories []string `yaml:"directories"`

	// Extensions is the extension set used for newly
	// synthesized files.
	Extensions []string `yaml:"extensions"`

	// Hours bounds generated commit timestamps.
	Hours Hours `yaml:"hours"`

	// CommitDelay is slept between consecutive
	// commits.
	CommitDelay Delay `yaml:"commit_delay"`

	// BatchDelay is slept after a non-final batch
	// push.
	BatchDelay Delay `yaml:"batch_delay"`

	// BatchThreshold is the commit count above which
	// batched pushing may be chosen.
	BatchThreshold int `yaml:"batch_threshold"`

	// Remote is the git remote name.
	Remote string `yaml:"remote"`

	// Branch is the push target when no platform
	// provider resolves one.
	Branch string `yaml:"branch"`
}

// Default returns the built-in settings: the standard
// directory and extension sets, a 9-17 window, 5-300s
// commit delays, 180-900s batch delays, and batching past
// ten commits.
func Default() Config {
	win := daystamp.DefaultWindow()

	return Config{
		Directories: selector.DefaultDirectories,
		Extensions:  selector.DefaultExtensions,
		Hours: Hours{
			Start: win.StartHour,
			End:   win.EndHour,
		},
		CommitDelay: Delay{
			MinSeconds: 5,
			MaxSeconds: 300,
		},
		BatchDelay: Delay{
			MinSeconds: 180,
			MaxSeconds: 900,
		},
		BatchThreshold: 10,
		Remote:         "origin",
		Branch:         "main",
	}
}

// Load reads YAML overrides from path on top of the
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	const errCtx = "loading configuration"

	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return Config{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf(
			"%s: parse yaml: %w", errCtx, err,
		)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return cfg, nil
}

// Validate rejects structurally impossible settings.
func (c Config) Validate() error {
	const errCtx = "validating configuration"

	if len(c.Directories) == 0 {
		return fmt.Errorf(
			"%s: directory set is empty", errCtx,
		)
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf(
			"%s: extension set is empty", errCtx,
		)
	}

	if c.Hours.Start < 0 || c.Hours.End > 23 ||
		c.Hours.Start > c.Hours.End {
		return fmt.Errorf(
			"%s: invalid hours window [%d,%d]",
			errCtx, c.Hours.Start, c.Hours.End,
		)
	}

	for _, d := range []Delay{
		c.CommitDelay, c.BatchDelay,
	} {
		if d.MinSeconds < 0 ||
			d.MinSeconds > d.MaxSeconds {
			return fmt.Errorf(
				"%s: invalid delay range [%d,%d]",
				errCtx, d.MinSeconds, d.MaxSeconds,
			)
		}
	}

	if c.BatchThreshold < 1 {
		return fmt.Errorf(
			"%s: batch threshold must be positive",
			errCtx,
		)
	}

	if c.Remote == "" || c.Branch == "" {
		return fmt.Errorf(
			"%s: remote and branch must be set", errCtx,
		)
	}

	return nil
}

// Window converts the hours settings to a daystamp.Window.
func (c Config) Window() daystamp.Window {
	return daystamp.Window{
		StartHour: c.Hours.Start,
		EndHour:   c.Hours.End,
	}
}
