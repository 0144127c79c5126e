// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// MaxDistance is the largest mismatch count neighborhoods are generated for.
// Neighborhoods grow as 4^d, so larger values are refused
const MaxDistance = 3

var (
	// SettingsFile is the default settings file, read if it exists
	SettingsFile = defaultSettingsFile()

	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// KmerConfig is settings for k-mer based commands
type KmerConfig struct {
	// K is the default k-mer length
	K int `mapstructure:"k"`
}

// MismatchConfig is settings for approximate matching
type MismatchConfig struct {
	// MaxDistance is the default number of mismatches allowed
	MaxDistance int `mapstructure:"max-distance"`
}

// ClumpConfig is settings for clump finding
type ClumpConfig struct {
	// Window is the length of the sliding window
	Window int `mapstructure:"window"`

	// MinCount is the number of occurrences in one window that make a clump
	MinCount int `mapstructure:"min-count"`
}

// MotifConfig is settings for the motif searches
type MotifConfig struct {
	// Pseudocounts adds one to every profile count
	Pseudocounts bool `mapstructure:"pseudocounts"`

	// Iterations is the number of random restarts of the randomized search
	Iterations int `mapstructure:"iterations"`

	// GibbsIterations is the number of sampling steps of the Gibbs search
	GibbsIterations int `mapstructure:"gibbs-iterations"`

	// Seed for the random searches, 0 for a time based seed
	Seed int64 `mapstructure:"seed"`
}

// OutputConfig is settings for how results are written
type OutputConfig struct {
	// Format is either "text" or "json"
	Format string `mapstructure:"format"`
}

// Config is the root-level settings struct and is a mix
// of settings available in the settings file, the environment
// and those available from the command line
type Config struct {
	// Verbose logs progress to stderr
	Verbose bool `mapstructure:"verbose"`

	// Workers is the number of goroutines for the parallel searches
	Workers int `mapstructure:"workers"`

	Kmer     KmerConfig     `mapstructure:"kmer"`
	Mismatch MismatchConfig `mapstructure:"mismatch"`
	Clump    ClumpConfig    `mapstructure:"clump"`
	Motif    MotifConfig    `mapstructure:"motif"`
	Output   OutputConfig   `mapstructure:"output"`
}

// SetDefaults registers the built-in value of every setting on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("kmer.k", 3)
	v.SetDefault("mismatch.max-distance", 1)
	v.SetDefault("clump.window", 500)
	v.SetDefault("clump.min-count", 3)
	v.SetDefault("motif.pseudocounts", true)
	v.SetDefault("motif.iterations", 1000)
	v.SetDefault("motif.gibbs-iterations", 500)
	v.SetDefault("motif.seed", 0)
	v.SetDefault("output.format", "text")
}

// Load builds a Config from v. Defaults are overridden by the settings file
// (v's "settings" key, if the file exists), then COMPBIO_ environment
// variables, then any flags bound to v
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("compbio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if settings := v.GetString("settings"); settings != "" {
		if _, err := os.Stat(settings); err == nil {
			v.SetConfigFile(settings)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
			}
		} else if settings != SettingsFile {
			return nil, fmt.Errorf("failed to find settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// New returns a new Config populated by the global Viper settings. It exits
// when the settings can't be loaded
func New() *Config {
	c, err := Load(viper.GetViper())
	if err != nil {
		stderr.Fatalln(err)
	}
	return c
}

// Validate checks every setting is in range
func (c *Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	case c.Kmer.K < 1:
		return fmt.Errorf("kmer.k must be at least 1, got %d", c.Kmer.K)
	case c.Mismatch.MaxDistance < 0 || c.Mismatch.MaxDistance > MaxDistance:
		return fmt.Errorf("mismatch.max-distance must be in [0, %d], got %d", MaxDistance, c.Mismatch.MaxDistance)
	case c.Clump.Window < 1 || c.Clump.MinCount < 1:
		return fmt.Errorf("clump.window and clump.min-count must be positive, got %d and %d", c.Clump.Window, c.Clump.MinCount)
	case c.Motif.Iterations < 1 || c.Motif.GibbsIterations < 1:
		return fmt.Errorf("motif.iterations and motif.gibbs-iterations must be positive, got %d and %d", c.Motif.Iterations, c.Motif.GibbsIterations)
	case c.Output.Format != "text" && c.Output.Format != "json":
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	return nil
}

// Rand is the random source for the randomized searches, seeded from
// Motif.Seed or, if that's 0, the clock
func (c *Config) Rand() *rand.Rand {
	seed := c.Motif.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func defaultSettingsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".compbio.yaml"
	}
	return filepath.Join(home, ".compbio.yaml")
}
