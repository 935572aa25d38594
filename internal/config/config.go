// Package config loads the tool configuration: the known roster, the season
// range to tally, and the database path.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// DBPath is the SQLite store location. Overridable with --db.
	DBPath string `toml:"db_path"`

	Roster  RosterConfig  `toml:"roster"`
	Seasons SeasonsConfig `toml:"seasons"`
}

// RosterConfig holds the known player roster. Known names seed each
// aggregation pass and define the teammate-matrix columns.
type RosterConfig struct {
	Names []string `toml:"names"`
}

// SeasonsConfig is the inclusive range of two-digit season years tallied in
// addition to the full-history pass.
type SeasonsConfig struct {
	From int `toml:"from"`
	To   int `toml:"to"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DBPath: filepath.Join(userHome(), ".fieldstats", "fieldstats.db"),
		Roster: RosterConfig{
			Names: []string{
				"Aaron", "AB", "Anthony", "Brandon", "Eric", "Jacob",
				"Kiernan", "Quinn", "Sam G", "Sam S", "Tighe",
			},
		},
		Seasons: SeasonsConfig{From: 23, To: 25},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(userHome(), ".fieldstats", "config.toml")
}

// Load reads the configuration from path. A missing file yields the default
// configuration rather than an error.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path cannot be empty")
	}
	if c.Seasons.From > c.Seasons.To {
		return fmt.Errorf("seasons range inverted: from=%d to=%d", c.Seasons.From, c.Seasons.To)
	}
	if c.Seasons.From < 0 || c.Seasons.To > 99 {
		return fmt.Errorf("season years must be two-digit: from=%d to=%d", c.Seasons.From, c.Seasons.To)
	}
	for _, name := range c.Roster.Names {
		if name == "" {
			return fmt.Errorf("roster names cannot be empty")
		}
	}
	return nil
}

// SeasonKeys expands the configured range into its season keys.
func (c *Config) SeasonKeys() []int {
	var keys []int
	for y := c.Seasons.From; y <= c.Seasons.To; y++ {
		keys = append(keys, y)
	}
	return keys
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
