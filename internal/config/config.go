package config

import (
	"errors"
	"os"

	"chatpoker/internal/util"
	"chatpoker/pkg/playable/poker/texasholdem"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the poker server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Table  struct {
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
		MaxSeats      int `yaml:"maxSeats" envconfig:"max_seats"`
	} `yaml:"table"`
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

// TableOptions returns the options every new table is created with
func (c Config) TableOptions() texasholdem.Options {
	return texasholdem.Options{
		SmallBlind:    c.Table.SmallBlind,
		BigBlind:      c.Table.BigBlind,
		StartingChips: c.Table.StartingChips,
		MaxSeats:      c.Table.MaxSeats,
	}
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	opts := texasholdem.DefaultOptions()

	var cfg Config
	cfg.Addr = ":5000"
	cfg.Table.SmallBlind = opts.SmallBlind
	cfg.Table.BigBlind = opts.BigBlind
	cfg.Table.StartingChips = opts.StartingChips
	cfg.Table.MaxSeats = opts.MaxSeats
	cfg.Log.Level = "info"

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional; environment variables prefixed with CHATPOKER_ take precedence.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("CHATPOKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("chatpoker", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
