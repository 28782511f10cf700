package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// DatasetFile points at an order CSV. Ignored when MySQL.DSN is set.
	DatasetFile string           `yaml:"dataset_file"`
	MySQL       MySQLConfig      `yaml:"mysql"`
	Simulation  SimulationConfig `yaml:"simulation"`
}

type MySQLConfig struct {
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

// SimulationConfig carries the default simulation parameters; callers may
// override either field per request.
type SimulationConfig struct {
	PriceDelta float64 `yaml:"price_delta"`
	Elasticity float64 `yaml:"elasticity"`
}

// Load reads, defaults, and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the configuration used when no file is supplied:
// the sample dataset in the working directory and the dashboard's default
// slider positions (+5% price change, elasticity 1.2).
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.DatasetFile == "" && c.MySQL.DSN == "" {
		c.DatasetFile = "orders.csv"
	}
	if c.MySQL.Table == "" {
		c.MySQL.Table = "orders"
	}
	if c.Simulation.PriceDelta == 0 {
		c.Simulation.PriceDelta = 0.05
	}
	if c.Simulation.Elasticity == 0 {
		c.Simulation.Elasticity = 1.2
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DatasetFile == "" && c.MySQL.DSN == "" {
		return errors.New("either dataset_file or mysql.dsn is required")
	}
	if c.Simulation.PriceDelta <= -1 {
		return fmt.Errorf("simulation.price_delta must be > -1, got %v", c.Simulation.PriceDelta)
	}
	return nil
}

// MergeSimulation overlays non-zero fields from override onto base.
// Used when a request carries partial parameters over config defaults.
func MergeSimulation(base, override SimulationConfig) SimulationConfig {
	out := base
	if override.PriceDelta != 0 {
		out.PriceDelta = override.PriceDelta
	}
	if override.Elasticity != 0 {
		out.Elasticity = override.Elasticity
	}
	return out
}
