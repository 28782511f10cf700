package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "dataset_file: data/orders.csv\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.DatasetFile != "data/orders.csv" {
		t.Fatalf("dataset_file = %q", c.DatasetFile)
	}
	if c.Simulation.PriceDelta != 0.05 || c.Simulation.Elasticity != 1.2 {
		t.Fatalf("simulation defaults not applied: %+v", c.Simulation)
	}
	if c.MySQL.Table != "orders" {
		t.Fatalf("mysql table default not applied: %q", c.MySQL.Table)
	}
}

func TestLoad_ExplicitSimulation(t *testing.T) {
	path := writeConfig(t, `
dataset_file: orders.csv
simulation:
  price_delta: -0.10
  elasticity: 1.8
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Simulation.PriceDelta != -0.10 || c.Simulation.Elasticity != 1.8 {
		t.Fatalf("explicit simulation not kept: %+v", c.Simulation)
	}
}

func TestLoad_RejectsOutOfDomainDelta(t *testing.T) {
	path := writeConfig(t, `
dataset_file: orders.csv
simulation:
  price_delta: -1.5
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "price_delta") {
		t.Fatalf("got err %v, want price_delta domain error", err)
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.DatasetFile == "" {
		t.Fatal("default config has no dataset")
	}
}

func TestMergeSimulation(t *testing.T) {
	base := SimulationConfig{PriceDelta: 0.05, Elasticity: 1.2}
	got := MergeSimulation(base, SimulationConfig{Elasticity: 2.0})
	if got.PriceDelta != 0.05 || got.Elasticity != 2.0 {
		t.Fatalf("merge wrong: %+v", got)
	}
}
