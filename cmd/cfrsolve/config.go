package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// RunConfig is the optional HCL file configuration for a solve, mirroring
// the corpus's server/client config pattern: an HCL block decoded into a
// plain struct, with a Validate method and a Default constructor so a
// missing file is not an error.
type RunConfig struct {
	Solve SolveSettings `hcl:"solve,block"`
}

// SolveSettings are the tunable knobs of one solver run.
type SolveSettings struct {
	Fixture       string  `hcl:"fixture,optional"`
	MaxIterations int     `hcl:"max_iterations,optional"`
	CheckEvery    int     `hcl:"check_every,optional"`
	Threshold     float64 `hcl:"threshold,optional"`
	WallClockSecs int     `hcl:"wall_clock_secs,optional"`
}

// DefaultRunConfig returns the configuration used when no file is given.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		Solve: SolveSettings{
			Fixture:       "degenerate-nine",
			MaxIterations: 5000,
			CheckEvery:    100,
			Threshold:     0.01,
			WallClockSecs: 0,
		},
	}
}

// LoadRunConfig loads configuration from an HCL file, falling back to
// defaults for any field left unset and to the full default config when
// filename is empty or does not exist.
func LoadRunConfig(filename string) (*RunConfig, error) {
	cfg := DefaultRunConfig()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse hcl file: %s", diags.Error())
	}

	var parsed RunConfig
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode hcl: %s", diags.Error())
	}

	if parsed.Solve.Fixture != "" {
		cfg.Solve.Fixture = parsed.Solve.Fixture
	}
	if parsed.Solve.MaxIterations > 0 {
		cfg.Solve.MaxIterations = parsed.Solve.MaxIterations
	}
	if parsed.Solve.CheckEvery > 0 {
		cfg.Solve.CheckEvery = parsed.Solve.CheckEvery
	}
	if parsed.Solve.Threshold > 0 {
		cfg.Solve.Threshold = parsed.Solve.Threshold
	}
	if parsed.Solve.WallClockSecs > 0 {
		cfg.Solve.WallClockSecs = parsed.Solve.WallClockSecs
	}
	return cfg, nil
}

// Validate checks the configuration is runnable.
func (c *RunConfig) Validate() error {
	switch c.Solve.Fixture {
	case "degenerate-nine", "chance-eleven":
	default:
		return fmt.Errorf("unknown fixture %q: want degenerate-nine or chance-eleven", c.Solve.Fixture)
	}
	if c.Solve.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.Solve.MaxIterations)
	}
	if c.Solve.CheckEvery < 0 {
		return fmt.Errorf("check_every must be non-negative, got %d", c.Solve.CheckEvery)
	}
	if c.Solve.Threshold < 0 {
		return fmt.Errorf("threshold must be non-negative, got %f", c.Solve.Threshold)
	}
	return nil
}
