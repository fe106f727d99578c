package app

import (
	"flag"
	"fmt"
	"strconv"

	"torus-ca/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Seed     int64
	Scale    int
	TPS      int
	Paused   bool
	Snapshot string

	// Headless runs only.
	Steps int
	Out   string
}

// NewConfig returns a Config populated with sensible defaults. Zero Width and
// Height leave the grid size to the simulation's own defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Seed: 42, Scale: 4, TPS: 25, Snapshot: "board.csv", Steps: 100}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, predprey)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (0 uses the simulation default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells (0 uses the simulation default)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "snapshot file used by save and load")
}

// BindHeadless attaches the flags only the headless runner uses.
func (c *Config) BindHeadless(fs *flag.FlagSet) {
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to run before writing the snapshot")
	fs.StringVar(&c.Out, "out", c.Out, "snapshot path written after the run (empty skips writing)")
}

// Validate rejects values that cannot start a run.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("grid %dx%d: %w", c.Width, c.Height, core.ErrInvalidSize)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", c.Steps)
	}
	return nil
}

// SimOptions returns the option map handed to the simulation factory.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	return opts
}

// NewSim looks up the configured simulation and builds it seeded from the
// configuration.
func (c *Config) NewSim() (core.Sim, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.Sim)
	}
	sim := factory(c.SimOptions())
	sim.Reset(c.Seed)
	return sim, nil
}
