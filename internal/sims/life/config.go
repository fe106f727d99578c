package life

import "strconv"

// Config holds parameters for the classic Game of Life.
type Config struct {
	Width  int
	Height int
	Seed   int64

	// Density is the probability that Randomize marks a cell alive.
	Density float64
}

// DefaultConfig returns a 180x100 board seeded at 15% density.
func DefaultConfig() Config {
	return Config{Width: 180, Height: 100, Seed: 42, Density: 0.15}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}
