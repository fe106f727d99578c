package predprey

import "strconv"

// Params holds the tunable thresholds and probabilities of the rule cascade.
type Params struct {
	// MaxNeighbors is the prey crowding limit above which prey die.
	MaxNeighbors int
	// StarveChance kills a crowded predator that has no prey nearby.
	StarveChance float64
	// WanderChance is the chance an isolated, starving predator survives the
	// tick (moving or staying) rather than dying.
	WanderChance float64
	// PreyMortality is the background chance that prey die in quiet cells.
	PreyMortality float64

	PredatorDensity float64
	PreyDensity     float64
}

// Config controls the predator-prey world dimensions and seeding.
type Config struct {
	Width  int
	Height int
	Seed   int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 125,
		Seed:   1337,
		Params: Params{
			MaxNeighbors:    5,
			StarveChance:    0.25,
			WanderChance:    0.95,
			PreyMortality:   0.05,
			PredatorDensity: 0.005,
			PreyDensity:     0.15,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
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
	if v, ok := cfg["max_neighbors"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 8 {
			c.Params.MaxNeighbors = parsed
		}
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"starve_chance", &c.Params.StarveChance},
		{"wander_chance", &c.Params.WanderChance},
		{"prey_mortality", &c.Params.PreyMortality},
		{"predator_density", &c.Params.PredatorDensity},
		{"prey_density", &c.Params.PreyDensity},
	}
	for _, f := range floats {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				*f.dst = parsed
			}
		}
	}
	return c
}
