package life

import "torus-ca/internal/core"

// Parameters reports the board configuration for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
				core.Int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.FloatParam("density", "Density", l.cfg.Density),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("alive", "Alive", l.Population()),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
	}
}

// SetFloatParameter updates a seeding parameter. It takes effect on the next
// Randomize.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		l.cfg.Density = core.Clamp(value, 0, 1)
		return true
	}
	return false
}
