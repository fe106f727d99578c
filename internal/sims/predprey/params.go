package predprey

import "torus-ca/internal/core"

// Parameters reports the world configuration and populations for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	predators, prey := w.Populations()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.IntParam("max_neighbors", "Prey crowding limit", params.MaxNeighbors),
				core.FloatParam("starve_chance", "Starve chance", params.StarveChance),
				core.FloatParam("wander_chance", "Wander chance", params.WanderChance),
				core.FloatParam("prey_mortality", "Prey mortality", params.PreyMortality),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.FloatParam("predator_density", "Predator density", params.PredatorDensity),
				core.FloatParam("prey_density", "Prey density", params.PreyDensity),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("predators", "Predators", predators),
				core.IntParam("prey", "Prey", prey),
			},
		},
	}}
}

// ParameterControls lists the seeding values the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "predator_density", Label: "Predators", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1},
		{Key: "prey_density", Label: "Prey", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
	}
}

// SetFloatParameter updates a seeding density. Changes apply on the next
// Randomize.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "predator_density":
		w.cfg.Params.PredatorDensity = core.Clamp(value, 0, 1)
	case "prey_density":
		w.cfg.Params.PreyDensity = core.Clamp(value, 0, 1)
	default:
		return false
	}
	return true
}
