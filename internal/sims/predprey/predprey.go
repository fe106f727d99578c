// Package predprey implements a probabilistic predator-prey automaton on two
// coupled toroidal layers.
//
// Each tick draws exactly one uniform random value per cell, visiting cells in
// row-major order (y outer, x inner). Runs with the same seed and the same
// edits are therefore reproducible.
package predprey

import (
	"torus-ca/internal/core"
)

// Predator is the state of the predator layer. Codes other than PredatorAlive
// announce a move into a neighbouring cell on the next tick. The numeric values
// are the snapshot encoding.
type Predator uint8

const (
	PredatorNone  Predator = 0
	PredatorAlive Predator = 1
	PredatorUp    Predator = 3
	PredatorDown  Predator = 5
	PredatorLeft  Predator = 7
	PredatorRight Predator = 9
)

// Occupied reports whether a predator is present, moving or not.
func (p Predator) Occupied() bool { return p != PredatorNone }

// Migrating reports whether the predator announced a move.
func (p Predator) Migrating() bool {
	switch p {
	case PredatorUp, PredatorDown, PredatorLeft, PredatorRight:
		return true
	}
	return false
}

// Valid reports whether p is one of the defined codes.
func (p Predator) Valid() bool {
	return p == PredatorNone || p == PredatorAlive || p.Migrating()
}

// Target returns the direction the predator announced. ok is false for
// settled or absent predators.
func (p Predator) Target() (d core.Direction, ok bool) {
	switch p {
	case PredatorUp:
		return core.DirUp, true
	case PredatorDown:
		return core.DirDown, true
	case PredatorLeft:
		return core.DirLeft, true
	case PredatorRight:
		return core.DirRight, true
	}
	return 0, false
}

type randSource interface {
	Float64() float64
}

// World stores both layers of the predator-prey simulation.
type World struct {
	cfg Config

	predCur *core.ByteGrid
	predNxt *core.ByteGrid
	preyCur *core.ByteGrid
	preyNxt *core.ByteGrid
	display []uint8

	rng randSource
}

// New returns a world with the provided dimensions using defaults. It panics
// when either dimension is not positive.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty world configured from cfg.
func NewWithConfig(cfg Config) *World {
	return &World{
		cfg:     cfg,
		predCur: core.NewByteGrid(cfg.Width, cfg.Height),
		predNxt: core.NewByteGrid(cfg.Width, cfg.Height),
		preyCur: core.NewByteGrid(cfg.Width, cfg.Height),
		preyNxt: core.NewByteGrid(cfg.Width, cfg.Height),
		display: make([]uint8, cfg.Width*cfg.Height),
		rng:     core.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "predprey" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.predCur.Size() }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Predator returns the predator code of the wrapped cell.
func (w *World) Predator(x, y int) Predator { return Predator(w.predCur.At(x, y)) }

// Prey reports whether the wrapped cell holds prey.
func (w *World) Prey(x, y int) bool { return w.preyCur.At(x, y) == 1 }

// SetPredator writes a predator code onto the wrapped cell.
func (w *World) SetPredator(x, y int, p Predator) { w.predCur.Set(x, y, uint8(p)) }

// SetPrey writes the prey state of the wrapped cell.
func (w *World) SetPrey(x, y int, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	w.preyCur.Set(x, y, v)
}

// Populations counts occupied predator cells and live prey cells.
func (w *World) Populations() (predators, prey int) {
	return w.predCur.Count(), w.preyCur.Count()
}

// Reset reseeds the RNG and randomizes both layers.
func (w *World) Reset(seed int64) {
	w.rng = core.NewRNG(seed)
	w.Randomize()
}

// Randomize clears both layers, then draws once per cell: predators claim
// cells below PredatorDensity, prey the next PreyDensity of the range.
func (w *World) Randomize() {
	w.Clear()
	predDensity := w.cfg.Params.PredatorDensity
	preyDensity := w.cfg.Params.PreyDensity
	pred, prey := w.predCur.Cells(), w.preyCur.Cells()
	for i := range pred {
		r := w.rng.Float64()
		if r < predDensity {
			pred[i] = uint8(PredatorAlive)
		} else if r < predDensity+preyDensity {
			prey[i] = 1
		}
	}
}

// Clear empties both layers.
func (w *World) Clear() {
	w.predCur.Clear()
	w.preyCur.Clear()
}

// Toggle cycles the wrapped cell through empty, predator and prey.
func (w *World) Toggle(x, y int) {
	switch {
	case w.Predator(x, y).Occupied():
		w.SetPredator(x, y, PredatorNone)
		w.SetPrey(x, y, true)
	case w.Prey(x, y):
		w.SetPrey(x, y, false)
	default:
		w.SetPredator(x, y, PredatorAlive)
		w.SetPrey(x, y, false)
	}
}

// Set stamps prey onto the wrapped cell, replacing whatever it held.
func (w *World) Set(x, y int, v uint8) {
	w.SetPredator(x, y, PredatorNone)
	w.SetPrey(x, y, v != 0)
}

const preyBit = 4

// Encode packs the wrapped cell as predator code | prey<<4.
func (w *World) Encode(x, y int) uint8 {
	return w.predCur.At(x, y) | w.preyCur.At(x, y)<<preyBit
}

// Decode restores an Encode value onto the wrapped cell.
func (w *World) Decode(x, y int, v uint8) {
	w.predCur.Set(x, y, v&0x0f)
	w.preyCur.Set(x, y, v>>preyBit)
}

// Valid reports whether v is a value Encode can produce.
func (w *World) Valid(v uint8) bool {
	return Predator(v&0x0f).Valid() && v>>preyBit <= 1
}

// Step advances both layers by one generation.
func (w *World) Step() {
	w.predNxt.CopyFrom(w.predCur)
	w.preyNxt.CopyFrom(w.preyCur)
	predNext, preyNext := w.predNxt.Cells(), w.preyNxt.Cells()

	size := w.Size()
	params := &w.cfg.Params
	var nb [8]int
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := w.context(x, y, w.rng.Float64(), &nb)
			next := evaluate(params, &c)
			idx := w.predCur.Index(x, y)
			predNext[idx] = uint8(next.pred)
			preyNext[idx] = next.prey
		}
	}

	w.predCur, w.predNxt = w.predNxt, w.predCur
	w.preyCur, w.preyNxt = w.preyNxt, w.preyCur
}

func init() {
	core.Register("predprey", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
