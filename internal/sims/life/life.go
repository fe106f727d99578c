package life

import (
	"image/color"
	"math/rand/v2"

	"torus-ca/internal/core"
)

const (
	dead  uint8 = 0
	alive uint8 = 1
)

// rule is one step of the classic cascade. Every rule is checked in order and
// the last one whose predicate holds decides the next state.
type rule struct {
	when func(n int) bool
	then func(cur uint8) uint8
}

var cascade = [...]rule{
	{when: func(n int) bool { return n < 2 }, then: func(uint8) uint8 { return dead }},
	{when: func(n int) bool { return n == 2 }, then: func(cur uint8) uint8 { return cur }},
	{when: func(n int) bool { return n == 3 }, then: func(uint8) uint8 { return alive }},
	{when: func(n int) bool { return n > 3 }, then: func(uint8) uint8 { return dead }},
}

// NextState returns the next value of a cell holding cur with n live Moore
// neighbours.
func NextState(cur uint8, n int) uint8 {
	next := cur
	for _, r := range cascade {
		if r.when(n) {
			next = r.then(cur)
		}
	}
	return next
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg Config
	cur *core.ByteGrid
	nxt *core.ByteGrid
	rng *rand.Rand
}

// New returns a Life simulation with the provided dimensions using defaults.
// It panics when either dimension is not positive.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty Life board configured from cfg.
func NewWithConfig(cfg Config) *Life {
	return &Life{
		cfg: cfg,
		cur: core.NewByteGrid(cfg.Width, cfg.Height),
		nxt: core.NewByteGrid(cfg.Width, cfg.Height),
		rng: core.NewRNG(cfg.Seed).Source(),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Palette maps cell values to colours.
func (l *Life) Palette() []color.RGBA {
	return []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
}

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Count() }

// Reset reseeds the RNG and randomizes the board.
func (l *Life) Reset(seed int64) {
	l.rng = core.NewRNG(seed).Source()
	l.Randomize()
}

// Randomize clears the board and marks each cell alive with the configured
// density.
func (l *Life) Randomize() {
	core.FillDensity(l.rng, l.cur.Cells(), l.cfg.Density)
}

// Clear kills every cell.
func (l *Life) Clear() { l.cur.Clear() }

// Toggle flips the wrapped cell between dead and alive.
func (l *Life) Toggle(x, y int) { l.cur.Set(x, y, (l.cur.At(x, y)+1)%2) }

// Set writes v onto the wrapped cell.
func (l *Life) Set(x, y int, v uint8) { l.cur.Set(x, y, v) }

// Encode returns the snapshot value of the wrapped cell.
func (l *Life) Encode(x, y int) uint8 { return l.cur.At(x, y) }

// Decode restores a snapshot value onto the wrapped cell.
func (l *Life) Decode(x, y int, v uint8) { l.cur.Set(x, y, v) }

// Valid reports whether v is a classic cell state.
func (l *Life) Valid(v uint8) bool { return v == dead || v == alive }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	var nb [8]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l.cur.NeighborIndices(x, y, &nb)
			neighbors := 0
			for _, idx := range nb {
				neighbors += int(cur[idx])
			}
			idx := l.cur.Index(x, y)
			nxt[idx] = NextState(cur[idx], neighbors)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
