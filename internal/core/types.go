package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract a toroidal cellular automaton must implement so a
// session can step, edit and persist it.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8

	// Clear sets every cell on every layer to dead.
	Clear()
	// Randomize reseeds the layers from the engine's configured densities.
	Randomize()
	// Toggle advances the manual edit state of the wrapped cell.
	Toggle(x, y int)
	// Set writes a pattern value onto the wrapped cell.
	Set(x, y int, v uint8)

	// Encode, Decode and Valid map a cell to and from a single snapshot value.
	Encode(x, y int) uint8
	Decode(x, y int, v uint8)
	Valid(v uint8) bool
}

// Direction enumerates single-cell moves in screen orientation (y grows down).
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the coordinate offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	panic("core: invalid direction")
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
