package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a grid extent that is not strictly positive.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// ValidateSize checks that both extents describe a usable torus.
func ValidateSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%dx%d: %w", w, h, ErrInvalidSize)
	}
	return nil
}

// Wrap maps coord onto [0, extent) using true modulo, so negative offsets wrap
// around the far edge.
func Wrap(coord, extent int) int {
	return (coord%extent + extent) % extent
}

// Moore neighbourhood slots filled by NeighborIndices.
const (
	NeighborUpLeft = iota
	NeighborUp
	NeighborUpRight
	NeighborLeft
	NeighborRight
	NeighborDownLeft
	NeighborDown
	NeighborDownRight
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. It panics when either
// extent is not positive.
func NewByteGrid(w, h int) *ByteGrid {
	if err := ValidateSize(w, h); err != nil {
		panic("core.NewByteGrid: " + err.Error())
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	return Wrap(x, g.W), Wrap(y, g.H)
}

// At returns the value stored at the wrapped coordinates.
func (g *ByteGrid) At(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set writes v at the wrapped coordinates.
func (g *ByteGrid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// NeighborIndices fills out with the slice indices of the eight wrapped Moore
// neighbours of (x, y), in the Neighbor* slot order.
func (g *ByteGrid) NeighborIndices(x, y int, out *[8]int) {
	left := Wrap(x-1, g.W)
	right := Wrap(x+1, g.W)
	up := Wrap(y-1, g.H)
	down := Wrap(y+1, g.H)
	out[NeighborUpLeft] = g.Index(left, up)
	out[NeighborUp] = g.Index(x, up)
	out[NeighborUpRight] = g.Index(right, up)
	out[NeighborLeft] = g.Index(left, y)
	out[NeighborRight] = g.Index(right, y)
	out[NeighborDownLeft] = g.Index(left, down)
	out[NeighborDown] = g.Index(x, down)
	out[NeighborDownRight] = g.Index(right, down)
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *ByteGrid) CopyFrom(src *ByteGrid) {
	copy(g.data, src.data)
}

// Count returns the number of non-zero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
