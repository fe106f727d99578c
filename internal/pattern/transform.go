package pattern

import (
	"fmt"

	"torus-ca/internal/core"
)

// Rotation is a quarter-turn count applied when placing a pattern.
type Rotation uint8

const (
	R0 Rotation = iota
	R90
	R180
	R270
)

// Next returns the rotation a further quarter turn on.
func (r Rotation) Next() Rotation { return (r + 1) % 4 }

// String returns the rotation in degrees.
func (r Rotation) String() string { return fmt.Sprintf("%d°", int(r)*90) }

// Canvas is a wrapped-write target for stamping.
type Canvas interface {
	Size() core.Size
	Set(x, y int, v uint8)
}

// offset maps mask offset (k, n) to a destination delta for the rotation.
func (r Rotation) offset(k, n int) (int, int) {
	switch r {
	case R0:
		return k, n
	case R90:
		return n, k
	case R180:
		return -k, -n
	case R270:
		return -n, -k
	}
	panic(fmt.Sprintf("pattern: invalid rotation %d", r))
}

// Apply writes p onto dst anchored at (x, y). Flip mirrors the mask along K
// before rotating; clear writes zeros over the same footprint instead of the
// mask. Destinations wrap on both axes.
func Apply(dst Canvas, x, y int, p Pattern, rot Rotation, flip, clear bool) {
	size := dst.Size()
	for k := 0; k < p.W; k++ {
		for n := 0; n < p.H; n++ {
			v := p.At(k, n)
			if flip {
				v = p.At(p.W-1-k, n)
			}
			if clear {
				v = 0
			}
			dx, dy := rot.offset(k, n)
			dst.Set(core.Wrap(x+dx, size.W), core.Wrap(y+dy, size.H), v)
		}
	}
}

// Erase zeroes the w×h rectangle anchored at (x, y), wrapping on both axes.
func Erase(dst Canvas, x, y, w, h int) {
	size := dst.Size()
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			dst.Set(core.Wrap(x+i, size.W), core.Wrap(y+j, size.H), 0)
		}
	}
}

// Footprint returns the destination offsets covered by p under rot, relative
// to the anchor.
func Footprint(p Pattern, rot Rotation) [][2]int {
	out := make([][2]int, 0, p.W*p.H)
	for k := 0; k < p.W; k++ {
		for n := 0; n < p.H; n++ {
			dx, dy := rot.offset(k, n)
			out = append(out, [2]int{dx, dy})
		}
	}
	return out
}

// Placement records the most recent stamp so it can be undone or moved.
type Placement struct {
	X, Y     int
	ID       ID
	Rotation Rotation
	Flip     bool
}

// Apply stamps (or clears) the recorded placement onto dst.
func (pl Placement) Apply(dst Canvas, clear bool) {
	Apply(dst, pl.X, pl.Y, Lookup(pl.ID), pl.Rotation, pl.Flip, clear)
}

// Moved returns the placement shifted by (dx, dy) with the anchor wrapped to
// the canvas.
func (pl Placement) Moved(size core.Size, dx, dy int) Placement {
	pl.X = core.Wrap(pl.X+dx, size.W)
	pl.Y = core.Wrap(pl.Y+dy, size.H)
	return pl
}
