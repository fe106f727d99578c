// Package pattern holds the built-in stamp masks and the transforms that place
// them onto a toroidal grid.
package pattern

import "fmt"

// ID identifies a built-in pattern.
type ID uint8

const (
	GliderGun ID = iota
	Eater
	Detector
)

// IDs lists every built-in pattern in catalogue order.
var IDs = []ID{GliderGun, Eater, Detector}

// String returns the pattern name.
func (id ID) String() string { return Lookup(id).Name }

// Pattern is an immutable binary mask. Offset (0, 0) is the anchor; K runs along
// x and N along y when placed without rotation.
type Pattern struct {
	Name string
	W, H int
	mask []uint8
}

// At returns the mask value at offset (k, n).
func (p Pattern) At(k, n int) uint8 { return p.mask[k*p.H+n] }

// Live returns the number of set mask cells.
func (p Pattern) Live() int {
	n := 0
	for _, v := range p.mask {
		n += int(v)
	}
	return n
}

func build(name string, w, h int, live [][2]int) Pattern {
	p := Pattern{Name: name, W: w, H: h, mask: make([]uint8, w*h)}
	for _, c := range live {
		p.mask[c[0]*h+c[1]] = 1
	}
	return p
}

var catalogue = map[ID]Pattern{
	GliderGun: build("glider-gun", 36, 9, [][2]int{
		{0, 4}, {0, 5}, {1, 4}, {1, 5},
		{10, 4}, {10, 5}, {10, 6}, {11, 3}, {11, 7}, {12, 2}, {12, 8}, {13, 2}, {13, 8},
		{14, 5}, {15, 3}, {15, 7}, {16, 4}, {16, 5}, {16, 6}, {17, 5},
		{20, 2}, {20, 3}, {20, 4}, {21, 2}, {21, 3}, {21, 4}, {22, 1}, {22, 5},
		{24, 0}, {24, 1}, {24, 5}, {24, 6},
		{34, 2}, {34, 3}, {35, 2}, {35, 3},
	}),
	Eater: build("eater", 4, 4, [][2]int{
		{0, 0}, {0, 1}, {1, 0}, {1, 2}, {2, 2}, {3, 2}, {3, 3},
	}),
	Detector: build("detector", 9, 6, [][2]int{
		{0, 1}, {0, 2}, {0, 4}, {0, 5},
		{1, 2}, {1, 4}, {1, 5},
		{2, 2}, {3, 0}, {3, 2}, {4, 0}, {4, 1},
		{7, 0}, {7, 1}, {8, 0}, {8, 1},
	}),
}

// Lookup returns the built-in pattern for id. Unknown ids are programming
// errors and panic.
func Lookup(id ID) Pattern {
	p, ok := catalogue[id]
	if !ok {
		panic(fmt.Sprintf("pattern: unknown id %d", id))
	}
	return p
}
