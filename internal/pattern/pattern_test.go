package pattern

import (
	"slices"
	"testing"

	"torus-ca/internal/core"
)

func TestCatalogueShapes(t *testing.T) {
	cases := []struct {
		id   ID
		w, h int
		live int
	}{
		{GliderGun, 36, 9, 36},
		{Eater, 4, 4, 7},
		{Detector, 9, 6, 16},
	}
	for _, tc := range cases {
		p := Lookup(tc.id)
		if p.W != tc.w || p.H != tc.h {
			t.Fatalf("%s is %dx%d, want %dx%d", p.Name, p.W, p.H, tc.w, tc.h)
		}
		if got := p.Live(); got != tc.live {
			t.Fatalf("%s has %d live cells, want %d", p.Name, got, tc.live)
		}
	}
}

func TestLookupUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown pattern id")
		}
	}()
	Lookup(ID(42))
}

func TestStampThenClearRestoresGrid(t *testing.T) {
	for _, id := range IDs {
		for rot := R0; rot <= R270; rot++ {
			for _, flip := range []bool{false, true} {
				g := core.NewByteGrid(50, 40)
				g.Set(38, 20, 1)
				g.Set(10, 30, 1)
				before := append([]uint8(nil), g.Cells()...)

				Apply(g, 48, 2, Lookup(id), rot, flip, false)
				if slices.Equal(before, g.Cells()) {
					t.Fatalf("%s rot=%s flip=%v: stamping changed nothing", id, rot, flip)
				}
				Apply(g, 48, 2, Lookup(id), rot, flip, true)
				if !slices.Equal(before, g.Cells()) {
					t.Fatalf("%s rot=%s flip=%v: clear did not restore the grid", id, rot, flip)
				}
			}
		}
	}
}

func TestStampIsIdempotent(t *testing.T) {
	g := core.NewByteGrid(40, 40)
	Apply(g, 3, 7, Lookup(Detector), R90, true, false)
	once := append([]uint8(nil), g.Cells()...)
	Apply(g, 3, 7, Lookup(Detector), R90, true, false)
	if !slices.Equal(once, g.Cells()) {
		t.Fatal("re-applying an identical stamp changed the grid")
	}
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, id := range IDs {
		p := Lookup(id)

		want := core.NewByteGrid(64, 48)
		Apply(want, 10, 20, p, R0, false, false)

		got := core.NewByteGrid(64, 48)
		rot := R0
		Apply(got, 10, 20, p, rot, false, false)
		for i := 0; i < 4; i++ {
			Apply(got, 10, 20, p, rot, false, true)
			rot = rot.Next()
			Apply(got, 10, 20, p, rot, false, false)
		}
		if rot != R0 {
			t.Fatalf("four quarter turns ended at %s", rot)
		}
		if !slices.Equal(want.Cells(), got.Cells()) {
			t.Fatalf("%s: four rotations differ from identity", p.Name)
		}
	}
}

func TestRotationDestinations(t *testing.T) {
	p := Lookup(Eater)
	cases := []struct {
		rot Rotation
		dst func(k, n int) (int, int)
	}{
		{R0, func(k, n int) (int, int) { return 10 + k, 10 + n }},
		{R90, func(k, n int) (int, int) { return 10 + n, 10 + k }},
		{R180, func(k, n int) (int, int) { return 10 - k, 10 - n }},
		{R270, func(k, n int) (int, int) { return 10 - n, 10 - k }},
	}
	for _, tc := range cases {
		g := core.NewByteGrid(20, 20)
		Apply(g, 10, 10, p, tc.rot, false, false)
		for k := 0; k < p.W; k++ {
			for n := 0; n < p.H; n++ {
				x, y := tc.dst(k, n)
				if got := g.At(x, y); got != p.At(k, n) {
					t.Fatalf("rot %s: cell (%d,%d) = %d, want mask (%d,%d) = %d", tc.rot, x, y, got, k, n, p.At(k, n))
				}
			}
		}
		if g.Count() != p.Live() {
			t.Fatalf("rot %s: %d live cells, want %d", tc.rot, g.Count(), p.Live())
		}
	}
}

func TestFlipMirrorsAlongK(t *testing.T) {
	p := Lookup(Eater)
	g := core.NewByteGrid(12, 12)
	Apply(g, 2, 3, p, R0, true, false)
	for k := 0; k < p.W; k++ {
		for n := 0; n < p.H; n++ {
			if got, want := g.At(2+k, 3+n), p.At(p.W-1-k, n); got != want {
				t.Fatalf("flipped cell (%d,%d) = %d, want %d", k, n, got, want)
			}
		}
	}
}

func TestApplyWrapsAroundEdges(t *testing.T) {
	p := Lookup(GliderGun)
	g := core.NewByteGrid(40, 12)
	Apply(g, -5, -3, p, R0, false, false)
	if g.Count() != p.Live() {
		t.Fatalf("wrapped stamp has %d live cells, want %d", g.Count(), p.Live())
	}
	// Mask (0,4) lands on (-5,1) -> (35,1).
	if g.At(35, 1) != 1 {
		t.Fatal("expected gun block to wrap onto the right edge")
	}
}

func TestEraseWraps(t *testing.T) {
	g := core.NewByteGrid(10, 10)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}
	Erase(g, 8, 8, 4, 3)
	if got := g.Count(); got != 100-12 {
		t.Fatalf("expected 12 erased cells, got %d live", got)
	}
	for _, xy := range [][2]int{{8, 8}, {9, 9}, {0, 8}, {1, 0}} {
		if g.At(xy[0], xy[1]) != 0 {
			t.Fatalf("cell %v should be erased", xy)
		}
	}
	if g.At(2, 8) != 1 {
		t.Fatal("cell (2,8) is outside the eraser")
	}
}

func TestPlacementMovedWraps(t *testing.T) {
	pl := Placement{X: 0, Y: 4, ID: Eater}
	moved := pl.Moved(core.Size{W: 8, H: 5}, -1, 1)
	if moved.X != 7 || moved.Y != 0 {
		t.Fatalf("moved anchor = (%d,%d), want (7,0)", moved.X, moved.Y)
	}
}

func TestFootprintCoversMask(t *testing.T) {
	p := Lookup(Detector)
	fp := Footprint(p, R270)
	if len(fp) != p.W*p.H {
		t.Fatalf("footprint has %d offsets, want %d", len(fp), p.W*p.H)
	}
	if fp[len(fp)-1] != [2]int{-(p.H - 1), -(p.W - 1)} {
		t.Fatalf("unexpected last offset %v", fp[len(fp)-1])
	}
}
