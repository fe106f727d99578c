//go:build ebiten

package ui

import (
	"image/color"

	"torus-ca/internal/core"
	"torus-ca/internal/pattern"
	"torus-ca/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	cursorColor   = color.RGBA{R: 255, G: 210, B: 0, A: 255}
	gridColor     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	footprintTint = color.RGBA{R: 64, G: 164, B: 223, A: 60}
	placementTint = color.RGBA{R: 64, G: 164, B: 223, A: 150}
)

// gridLineMinPix is the smallest cell size grid lines are drawn at.
const gridLineMinPix = 4

// Overlay draws editing aids over the grid: grid lines, the cursor and the
// footprint of the last placement while paused.
type Overlay struct {
	session  *session.Session
	scale    int
	showGrid bool

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs an overlay for s drawn at scale pixels per cell.
func NewOverlay(s *session.Session, scale int) *Overlay {
	size := s.Sim().Size()
	return &Overlay{
		session: s,
		scale:   max(scale, 1),
		maskImg: ebiten.NewImage(size.W, size.H),
		maskBuf: make([]byte, 4*size.W*size.H),
	}
}

// Update toggles grid lines on X.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		o.showGrid = !o.showGrid
	}
}

// ShowGrid reports whether grid lines are drawn.
func (o *Overlay) ShowGrid() bool { return o.showGrid }

// Draw renders the overlay with the cursor at cell (cx, cy).
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy int) {
	size := o.session.Sim().Size()
	scale := float32(o.scale)

	if o.showGrid && o.scale >= gridLineMinPix {
		w, h := float32(size.W)*scale, float32(size.H)*scale
		for x := 1; x < size.W; x++ {
			vector.StrokeLine(screen, float32(x)*scale, 0, float32(x)*scale, h, 1, gridColor, false)
		}
		for y := 1; y < size.H; y++ {
			vector.StrokeLine(screen, 0, float32(y)*scale, w, float32(y)*scale, 1, gridColor, false)
		}
	}

	if pl, ok := o.session.Placement(); ok && o.session.Paused() {
		o.drawPlacement(screen, size, pl)
	}

	vector.StrokeRect(screen, float32(cx)*scale, float32(cy)*scale, scale, scale, 1, cursorColor, false)
}

// drawPlacement tints the bounding footprint of pl faintly and its live cells
// strongly, wrapping across the seams.
func (o *Overlay) drawPlacement(screen *ebiten.Image, size core.Size, pl pattern.Placement) {
	clear(o.maskBuf)
	p := pattern.Lookup(pl.ID)
	for i, off := range pattern.Footprint(p, pl.Rotation) {
		k, n := i/p.H, i%p.H
		if pl.Flip {
			k = p.W - 1 - k
		}
		tint := footprintTint
		if p.At(k, n) != 0 {
			tint = placementTint
		}
		x := core.Wrap(pl.X+off[0], size.W)
		y := core.Wrap(pl.Y+off[1], size.H)
		putRGBA(o.maskBuf[(y*size.W+x)*4:], premultiply(tint))
	}
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

func putRGBA(dst []byte, c color.RGBA) {
	dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, c.A
}
