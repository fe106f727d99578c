//go:build ebiten

package render

import (
	"image/color"

	"torus-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// GridPainter uploads simulation cells into a single RGBA image, one pixel per
// cell, and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	on, off color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
		on:  toRGBA(color.White),
		off: toRGBA(color.Black),
	}
}

// SetColors overrides the two colours used for sims without a palette.
func (gp *GridPainter) SetColors(on, off color.Color) {
	gp.on, gp.off = toRGBA(on), toRGBA(off)
}

// Paint draws the current cells of sim onto dst. Sims exposing a palette are
// coloured by value; everything else is drawn as on/off.
func (gp *GridPainter) Paint(dst *ebiten.Image, sim core.Sim, scale int) {
	cells := sim.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	if p, ok := sim.(paletteProvider); ok {
		fillPaletteRGBA(gp.buf, cells, p.Palette())
	} else {
		fillBinaryRGBA(gp.buf, cells, gp.on, gp.off)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
