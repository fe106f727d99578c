package render

import "image/color"

// fillBinaryRGBA converts two-state cell data into RGBA pixels in buf. Any
// non-zero value is drawn with on.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		col := off
		if c != 0 {
			col = on
		}
		putRGBA(buf[i*4:], col)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last entry; an empty palette clears the
// buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		putRGBA(buf[i*4:], palette[min(int(c), last)])
	}
}

func putRGBA(dst []byte, col color.RGBA) {
	dst[0] = col.R
	dst[1] = col.G
	dst[2] = col.B
	dst[3] = col.A
}

// toRGBA flattens any colour into its 8-bit alpha-premultiplied form.
func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
