package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}
	buf := make([]byte, 3*4)
	fillBinaryRGBA(buf, []uint8{0, 1, 7}, on, off)

	want := []byte{0, 0, 0, 255, 255, 255, 255, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAClampsIndex(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 255, A: 255}}
	buf := make([]byte, 3*4)
	fillPaletteRGBA(buf, []uint8{1, 0, 9}, palette)

	want := []byte{255, 0, 0, 255, 0, 0, 0, 255, 255, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{1, 1}, nil)
	if !slices.Equal(buf, make([]byte, 8)) {
		t.Fatalf("empty palette should clear the buffer, got %v", buf)
	}
}

func TestToRGBA(t *testing.T) {
	if got := toRGBA(color.White); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("unexpected conversion %v", got)
	}
	if got := toRGBA(color.Gray{Y: 128}); got.R != 128 || got.A != 255 {
		t.Fatalf("unexpected conversion %v", got)
	}
}
