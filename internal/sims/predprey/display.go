package predprey

import "image/color"

// Display codes written into the Cells buffer.
const (
	displayEmpty uint8 = iota
	displayPrey
	displayPredator
	displayPredatorOnPrey
)

var palette = []color.RGBA{
	displayEmpty:          {A: 255},
	displayPrey:           {R: 255, G: 255, B: 255, A: 255},
	displayPredator:       {R: 255, A: 255},
	displayPredatorOnPrey: {R: 128, A: 255},
}

// Palette exposes the colours used for rendering the display codes.
func (w *World) Palette() []color.RGBA { return palette }

// Cells rebuilds and returns the display buffer for the current layers.
func (w *World) Cells() []uint8 {
	pred, prey := w.predCur.Cells(), w.preyCur.Cells()
	for i := range w.display {
		w.display[i] = encodeDisplayValue(Predator(pred[i]), prey[i] == 1)
	}
	return w.display
}

func encodeDisplayValue(pred Predator, prey bool) uint8 {
	switch {
	case pred.Occupied() && prey:
		return displayPredatorOnPrey
	case pred.Occupied():
		return displayPredator
	case prey:
		return displayPrey
	}
	return displayEmpty
}
