//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"torus-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view, with
// free-form status lines below the controls.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls     []controlState
	setter       core.FloatParameterSetter
	panelOffsetX int
	title        string
	status       []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControls(provider.ParameterControls(), h.width)
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus replaces the status lines drawn under the controls.
func (h *HUD) SetStatus(lines ...string) {
	if h == nil {
		return
	}
	h.status = append(h.status[:0], lines...)
}

// Update refreshes control values from the simulation and handles clicks on
// the panel. It reports whether the click landed on the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for i := range h.controls {
			h.controls[i].refresh(snap)
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pointInRect(px, my, c.minusRect):
			c.adjust(h.setter, -1)
		case pointInRect(px, my, c.plusRect):
			c.adjust(h.setter, 1)
		}
	}
	return true
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)
	h.drawControls()
	h.drawStatus()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, titleColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, mutedColor)
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		y := c.top + labelBaseline
		text.Draw(h.panel, c.control.Label, face, panelPadding, y, labelColor)

		valueColor := labelColor
		if !c.hasValue {
			valueColor = mutedColor
		}
		valueWidth := text.BoundString(face, c.value).Dx()
		text.Draw(h.panel, c.value, face, c.minusRect.Min.X-buttonGap-valueWidth, y, valueColor)

		_, canDec := c.target(-1)
		_, canInc := c.target(1)
		h.drawButton(c.minusRect, "-", canDec && h.setter != nil)
		h.drawButton(c.plusRect, "+", canInc && h.setter != nil)
	}
}

func (h *HUD) drawStatus() {
	if len(h.status) == 0 {
		return
	}
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + infoSpacing
	if len(h.controls) == 0 {
		y = panelPadding + headerBaseline + 2*infoSpacing
	}
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
		y += statusSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
