//go:build ebiten

package app

import (
	"fmt"

	"torus-ca/internal/core"
	"torus-ca/internal/render"
	"torus-ca/internal/session"
	"torus-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

var keymap = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyEnter, ActionTogglePause},
	{ebiten.KeySpace, ActionTogglePause},
	{ebiten.KeyN, ActionStepOnce},
	{ebiten.KeyC, ActionClear},
	{ebiten.KeyR, ActionRandomize},
	{ebiten.KeyG, ActionStampGliderGun},
	{ebiten.KeyE, ActionStampEater},
	{ebiten.KeyD, ActionStampDetector},
	{ebiten.KeyU, ActionUndo},
	{ebiten.KeyT, ActionRotate},
	{ebiten.KeyF, ActionFlip},
	{ebiten.KeyArrowUp, ActionNudgeUp},
	{ebiten.KeyArrowDown, ActionNudgeDown},
	{ebiten.KeyArrowLeft, ActionNudgeLeft},
	{ebiten.KeyArrowRight, ActionNudgeRight},
	{ebiten.KeyO, ActionErase},
	{ebiten.KeyS, ActionSave},
	{ebiten.KeyL, ActionLoad},
}

// Game adapts a session to the ebiten.Game interface. Generations advance at
// the configured rate while the window keeps drawing at the display rate.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.Pacer

	scale          int
	cursorX        int
	cursorY        int
	showDebugPrint bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	s := session.New(sim, cfg.Paused)
	size := sim.Size()
	return &Game{
		ctrl:    NewController(s, cfg.Snapshot),
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(s, cfg.Scale),
		hud:     ui.NewHUD(sim, hudWidth),
		pacer:   core.NewPacer(cfg.TPS),
		scale:   cfg.Scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebugPrint = !g.showDebugPrint
	}
	g.updateCursor()

	for _, km := range keymap {
		if inpututil.IsKeyJustPressed(km.key) {
			g.ctrl.Do(km.action, g.cursorX, g.cursorY)
		}
	}

	size := g.ctrl.Session().Sim().Size()
	onPanel := g.hud.Update(size.W * g.scale)
	if !onPanel && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Do(ActionToggleCell, g.cursorX, g.cursorY)
	}
	g.overlay.Update()

	s := g.ctrl.Session()
	if s.Paused() {
		g.pacer.Hold()
	} else {
		for n := g.pacer.Due(); n > 0; n-- {
			s.Step()
		}
	}
	g.hud.SetStatus(g.ctrl.Status(g.cursorX, g.cursorY)...)
	return nil
}

func (g *Game) updateCursor() {
	mx, my := ebiten.CursorPosition()
	size := g.ctrl.Session().Sim().Size()
	if mx < 0 || my < 0 || mx >= size.W*g.scale || my >= size.H*g.scale {
		return
	}
	g.cursorX = core.Wrap(mx/g.scale, size.W)
	g.cursorY = core.Wrap(my/g.scale, size.H)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.ctrl.Session()
	g.painter.Paint(screen, s.Sim(), g.scale)
	g.overlay.Draw(screen, g.cursorX, g.cursorY)
	g.hud.Draw(screen, s.Sim().Size().W*g.scale, g.scale)
	if g.showDebugPrint {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.1f FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, 4)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.Session().Sim().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
