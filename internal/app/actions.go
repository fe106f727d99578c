package app

import (
	"fmt"
	"log"

	"torus-ca/internal/core"
	"torus-ca/internal/pattern"
	"torus-ca/internal/session"
	"torus-ca/internal/snapshot"
)

// Action is a user command the front end translates input into.
type Action uint8

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionStepOnce
	ActionClear
	ActionRandomize
	ActionToggleCell
	ActionStampGliderGun
	ActionStampEater
	ActionStampDetector
	ActionUndo
	ActionRotate
	ActionFlip
	ActionNudgeUp
	ActionNudgeDown
	ActionNudgeLeft
	ActionNudgeRight
	ActionErase
	ActionSave
	ActionLoad
)

// Eraser block size in cells.
const (
	eraseW = 8
	eraseH = 8
)

// Controller applies actions to a session at a cursor cell.
type Controller struct {
	session  *session.Session
	snapshot string
	logf     func(format string, args ...any)
}

// NewController returns a controller saving to and loading from path.
func NewController(s *session.Session, path string) *Controller {
	return &Controller{session: s, snapshot: path, logf: log.Printf}
}

// Session returns the controlled session.
func (c *Controller) Session() *session.Session { return c.session }

// Do applies a at cursor cell (cx, cy). It reports whether the grid or the
// run state changed, so the caller knows a redraw is needed.
func (c *Controller) Do(a Action, cx, cy int) bool {
	s := c.session
	switch a {
	case ActionTogglePause:
		s.TogglePause()
		return true
	case ActionStepOnce:
		return s.StepOnce()
	case ActionClear:
		return s.Clear()
	case ActionRandomize:
		return s.Randomize()
	case ActionToggleCell:
		return s.Toggle(cx, cy)
	case ActionStampGliderGun:
		return s.Stamp(cx, cy, pattern.GliderGun)
	case ActionStampEater:
		return s.Stamp(cx, cy, pattern.Eater)
	case ActionStampDetector:
		return s.Stamp(cx, cy, pattern.Detector)
	case ActionUndo:
		return s.Undo()
	case ActionRotate:
		return s.Rotate()
	case ActionFlip:
		return s.Flip()
	case ActionNudgeUp:
		return s.Nudge(core.DirUp)
	case ActionNudgeDown:
		return s.Nudge(core.DirDown)
	case ActionNudgeLeft:
		return s.Nudge(core.DirLeft)
	case ActionNudgeRight:
		return s.Nudge(core.DirRight)
	case ActionErase:
		return s.Erase(cx, cy, eraseW, eraseH)
	case ActionSave:
		if err := c.Save(); err != nil {
			c.logf("save: %v", err)
		}
		return false
	case ActionLoad:
		if err := c.Load(cx, cy); err != nil {
			c.logf("load: %v", err)
			return false
		}
		return true
	}
	return false
}

// Save writes the grid to the snapshot file. Saving requires a paused session.
func (c *Controller) Save() error {
	if !c.session.Paused() {
		return session.ErrRunning
	}
	return snapshot.Save(c.snapshot, c.session.Export())
}

// Load reads the snapshot file and imports it at the cursor.
func (c *Controller) Load(cx, cy int) error {
	if !c.session.Paused() {
		return session.ErrRunning
	}
	snap, err := snapshot.Load(c.snapshot)
	if err != nil {
		return err
	}
	if err := c.session.Import(snap, cx, cy); err != nil {
		return fmt.Errorf("%s: %w", c.snapshot, err)
	}
	return nil
}

// Status returns the status lines shown on the HUD.
func (c *Controller) Status(cx, cy int) []string {
	s := c.session
	state := "running"
	if s.Paused() {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("Generation %d (%s)", s.Generation(), state),
		fmt.Sprintf("Cursor %d,%d", cx, cy),
	}
	if pl, ok := s.Placement(); ok {
		lines = append(lines, fmt.Sprintf("Last %s %s flip=%t", pl.ID, pl.Rotation, pl.Flip))
	} else {
		lines = append(lines, fmt.Sprintf("Next %s flip=%t", pl.Rotation, pl.Flip))
	}
	return lines
}
