// Package session drives a simulation through generations and gates the edits
// an interactive front end may make between them.
//
// A session is either running or paused. Running sessions only step; paused
// sessions accept edits (toggles, stamps, erasing, clearing, randomizing and
// snapshot imports) and ignore Step. Edits never redraw anything themselves.
package session

import (
	"errors"
	"fmt"

	"torus-ca/internal/core"
	"torus-ca/internal/pattern"
	"torus-ca/internal/snapshot"
)

var (
	// ErrRunning reports an edit attempted while the simulation is running.
	ErrRunning = errors.New("simulation is running")
	// ErrDimensionMismatch reports a snapshot larger than the live grid.
	ErrDimensionMismatch = errors.New("snapshot dimensions exceed grid")
	// ErrInvalidCell reports a snapshot cell outside its declared bounds or
	// holding a state the simulation does not accept.
	ErrInvalidCell = errors.New("invalid snapshot cell")
)

// Session owns a simulation, its generation clock and the last placement.
type Session struct {
	sim        core.Sim
	paused     bool
	generation uint64

	placement pattern.Placement
	placed    bool
}

// New wraps sim. The session starts running unless paused is set.
func New(sim core.Sim, paused bool) *Session {
	return &Session{sim: sim, paused: paused}
}

// Sim returns the wrapped simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Generation returns the number of generations stepped since the last
// reinitialisation.
func (s *Session) Generation() uint64 { return s.generation }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// SetPaused pauses or resumes the session.
func (s *Session) SetPaused(paused bool) { s.paused = paused }

// TogglePause flips between running and paused and returns the new state.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Step advances one generation while running. It reports whether a step ran.
func (s *Session) Step() bool {
	if s.paused {
		return false
	}
	s.advance()
	return true
}

// StepOnce advances exactly one generation while paused.
func (s *Session) StepOnce() bool {
	if !s.paused {
		return false
	}
	s.advance()
	return true
}

func (s *Session) advance() {
	s.sim.Step()
	s.generation++
}

// Placement returns the last recorded placement. ok is false before the first
// stamp; the returned orientation is still the one the next stamp will use.
func (s *Session) Placement() (pl pattern.Placement, ok bool) {
	return s.placement, s.placed
}

// Toggle flips the manual state of a cell.
func (s *Session) Toggle(x, y int) bool {
	if s.paused {
		size := s.sim.Size()
		s.sim.Toggle(core.Wrap(x, size.W), core.Wrap(y, size.H))
	}
	return s.paused
}

// Clear kills every cell and resets the generation counter.
func (s *Session) Clear() bool {
	if !s.paused {
		return false
	}
	s.sim.Clear()
	s.generation = 0
	return true
}

// Randomize reseeds the grid from the simulation's densities and resets the
// generation counter.
func (s *Session) Randomize() bool {
	if !s.paused {
		return false
	}
	s.sim.Randomize()
	s.generation = 0
	return true
}

// Stamp places pattern id at (x, y) using the recorded rotation and flip.
func (s *Session) Stamp(x, y int, id pattern.ID) bool {
	return s.StampWith(x, y, id, s.placement.Rotation, s.placement.Flip, false)
}

// StampWith places (or, with clear, erases the footprint of) pattern id at
// (x, y) and records the placement.
func (s *Session) StampWith(x, y int, id pattern.ID, rot pattern.Rotation, flip, clear bool) bool {
	if !s.paused {
		return false
	}
	size := s.sim.Size()
	s.placement = pattern.Placement{
		X:        core.Wrap(x, size.W),
		Y:        core.Wrap(y, size.H),
		ID:       id,
		Rotation: rot,
		Flip:     flip,
	}
	s.placed = true
	s.placement.Apply(s.sim, clear)
	return true
}

// Undo clears the footprint of the last placement.
func (s *Session) Undo() bool {
	if !s.paused || !s.placed {
		return false
	}
	s.placement.Apply(s.sim, true)
	return true
}

// Nudge moves the last placement one cell in direction d.
func (s *Session) Nudge(d core.Direction) bool {
	if !s.paused || !s.placed {
		return false
	}
	dx, dy := d.Delta()
	s.placement.Apply(s.sim, true)
	s.placement = s.placement.Moved(s.sim.Size(), dx, dy)
	s.placement.Apply(s.sim, false)
	return true
}

// Rotate turns the last placement a quarter turn. Before any placement it only
// changes the orientation used by the next stamp.
func (s *Session) Rotate() bool {
	return s.reorient(func(pl *pattern.Placement) { pl.Rotation = pl.Rotation.Next() })
}

// Flip mirrors the last placement. Before any placement it only changes the
// orientation used by the next stamp.
func (s *Session) Flip() bool {
	return s.reorient(func(pl *pattern.Placement) { pl.Flip = !pl.Flip })
}

func (s *Session) reorient(change func(*pattern.Placement)) bool {
	if !s.paused {
		return false
	}
	if !s.placed {
		change(&s.placement)
		return true
	}
	s.placement.Apply(s.sim, true)
	change(&s.placement)
	s.placement.Apply(s.sim, false)
	return true
}

// Erase kills the w×h rectangle anchored at (x, y).
func (s *Session) Erase(x, y, w, h int) bool {
	if !s.paused {
		return false
	}
	pattern.Erase(s.sim, x, y, w, h)
	return true
}

// Export captures every cell of the simulation, column by column.
func (s *Session) Export() snapshot.Snapshot {
	size := s.sim.Size()
	out := snapshot.Snapshot{W: size.W, H: size.H, Cells: make([]snapshot.Cell, 0, size.W*size.H)}
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			out.Cells = append(out.Cells, snapshot.Cell{X: x, Y: y, State: s.sim.Encode(x, y)})
		}
	}
	return out
}

// Import writes the cells of snap over the grid. A snapshot strictly smaller
// than the grid on both axes is shifted to the cursor. Nothing is written
// unless the whole snapshot validates.
func (s *Session) Import(snap snapshot.Snapshot, cursorX, cursorY int) error {
	if !s.paused {
		return ErrRunning
	}
	size := s.sim.Size()
	if snap.W > size.W || snap.H > size.H {
		return fmt.Errorf("%w: snapshot %dx%d, grid %dx%d", ErrDimensionMismatch, snap.W, snap.H, size.W, size.H)
	}
	for _, c := range snap.Cells {
		if c.X < 0 || c.X >= snap.W || c.Y < 0 || c.Y >= snap.H {
			return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrInvalidCell, c.X, c.Y, snap.W, snap.H)
		}
		if !s.sim.Valid(c.State) {
			return fmt.Errorf("%w: state %d at (%d,%d)", ErrInvalidCell, c.State, c.X, c.Y)
		}
	}

	shiftX, shiftY := 0, 0
	if snap.W < size.W && snap.H < size.H {
		shiftX, shiftY = core.Wrap(cursorX, size.W), core.Wrap(cursorY, size.H)
	}
	for _, c := range snap.Cells {
		s.sim.Decode(core.Wrap(c.X+shiftX, size.W), core.Wrap(c.Y+shiftY, size.H), c.State)
	}
	return nil
}
