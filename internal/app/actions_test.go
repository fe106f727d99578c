package app

import (
	"fmt"
	"path/filepath"
	"slices"
	"testing"

	"torus-ca/internal/pattern"
	"torus-ca/internal/session"
	"torus-ca/internal/sims/life"
)

func newController(t *testing.T, w, h int) (*Controller, *life.Life, *[]string) {
	t.Helper()
	sim := life.New(w, h)
	c := NewController(session.New(sim, true), filepath.Join(t.TempDir(), "board.csv"))
	var logged []string
	c.logf = func(format string, args ...any) { logged = append(logged, fmt.Sprintf(format, args...)) }
	return c, sim, &logged
}

func TestControllerStampAndUndo(t *testing.T) {
	c, sim, _ := newController(t, 40, 30)
	if !c.Do(ActionStampEater, 38, 28) {
		t.Fatal("stamp should be accepted while paused")
	}
	if sim.Population() != pattern.Lookup(pattern.Eater).Live() {
		t.Fatalf("unexpected population %d", sim.Population())
	}
	c.Do(ActionNudgeLeft, 0, 0)
	if pl, _ := c.Session().Placement(); pl.X != 37 || pl.Y != 28 {
		t.Fatalf("nudge moved placement to (%d,%d)", pl.X, pl.Y)
	}
	c.Do(ActionUndo, 0, 0)
	if sim.Population() != 0 {
		t.Fatal("undo should clear the stamp")
	}
}

func TestControllerRejectsEditsWhileRunning(t *testing.T) {
	c, sim, logged := newController(t, 10, 10)
	c.Do(ActionTogglePause, 0, 0)
	if c.Do(ActionToggleCell, 1, 1) || sim.Population() != 0 {
		t.Fatal("running session should ignore toggles")
	}
	c.Do(ActionSave, 0, 0)
	if len(*logged) != 1 {
		t.Fatalf("save while running should be logged, got %v", *logged)
	}
}

func TestControllerSaveLoad(t *testing.T) {
	c, sim, logged := newController(t, 12, 8)
	c.Do(ActionStampEater, 2, 2)
	before := append([]uint8(nil), sim.Cells()...)
	c.Do(ActionSave, 0, 0)
	c.Do(ActionClear, 0, 0)

	if !c.Do(ActionLoad, 5, 5) {
		t.Fatalf("load failed: %v", *logged)
	}
	if !slices.Equal(before, sim.Cells()) {
		t.Fatal("full size load should restore the saved grid")
	}
	if len(*logged) != 0 {
		t.Fatalf("unexpected log output %v", *logged)
	}
}

func TestControllerLoadRejectsLargerSnapshot(t *testing.T) {
	big, _, _ := newController(t, 20, 20)
	big.Do(ActionSave, 0, 0)

	small, sim, logged := newController(t, 10, 10)
	small.snapshot = big.snapshot
	sim.Set(3, 3, 1)
	if small.Do(ActionLoad, 0, 0) {
		t.Fatal("oversized snapshot should be rejected")
	}
	if len(*logged) != 1 || sim.Population() != 1 {
		t.Fatalf("rejection should be logged without touching the grid: %v", *logged)
	}
}

func TestControllerStatus(t *testing.T) {
	c, _, _ := newController(t, 10, 10)
	c.Do(ActionRotate, 0, 0)
	lines := c.Status(3, 4)
	if lines[0] != "Generation 0 (paused)" || lines[1] != "Cursor 3,4" || lines[2] != "Next 90° flip=false" {
		t.Fatalf("unexpected status %q", lines)
	}
	c.Do(ActionStampDetector, 1, 1)
	c.Do(ActionStepOnce, 0, 0)
	lines = c.Status(0, 0)
	if lines[0] != "Generation 1 (paused)" || lines[2] != "Last detector 90° flip=false" {
		t.Fatalf("unexpected status %q", lines)
	}
}
