package core

import (
	"testing"
	"time"
)

func TestPacerSpacesGenerations(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewPacer(10)
	p.now = func() time.Time { return now }

	if got := p.Due(); got != 1 {
		t.Fatalf("first frame should run one primed generation, got %d", got)
	}
	now = now.Add(50 * time.Millisecond)
	if got := p.Due(); got != 0 {
		t.Fatalf("half a period should not be due, got %d", got)
	}
	now = now.Add(50 * time.Millisecond)
	if got := p.Due(); got != 1 {
		t.Fatalf("a full period should be due, got %d", got)
	}
	now = now.Add(10 * time.Second)
	if got := p.Due(); got != maxCatchUp {
		t.Fatalf("stall should be capped at %d, got %d", maxCatchUp, got)
	}
	if got := p.Due(); got != 0 {
		t.Fatalf("capped stall should not carry over, got %d", got)
	}
}

func TestPacerHold(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewPacer(10)
	p.now = func() time.Time { return now }
	p.Due()

	p.Hold()
	now = now.Add(time.Minute)
	if got := p.Due(); got != 0 {
		t.Fatalf("time spent held should be discarded, got %d", got)
	}
}
