package ui

import (
	"testing"

	"torus-ca/internal/core"
	"torus-ca/internal/sims/predprey"
)

func TestControlsLayout(t *testing.T) {
	world := predprey.New(10, 10)
	ctrls := newControls(world.ParameterControls(), 200)
	if len(ctrls) != 2 {
		t.Fatalf("expected 2 controls, got %d", len(ctrls))
	}
	for _, c := range ctrls {
		if c.plusRect.Max.X != 200-panelPadding {
			t.Fatalf("plus button should hug the right padding, got %v", c.plusRect)
		}
		if c.minusRect.Max.X+buttonGap != c.plusRect.Min.X {
			t.Fatalf("buttons should be separated by the gap: %v %v", c.minusRect, c.plusRect)
		}
	}
	if ctrls[1].top-ctrls[0].top != lineHeight {
		t.Fatal("controls should be one line apart")
	}
}

func TestControlAdjustClampsAndPushes(t *testing.T) {
	world := predprey.New(10, 10)
	ctrls := newControls(world.ParameterControls(), 200)
	prey := &ctrls[1]
	prey.refresh(world.Parameters())
	if !prey.hasValue || prey.value != "0.15" {
		t.Fatalf("unexpected refreshed value %q", prey.value)
	}

	for i := 0; i < 40; i++ {
		prey.adjust(world, 1)
	}
	if got := world.Config().Params.PreyDensity; got != 1 {
		t.Fatalf("density should clamp to 1, got %f", got)
	}
	if _, ok := prey.target(1); ok {
		t.Fatal("no further increase should be possible at the maximum")
	}
	if !prey.adjust(world, -1) {
		t.Fatal("decrease should be accepted")
	}
	if got := world.Config().Params.PreyDensity; got < 0.949 || got > 0.951 {
		t.Fatalf("expected 0.95 after one step down, got %f", got)
	}
}

func TestControlRefreshMissingKey(t *testing.T) {
	c := controlState{control: core.ParameterControl{Key: "nope", Type: core.ParamTypeFloat, Max: 1}}
	c.refresh(core.ParameterSnapshot{})
	if c.hasValue || c.value != "--" {
		t.Fatal("missing parameter should leave the control blank")
	}
	if _, ok := c.target(1); ok {
		t.Fatal("blank control should not adjust")
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		step float64
		want string
	}{
		{0.005, "0.126"},
		{0.05, "0.13"},
		{0.5, "0.1"},
		{0, "0.13"},
	}
	for _, tc := range cases {
		if got := formatFloat(tc.step, 0.126); got != tc.want {
			t.Fatalf("formatFloat(%v) = %q, want %q", tc.step, got, tc.want)
		}
	}
}
