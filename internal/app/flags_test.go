package app

import (
	"errors"
	"flag"
	"testing"

	"torus-ca/internal/core"
	_ "torus-ca/internal/sims/life"
	_ "torus-ca/internal/sims/predprey"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	cfg.BindHeadless(fs)
	args := []string{"-sim", "predprey", "-w", "30", "-h", "20", "-seed", "7", "-paused", "-steps", "5", "-out", "x.csv"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Sim != "predprey" || cfg.Width != 30 || cfg.Height != 20 || cfg.Seed != 7 || !cfg.Paused {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Steps != 5 || cfg.Out != "x.csv" {
		t.Fatalf("headless flags not bound: %+v", cfg)
	}
}

func TestSimOptionsOmitsDefaults(t *testing.T) {
	cfg := NewConfig()
	opts := cfg.SimOptions()
	if _, ok := opts["w"]; ok {
		t.Fatal("zero width should defer to the simulation default")
	}
	if opts["seed"] != "42" {
		t.Fatalf("seed option = %q", opts["seed"])
	}
}

func TestNewSimBuildsRegisteredSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "predprey"
	cfg.Width, cfg.Height = 24, 16

	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Name() != "predprey" || sim.Size() != (core.Size{W: 24, H: 16}) {
		t.Fatalf("unexpected sim %s %+v", sim.Name(), sim.Size())
	}
}

func TestNewSimErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "wireworld"
	if _, err := cfg.NewSim(); err == nil {
		t.Fatal("unknown sim should fail")
	}

	cfg = NewConfig()
	cfg.Height = -3
	if _, err := cfg.NewSim(); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("negative height: got %v, want ErrInvalidSize", err)
	}
}
