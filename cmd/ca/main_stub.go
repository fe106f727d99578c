//go:build !ebiten

// The headless build steps the configured simulation and writes the final
// grid as a snapshot. An explicit -snapshot is loaded as the starting grid.
// The GUI needs the ebiten build tag.
package main

import (
	"flag"
	"log"

	"torus-ca/internal/app"
	"torus-ca/internal/session"
	_ "torus-ca/internal/sims/life"
	_ "torus-ca/internal/sims/predprey"
	"torus-ca/internal/snapshot"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindHeadless(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("ca: %v", err)
	}

	s := session.New(sim, true)
	if flagSet("snapshot") {
		if snap, err := snapshot.Load(cfg.Snapshot); err != nil {
			log.Fatalf("ca: %v", err)
		} else if err := s.Import(snap, 0, 0); err != nil {
			log.Fatalf("ca: %v", err)
		}
	}
	s.SetPaused(false)
	for i := 0; i < cfg.Steps; i++ {
		s.Step()
	}
	log.Printf("ca: %s ran %d generations", sim.Name(), s.Generation())

	if cfg.Out == "" {
		return
	}
	if err := snapshot.Save(cfg.Out, s.Export()); err != nil {
		log.Fatalf("ca: %v", err)
	}
}

func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
