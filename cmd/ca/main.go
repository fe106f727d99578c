//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-ca/internal/app"
	_ "torus-ca/internal/sims/life"
	_ "torus-ca/internal/sims/predprey"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("ca: %v", err)
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("torus-ca - " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
