package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"torus-ca/internal/core"
	"torus-ca/internal/sims/predprey"

	"golang.org/x/sync/errgroup"
)

type paramSet struct {
	predatorDensity float64
	preyDensity     float64
	maxNeighbors    int
}

func (p paramSet) String() string {
	return fmt.Sprintf("pred=%.3f prey=%.2f maxNeighbors=%d", p.predatorDensity, p.preyDensity, p.maxNeighbors)
}

type scenarioResult struct {
	params      paramSet
	survived    int
	predPeak    int
	preyPeak    int
	finalPred   int
	finalPrey   int
	coexistence bool
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 120, "grid width")
	height := flag.Int("h", 80, "grid height")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	flag.Parse()

	if err := core.ValidateSize(*width, *height); err != nil {
		log.Fatalf("predprey-sweep: %v", err)
	}

	base := predprey.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Seed = *seed

	var sets []paramSet
	for _, pred := range []float64{0.002, 0.005, 0.01, 0.02} {
		for _, prey := range []float64{0.10, 0.15, 0.25, 0.35} {
			for _, maxN := range []int{4, 5, 6} {
				sets = append(sets, paramSet{predatorDensity: pred, preyDensity: prey, maxNeighbors: maxN})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps)\n", len(sets), *workers, *steps)

	start := time.Now()
	results := make([]scenarioResult, len(sets))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	for i, params := range sets {
		g.Go(func() error {
			res, err := runScenario(ctx, base, params, *steps)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("predprey-sweep: %v", err)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].coexistence != results[j].coexistence {
			return results[i].coexistence
		}
		if results[i].survived != results[j].survived {
			return results[i].survived > results[j].survived
		}
		return results[i].predPeak > results[j].predPeak
	})

	fmt.Printf("\nTop 5 results (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		fmt.Printf("%2d) coexist=%t survived=%d peak=%d/%d final=%d/%d params=%s\n",
			i+1, res.coexistence, res.survived, res.predPeak, res.preyPeak, res.finalPred, res.finalPrey, res.params)
	}
}

// runScenario steps one world until either species dies out or steps run out.
func runScenario(ctx context.Context, base predprey.Config, params paramSet, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Params.PredatorDensity = params.predatorDensity
	cfg.Params.PreyDensity = params.preyDensity
	cfg.Params.MaxNeighbors = params.maxNeighbors

	world := predprey.NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	res := scenarioResult{params: params}
	pred, prey := world.Populations()
	for step := 0; step < steps; step++ {
		if step%50 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		world.Step()
		pred, prey = world.Populations()
		res.predPeak = max(res.predPeak, pred)
		res.preyPeak = max(res.preyPeak, prey)
		if pred == 0 || prey == 0 {
			break
		}
		res.survived = step + 1
	}
	res.finalPred, res.finalPrey = pred, prey
	res.coexistence = pred > 0 && prey > 0
	return res, nil
}
