package predprey

import "torus-ca/internal/core"

// Cumulative migration thresholds drawn against the per-cell random value.
const (
	migrateLeft  = 0.15
	migrateRight = 0.30
	migrateUp    = 0.45
	migrateDown  = 0.60
)

// cellContext is the frozen current-tick view of one cell.
type cellContext struct {
	pred Predator
	prey uint8

	// Direct neighbours' predator codes.
	left, right, above, below Predator

	preyCount int
	predCount int
	rnd       float64
}

// cellNext is the scratch next-tick value, seeded from the current cell.
type cellNext struct {
	pred Predator
	prey uint8
}

// rule mutates the scratch value. Rules run in cascade order and later rules
// overwrite earlier writes; conditions only read the frozen context.
type rule func(p *Params, c *cellContext, next *cellNext)

var cascade = [...]rule{
	leaveOrigin,
	completeMigration,
	predation,
	population,
}

// leaveOrigin empties a cell whose predator announced a move.
func leaveOrigin(_ *Params, c *cellContext, next *cellNext) {
	if c.pred.Migrating() {
		next.pred = PredatorNone
	}
}

// completeMigration occupies a cell that a neighbour announced a move into.
func completeMigration(_ *Params, c *cellContext, next *cellNext) {
	if c.left == PredatorRight || c.right == PredatorLeft || c.above == PredatorDown || c.below == PredatorUp {
		next.pred = PredatorAlive
	}
}

// predation removes prey sharing a cell with a settled predator.
func predation(_ *Params, c *cellContext, next *cellNext) {
	if c.pred == PredatorAlive && c.prey == 1 {
		next.prey = 0
	}
}

// population applies crowding, starvation, wandering and prey growth.
func population(p *Params, c *cellContext, next *cellNext) {
	switch {
	case c.predCount > 0:
		if c.predCount == 1 && c.preyCount > 3 {
			next.pred = PredatorAlive
			return
		}
		next.prey = 0
		if c.predCount > 3 {
			next.pred = PredatorNone
		}
		if c.preyCount == 0 && c.rnd < p.StarveChance {
			next.pred = PredatorNone
		}
	case c.pred == PredatorAlive && c.preyCount == 0 && c.prey == 0:
		if c.rnd >= p.WanderChance {
			next.pred = PredatorNone
			return
		}
		switch {
		case c.rnd < migrateLeft:
			next.pred = PredatorLeft
		case c.rnd < migrateRight:
			next.pred = PredatorRight
		case c.rnd < migrateUp:
			next.pred = PredatorUp
		case c.rnd < migrateDown:
			next.pred = PredatorDown
		default:
			next.pred = PredatorAlive
		}
	default:
		switch {
		case c.preyCount < 2:
			next.prey = 0
		case c.preyCount == 3:
			next.prey = 1
		case c.preyCount > p.MaxNeighbors:
			next.prey = 0
		}
		if c.rnd < p.PreyMortality {
			next.prey = 0
		}
	}
}

// evaluate runs the cascade for one cell.
func evaluate(p *Params, c *cellContext) cellNext {
	next := cellNext{pred: c.pred, prey: c.prey}
	for _, r := range cascade {
		r(p, c, &next)
	}
	return next
}

// context gathers the current-tick view of (x, y). The random draw is taken
// by the caller so the draw order stays in one place.
func (w *World) context(x, y int, rnd float64, nb *[8]int) cellContext {
	pred, prey := w.predCur.Cells(), w.preyCur.Cells()
	w.predCur.NeighborIndices(x, y, nb)
	idx := w.predCur.Index(x, y)
	c := cellContext{
		pred:  Predator(pred[idx]),
		prey:  prey[idx],
		left:  Predator(pred[nb[core.NeighborLeft]]),
		right: Predator(pred[nb[core.NeighborRight]]),
		above: Predator(pred[nb[core.NeighborUp]]),
		below: Predator(pred[nb[core.NeighborDown]]),
		rnd:   rnd,
	}
	for _, i := range nb {
		c.preyCount += int(prey[i])
		if Predator(pred[i]).Occupied() {
			c.predCount++
		}
	}
	return c
}
