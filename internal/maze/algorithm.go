package maze

import "math/rand"

// Generator carves a maze into a Grid one bounded unit of work per Step.
// When every cell is connected it calls grid.Finish(nil).
type Generator interface {
	Step()
}

// Solver searches a generated Grid one bounded unit of work per Step.
// When the end cell is reached it calls grid.Finish with the route from
// start to end; if the end is unreachable it calls grid.Finish(nil).
type Solver interface {
	Step()
}

// GeneratorFactory builds a Generator bound to a fresh grid. The rng is
// owned by the caller and may be shared across successive runs.
type GeneratorFactory func(g *Grid, rng *rand.Rand) Generator

// SolverFactory builds a Solver bound to a generated grid.
type SolverFactory func(g *Grid, start, end Coord) Solver
