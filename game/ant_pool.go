package game

import (
	"runtime"

	"ant-colony/game/entity"
	"ant-colony/game/manager"

	"golang.org/x/sync/errgroup"
)

// antPool splits the colony into contiguous chunks planned on separate goroutines
type antPool struct {
	workers int
}

// newAntPool sizes the pool. Zero means one worker per CPU but never fewer
// than two, so only an explicit 1 selects the sequential tick.
func newAntPool(workers int) *antPool {
	if workers == 0 {
		workers = max(runtime.NumCPU(), 2)
	}
	return &antPool{workers: workers}
}

// plan runs fn for every ant and returns the moves in ant order. fn must only
// touch its own ant.
func (p *antPool) plan(ants []*entity.Ant, fn func(*entity.Ant) manager.Move) []manager.Move {
	moves := make([]manager.Move, len(ants))
	if len(ants) == 0 {
		return moves
	}

	chunk := (len(ants) + p.workers - 1) / p.workers
	var g errgroup.Group
	g.SetLimit(p.workers)
	for start := 0; start < len(ants); start += chunk {
		end := min(start+chunk, len(ants))
		g.Go(func() error {
			for i := start; i < end; i++ {
				moves[i] = fn(ants[i])
			}
			return nil
		})
	}
	_ = g.Wait()
	return moves
}
