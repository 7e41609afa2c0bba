package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *StateGrid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles the scratch grids of full-scan stepping
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &StateGrid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resetting its dimensions
func (p *GridPool) Get(size int) *StateGrid {
	g := p.pool.Get().(*StateGrid)
	g.Reset(size)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *StateGrid) {
	g.Clear()
	p.pool.Put(g)
}
