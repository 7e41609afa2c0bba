package model

import (
	"github.com/dshinzaki/Life/rules"
)

// ReferenceEngine recomputes every cell each generation. It exists to check
// the incremental engines against.
type ReferenceEngine struct {
	grid *StateGrid
	pool *GridPool
}

// NewReferenceEngine creates an all-dead size x size toroidal universe.
func NewReferenceEngine(size int) (*ReferenceEngine, error) {
	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	return &ReferenceEngine{grid: grid, pool: NewGridPool()}, nil
}

func (r *ReferenceEngine) Size() int { return r.grid.Size() }

func (r *ReferenceEngine) GetState(i, j int) (bool, error) { return r.grid.Get(i, j) }

func (r *ReferenceEngine) SetLive(i, j int) error { return r.grid.Set(i, j, true) }

func (r *ReferenceEngine) SetDead(i, j int) error { return r.grid.Set(i, j, false) }

func (r *ReferenceEngine) Toggle(i, j int) error {
	alive, err := r.grid.Get(i, j)
	if err != nil {
		return err
	}
	return r.grid.Set(i, j, !alive)
}

// NextGeneration applies the rule to every cell of the grid.
func (r *ReferenceEngine) NextGeneration() {
	size := r.grid.Size()
	next := r.pool.Get(size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			next.cells[i][j] = rules.ApplyConwayRules(r.grid.CountNeighbors(i, j), r.grid.cells[i][j])
		}
	}
	GridToPool(r.grid, r.pool)
	r.grid = next
}

func (r *ReferenceEngine) ExportGrid() [][]bool { return r.grid.Snapshot() }

func (r *ReferenceEngine) LiveCells() []Point { return r.grid.LiveCells() }

func (r *ReferenceEngine) Population() int { return r.grid.CountLivingCells() }

// Pending is always zero: the reference engine keeps no dirty set.
func (r *ReferenceEngine) Pending() int { return 0 }
