package model

import (
	"github.com/pkg/errors"

	"github.com/dshinzaki/Life/rules"
)

// BoundedEngine is a toroidal size x size universe that caches the
// live-neighbor count of every cell and only re-evaluates cells whose
// neighborhood changed since the previous generation.
type BoundedEngine struct {
	grid   *StateGrid
	counts [][]int
	dirty  dirtySet
}

// NewBoundedEngine creates an all-dead size x size toroidal universe.
func NewBoundedEngine(size int) (*BoundedEngine, error) {
	grid, err := NewGrid(size)
	if err != nil {
		return nil, errors.Wrap(err, "[NewBoundedEngine] failed to allocate grid")
	}
	counts := make([][]int, size)
	for i := range counts {
		counts[i] = make([]int, size)
	}
	return &BoundedEngine{grid: grid, counts: counts, dirty: dirtySet{}}, nil
}

// Size returns the side length of the universe.
func (b *BoundedEngine) Size() int { return b.grid.Size() }

// GetState reports whether (i, j) is alive.
func (b *BoundedEngine) GetState(i, j int) (bool, error) {
	alive, err := b.grid.Get(i, j)
	if err != nil {
		return false, errors.Wrap(err, "[BoundedEngine.GetState]")
	}
	return alive, nil
}

// SetLive makes (i, j) alive. Setting a live cell is a no-op.
func (b *BoundedEngine) SetLive(i, j int) error {
	if err := b.grid.checkRange("BoundedEngine.SetLive", i, j); err != nil {
		return err
	}
	b.set(i, j, true)
	return nil
}

// SetDead makes (i, j) dead. Setting a dead cell is a no-op.
func (b *BoundedEngine) SetDead(i, j int) error {
	if err := b.grid.checkRange("BoundedEngine.SetDead", i, j); err != nil {
		return err
	}
	b.set(i, j, false)
	return nil
}

// Toggle flips the state of (i, j).
func (b *BoundedEngine) Toggle(i, j int) error {
	if err := b.grid.checkRange("BoundedEngine.Toggle", i, j); err != nil {
		return err
	}
	b.set(i, j, !b.grid.cells[i][j])
	return nil
}

// set flips (i, j) to alive and updates the neighbor counts and dirty set.
// The coordinate must already be in range.
func (b *BoundedEngine) set(i, j int, alive bool) {
	if b.grid.cells[i][j] == alive {
		return
	}
	b.grid.cells[i][j] = alive

	delta := -1
	if alive {
		delta = 1
	}
	b.dirty.add(Point{X: i, Y: j})
	for _, d := range offsets {
		ni, nj := b.grid.Wrap(i+d.X, j+d.Y)
		b.counts[ni][nj] += delta
		b.dirty.add(Point{X: ni, Y: nj})
	}
}

// NextGeneration advances the universe by one generation. Every fate is
// decided from the cached counts before any cell is flipped.
func (b *BoundedEngine) NextGeneration() {
	var toggle []Point
	for p := range b.dirty {
		if rules.Flips(b.counts[p.X][p.Y], b.grid.cells[p.X][p.Y]) {
			toggle = append(toggle, p)
		}
	}

	b.dirty = dirtySet{}
	for _, p := range toggle {
		b.set(p.X, p.Y, !b.grid.cells[p.X][p.Y])
	}
}

// ExportGrid returns a copy of the state grid.
func (b *BoundedEngine) ExportGrid() [][]bool { return b.grid.Snapshot() }

// LiveNeighbors returns the cached live-neighbor count of (i, j).
func (b *BoundedEngine) LiveNeighbors(i, j int) (int, error) {
	if err := b.grid.checkRange("BoundedEngine.LiveNeighbors", i, j); err != nil {
		return 0, err
	}
	return b.counts[i][j], nil
}

func (b *BoundedEngine) LiveCells() []Point { return b.grid.LiveCells() }

func (b *BoundedEngine) Population() int { return b.grid.CountLivingCells() }

func (b *BoundedEngine) Pending() int { return len(b.dirty) }

// Reset kills every live cell. The cleared cells stay dirty until the next generation.
func (b *BoundedEngine) Reset() {
	for _, p := range b.grid.LiveCells() {
		b.set(p.X, p.Y, false)
	}
}
