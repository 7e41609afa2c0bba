package model

import (
	"github.com/pkg/errors"
)

// StateGrid is a square toroidal board of cell states
type StateGrid struct {
	size  int
	cells [][]bool
}

// NewGrid creates an all-dead size x size grid
func NewGrid(size int) (*StateGrid, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "[NewGrid] size is negative: %+v", size)
	}
	g := &StateGrid{}
	g.Reset(size)
	return g, nil
}

// Size returns the side length of the grid
func (g *StateGrid) Size() int {
	return g.size
}

// Reset resets the grid to new dimensions
func (g *StateGrid) Reset(size int) {
	g.size = size

	// Resize cells if needed
	if len(g.cells) != size {
		g.cells = make([][]bool, size)
	}
	for i := range g.cells {
		if len(g.cells[i]) != size {
			g.cells[i] = make([]bool, size)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear clears all cells
func (g *StateGrid) Clear() {
	for i := range g.cells {
		clear(g.cells[i])
	}
}

func (g *StateGrid) inRange(i, j int) bool {
	return i >= 0 && i < g.size && j >= 0 && j < g.size
}

func (g *StateGrid) checkRange(op string, i, j int) error {
	if !g.inRange(i, j) {
		return errors.Wrapf(ErrIndexOutOfRange, "[%s] (%d, %d) outside grid of size %d", op, i, j, g.size)
	}
	return nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *StateGrid) Set(i, j int, alive bool) error {
	if err := g.checkRange("StateGrid.Set", i, j); err != nil {
		return err
	}
	g.cells[i][j] = alive
	return nil
}

// Get returns the state of a cell
func (g *StateGrid) Get(i, j int) (bool, error) {
	if err := g.checkRange("StateGrid.Get", i, j); err != nil {
		return false, err
	}
	return g.cells[i][j], nil
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *StateGrid) Wrap(i, j int) (int, int) {
	i = (i%g.size + g.size) % g.size
	j = (j%g.size + g.size) % g.size
	return i, j
}

// CountNeighbors counts living neighbors by direct inspection with wrap-around.
// Every one of the 8 offsets is counted, even when wrapping makes two of them coincide.
func (g *StateGrid) CountNeighbors(i, j int) int {
	count := 0
	for _, d := range offsets {
		ni, nj := g.Wrap(i+d.X, j+d.Y)
		if g.cells[ni][nj] {
			count++
		}
	}
	return count
}

// Snapshot returns a deep copy of the cell states
func (g *StateGrid) Snapshot() [][]bool {
	out := make([][]bool, g.size)
	for i := range g.cells {
		out[i] = append([]bool(nil), g.cells[i]...)
	}
	return out
}

// CountLivingCells returns the total number of living cells
func (g *StateGrid) CountLivingCells() (count int) {
	for i := range g.cells {
		for _, alive := range g.cells[i] {
			if alive {
				count++
			}
		}
	}
	return
}

// LiveCells lists live coordinates in row-major order
func (g *StateGrid) LiveCells() []Point {
	var points []Point
	for i := range g.cells {
		for j, alive := range g.cells[i] {
			if alive {
				points = append(points, Point{X: i, Y: j})
			}
		}
	}
	return points
}
