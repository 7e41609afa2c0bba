package model

import "sort"

// Point is a cell coordinate. On bounded grids X is the row and Y the column.
type Point struct {
	X, Y int
}

// offsets lists the 8 Moore neighborhood displacements.
var offsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// GridEngine is the mutation and stepping surface shared by every engine.
type GridEngine interface {
	GetState(i, j int) (bool, error)
	SetLive(i, j int) error
	SetDead(i, j int) error
	Toggle(i, j int) error
	NextGeneration()
}

// Universe is a GridEngine that can also enumerate its live cells.
type Universe interface {
	GridEngine
	LiveCells() []Point
	Population() int
	// Pending returns the number of coordinates queued for the next generation.
	Pending() int
}

func sortPoints(points []Point) {
	sort.Slice(points, func(a, b int) bool {
		if points[a].X != points[b].X {
			return points[a].X < points[b].X
		}
		return points[a].Y < points[b].Y
	})
}
