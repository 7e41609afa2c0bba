package model

// dirtySet holds the coordinates to re-evaluate at the next generation.
type dirtySet map[Point]struct{}

func (d dirtySet) add(p Point) { d[p] = struct{}{} }

func (d dirtySet) has(p Point) bool {
	_, ok := d[p]
	return ok
}

// sorted returns the members in row-major order, for debug output.
func (d dirtySet) sorted() []Point {
	points := make([]Point, 0, len(d))
	for p := range d {
		points = append(points, p)
	}
	sortPoints(points)
	return points
}
