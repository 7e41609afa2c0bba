package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/dshinzaki/Life/rules"
)

const (
	sparseLive = "X"
	sparseDead = "."
)

// Window is an inclusive rectangle of the sparse universe.
type Window struct {
	XMin int `json:"xmin"`
	XMax int `json:"xmax"`
	YMin int `json:"ymin"`
	YMax int `json:"ymax"`
}

// DefaultWindow is the area printed when no window is configured.
var DefaultWindow = Window{XMin: -10, XMax: 10, YMin: -10, YMax: 10}

// SparseEngine is an unbounded universe. Only live cells and cells next to a
// live cell have an entry, so memory follows the population, not the extent.
type SparseEngine struct {
	live   map[Point]struct{}
	counts map[Point]int
	dirty  dirtySet
}

// NewSparseEngine creates an empty universe.
func NewSparseEngine() *SparseEngine {
	return &SparseEngine{
		live:   map[Point]struct{}{},
		counts: map[Point]int{},
		dirty:  dirtySet{},
	}
}

func (s *SparseEngine) isLive(p Point) bool {
	_, ok := s.live[p]
	return ok
}

// GetState reports whether (i, j) is alive. It never fails.
func (s *SparseEngine) GetState(i, j int) (bool, error) {
	return s.isLive(Point{X: i, Y: j}), nil
}

// liveNeighborCount inspects the 8 neighbors of p directly.
func (s *SparseEngine) liveNeighborCount(p Point) int {
	n := 0
	for _, d := range offsets {
		if s.isLive(Point{X: p.X + d.X, Y: p.Y + d.Y}) {
			n++
		}
	}
	return n
}

// SetLive makes (i, j) alive. Setting a live cell is a no-op.
func (s *SparseEngine) SetLive(i, j int) error {
	p := Point{X: i, Y: j}
	if s.isLive(p) {
		return nil
	}
	s.live[p] = struct{}{}
	s.counts[p] = s.liveNeighborCount(p)
	s.dirty.add(p)
	for _, d := range offsets {
		n := Point{X: p.X + d.X, Y: p.Y + d.Y}
		s.counts[n]++
		s.dirty.add(n)
	}
	return nil
}

// SetDead makes (i, j) dead. Setting a dead cell is a no-op.
func (s *SparseEngine) SetDead(i, j int) error {
	p := Point{X: i, Y: j}
	if !s.isLive(p) {
		return nil
	}
	delete(s.live, p)
	s.prune(p)
	s.dirty.add(p)
	for _, d := range offsets {
		n := Point{X: p.X + d.X, Y: p.Y + d.Y}
		s.counts[n]--
		s.prune(n)
		s.dirty.add(n)
	}
	return nil
}

// prune drops the entry of a dead coordinate with no live neighbors.
func (s *SparseEngine) prune(p Point) {
	if s.counts[p] == 0 && !s.isLive(p) {
		delete(s.counts, p)
	}
}

// Toggle flips the state of (i, j).
func (s *SparseEngine) Toggle(i, j int) error {
	if s.isLive(Point{X: i, Y: j}) {
		return s.SetDead(i, j)
	}
	return s.SetLive(i, j)
}

// NextGeneration advances the universe by one generation. Dirty coordinates
// without an entry have no live neighbors and cannot be born.
func (s *SparseEngine) NextGeneration() {
	var toggle []Point
	for p := range s.dirty {
		n, tracked := s.counts[p]
		if !tracked {
			continue
		}
		if rules.Flips(n, s.isLive(p)) {
			toggle = append(toggle, p)
		}
	}

	s.dirty = dirtySet{}
	for _, p := range toggle {
		_ = s.Toggle(p.X, p.Y)
	}
}

// LiveNeighbors returns the tracked live-neighbor count of (i, j), 0 when untracked.
func (s *SparseEngine) LiveNeighbors(i, j int) int {
	return s.counts[Point{X: i, Y: j}]
}

// LiveCells lists the live coordinates in row-major order.
func (s *SparseEngine) LiveCells() []Point {
	points := make([]Point, 0, len(s.live))
	for p := range s.live {
		points = append(points, p)
	}
	sortPoints(points)
	return points
}

func (s *SparseEngine) Population() int { return len(s.live) }

func (s *SparseEngine) Pending() int { return len(s.dirty) }

// PrintGrid renders the inclusive window [xmin, xmax] x [ymin, ymax], one row
// per y. An empty or inverted window writes an error line and nothing else.
func (s *SparseEngine) PrintGrid(w io.Writer, xmin, xmax, ymin, ymax int) error {
	var invalid []string
	if xmin >= xmax {
		invalid = append(invalid, "x")
	}
	if ymin >= ymax {
		invalid = append(invalid, "y")
	}
	if len(invalid) > 0 {
		for _, axis := range invalid {
			fmt.Fprintf(w, "Error: %s range invalid\n", axis)
		}
		return errors.Wrapf(ErrInvalidRange, "[SparseEngine.PrintGrid] x=[%d, %d] y=[%d, %d]", xmin, xmax, ymin, ymax)
	}

	var row strings.Builder
	for y := ymin; y <= ymax; y++ {
		row.Reset()
		for x := xmin; x <= xmax; x++ {
			if s.isLive(Point{X: x, Y: y}) {
				row.WriteString(sparseLive)
			} else {
				row.WriteString(sparseDead)
			}
		}
		row.WriteByte('\n')
		if _, err := io.WriteString(w, row.String()); err != nil {
			return errors.Wrap(err, "[SparseEngine.PrintGrid] failed to write row")
		}
	}
	return nil
}

// PrintWindow renders win with PrintGrid.
func (s *SparseEngine) PrintWindow(w io.Writer, win Window) error {
	return s.PrintGrid(w, win.XMin, win.XMax, win.YMin, win.YMax)
}

// ListCells writes one live coordinate per line.
func (s *SparseEngine) ListCells(w io.Writer) {
	for _, p := range s.LiveCells() {
		fmt.Fprintf(w, "(%d, %d)\n", p.X, p.Y)
	}
}

// ListDirty writes the coordinates queued for the next generation.
func (s *SparseEngine) ListDirty(w io.Writer) {
	for _, p := range s.dirty.sorted() {
		fmt.Fprintf(w, "(%d, %d)\n", p.X, p.Y)
	}
}
