package model

import (
	"testing"

	"github.com/pkg/errors"
)

func newBounded(t *testing.T, size int) *BoundedEngine {
	t.Helper()
	b, err := NewBoundedEngine(size)
	if err != nil {
		t.Fatalf("NewBoundedEngine(%d): %v", size, err)
	}
	return b
}

func setAll(t *testing.T, e GridEngine, cells ...Point) {
	t.Helper()
	for _, p := range cells {
		if err := e.SetLive(p.X, p.Y); err != nil {
			t.Fatalf("SetLive(%d,%d): %v", p.X, p.Y, err)
		}
	}
}

// expectLive checks that exactly the given cells are alive in a size x size window at the origin.
func expectLive(t *testing.T, e GridEngine, size int, cells ...Point) {
	t.Helper()
	want := map[Point]bool{}
	for _, p := range cells {
		want[p] = true
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			alive, err := e.GetState(i, j)
			if err != nil {
				t.Fatalf("GetState(%d,%d): %v", i, j, err)
			}
			if alive != want[Point{i, j}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", i, j, alive, want[Point{i, j}])
			}
		}
	}
}

func checkBoundedCounts(t *testing.T, b *BoundedEngine) {
	t.Helper()
	for i := 0; i < b.Size(); i++ {
		for j := 0; j < b.Size(); j++ {
			if got, want := b.counts[i][j], b.grid.CountNeighbors(i, j); got != want {
				t.Fatalf("cell (%d,%d) cached count=%d, expected %d", i, j, got, want)
			}
		}
	}
}

func TestBoundedNegativeSize(t *testing.T) {
	if _, err := NewBoundedEngine(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestBoundedZeroSize(t *testing.T) {
	b := newBounded(t, 0)
	if _, err := b.GetState(0, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	b.NextGeneration()
	if b.Pending() != 0 {
		t.Fatalf("pending=%d on empty universe", b.Pending())
	}
}

func TestBoundedOutOfRange(t *testing.T) {
	b := newBounded(t, 5)
	for _, p := range []Point{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if _, err := b.GetState(p.X, p.Y); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("GetState(%d,%d) expected ErrIndexOutOfRange, got %v", p.X, p.Y, err)
		}
		if err := b.SetLive(p.X, p.Y); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("SetLive(%d,%d) expected ErrIndexOutOfRange, got %v", p.X, p.Y, err)
		}
		if err := b.SetDead(p.X, p.Y); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("SetDead(%d,%d) expected ErrIndexOutOfRange, got %v", p.X, p.Y, err)
		}
		if err := b.Toggle(p.X, p.Y); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Toggle(%d,%d) expected ErrIndexOutOfRange, got %v", p.X, p.Y, err)
		}
	}
	if b.Pending() != 0 {
		t.Fatalf("failed mutations left %d dirty cells", b.Pending())
	}
}

func TestBoundedBlinker(t *testing.T) {
	b := newBounded(t, 10)
	setAll(t, b, Point{4, 5}, Point{5, 5}, Point{6, 5})

	b.NextGeneration()
	expectLive(t, b, 10, Point{5, 4}, Point{5, 5}, Point{5, 6})
	checkBoundedCounts(t, b)

	b.NextGeneration()
	expectLive(t, b, 10, Point{4, 5}, Point{5, 5}, Point{6, 5})
	checkBoundedCounts(t, b)
}

func gliderAt(o int) []Point {
	return []Point{{o, o}, {o, o + 1}, {o, o + 2}, {o + 1, o + 2}, {o + 2, o + 1}}
}

func TestBoundedGliderTranslates(t *testing.T) {
	const size = 50
	for _, offset := range []int{25, 0, 48} {
		b := newBounded(t, size)
		start := gliderAt(offset)
		for k := range start {
			start[k].X = (start[k].X + size) % size
			start[k].Y = (start[k].Y + size) % size
		}
		setAll(t, b, start...)

		for gen := 0; gen < 4; gen++ {
			b.NextGeneration()
		}

		var want []Point
		for _, p := range start {
			want = append(want, Point{(p.X - 1 + size) % size, (p.Y + 1) % size})
		}
		expectLive(t, b, size, want...)
		checkBoundedCounts(t, b)
	}
}

func TestBoundedWrapCountsOppositeCorner(t *testing.T) {
	b := newBounded(t, 5)
	if err := b.SetLive(0, 0); err != nil {
		t.Fatal(err)
	}
	n, err := b.LiveNeighbors(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("cell (4,4) count=%d, expected 1", n)
	}
	for _, p := range []Point{{4, 0}, {0, 4}, {1, 1}, {4, 1}} {
		if n, _ := b.LiveNeighbors(p.X, p.Y); n != 1 {
			t.Fatalf("cell (%d,%d) count=%d, expected 1", p.X, p.Y, n)
		}
	}
	if n, _ := b.LiveNeighbors(2, 2); n != 0 {
		t.Fatalf("cell (2,2) count=%d, expected 0", n)
	}
	if b.Pending() != 9 {
		t.Fatalf("pending=%d, expected 9", b.Pending())
	}
}

func TestBoundedIdempotentMutation(t *testing.T) {
	b := newBounded(t, 6)
	if err := b.SetLive(2, 3); err != nil {
		t.Fatal(err)
	}
	grid := b.ExportGrid()
	pending := b.Pending()
	before := snapshotCounts(b)

	if err := b.SetLive(2, 3); err != nil {
		t.Fatal(err)
	}
	if b.Pending() != pending {
		t.Fatalf("second SetLive grew dirty set to %d from %d", b.Pending(), pending)
	}
	assertCountsEqual(t, before, snapshotCounts(b))
	expectGrid(t, grid, b.ExportGrid())

	b.NextGeneration()
	pending = b.Pending()
	before = snapshotCounts(b)
	for k := 0; k < 2; k++ {
		if err := b.SetDead(0, 0); err != nil {
			t.Fatal(err)
		}
	}
	if b.Pending() != pending {
		t.Fatalf("SetDead on dead cell grew dirty set to %d from %d", b.Pending(), pending)
	}
	assertCountsEqual(t, before, snapshotCounts(b))
}

func TestBoundedToggleInvolution(t *testing.T) {
	b := newBounded(t, 7)
	setAll(t, b, Point{1, 1}, Point{1, 2}, Point{6, 6})
	before := snapshotCounts(b)
	grid := b.ExportGrid()

	for _, p := range []Point{{1, 1}, {3, 3}, {0, 6}} {
		if err := b.Toggle(p.X, p.Y); err != nil {
			t.Fatal(err)
		}
		if err := b.Toggle(p.X, p.Y); err != nil {
			t.Fatal(err)
		}
	}
	expectGrid(t, grid, b.ExportGrid())
	assertCountsEqual(t, before, snapshotCounts(b))
}

func TestBoundedEmptyUniverseStable(t *testing.T) {
	b := newBounded(t, 8)
	b.NextGeneration()
	if b.Population() != 0 || b.Pending() != 0 {
		t.Fatalf("population=%d pending=%d, expected 0/0", b.Population(), b.Pending())
	}

	// a lone cell dies and the universe settles
	setAll(t, b, Point{3, 3})
	b.NextGeneration()
	b.NextGeneration()
	if b.Population() != 0 || b.Pending() != 0 {
		t.Fatalf("population=%d pending=%d after lone cell died", b.Population(), b.Pending())
	}
}

func TestBoundedExportGridIsCopy(t *testing.T) {
	b := newBounded(t, 4)
	setAll(t, b, Point{1, 1})
	grid := b.ExportGrid()
	grid[1][1] = false
	grid[0][0] = true
	if alive, _ := b.GetState(1, 1); !alive {
		t.Fatal("mutating the export changed the engine")
	}
	if alive, _ := b.GetState(0, 0); alive {
		t.Fatal("mutating the export changed the engine")
	}
}

func TestBoundedTinyGrids(t *testing.T) {
	for _, size := range []int{1, 2, 3} {
		b := newBounded(t, size)
		setAll(t, b, Point{0, 0})
		checkBoundedCounts(t, b)
		b.NextGeneration()
		checkBoundedCounts(t, b)
	}
}

func TestBoundedReset(t *testing.T) {
	b := newBounded(t, 6)
	setAll(t, b, gliderAt(1)...)
	b.Reset()
	if b.Population() != 0 {
		t.Fatalf("population=%d after Reset", b.Population())
	}
	checkBoundedCounts(t, b)
	b.NextGeneration()
	if b.Population() != 0 || b.Pending() != 0 {
		t.Fatalf("population=%d pending=%d after Reset and step", b.Population(), b.Pending())
	}
}

func snapshotCounts(b *BoundedEngine) [][]int {
	out := make([][]int, len(b.counts))
	for i := range b.counts {
		out[i] = append([]int(nil), b.counts[i]...)
	}
	return out
}

func assertCountsEqual(t *testing.T, want, got [][]int) {
	t.Helper()
	for i := range want {
		for j := range want[i] {
			if want[i][j] != got[i][j] {
				t.Fatalf("cell (%d,%d) count=%d, expected %d", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func expectGrid(t *testing.T, want, got [][]bool) {
	t.Helper()
	for i := range want {
		for j := range want[i] {
			if want[i][j] != got[i][j] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}
