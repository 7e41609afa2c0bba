package model

import (
	"crypto/md5"
	"fmt"
)

// historyDepth is how many recent states are kept for cycle detection
const historyDepth = 5

// Fingerprint returns an MD5 hash of a row-major sorted live-cell list
func Fingerprint(cells []Point) string {
	h := md5.New()
	for _, p := range cells {
		fmt.Fprintf(h, "%d,%d;", p.X, p.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History remembers recent universe states to spot still lifes and short cycles
type History struct {
	states []string
}

// Record adds the current state of u and keeps only the most recent ones
func (h *History) Record(u Universe) {
	h.states = append(h.states, Fingerprint(u.LiveCells()))
	if len(h.states) > historyDepth {
		h.states = h.states[1:]
	}
}

// IsStagnant checks if u repeats one of the last three recorded states
func (h *History) IsStagnant(u Universe) bool {
	if len(h.states) < 3 {
		return false
	}

	current := Fingerprint(u.LiveCells())
	for back := 1; back <= 3; back++ {
		if h.states[len(h.states)-back] == current {
			return true
		}
	}
	return false
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.states = nil
}
