package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	LiveCells            int
	PendingCells         int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation. pending is the dirty-set size the step will work through.
func (s *Stats) Update(generation, population, pending int, duration time.Duration) {
	s.TotalGenerations = generation
	s.LiveCells = population
	s.PendingCells = pending
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
