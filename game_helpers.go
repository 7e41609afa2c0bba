package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/dshinzaki/Life/model"
	"github.com/dshinzaki/Life/patterns"
	"github.com/dshinzaki/Life/utils"
)

const patternRandom = "random"

// gridExporter is implemented by the engines with a bounded grid
type gridExporter interface {
	ExportGrid() [][]bool
}

// newUniverse builds the engine named in the configuration
func newUniverse(config utils.Config) (model.Universe, error) {
	switch config.Engine {
	case utils.EngineBounded:
		bounded, err := model.NewBoundedEngine(config.Size)
		if err != nil {
			return nil, err
		}
		return bounded, nil
	case utils.EngineReference:
		reference, err := model.NewReferenceEngine(config.Size)
		if err != nil {
			return nil, err
		}
		return reference, nil
	case utils.EngineSparse:
		return model.NewSparseEngine(), nil
	}
	return nil, errors.Wrapf(model.ErrInvalidArgument, "[newUniverse] unknown engine: %+v", config.Engine)
}

// seedPattern places the configured starting pattern. Presets are centred on a
// bounded grid and on the origin of a sparse universe; random soups fill the
// grid or the top-left square of the sparse window.
func seedPattern(u model.Universe, config utils.Config, rng *rand.Rand) error {
	if config.Pattern == patternRandom {
		if config.Engine == utils.EngineSparse {
			win := config.Window
			side := min(win.XMax-win.XMin, win.YMax-win.YMin) + 1
			return patterns.Random(u, model.Point{X: win.XMin, Y: win.YMin}, side, config.RandomDensity, rng)
		}
		return patterns.Random(u, model.Point{}, config.Size, config.RandomDensity, rng)
	}

	build, err := patterns.ByName(config.Pattern)
	if err != nil {
		return err
	}
	offset := config.Size / 2
	if config.Engine == utils.EngineSparse {
		offset = 0
	}
	return build(u, offset)
}

// injectRandomLife adds some random cells to break stagnation
func injectRandomLife(u model.Universe, config utils.Config, rng *rand.Rand) {
	xmin, xspan, ymin, yspan := 0, config.Size, 0, config.Size
	if config.Engine == utils.EngineSparse {
		xmin, xspan = config.Window.XMin, config.Window.XMax-config.Window.XMin+1
		ymin, yspan = config.Window.YMin, config.Window.YMax-config.Window.YMin+1
	}
	if xspan <= 0 || yspan <= 0 {
		return
	}
	for i := 0; i < config.InjectionCount; i++ {
		if err := u.SetLive(xmin+rng.IntN(xspan), ymin+rng.IntN(yspan)); err != nil {
			log.Printf("Error injecting life: %v", err)
		}
	}
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, rng *rand.Rand) (
	model.Universe,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	universe, err := newUniverse(config)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create universe")
	}
	if err = seedPattern(universe, config, rng); err != nil {
		return nil, nil, nil, errors.Wrapf(err, "[initializeGame] failed to place pattern: %+v", config.Pattern)
	}

	return universe, &model.TerminalRenderer{}, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, universe model.Universe) {
	fmt.Fprintf(w, "Engine: %s | Pattern: %s\n", config.Engine, config.Pattern)
	if config.Engine == utils.EngineSparse {
		fmt.Fprintf(w, "Window: x=[%d, %d] y=[%d, %d] | Initial living cells: %d\n",
			config.Window.XMin, config.Window.XMax, config.Window.YMin, config.Window.YMax, universe.Population())
	} else {
		fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d\n", config.Size, config.Size, universe.Population())
	}
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// renderUniverse draws the whole bounded grid, or the configured window of a sparse universe
func renderUniverse(w io.Writer, renderer *model.TerminalRenderer, universe model.Universe, config utils.Config) {
	switch u := universe.(type) {
	case *model.SparseEngine:
		if err := renderer.DisplayWindow(w, u, config.Window); err != nil {
			log.Printf("Error rendering window: %v", err)
		}
	case gridExporter:
		renderer.Display(w, u.ExportGrid())
	}
}

// updateGameState updates the game state and returns status information
func updateGameState(
	universe model.Universe,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, string, bool) {
	livingCells := universe.Population()

	// Update performance stats
	stats.Update(generation, livingCells, universe.Pending(), time.Since(lastFrameTime))

	// Update history for stagnation detection
	isStagnant := history.IsStagnant(universe)
	history.Record(universe)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	w io.Writer,
	generation, livingCells int,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Pending: %d | Status: %s\n",
		generation, livingCells, stats.PendingCells, status)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Fprintf(w, "Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Fprintln(w)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame rebuilds the universe with a fresh random soup
func restartGame(w io.Writer, config utils.Config, rng *rand.Rand) (model.Universe, error) {
	fmt.Fprintf(w, "\n🔄 Restarting...\n")

	config.Pattern = patternRandom
	universe, err := newUniverse(config)
	if err != nil {
		return nil, errors.Wrap(err, "[restartGame] failed to create universe")
	}
	if err = seedPattern(universe, config, rng); err != nil {
		return nil, errors.Wrap(err, "[restartGame] failed to seed universe")
	}

	fmt.Fprintf(w, "✨ New patterns loaded! Living cells: %d\n", universe.Population())
	return universe, nil
}
