package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/dshinzaki/Life/model"
	"github.com/dshinzaki/Life/utils"
	"github.com/dshinzaki/Life/verify"
)

const defaultConfigPath = "config.json"

// bindAndParse binds flags onto config and parses args, returning the config file path
func bindAndParse(config *utils.Config, args []string) (string, error) {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	path := fs.String("config", defaultConfigPath, "JSON configuration file")
	config.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return "", errors.Wrap(err, "[bindAndParse] failed to parse flags")
	}
	return *path, nil
}

// parseConfig loads the JSON configuration and applies command-line overrides on top of it
func parseConfig(args []string) (utils.Config, error) {
	config := utils.DefaultConfig()
	path, err := bindAndParse(&config, args)
	if err != nil {
		return config, err
	}

	loaded, err := utils.LoadConfig(path)
	if err != nil {
		if path != defaultConfigPath || !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		fmt.Println("Using default configuration (config.json not found)")
		return config, config.Validate()
	}

	if _, err = bindAndParse(&loaded, args); err != nil {
		return loaded, err
	}
	return loaded, loaded.Validate()
}

func runVerify(ctx context.Context, config utils.Config) error {
	fmt.Printf("Differential check: %d trials x %d operations, %d workers, seed %d\n",
		config.VerifyTrials, config.VerifySteps, config.VerifyWorkers, config.Seed)
	start := time.Now()
	if err := verify.RunAll(ctx, config); err != nil {
		return err
	}
	fmt.Printf("✅ Bounded and full-scan engines agree (%.1fs)\n", time.Since(start).Seconds())
	return nil
}

func main() {
	config, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Verify {
		if err = runVerify(ctx, config); err != nil {
			stop()
			log.Fatalf("differential check failed: %v", err)
		}
		return
	}

	rng := utils.NewRNG(config.Seed)
	universe, renderer, stats, err := initializeGame(config, rng)
	if err != nil {
		stop()
		log.Fatalf("failed to start: %v", err)
	}
	displayGameInfo(os.Stdout, config, universe)

	// Main game loop
	var (
		history        model.History
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, status, isStagnant := updateGameState(universe, &history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(os.Stdout, generation, livingCells, status, stats, lastRestartGen)
		renderUniverse(os.Stdout, renderer, universe, config)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)

			restarted, restartErr := restartGame(os.Stdout, config, rng)
			if restartErr != nil {
				log.Printf("Error restarting: %v", restartErr)
			} else {
				universe = restarted
				history.Reset()
				lastRestartGen = generation
				stagnantCount = 0
			}
		} else if config.AutoRestart && stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			injectRandomLife(universe, config, rng)
		}

		universe.NextGeneration()
		generation++

		time.Sleep(config.FrameRate)
	}
}
