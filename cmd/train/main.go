// Command train runs the evolutionary weight-optimization loop (spec.md
// §4.3, §6), grounded on the teacher's cmd/evolve/main.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
	"github.com/beauBalthazarBruneau/Solitario-Russo/evolution"
)

var (
	generations      int
	population       int
	evaluations      int
	mutationRate     float64
	mutationStrength float64
	checkpointEvery  int
	outputDir        string
	verbose          bool
	quick            bool
	overnight        bool
	seed             int64
)

func init() {
	flag.IntVar(&generations, "generations", 0, "number of generations to evolve (0 = use preset default)")
	flag.IntVar(&population, "population", 0, "population size (0 = use preset default)")
	flag.IntVar(&evaluations, "evaluations", 0, "games per evaluation per side (0 = use preset default)")
	flag.Float64Var(&mutationRate, "mutation", 0, "per-weight mutation probability (0 = use preset default)")
	flag.Float64Var(&mutationStrength, "strength", 0, "mutation magnitude as a fraction of each weight's range (0 = use preset default)")
	flag.IntVar(&checkpointEvery, "checkpoint", 0, "checkpoint interval in generations (0 = use preset default)")
	flag.StringVar(&outputDir, "output", "output", "output directory for checkpoint.json and exported weights")
	flag.BoolVar(&verbose, "verbose", false, "enable per-individual debug logging")
	flag.BoolVar(&quick, "quick", false, "small population/generation preset for local iteration")
	flag.BoolVar(&overnight, "overnight", false, "large preset suited to an unattended multi-hour run")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = derived from the current time)")
}

func main() {
	flag.Parse()

	logger := log.New(os.Stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := presetConfig()
	applyOverrides(&cfg)
	cfg.OutputDir = outputDir
	cfg.Verbose = verbose

	checkpointPath := filepath.Join(outputDir, "checkpoint.json")

	trainer, err := loadOrCreateTrainer(cfg, checkpointPath, seed, logger)
	if err != nil {
		logger.Error("failed to start trainer", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownCount := 0
	go func() {
		for range sigChan {
			shutdownCount++
			if shutdownCount == 1 {
				logger.Info("shutdown requested, finishing current generation")
				trainer.RequestShutdown()
				continue
			}
			logger.Warn("second shutdown signal, exiting immediately")
			os.Exit(130)
		}
	}()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		logger.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	if err := trainer.Evolve(ai.DefaultWeights(), checkpointPath); err != nil {
		logger.Error("evolution failed", "error", err)
		os.Exit(1)
	}

	best := trainer.AllTimeBest
	if best == nil {
		logger.Error("evolution produced no individuals")
		os.Exit(1)
	}

	weightsPath := filepath.Join(outputDir, "best_weights.json")
	if err := evolution.SaveWeightsFile(weightsPath, best, time.Now()); err != nil {
		logger.Error("failed to save best weights", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Best fitness: %.4f\n", best.Fitness)
	fmt.Printf("Weights saved to %s\n", weightsPath)
}

func presetConfig() evolution.Config {
	switch {
	case quick:
		return evolution.QuickConfig()
	case overnight:
		return evolution.OvernightConfig()
	default:
		return evolution.DefaultConfig()
	}
}

func applyOverrides(cfg *evolution.Config) {
	if generations > 0 {
		cfg.Generations = generations
	}
	if population > 0 {
		cfg.PopulationSize = population
	}
	if evaluations > 0 {
		cfg.GamesPerEvaluation = evaluations
	}
	if mutationRate > 0 {
		cfg.MutationRate = mutationRate
	}
	if mutationStrength > 0 {
		cfg.MutationStrength = mutationStrength
	}
	if checkpointEvery > 0 {
		cfg.CheckpointInterval = checkpointEvery
	}
}

// loadOrCreateTrainer resumes from outputDir/checkpoint.json when it
// exists (spec.md §6's implicit --resume contract), otherwise starts a
// fresh trainer.
func loadOrCreateTrainer(cfg evolution.Config, checkpointPath string, seed int64, logger *log.Logger) (*evolution.Trainer, error) {
	if _, err := os.Stat(checkpointPath); err == nil {
		logger.Info("resuming from checkpoint", "path", checkpointPath)
		cp, err := evolution.LoadCheckpoint(checkpointPath)
		if err != nil {
			return nil, fmt.Errorf("load checkpoint: %w", err)
		}
		return evolution.ResumeTrainer(cp, logger), nil
	}
	return evolution.NewTrainer(cfg, ai.DefaultConfig(), seed, logger), nil
}
