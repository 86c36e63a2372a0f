package evolution

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
)

// Trainer runs the evolutionary loop described in spec.md §4.3.5: one
// generation at a time, with periodic checkpointing and an external
// shutdown flag honored at generation boundaries (spec.md §5).
//
// Mirrors the teacher's EvolutionEngine, split the same way: this type
// owns population/history/RNG state and the generation loop; signal
// wiring and CLI concerns live in cmd/train.
type Trainer struct {
	Config      Config
	AIConfig    ai.Config
	Population  []*Individual
	History     []GenerationStat
	AllTimeBest *Individual
	Generation  int

	rng               *rand.Rand
	evaluator         *ParallelEvaluator
	startTime         time.Time
	totalGamesPlayed  int
	shutdownRequested atomic.Bool

	Logger *log.Logger
}

// NewTrainer creates a fresh trainer and bootstraps its population
// (spec.md §4.3.2).
func NewTrainer(cfg Config, aiCfg ai.Config, seed int64, logger *log.Logger) *Trainer {
	if logger == nil {
		logger = log.Default()
	}
	rng := rand.New(rand.NewSource(seed))
	return &Trainer{
		Config:     cfg,
		AIConfig:   aiCfg,
		Population: InitializePopulation(cfg.PopulationSize, rng),
		rng:        rng,
		evaluator:  NewParallelEvaluator(0),
		startTime:  time.Now(),
		Logger:     logger,
	}
}

// RequestShutdown sets the flag the generation loop checks between
// generations (spec.md §4.3.6's "first shutdown signal"). Safe to call
// from a signal handler goroutine: the flag is an atomic.Bool, and the
// loop only reads it at a generation boundary.
func (t *Trainer) RequestShutdown() {
	t.shutdownRequested.Store(true)
}

// ResumeTrainer rebuilds a Trainer from a loaded checkpoint (spec.md
// §4.3.5: "On startup, if a checkpoint of matching schema version
// exists, resume from it").
func ResumeTrainer(cp *Checkpoint, logger *log.Logger) *Trainer {
	if logger == nil {
		logger = log.Default()
	}
	return &Trainer{
		Config:           cp.Config,
		AIConfig:         ai.DefaultConfig(),
		Population:       cp.Population,
		History:          cp.GenerationHistory,
		AllTimeBest:      cp.AllTimeBest,
		Generation:       cp.CurrentGeneration,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		evaluator:        NewParallelEvaluator(0),
		startTime:        cp.StartTime,
		totalGamesPlayed: cp.TotalGamesPlayed,
		Logger:           logger,
	}
}

// Checkpoint snapshots the trainer's current state for SaveCheckpoint.
func (t *Trainer) Checkpoint() Checkpoint {
	var best *Individual
	if len(t.Population) > 0 {
		sorted := sortByFitnessDescending(t.Population)
		best = sorted[0]
	}
	return Checkpoint{
		Version:           CheckpointVersion,
		Config:            t.Config,
		CurrentGeneration: t.Generation,
		BestIndividual:    best,
		AllTimeBest:       t.AllTimeBest,
		Population:        t.Population,
		GenerationHistory: t.History,
		StartTime:         t.startTime,
		TotalGamesPlayed:  t.totalGamesPlayed,
	}
}

// drawSeeds produces gamesPerEvaluation fresh seeds, shared across every
// individual in this generation (spec.md §4.3.3: "drawn once at
// generation start and reused across every individual").
func (t *Trainer) drawSeeds() []int64 {
	seeds := make([]int64, t.Config.GamesPerEvaluation)
	for i := range seeds {
		seeds[i] = t.rng.Int63()
	}
	return seeds
}

// runGeneration evaluates the current population's fitness, records
// history, updates AllTimeBest, and returns the sorted population.
func (t *Trainer) runGeneration(baseline ai.Weights) []*Individual {
	seeds := t.drawSeeds()
	t.evaluator.EvaluatePopulation(t.Population, baseline, seeds, t.Config.GamesPerEvaluation, t.Config.MaxTurnsPerGame, t.AIConfig)

	for _, ind := range t.Population {
		t.totalGamesPlayed += ind.GamesPlayed
	}

	sorted := sortByFitnessDescending(t.Population)
	best := sorted[0]
	avg := averageFitness(t.Population)

	var diff float64
	if t.AllTimeBest != nil {
		diff = weightsDiff(best.Weights, t.AllTimeBest.Weights)
	}
	if t.AllTimeBest == nil || best.Fitness > t.AllTimeBest.Fitness {
		clone := *best
		clone.resetCounters()
		t.AllTimeBest = &clone
	}

	t.History = append(t.History, GenerationStat{
		Generation:      t.Generation,
		BestFitness:     best.Fitness,
		AvgFitness:      avg,
		BestWeightsDiff: diff,
		Timestamp:       time.Now(),
	})

	if t.Config.Verbose {
		for i, ind := range sorted {
			t.Logger.Debug("individual evaluated", "generation", t.Generation, "rank", i, "fitness", ind.Fitness)
		}
		t.Logger.Debug("generation evaluated", "generation", t.Generation, "best", best.Fitness, "avg", avg)
	}
	t.Logger.Info("generation complete",
		"generation", t.Generation,
		"best_fitness", fmt.Sprintf("%.4f", best.Fitness),
		"avg_fitness", fmt.Sprintf("%.4f", avg),
		"elapsed", time.Since(t.startTime).Round(time.Second),
	)

	return sorted
}

// reproduce fills the next generation via elitism + tournament selection
// + crossover + mutation (spec.md §4.3.4).
func (t *Trainer) reproduce(sorted []*Individual) []*Individual {
	next := make([]*Individual, 0, t.Config.PopulationSize)
	next = append(next, selectElite(sorted, t.Config.EliteCount)...)

	for len(next) < t.Config.PopulationSize {
		parent1 := tournamentSelection(t.Population, t.Config.TournamentSize, t.rng)
		parent2 := tournamentSelection(t.Population, t.Config.TournamentSize, t.rng)

		childWeights := crossover(parent1.Weights, parent2.Weights, t.rng)
		childWeights = mutate(childWeights, t.Config.MutationRate, t.Config.MutationStrength, t.rng)

		next = append(next, &Individual{Weights: childWeights})
	}

	return next
}

// Evolve runs the generation loop until Config.Generations completes or
// a shutdown is requested at a generation boundary (spec.md §4.3.5,
// §4.3.6), checkpointing every CheckpointInterval generations and once
// more on exit. checkpointPath is the destination SaveCheckpoint writes
// to; an empty path disables checkpointing.
func (t *Trainer) Evolve(baseline ai.Weights, checkpointPath string) error {
	t.Logger.Info("starting evolution", "population", t.Config.PopulationSize, "generations", t.Config.Generations)

	for t.Generation < t.Config.Generations {
		sorted := t.runGeneration(baseline)
		next := t.reproduce(sorted)
		t.Population = next
		t.Generation++

		if checkpointPath != "" && t.Config.CheckpointInterval > 0 && t.Generation%t.Config.CheckpointInterval == 0 {
			if err := t.saveCheckpoint(checkpointPath); err != nil {
				t.Logger.Warn("checkpoint save failed", "error", err)
			}
		}

		if t.shutdownRequested.Load() {
			t.Logger.Info("shutdown requested, finishing current generation and checkpointing")
			break
		}
	}

	if checkpointPath != "" {
		if err := t.saveCheckpoint(checkpointPath); err != nil {
			return fmt.Errorf("final checkpoint: %w", err)
		}
	}

	var bestFitness float64
	if t.AllTimeBest != nil {
		bestFitness = t.AllTimeBest.Fitness
	}
	t.Logger.Info("evolution complete", "generations_run", len(t.History), "best_fitness", bestFitness)
	return nil
}

func (t *Trainer) saveCheckpoint(path string) error {
	cp := t.Checkpoint()
	if err := SaveCheckpoint(path, cp); err != nil {
		return err
	}
	t.Logger.Info("checkpoint saved", "path", path, "generation", t.Generation)
	return nil
}
