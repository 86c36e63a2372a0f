package evolution

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// TestEvolveAllTimeBestFitnessNonDecreasing is Q4: allTimeBest.fitness is
// non-decreasing across generations.
func TestEvolveAllTimeBestFitnessNonDecreasing(t *testing.T) {
	cfg := Config{
		PopulationSize:     6,
		Generations:        4,
		GamesPerEvaluation: 1,
		MutationRate:       0.2,
		MutationStrength:   0.3,
		EliteCount:         2,
		TournamentSize:     2,
		CheckpointInterval: 0,
		MaxTurnsPerGame:    60,
	}
	trainer := NewTrainer(cfg, ai.DefaultConfig(), 123, quietLogger())

	var seenBest []float64
	baseline := ai.DefaultWeights()
	for gen := 0; gen < cfg.Generations; gen++ {
		sorted := trainer.runGeneration(baseline)
		seenBest = append(seenBest, trainer.AllTimeBest.Fitness)
		trainer.Population = trainer.reproduce(sorted)
		trainer.Generation++
	}

	require.Len(t, seenBest, cfg.Generations)
	for i := 1; i < len(seenBest); i++ {
		assert.GreaterOrEqual(t, seenBest[i], seenBest[i-1], "allTimeBest fitness decreased at generation %d", i)
	}
}

func TestEvolveCheckspointsAndCompletes(t *testing.T) {
	cfg := Config{
		PopulationSize:     4,
		Generations:        2,
		GamesPerEvaluation: 1,
		MutationRate:       0.2,
		MutationStrength:   0.3,
		EliteCount:         1,
		TournamentSize:     2,
		CheckpointInterval: 1,
		MaxTurnsPerGame:    40,
	}
	trainer := NewTrainer(cfg, ai.DefaultConfig(), 5, quietLogger())

	dir := t.TempDir()
	path := filepath.Join(dir, "checkpoint.json")

	require.NoError(t, trainer.Evolve(ai.DefaultWeights(), path))
	require.NotNil(t, trainer.AllTimeBest)
	assert.Len(t, trainer.History, cfg.Generations)

	loaded, err := LoadCheckpoint(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Generations, loaded.CurrentGeneration)
}

func TestResumeTrainerRestoresGenerationAndHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PopulationSize = 3
	cp := Checkpoint{
		Version:           CheckpointVersion,
		Config:            cfg,
		CurrentGeneration: 7,
		Population:        []*Individual{NewBaselineIndividual(), NewBaselineIndividual()},
		GenerationHistory: []GenerationStat{{Generation: 6, BestFitness: 0.4}},
	}

	trainer := ResumeTrainer(&cp, quietLogger())
	assert.Equal(t, 7, trainer.Generation)
	assert.Len(t, trainer.History, 1)
	assert.Len(t, trainer.Population, 2)
}
