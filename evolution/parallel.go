package evolution

import (
	"runtime"
	"sync"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
)

// ParallelEvaluator evaluates a population's fitness across a fixed worker
// pool of goroutines, grounded on the teacher's evolution/parallel.go
// channel-based ParallelEvaluator.
type ParallelEvaluator struct {
	NumWorkers int
}

// NewParallelEvaluator returns an evaluator with numWorkers workers, or
// runtime.NumCPU() if numWorkers <= 0.
func NewParallelEvaluator(numWorkers int) *ParallelEvaluator {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &ParallelEvaluator{NumWorkers: numWorkers}
}

// EvaluatePopulation evaluates every individual's fitness concurrently
// against the same baseline/seeds (spec.md §4.3.3: "seeds are drawn once
// at generation start and reused across every individual in that
// generation"). Mutates each Individual's counters/Fitness in place.
func (pe *ParallelEvaluator) EvaluatePopulation(population []*Individual, baseline ai.Weights, seeds []int64, gamesPerEvaluation, maxTurnsPerGame int, aiConfig ai.Config) {
	if len(population) == 0 {
		return
	}

	tasks := make(chan *Individual, len(population))
	var wg sync.WaitGroup

	for w := 0; w < pe.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ind := range tasks {
				EvaluateIndividual(ind, baseline, seeds, gamesPerEvaluation, maxTurnsPerGame, aiConfig)
			}
		}()
	}

	for _, ind := range population {
		tasks <- ind
	}
	close(tasks)

	wg.Wait()
}
