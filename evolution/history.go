package evolution

import (
	"math"
	"time"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
)

// GenerationStat is one generation's summary line appended to the
// trainer's history log (spec.md §4.3.5: "(number, bestFitness,
// avgFitness, bestWeightsDiff)").
type GenerationStat struct {
	Generation      int       `json:"generation"`
	BestFitness     float64   `json:"bestFitness"`
	AvgFitness      float64   `json:"avgFitness"`
	BestWeightsDiff float64   `json:"bestWeightsDiff"`
	Timestamp       time.Time `json:"timestamp"`
}

func averageFitness(population []*Individual) float64 {
	if len(population) == 0 {
		return 0
	}
	var sum float64
	for _, ind := range population {
		sum += ind.Fitness
	}
	return sum / float64(len(population))
}

// weightsDiff is the Euclidean distance between two weight vectors, used
// to report how far this generation's best individual lies from the
// all-time best recorded before this generation.
func weightsDiff(a, b ai.Weights) float64 {
	var sumSquares float64
	for i := range a {
		d := a[i] - b[i]
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares)
}
