// Package evolution implements the evolutionary weight-optimization loop:
// population bootstrap, paired self-play fitness evaluation, elitism +
// tournament-selection reproduction, and atomic checkpointing.
package evolution

import (
	"math"
	"math/rand"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
)

// Individual is one weight vector plus its most recent evaluation
// counters (spec.md §4.3.1).
type Individual struct {
	Weights     ai.Weights `json:"weights"`
	Wins        int        `json:"wins"`
	Losses      int        `json:"losses"`
	Draws       int        `json:"draws"`
	GamesPlayed int        `json:"gamesPlayed"`
	Fitness     float64    `json:"fitness"`
}

// resetCounters zeroes an individual's evaluation tally (Fitness is kept),
// used when carrying elites forward unchanged (spec.md §4.3.4: "Carry the
// top eliteCount individuals unchanged (with zeroed counters)") and when
// recording the all-time best.
func (ind *Individual) resetCounters() {
	ind.Wins = 0
	ind.Losses = 0
	ind.Draws = 0
	ind.GamesPlayed = 0
}

// NewBaselineIndividual is the population's one verbatim-reference
// individual (spec.md §4.3.2).
func NewBaselineIndividual() *Individual {
	return &Individual{Weights: ai.DefaultWeights()}
}

// NewRandomIndividual draws each weight from round(defaultValue *
// U(0.7,1.3)), clamped to its interval (spec.md §4.3.1).
func NewRandomIndividual(rng *rand.Rand) *Individual {
	base := ai.DefaultWeights()
	var w ai.Weights
	for i := range base {
		f := ai.Feature(i)
		factor := 0.7 + rng.Float64()*0.6
		w[i] = ai.Clamp(f, math.Round(base[i]*factor))
	}
	return &Individual{Weights: w}
}
