package evolution

import (
	"math"
	"math/rand"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
)

// crossover implements spec.md §4.3.4's per-weight-key rule: for each
// feature, draw r ~ U(0,1); r<0.4 takes parent1's value, r<0.8 takes
// parent2's, otherwise the rounded average of both.
func crossover(parent1, parent2 ai.Weights, rng *rand.Rand) ai.Weights {
	var child ai.Weights
	for i := range child {
		r := rng.Float64()
		switch {
		case r < 0.4:
			child[i] = parent1[i]
		case r < 0.8:
			child[i] = parent2[i]
		default:
			child[i] = math.Round((parent1[i] + parent2[i]) / 2)
		}
	}
	return child
}
