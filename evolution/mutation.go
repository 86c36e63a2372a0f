package evolution

import (
	"math"
	"math/rand"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
)

// mutate implements spec.md §4.3.4's per-weight mutation: for each feature
// independently, with probability mutationRate, add U(-1,1) *
// range(feature) * mutationStrength, round, and clamp.
func mutate(w ai.Weights, mutationRate, mutationStrength float64, rng *rand.Rand) ai.Weights {
	out := w
	for i := range out {
		if rng.Float64() >= mutationRate {
			continue
		}
		f := ai.Feature(i)
		delta := (rng.Float64()*2 - 1) * ai.Range(f) * mutationStrength
		out[i] = ai.Clamp(f, math.Round(out[i]+delta))
	}
	return out
}
