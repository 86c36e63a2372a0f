package evolution

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
)

func TestCrossoverProducesValuesFromEitherParentOrAverage(t *testing.T) {
	p1 := ai.DefaultWeights()
	p2 := ai.DefaultWeights()
	for i := range p2 {
		p2[i] = p1[i] + 4
	}

	rng := rand.New(rand.NewSource(3))
	child := crossover(p1, p2, rng)

	for i := range child {
		isP1 := child[i] == p1[i]
		isP2 := child[i] == p2[i]
		isAvg := child[i] == (p1[i]+p2[i])/2
		assert.True(t, isP1 || isP2 || isAvg, "feature %d=%v not from either parent or their average", i, child[i])
	}
}

func TestMutateStaysWithinClampedRange(t *testing.T) {
	w := ai.DefaultWeights()
	rng := rand.New(rand.NewSource(9))
	mutated := mutate(w, 1.0, 0.5, rng)

	for i := range mutated {
		f := ai.Feature(i)
		assert.GreaterOrEqual(t, mutated[i], ai.Clamp(f, -1e9))
		assert.LessOrEqual(t, mutated[i], ai.Clamp(f, 1e9))
	}
}

func TestMutateWithZeroRateLeavesWeightsUnchanged(t *testing.T) {
	w := ai.DefaultWeights()
	rng := rand.New(rand.NewSource(2))
	mutated := mutate(w, 0, 0.5, rng)
	assert.Equal(t, w, mutated)
}
