package evolution

import "math/rand"

// InitializePopulation emits one baseline individual (the reference weights
// verbatim) and fills the remaining size-1 slots with random individuals
// (spec.md §4.3.2).
func InitializePopulation(size int, rng *rand.Rand) []*Individual {
	if size < 1 {
		return nil
	}
	pop := make([]*Individual, 0, size)
	pop = append(pop, NewBaselineIndividual())
	for len(pop) < size {
		pop = append(pop, NewRandomIndividual(rng))
	}
	return pop
}
