package evolution

import (
	"math/rand"
	"sort"
)

// sortByFitnessDescending returns a sorted copy of population, highest
// fitness first (spec.md §4.3.4's "sort the population by fitness
// descending"), grounded on the teacher's SelectElite.
func sortByFitnessDescending(population []*Individual) []*Individual {
	sorted := make([]*Individual, len(population))
	copy(sorted, population)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness > sorted[j].Fitness
	})
	return sorted
}

// selectElite carries the top n individuals forward with zeroed counters,
// as independent copies so later mutation of the next generation never
// aliases an elite's weight vector.
func selectElite(sorted []*Individual, n int) []*Individual {
	if n > len(sorted) {
		n = len(sorted)
	}
	elites := make([]*Individual, n)
	for i := 0; i < n; i++ {
		clone := *sorted[i]
		clone.resetCounters()
		elites[i] = &clone
	}
	return elites
}

// tournamentSelection samples k individuals uniformly and returns the
// fittest, grounded on the teacher's TournamentSelection.
func tournamentSelection(population []*Individual, k int, rng *rand.Rand) *Individual {
	if len(population) == 0 {
		return nil
	}
	if k > len(population) {
		k = len(population)
	}
	if k < 1 {
		k = 1
	}

	indices := rng.Perm(len(population))[:k]
	best := population[indices[0]]
	for _, idx := range indices[1:] {
		if population[idx].Fitness > best.Fitness {
			best = population[idx]
		}
	}
	return best
}
