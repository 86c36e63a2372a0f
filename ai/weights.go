// Package ai implements the heuristic decision maker: weighted move
// scoring, anti-cycle and anti-shuffle filters, optional bounded
// look-ahead, and the turn-level orchestration that ties them together.
package ai

import (
	"encoding/json"
	"fmt"
	"math"
)

// Feature indexes the fixed, closed scoring schema — a flat array indexed
// by enum rather than a string-keyed map, per the engine's sum-type/closed-
// schema discipline.
type Feature int

const (
	FeatureToFoundation Feature = iota
	FeaturePlaysAce
	FeaturePlaysTwo
	FeatureAttackReserve
	FeatureAttackWaste
	FeatureToOwnTableau
	FeatureToOpponentTableau
	FeatureFromReserve
	FeatureEmptiesReserve
	FeatureFromWaste
	FeatureFromTableau
	FeaturePointlessTableauShuffle
	FeatureCreatesUsefulEmpty
	FeatureCreatesEmptyTableau
	FeatureTableauMoveNoBenefit
	FeatureStackHeightBonus
	FeatureSpreadPenalty
	numFeatures
)

var featureNames = [numFeatures]string{
	FeatureToFoundation:            "TO_FOUNDATION",
	FeaturePlaysAce:                "PLAYS_ACE",
	FeaturePlaysTwo:                "PLAYS_TWO",
	FeatureAttackReserve:           "ATTACK_RESERVE",
	FeatureAttackWaste:             "ATTACK_WASTE",
	FeatureToOwnTableau:            "TO_OWN_TABLEAU",
	FeatureToOpponentTableau:       "TO_OPPONENT_TABLEAU",
	FeatureFromReserve:             "FROM_RESERVE",
	FeatureEmptiesReserve:          "EMPTIES_RESERVE",
	FeatureFromWaste:               "FROM_WASTE",
	FeatureFromTableau:             "FROM_TABLEAU",
	FeaturePointlessTableauShuffle: "POINTLESS_TABLEAU_SHUFFLE",
	FeatureCreatesUsefulEmpty:      "CREATES_USEFUL_EMPTY",
	FeatureCreatesEmptyTableau:     "CREATES_EMPTY_TABLEAU",
	FeatureTableauMoveNoBenefit:    "TABLEAU_MOVE_NO_BENEFIT",
	FeatureStackHeightBonus:        "STACK_HEIGHT_BONUS",
	FeatureSpreadPenalty:           "SPREAD_PENALTY",
}

func (f Feature) String() string {
	if f < 0 || int(f) >= len(featureNames) {
		return "UNKNOWN"
	}
	return featureNames[f]
}

// FeatureNames returns the ordered list of feature names — the keys of the
// {featureName: number} JSON form that MarshalJSON produces.
func FeatureNames() []string {
	names := make([]string, numFeatures)
	copy(names, featureNames[:])
	return names
}

// NumFeatures is the size of the weight schema.
const NumFeatures = int(numFeatures)

// Weights is the full scoring weight vector, one entry per Feature.
type Weights [numFeatures]float64

type clampRange struct{ min, max float64 }

// clamps bounds every weight's legal range (spec.md §4.3.1/§4.3.4); random
// individuals and mutation both clamp against this table (crossover does
// not clamp: it only takes or averages its parents' values).
var clamps = [numFeatures]clampRange{
	FeatureToFoundation:            {0, 50},
	FeaturePlaysAce:                {0, 20},
	FeaturePlaysTwo:                {0, 20},
	FeatureAttackReserve:           {0, 40},
	FeatureAttackWaste:             {0, 40},
	FeatureToOwnTableau:            {-10, 10},
	FeatureToOpponentTableau:       {-20, 5},
	FeatureFromReserve:             {0, 15},
	FeatureEmptiesReserve:          {0, 25},
	FeatureFromWaste:               {0, 15},
	FeatureFromTableau:             {-5, 15},
	FeaturePointlessTableauShuffle: {-30, 0},
	FeatureCreatesUsefulEmpty:      {0, 20},
	FeatureCreatesEmptyTableau:     {0, 25},
	FeatureTableauMoveNoBenefit:    {-20, 0},
	FeatureStackHeightBonus:        {0, 10},
	FeatureSpreadPenalty:           {-10, 0},
}

// Range returns the clamp interval's width for a feature, used by
// evolution's mutation step (`U(-1,1) * range(key) * mutationStrength`).
func Range(f Feature) float64 {
	r := clamps[f]
	return r.max - r.min
}

// Clamp restricts v to feature f's interval.
func Clamp(f Feature, v float64) float64 {
	r := clamps[f]
	return math.Min(r.max, math.Max(r.min, v))
}

// ClampAll returns a copy of w with every entry clamped; w is unchanged.
func (w Weights) ClampAll() Weights {
	var out Weights
	for i := range w {
		out[i] = Clamp(Feature(i), w[i])
	}
	return out
}

// MarshalJSON renders a Weights as {featureName: number, ...} rather than
// a bare JSON array, matching the weights-file and checkpoint contract of
// spec.md §6 ("weights: {featureName: number, …}").
func (w Weights) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, numFeatures)
	for i, v := range w {
		m[featureNames[i]] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON accepts the {featureName: number} object form produced by
// MarshalJSON.
func (w *Weights) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for i, name := range featureNames {
		v, ok := m[name]
		if !ok {
			return fmt.Errorf("ai: weights missing feature %q", name)
		}
		w[i] = v
	}
	return nil
}

// DefaultWeights is the reference/baseline weight vector: the individual
// every evolutionary population bootstraps with verbatim (spec.md §4.3.2),
// and the opponent every fitness evaluation plays against (spec.md §4.3.3).
func DefaultWeights() Weights {
	return Weights{
		FeatureToFoundation:            20,
		FeaturePlaysAce:                10,
		FeaturePlaysTwo:                6,
		FeatureAttackReserve:           18,
		FeatureAttackWaste:             14,
		FeatureToOwnTableau:            2,
		FeatureToOpponentTableau:       -8,
		FeatureFromReserve:             4,
		FeatureEmptiesReserve:          12,
		FeatureFromWaste:               3,
		FeatureFromTableau:             1,
		FeaturePointlessTableauShuffle: -15,
		FeatureCreatesUsefulEmpty:      9,
		FeatureCreatesEmptyTableau:     11,
		FeatureTableauMoveNoBenefit:    -6,
		FeatureStackHeightBonus:        3,
		FeatureSpreadPenalty:           -2,
	}
}
