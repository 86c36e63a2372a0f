package evolution

import (
	"math"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
	"github.com/beauBalthazarBruneau/Solitario-Russo/engine"
)

// stagnationThreshold is spec.md §4.2.7's STAGNATION_THRESHOLD.
const stagnationThreshold = 50

// stagnationState tracks one player's moves-since-foundation-progress
// across a game. This is the trainer's call-pattern property the spec
// describes — not part of ai.ComputeTurn itself.
type stagnationState struct {
	movesSinceProgress int
}

// observe updates the counter from one turn's emitted steps: any
// foundation play resets it to zero, otherwise it accumulates by the
// number of moves/draws just played.
func (s *stagnationState) observe(steps []ai.Step) {
	for _, step := range steps {
		if step.Decision.Kind == ai.DecisionMove && step.Decision.Move.To.Kind == engine.KindFoundation {
			s.movesSinceProgress = 0
			return
		}
	}
	s.movesSinceProgress += len(steps)
}

// adapt scales explorationRate up to +0.45 and shufflePenalty up to ×3 once
// movesSinceProgress exceeds stagnationThreshold, ramping linearly over the
// following stagnationThreshold moves and then holding at the maximum
// (spec.md §4.2.7).
func (s *stagnationState) adapt(base ai.Config) ai.Config {
	if s.movesSinceProgress <= stagnationThreshold {
		return base
	}
	excess := s.movesSinceProgress - stagnationThreshold
	ramp := math.Min(1, float64(excess)/float64(stagnationThreshold))

	cfg := base
	cfg.ExplorationRate = base.ExplorationRate + ramp*0.45
	cfg.ShufflePenalty = base.ShufflePenalty * (1 + ramp*2)
	return cfg
}
