package ai

import (
	"testing"

	"github.com/beauBalthazarBruneau/Solitario-Russo/engine"
)

// TestComputeTurnTerminatesWithinCap covers spec.md Q2: for all seeds,
// computeTurn(initialize(k), defaultWeights, defaultConfig, []) terminates
// in at most 100 steps.
func TestComputeTurnTerminatesWithinCap(t *testing.T) {
	weights := DefaultWeights()
	config := DefaultConfig()
	for _, seed := range []int64{1, 2, 3, 42, 2024, 999999} {
		s := engine.Initialize(&seed)
		steps, _ := ComputeTurn(s, weights, config, nil)
		if len(steps) > maxStepsPerTurn {
			t.Fatalf("seed %d: expected at most %d steps, got %d", seed, maxStepsPerTurn, len(steps))
		}
	}
}

// TestComputeTurnStepsAreChained verifies each step's state follows from
// applying that step's decision to the prior step's state.
func TestComputeTurnStepsAreChained(t *testing.T) {
	seed := int64(7)
	s := engine.Initialize(&seed)
	weights := DefaultWeights()
	config := DefaultConfig()

	steps, _ := ComputeTurn(s, weights, config, nil)
	if len(steps) == 0 {
		t.Fatal("expected at least one step")
	}
	prev := s
	for i, step := range steps {
		if step.Decision.Kind == DecisionMove {
			next, err := prev.ApplyMove(step.Decision.Move)
			if err != nil {
				t.Fatalf("step %d: replaying recorded move failed: %v", i, err)
			}
			if next.MoveCount != step.State.MoveCount {
				t.Errorf("step %d: move count mismatch replaying decision", i)
			}
		}
		prev = step.State
	}
}

// TestComputeTurnHonorsImmediatePlayRule covers spec.md §8 scenario 3 at
// the decision-maker level: once a card is drawn, every emitted move
// decision for that step sources from the drawn slot.
func TestComputeTurnHonorsImmediatePlayRule(t *testing.T) {
	s := newTestState()
	s.CurrentTurn = engine.Player1
	drawn := engine.Card{Rank: 3, Suit: engine.Spades, Origin: engine.Player1}
	s.P1.DrawnCard = &drawn
	s.P1.Reserve = []engine.Card{{Rank: 1, Suit: engine.Hearts, Origin: engine.Player1}}
	s.P1.Tableau[0] = []engine.Card{{Rank: 4, Suit: engine.Hearts, Origin: engine.Player1}}

	weights := DefaultWeights()
	config := DefaultConfig()
	steps, _ := ComputeTurn(s, weights, config, nil)
	if len(steps) == 0 {
		t.Fatal("expected at least one step")
	}
	first := steps[0].Decision
	if first.Kind != DecisionMove || first.Move.From.Kind != engine.KindDrawn {
		t.Fatalf("expected first decision to play the drawn card, got %+v", first)
	}
}

func TestGetBestDecisionMatchesComputeTurnFirstStep(t *testing.T) {
	seed := int64(55)
	s := engine.Initialize(&seed)
	weights := DefaultWeights()
	config := DefaultConfig()

	decision := GetBestDecision(s, weights, config)
	steps, _ := ComputeTurn(s, weights, config, nil)
	if len(steps) == 0 {
		t.Fatal("expected at least one step")
	}
	if decision.Kind != steps[0].Decision.Kind {
		t.Errorf("GetBestDecision kind %v did not match ComputeTurn's first step %v", decision.Kind, steps[0].Decision.Kind)
	}
}
