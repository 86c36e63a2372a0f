package ai

import (
	"math/rand"
	"sort"

	"github.com/beauBalthazarBruneau/Solitario-Russo/engine"
)

// maxStepsPerTurn is the internal safety cap of spec.md §4.2.1.
const maxStepsPerTurn = 100

// DecisionKind distinguishes a move decision from a draw decision.
type DecisionKind uint8

const (
	DecisionMove DecisionKind = iota
	DecisionDraw
)

// Decision is one step's choice: either play a specific move or draw.
type Decision struct {
	Kind      DecisionKind
	Move      engine.Move
	Reasoning string
}

// Step pairs a decision with the state it produced.
type Step struct {
	State    *engine.GameState
	Decision Decision
}

// ComputeTurn produces the active player's entire turn: a sequence of
// Steps ending when the turn changes hands, the game ends, the internal
// operation cap is reached, or the engine reports a draw failure. Returns
// the updated cross-turn pattern window alongside the steps (spec.md §5:
// "crossTurnRecentPatterns flows in/out as an explicit parameter").
func ComputeTurn(state *engine.GameState, weights Weights, config Config, recentPatterns []string) ([]Step, []string) {
	mem := newTurnMemory(recentPatterns, config.PatternMemory)
	startTurn := state.CurrentTurn
	cur := state

	var steps []Step
	for i := 0; i < maxStepsPerTurn; i++ {
		if cur.Phase == engine.Ended {
			break
		}

		observeAccessiblePositions(cur, mem)
		observeStateHash(cur, mem)

		legal := cur.LegalMoves()
		candidates := filterCandidates(cur, legal, mem)

		decision, next, err := decideStep(cur, candidates, legal, weights, config, mem)
		if err != nil {
			break
		}

		steps = append(steps, Step{State: next, Decision: decision})

		if decision.Kind == DecisionMove {
			recordPattern(mem, decision.Move)
		} else {
			mem.resetCycleSets()
		}

		cur = next
		if cur.CurrentTurn != startTurn {
			break
		}
	}

	return steps, mem.patternWindow
}

// GetBestDecision is the convenience single-step adapter for consumers like
// UI hints (spec.md §6): the first decision ComputeTurn would make.
func GetBestDecision(state *engine.GameState, weights Weights, config Config) Decision {
	steps, _ := ComputeTurn(state, weights, config, nil)
	if len(steps) == 0 {
		return Decision{Kind: DecisionDraw, Reasoning: "no steps computed"}
	}
	return steps[0].Decision
}

func decideStep(cur *engine.GameState, candidates, unfiltered []engine.Move, weights Weights, config Config, mem *turnMemory) (Decision, *engine.GameState, error) {
	if len(candidates) > 0 {
		move := selectMove(cur, candidates, weights, config, mem)
		next, err := cur.ApplyMove(move)
		if err != nil {
			return Decision{}, nil, err
		}
		return Decision{Kind: DecisionMove, Move: move, Reasoning: "scored candidate"}, next, nil
	}

	if fallback, ok := findConsolidation(cur, unfiltered); ok {
		next, err := cur.ApplyMove(fallback)
		if err != nil {
			return Decision{}, nil, err
		}
		return Decision{Kind: DecisionMove, Move: fallback, Reasoning: "draw-avoidance consolidation"}, next, nil
	}

	next, _, err := cur.DrawFromHand()
	if err != nil {
		return Decision{}, nil, err
	}
	return Decision{Kind: DecisionDraw, Reasoning: "no legal candidates"}, next, nil
}

// findConsolidation implements the draw-avoidance fallback of spec.md
// §4.2.6: if any empty-creating consolidation exists in the unfiltered
// legal moves, play the first such move instead of drawing.
func findConsolidation(state *engine.GameState, moves []engine.Move) (engine.Move, bool) {
	for _, m := range moves {
		if isEmptyCreating(state, m) {
			return m, true
		}
	}
	return engine.Move{}, false
}

type scoredMove struct {
	move  engine.Move
	score float64
}

func selectMove(state *engine.GameState, candidates []engine.Move, weights Weights, config Config, mem *turnMemory) engine.Move {
	scored := make([]scoredMove, len(candidates))
	for i, m := range candidates {
		score := scoreMove(state, m, weights)
		score -= shufflePenalty(m, mem, config.ShufflePenalty)
		if config.LookAheadDepth > 0 && m.To.Kind != engine.KindFoundation {
			score += lookAheadBonus(state, m, config, config.LookAheadDepth)
		}
		scored[i] = scoredMove{move: m, score: score}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	rng := rand.New(rand.NewSource(state.Seed + int64(state.MoveCount)))
	if rng.Float64() < config.ExplorationRate {
		return scored[rng.Intn(len(scored))].move
	}
	return scored[0].move
}
