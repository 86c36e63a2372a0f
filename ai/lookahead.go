package ai

import "github.com/beauBalthazarBruneau/Solitario-Russo/engine"

// lookAheadBonus implements spec.md §4.2.5's optional bounded look-ahead.
// The top-level caller skips foundation plays; this function applies
// candidate to a clone of state and scores the resulting position (deeper
// levels recurse into any of the top-priority next moves, foundation plays
// included).
func lookAheadBonus(state *engine.GameState, candidate engine.Move, config Config, depth int) float64 {
	if depth <= 0 {
		return 0
	}

	next, err := state.ApplyMove(candidate)
	if err != nil {
		return 0
	}
	defer engine.Release(next)

	actor := next.CurrentTurn
	moves := next.LegalMoves()

	var foundationCount, emptyCount, attackCount int
	opp := actor.Opponent()
	for _, m := range moves {
		switch {
		case m.To.Kind == engine.KindFoundation:
			foundationCount++
		case isEmptyCreating(next, m):
			emptyCount++
		case m.To == engine.Waste(opp) || m.To == engine.Reserve(opp):
			attackCount++
		}
	}

	bonus := float64(foundationCount)*config.LookAheadFoundationBonus +
		float64(emptyCount)*config.LookAheadEmptyBonus +
		float64(attackCount)*config.LookAheadAttackBonus

	if depth > 1 && len(moves) > 0 {
		ordered := orderByPriority(moves, actor)
		branch := config.LookAheadBranchFactor
		if branch > len(ordered) {
			branch = len(ordered)
		}
		var deeper float64
		for _, m := range ordered[:branch] {
			deeper += lookAheadBonus(next, m, config, depth-1)
		}
		bonus += 0.5 * deeper
	}

	return bonus
}

// isEmptyCreating reports whether m moves a singleton tableau pile onto a
// non-empty tableau pile — the same shape as CREATES_USEFUL_EMPTY.
func isEmptyCreating(state *engine.GameState, m engine.Move) bool {
	if m.From.Kind != engine.KindTableau || m.To.Kind != engine.KindTableau {
		return false
	}
	singleton := len(state.Player(m.From.Owner).Tableau[m.From.Index]) == 1
	destNonEmpty := len(state.Player(m.To.Owner).Tableau[m.To.Index]) > 0
	return singleton && destNonEmpty
}
