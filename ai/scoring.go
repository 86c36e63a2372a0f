package ai

import "github.com/beauBalthazarBruneau/Solitario-Russo/engine"

// scoreMove computes the weighted feature score for move in state, not
// including the shuffle-pattern penalty or look-ahead bonus (those are
// applied by the caller, since they need the turn's running memory).
func scoreMove(state *engine.GameState, move engine.Move, weights Weights) float64 {
	actor := state.CurrentTurn
	opp := actor.Opponent()
	var score float64

	if move.To.Kind == engine.KindFoundation {
		score += weights[FeatureToFoundation]
		switch move.Card.Rank {
		case 1:
			score += weights[FeaturePlaysAce]
		case 2:
			score += weights[FeaturePlaysTwo]
		}
	}
	if move.To == engine.Reserve(opp) {
		score += weights[FeatureAttackReserve]
	}
	if move.To == engine.Waste(opp) {
		score += weights[FeatureAttackWaste]
	}
	if move.To.Kind == engine.KindTableau {
		if move.To.Owner == actor {
			score += weights[FeatureToOwnTableau]
		} else {
			score += weights[FeatureToOpponentTableau]
		}
	}

	switch move.From.Kind {
	case engine.KindReserve:
		score += weights[FeatureFromReserve]
		if len(state.Player(actor).Reserve) == 1 {
			score += weights[FeatureEmptiesReserve]
		}
	case engine.KindWaste, engine.KindDrawn:
		score += weights[FeatureFromWaste]
	case engine.KindTableau:
		score += weights[FeatureFromTableau]
		score += tableauSourceScore(state, move, weights)
	}

	if move.To.Kind == engine.KindTableau && move.To.Owner == actor {
		score += tableauDestinationScore(state, actor, move, weights)
	}

	return score
}

// tableauSourceScore covers the four source-side tableau features: the
// pointless-shuffle/useful-empty pair (singleton pile), the empty-tableau
// bonus (last card removed to foundation/attack), and the no-benefit
// penalty (multi-card pile exposing a dead card).
func tableauSourceScore(state *engine.GameState, move engine.Move, weights Weights) float64 {
	pile := state.Player(move.From.Owner).Tableau[move.From.Index]
	var score float64

	singleton := len(pile) == 1
	opp := state.CurrentTurn.Opponent()
	isFoundationDest := move.To.Kind == engine.KindFoundation
	isAttackDest := move.To == engine.Waste(opp) || move.To == engine.Reserve(opp)

	if singleton {
		if move.To.Kind == engine.KindTableau {
			destEmpty := len(state.Player(move.To.Owner).Tableau[move.To.Index]) == 0
			if destEmpty {
				score += weights[FeaturePointlessTableauShuffle]
			} else {
				score += weights[FeatureCreatesUsefulEmpty]
			}
		}
		if isFoundationDest || isAttackDest {
			score += weights[FeatureCreatesEmptyTableau]
		}
	} else if len(pile) > 1 {
		exposed := pile[len(pile)-2]
		if !hasFoundationOrAttackPlay(state, move.From.Owner, exposed) {
			score += weights[FeatureTableauMoveNoBenefit]
		}
	}

	return score
}

// hasFoundationOrAttackPlay reports whether c has any legal foundation or
// opponent-attack destination in state if played by owner (the player
// whose tableau pile currently holds it), used to judge whether exposing c
// is beneficial (spec.md §4.2.2's TABLEAU_MOVE_NO_BENEFIT).
func hasFoundationOrAttackPlay(state *engine.GameState, owner engine.Origin, c engine.Card) bool {
	for i := 0; i < 8; i++ {
		if state.CanPlayOnFoundation(c, i) {
			return true
		}
	}
	opp := owner.Opponent()
	if state.CanPlayOnOpponentPile(c, engine.Waste(opp)) {
		return true
	}
	if state.CanPlayOnOpponentPile(c, engine.Reserve(opp)) {
		return true
	}
	return false
}

// tableauDestinationScore covers STACK_HEIGHT_BONUS and SPREAD_PENALTY,
// both defined only for moves landing on the acting player's own tableau.
func tableauDestinationScore(state *engine.GameState, actor engine.Origin, move engine.Move, weights Weights) float64 {
	tableau := state.Player(actor).Tableau

	beforeMax, beforeSpread := 0, 0
	lens := [4]int{}
	for i, pile := range tableau {
		lens[i] = len(pile)
		if lens[i] > beforeMax {
			beforeMax = lens[i]
		}
		if lens[i] > 0 {
			beforeSpread++
		}
	}

	if move.From.Kind == engine.KindTableau && move.From.Owner == actor {
		lens[move.From.Index]--
	}
	lens[move.To.Index]++

	afterMax, afterSpread := 0, 0
	for _, l := range lens {
		if l > afterMax {
			afterMax = l
		}
		if l > 0 {
			afterSpread++
		}
	}

	var score float64
	if dh := afterMax - beforeMax; dh > 0 {
		score += weights[FeatureStackHeightBonus] * float64(dh)
	}
	if ds := afterSpread - beforeSpread; ds != 0 {
		score += weights[FeatureSpreadPenalty] * float64(ds)
	}
	return score
}
