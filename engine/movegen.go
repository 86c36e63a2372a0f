package engine

// Move describes moving Card from one pile to another. Card is redundant
// with the source pile's top (spec.md §3) but is kept for notation,
// logging, and validation symmetry.
type Move struct {
	From PileLocation
	To   PileLocation
	Card Card
}

// LegalMoves enumerates every legal move for the current player in state.
// If the player holds a drawn card, that card is the only legal source
// (spec.md §4.1.3's immediate-play rule) — no other source is enumerated.
// Otherwise sources are the top of the player's own reserve and the top of
// every tableau pile (both players').
func (s *GameState) LegalMoves() []Move {
	if s.Phase == Ended {
		return nil
	}
	actor := s.CurrentTurn
	player := s.Player(actor)

	if player.DrawnCard != nil {
		card := *player.DrawnCard
		from := Drawn(actor)
		return movesFrom(s, actor, from, card)
	}

	var moves []Move

	if top, ok := s.TopCard(Reserve(actor)); ok {
		moves = append(moves, movesFrom(s, actor, Reserve(actor), top)...)
	}

	for owner := range [2]Origin{Player1, Player2} {
		o := Origin(owner)
		for idx := 0; idx < 4; idx++ {
			loc := Tableau(o, idx)
			if top, ok := s.TopCard(loc); ok {
				moves = append(moves, movesFrom(s, actor, loc, top)...)
			}
		}
	}

	return moves
}

func movesFrom(s *GameState, actor Origin, from PileLocation, card Card) []Move {
	dests := s.destinations(actor, card)
	moves := make([]Move, 0, len(dests))
	for _, to := range dests {
		moves = append(moves, Move{From: from, To: to, Card: card})
	}
	return moves
}

// equalMove reports whether two moves name the same source, destination,
// and card — the membership test ApplyMove runs against LegalMoves.
func equalMove(a, b Move) bool {
	return a.From == b.From && a.To == b.To && a.Card == b.Card
}

func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if equalMove(candidate, m) {
			return true
		}
	}
	return false
}
