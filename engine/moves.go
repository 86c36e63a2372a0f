package engine

import (
	"fmt"
	"time"
)

// Initialize builds a new game. If seed is nil, a system-random seed is
// drawn and recorded on the returned state (spec.md §4.1.1) so later
// replay/reproduction can still reference it.
func Initialize(seed *int64) *GameState {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = time.Now().UnixNano()
	}

	state := getState()
	state.Seed = s

	deck1 := NewDeck(Player1)
	deck2 := NewDeck(Player2)

	g := newLCG(s)
	g.shuffle(deck1)
	g.shuffle(deck2)

	deal(&state.P1, deck1)
	deal(&state.P2, deck2)

	for i := range state.Foundations {
		state.Foundations[i] = nil
	}

	if g.float64() < 0.5 {
		state.CurrentTurn = Player1
	} else {
		state.CurrentTurn = Player2
	}
	state.Phase = Playing
	state.MoveCount = 0
	state.Winner = nil
	state.NotationLog = nil

	return state
}

// deal distributes one shuffled 52-card deck: first 12 to reserve, next 4
// as singleton tableau piles, remaining 36 to hand.
func deal(p *PlayerState, deck []Card) {
	p.Reserve = append([]Card(nil), deck[:12]...)
	for i := 0; i < 4; i++ {
		p.Tableau[i] = []Card{deck[12+i]}
	}
	p.Hand = append([]Card(nil), deck[16:]...)
	p.Waste = nil
	p.DrawnCard = nil
}

// ApplyMove validates move against LegalMoves(state) and, if legal, returns
// a new snapshot with the move applied. applyMove never ends a turn on its
// own: consecutive moves by the same player are all legal until they draw.
func (s *GameState) ApplyMove(move Move) (*GameState, error) {
	if !containsMove(s.LegalMoves(), move) {
		return nil, fmt.Errorf("apply move %v: %w", move, ErrInvalidMove)
	}

	next := s.Clone()
	actor := next.CurrentTurn
	player := next.Player(actor)

	switch move.From.Kind {
	case KindDrawn:
		player.DrawnCard = nil
		if len(player.Waste) > 0 {
			player.Waste = player.Waste[:len(player.Waste)-1]
		}
	case KindReserve, KindTableau:
		src := next.pile(move.From)
		*src = (*src)[:len(*src)-1]
	}

	dst := next.pile(move.To)
	*dst = append(*dst, move.Card)

	next.MoveCount++
	next.appendNotation(moveNotation(move))
	next.checkTermination()

	return next, nil
}

// DrawFromHand performs the draw-from-hand operation of spec.md §4.1.5:
// recycling waste into hand if hand is empty, popping hand's top onto
// waste, and resolving the immediate-play rule (ending the turn if the
// drawn card has no legal destination).
func (s *GameState) DrawFromHand() (*GameState, bool, error) {
	next := s.Clone()
	actor := next.CurrentTurn
	player := next.Player(actor)

	if len(player.Hand) == 0 {
		if len(player.Waste) == 0 {
			return nil, false, fmt.Errorf("draw from hand: %w", ErrNoCardsToDraw)
		}
		recycle(player)
		if len(player.Hand) == 0 {
			return nil, false, fmt.Errorf("draw from hand: %w", ErrNoCardsToDraw)
		}
	}

	card := player.Hand[len(player.Hand)-1]
	player.Hand = player.Hand[:len(player.Hand)-1]
	player.Waste = append(player.Waste, card)
	player.DrawnCard = &card

	next.MoveCount++
	next.appendNotation(drawNotation(actor))
	next.checkTermination()
	if next.Phase == Ended {
		return next, false, nil
	}

	turnEnded := false
	if len(next.destinations(actor, card)) == 0 {
		player.DrawnCard = nil
		next.CurrentTurn = actor.Opponent()
		turnEnded = true
	}

	return next, turnEnded, nil
}

// recycle reverses waste into hand (bottom of waste becomes top of hand, so
// it is drawn first) and empties waste, per spec.md §4.1.5.
func recycle(p *PlayerState) {
	n := len(p.Waste)
	reversed := make([]Card, n)
	for i, c := range p.Waste {
		reversed[n-1-i] = c
	}
	p.Hand = reversed
	p.Waste = nil
}

// checkTermination applies spec.md §4.1.6's win and move-limit checks.
func (s *GameState) checkTermination() {
	if s.P1.empty() {
		p := Player1
		s.Winner = &p
		s.Phase = Ended
		return
	}
	if s.P2.empty() {
		p := Player2
		s.Winner = &p
		s.Phase = Ended
		return
	}
	if s.MoveCount >= 1000 {
		s.Phase = Ended
		s.Winner = nil
	}
}

func (p *PlayerState) empty() bool {
	return len(p.Reserve) == 0 && len(p.Waste) == 0 && len(p.Hand) == 0
}

func (s *GameState) appendNotation(entry string) {
	s.NotationLog = append(s.NotationLog, entry)
}
