package engine

import "testing"

// totalCards counts every card across all piles — used to check invariant
// P1 (total population is always 104). The drawn slot is not counted
// separately: a drawn card also sits on top of its owner's waste.
func totalCards(s *GameState) int {
	n := 0
	for _, p := range [2]*PlayerState{&s.P1, &s.P2} {
		n += len(p.Reserve) + len(p.Waste) + len(p.Hand)
		for _, t := range p.Tableau {
			n += len(t)
		}
	}
	for _, f := range s.Foundations {
		n += len(f)
	}
	return n
}

func TestInitializeCardConservation(t *testing.T) {
	seed := int64(42)
	s := Initialize(&seed)
	if got := totalCards(s); got != 104 {
		t.Fatalf("expected 104 cards after initialize, got %d", got)
	}
	if len(s.P1.Reserve) != 12 || len(s.P2.Reserve) != 12 {
		t.Errorf("expected 12-card reserves, got p1=%d p2=%d", len(s.P1.Reserve), len(s.P2.Reserve))
	}
	if len(s.P1.Hand) != 36 || len(s.P2.Hand) != 36 {
		t.Errorf("expected 36-card hands, got p1=%d p2=%d", len(s.P1.Hand), len(s.P2.Hand))
	}
	for i, pile := range s.P1.Tableau {
		if len(pile) != 1 {
			t.Errorf("expected p1 tableau %d to have 1 card, got %d", i, len(pile))
		}
	}
	if s.Phase != Playing {
		t.Errorf("expected phase Playing, got %v", s.Phase)
	}
	if s.MoveCount != 0 {
		t.Errorf("expected move count 0, got %d", s.MoveCount)
	}
}

func TestInitializeSeedReproducibility(t *testing.T) {
	seed := int64(1234)
	a := Initialize(&seed)
	b := Initialize(&seed)

	if a.CurrentTurn != b.CurrentTurn {
		t.Fatalf("current turn diverged: %v vs %v", a.CurrentTurn, b.CurrentTurn)
	}
	for i := range a.P1.Reserve {
		if a.P1.Reserve[i] != b.P1.Reserve[i] {
			t.Fatalf("reserve card %d diverged: %v vs %v", i, a.P1.Reserve[i], b.P1.Reserve[i])
		}
	}
	for i := range a.P1.Hand {
		if a.P1.Hand[i] != b.P1.Hand[i] {
			t.Fatalf("hand card %d diverged: %v vs %v", i, a.P1.Hand[i], b.P1.Hand[i])
		}
	}
}

func TestCardConservationAcrossPlay(t *testing.T) {
	seed := int64(7)
	s := Initialize(&seed)

	for i := 0; i < 300 && s.Phase == Playing; i++ {
		moves := s.LegalMoves()
		var next *GameState
		var err error
		if len(moves) > 0 {
			next, err = s.ApplyMove(moves[0])
		} else {
			next, _, err = s.DrawFromHand()
		}
		if err != nil {
			t.Fatalf("step %d: unexpected error %v", i, err)
		}
		if got := totalCards(next); got != 104 {
			t.Fatalf("step %d: expected 104 cards, got %d", i, got)
		}
		s = next
	}
}

func TestEndedPhaseRejectsApplyMove(t *testing.T) {
	seed := int64(99)
	s := Initialize(&seed)
	s.Phase = Ended
	_, err := s.ApplyMove(Move{})
	if err == nil {
		t.Fatal("expected error applying move to ended game")
	}
}
