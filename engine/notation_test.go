package engine

import "testing"

// TestNotationRoundTrip covers spec.md's R2 property: replaying a game's
// NotationLog against its initial state reproduces the same final state.
func TestNotationRoundTrip(t *testing.T) {
	seed := int64(2024)
	initial := Initialize(&seed)
	s := initial

	for i := 0; i < 200 && s.Phase == Playing; i++ {
		moves := s.LegalMoves()
		var err error
		if len(moves) > 0 {
			s, err = s.ApplyMove(moves[0])
		} else {
			s, _, err = s.DrawFromHand()
		}
		if err != nil {
			t.Fatalf("step %d: unexpected error %v", i, err)
		}
	}

	replayInitial := Initialize(&seed)
	replayed, err := ParseNotation(s.NotationLog, replayInitial)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	if replayed.MoveCount != s.MoveCount {
		t.Errorf("move count diverged: got %d, want %d", replayed.MoveCount, s.MoveCount)
	}
	if replayed.Phase != s.Phase {
		t.Errorf("phase diverged: got %v, want %v", replayed.Phase, s.Phase)
	}
	if replayed.CurrentTurn != s.CurrentTurn {
		t.Errorf("current turn diverged: got %v, want %v", replayed.CurrentTurn, s.CurrentTurn)
	}
	for i := range replayed.Foundations {
		if len(replayed.Foundations[i]) != len(s.Foundations[i]) {
			t.Errorf("foundation %d length diverged: got %d, want %d", i, len(replayed.Foundations[i]), len(s.Foundations[i]))
		}
	}
}

func TestMoveNotationFormat(t *testing.T) {
	m := Move{
		From: Reserve(Player1),
		To:   Foundation(0),
		Card: Card{Rank: 1, Suit: Hearts, Origin: Player1},
	}
	got := moveNotation(m)
	want := "AH1:R1-F1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDrawNotationFormat(t *testing.T) {
	if got := drawNotation(Player1); got != "D1" {
		t.Errorf("got %q, want %q", got, "D1")
	}
	if got := drawNotation(Player2); got != "D2" {
		t.Errorf("got %q, want %q", got, "D2")
	}
}

func TestParseLocationRoundTrip(t *testing.T) {
	locs := []PileLocation{
		Foundation(3),
		Tableau(Player2, 2),
		Reserve(Player1),
		Waste(Player2),
		Drawn(Player1),
	}
	for _, loc := range locs {
		parsed, err := parseLocation(loc.String())
		if err != nil {
			t.Fatalf("parseLocation(%q): %v", loc.String(), err)
		}
		if parsed != loc {
			t.Errorf("round trip mismatch: got %+v, want %+v", parsed, loc)
		}
	}
}
