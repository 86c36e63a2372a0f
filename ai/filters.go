package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beauBalthazarBruneau/Solitario-Russo/engine"
)

// turnMemory holds the cycle-detection state owned by a single computeTurn
// invocation (spec.md §5: "owned by a single turn's computeTurn invocation
// and discarded on return"), plus the shuffle-pattern window which flows
// in/out across turns as an explicit parameter.
type turnMemory struct {
	positionsSeen   map[positionKey]bool
	stateHashesSeen map[string]bool
	patternWindow   []string
	patternMemory   int
}

type positionKey struct {
	card engine.Card
	loc  engine.PileLocation
}

func newTurnMemory(recentPatterns []string, patternMemory int) *turnMemory {
	return &turnMemory{
		positionsSeen:   make(map[positionKey]bool),
		stateHashesSeen: make(map[string]bool),
		patternWindow:   append([]string(nil), recentPatterns...),
		patternMemory:   patternMemory,
	}
}

// resetCycleSets clears the position- and state-cycle sets, per spec.md
// §4.2.3 ("cleared after any successful draw").
func (m *turnMemory) resetCycleSets() {
	m.positionsSeen = make(map[positionKey]bool)
	m.stateHashesSeen = make(map[string]bool)
}

// observeAccessiblePositions records the (card, location) pair for every
// pile top legalMoves would consider as a source this step, ahead of
// filtering — the position-cycle filter's "every state observed this turn".
func observeAccessiblePositions(state *engine.GameState, mem *turnMemory) {
	actor := state.CurrentTurn
	if drawn, ok := state.TopCard(engine.Drawn(actor)); ok {
		mem.positionsSeen[positionKey{drawn, engine.Drawn(actor)}] = true
		return
	}
	if top, ok := state.TopCard(engine.Reserve(actor)); ok {
		mem.positionsSeen[positionKey{top, engine.Reserve(actor)}] = true
	}
	for owner := range [2]engine.Origin{engine.Player1, engine.Player2} {
		o := engine.Origin(owner)
		for idx := 0; idx < 4; idx++ {
			loc := engine.Tableau(o, idx)
			if top, ok := state.TopCard(loc); ok {
				mem.positionsSeen[positionKey{top, loc}] = true
			}
		}
	}
}

// observeStateHash records the canonical hash of state, ahead of filtering.
func observeStateHash(state *engine.GameState, mem *turnMemory) {
	mem.stateHashesSeen[canonicalHash(state)] = true
}

// canonicalHash enumerates per-player reserve, waste, tableau, and
// drawnCard, plus foundations, in a fixed order (spec.md §4.2.3). The
// observable contract is equality of the hash, not its textual form, so a
// string built from a fixed field order is sufficient.
func canonicalHash(state *engine.GameState) string {
	var b strings.Builder
	for _, o := range [2]engine.Origin{engine.Player1, engine.Player2} {
		p := state.Player(o)
		writePile(&b, p.Reserve)
		writePile(&b, p.Waste)
		for _, t := range p.Tableau {
			writePile(&b, t)
		}
		if p.DrawnCard != nil {
			fmt.Fprintf(&b, "D(%s)|", p.DrawnCard)
		} else {
			b.WriteString("D()|")
		}
	}
	for _, f := range state.Foundations {
		writePile(&b, f)
	}
	return b.String()
}

func writePile(b *strings.Builder, pile []engine.Card) {
	b.WriteByte('[')
	for _, c := range pile {
		b.WriteString(c.String())
		b.WriteByte(',')
	}
	b.WriteString("]|")
}

// filterCandidates applies spec.md §4.2.3's four filters, in fixed order.
func filterCandidates(state *engine.GameState, moves []engine.Move, mem *turnMemory) []engine.Move {
	actor := state.CurrentTurn
	cycleFiltersEnabled := state.Player(actor).DrawnCard == nil

	out := make([]engine.Move, 0, len(moves))
	for _, m := range moves {
		if isPointlessShuffle(state, m) {
			continue
		}
		if cycleFiltersEnabled {
			if mem.positionsSeen[positionKey{m.Card, m.To}] {
				continue
			}
			if mem.stateHashesSeen[resultingHash(state, m)] {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// isPointlessShuffle implements filter 4: a singleton tableau pile moved to
// an empty tableau, regardless of the drawn-card constraint.
func isPointlessShuffle(state *engine.GameState, m engine.Move) bool {
	if m.From.Kind != engine.KindTableau || m.To.Kind != engine.KindTableau {
		return false
	}
	singleton := len(state.Player(m.From.Owner).Tableau[m.From.Index]) == 1
	destEmpty := len(state.Player(m.To.Owner).Tableau[m.To.Index]) == 0
	return singleton && destEmpty
}

func resultingHash(state *engine.GameState, m engine.Move) string {
	next, err := state.ApplyMove(m)
	if err != nil {
		return ""
	}
	defer engine.Release(next)
	return canonicalHash(next)
}

// orderByPriority sorts moves for look-ahead branch selection: foundation
// plays first, then opponent attacks, then everything else, stable within
// each tier (spec.md §4.2.5).
func orderByPriority(moves []engine.Move, actor engine.Origin) []engine.Move {
	out := append([]engine.Move(nil), moves...)
	opp := actor.Opponent()
	rank := func(m engine.Move) int {
		switch {
		case m.To.Kind == engine.KindFoundation:
			return 0
		case m.To == engine.Waste(opp) || m.To == engine.Reserve(opp):
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return rank(out[i]) < rank(out[j]) })
	return out
}
