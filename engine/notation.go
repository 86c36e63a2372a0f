package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// moveNotation renders one applied move in the "<card>:<from>-<to>" grammar
// of spec.md §4.1.7 (PileLocation.String and Card.String already produce
// the exact location/card tokens the grammar specifies).
func moveNotation(m Move) string {
	return fmt.Sprintf("%s:%s-%s", m.Card, m.From, m.To)
}

// drawNotation renders a draw as "D{1|2}".
func drawNotation(actor Origin) string {
	return "D" + actor.String()
}

// ParseNotation replays a notation log against initial, returning the final
// state (spec.md's R2 round trip). Each entry is either a draw ("D1"/"D2")
// or a move ("<card>:<from>-<to>"); moves are replayed by parsing only the
// <from>/<to> locations and looking up the actual top card to play (rather
// than trusting the embedded card token), so replay is robust to the same
// move being legal from a slightly different but notation-identical state.
func ParseNotation(log []string, initial *GameState) (*GameState, error) {
	state := initial
	for i, entry := range log {
		var err error
		if strings.HasPrefix(entry, "D") && !strings.Contains(entry, ":") {
			state, _, err = state.DrawFromHand()
		} else {
			var move Move
			move, err = parseMoveEntry(state, entry)
			if err == nil {
				state, err = state.ApplyMove(move)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("replay entry %d (%q): %w", i, entry, err)
		}
	}
	return state, nil
}

func parseMoveEntry(state *GameState, entry string) (Move, error) {
	parts := strings.SplitN(entry, ":", 2)
	if len(parts) != 2 {
		return Move{}, fmt.Errorf("malformed move entry %q", entry)
	}
	locParts := strings.SplitN(parts[1], "-", 2)
	if len(locParts) != 2 {
		return Move{}, fmt.Errorf("malformed move locations %q", parts[1])
	}

	from, err := parseLocation(locParts[0])
	if err != nil {
		return Move{}, err
	}
	to, err := parseLocation(locParts[1])
	if err != nil {
		return Move{}, err
	}

	card, ok := state.TopCard(from)
	if !ok {
		return Move{}, fmt.Errorf("no card at source %s", locParts[0])
	}
	return Move{From: from, To: to, Card: card}, nil
}

func parseLocation(tok string) (PileLocation, error) {
	if len(tok) < 2 {
		return PileLocation{}, fmt.Errorf("malformed location %q", tok)
	}
	kind, rest := tok[0], tok[1:]
	switch kind {
	case 'F':
		idx, err := strconv.Atoi(rest)
		if err != nil {
			return PileLocation{}, fmt.Errorf("malformed foundation location %q: %w", tok, err)
		}
		return Foundation(idx - 1), nil
	case 'R':
		return Reserve(parseOrigin(rest)), nil
	case 'W':
		return Waste(parseOrigin(rest)), nil
	case 'G':
		return Drawn(parseOrigin(rest)), nil
	case 'T':
		if len(rest) < 2 {
			return PileLocation{}, fmt.Errorf("malformed tableau location %q", tok)
		}
		owner := parseOrigin(rest[:1])
		idx := int(rest[1] - 'a')
		return Tableau(owner, idx), nil
	default:
		return PileLocation{}, fmt.Errorf("unknown location kind %q", tok)
	}
}

func parseOrigin(tok string) Origin {
	if tok == "2" {
		return Player2
	}
	return Player1
}
