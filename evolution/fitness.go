package evolution

import (
	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
	"github.com/beauBalthazarBruneau/Solitario-Russo/engine"
)

// sideOffset is the seed offset fitness evaluation applies when an
// individual plays as player2 (spec.md §4.3.3: "seeds[i] + 10^6").
const sideOffset = 1_000_000

// EvaluateIndividual plays gamesPerEvaluation paired games against
// baseline, alternating sides, and sets ind's Wins/Losses/Draws/
// GamesPlayed/Fitness (spec.md §4.3.3).
func EvaluateIndividual(ind *Individual, baseline ai.Weights, seeds []int64, gamesPerEvaluation, maxTurnsPerGame int, aiConfig ai.Config) {
	var wins, losses, draws int

	for i := 0; i < gamesPerEvaluation; i++ {
		winner := playGame(ind.Weights, baseline, seeds[i], maxTurnsPerGame, aiConfig)
		tally(winner, engine.Player1, &wins, &losses, &draws)

		winner = playGame(baseline, ind.Weights, seeds[i]+sideOffset, maxTurnsPerGame, aiConfig)
		tally(winner, engine.Player2, &wins, &losses, &draws)
	}

	ind.Wins, ind.Losses, ind.Draws = wins, losses, draws
	ind.GamesPlayed = wins + losses + draws
	ind.Fitness = float64(wins) / float64(2*gamesPerEvaluation)
}

func tally(winner *engine.Origin, individualSide engine.Origin, wins, losses, draws *int) {
	switch {
	case winner == nil:
		*draws++
	case *winner == individualSide:
		*wins++
	default:
		*losses++
	}
}

// playGame runs one game to completion (or to maxTurnsPerGame, a draw)
// under the engine rules, alternating computeTurn calls between the two
// weight vectors, each wrapped in its own stagnation adapter and pattern
// memory (spec.md §4.2.7, §5's "crossTurnRecentPatterns flows in/out as an
// explicit parameter, not shared state").
func playGame(weights1, weights2 ai.Weights, seed int64, maxTurnsPerGame int, config ai.Config) *engine.Origin {
	state := engine.Initialize(&seed)
	defer engine.Release(state)

	var patterns [2][]string
	var stagnation [2]stagnationState

	for turn := 0; turn < maxTurnsPerGame && state.Phase == engine.Playing; turn++ {
		actor := state.CurrentTurn
		weights := weights1
		if actor == engine.Player2 {
			weights = weights2
		}

		cfg := stagnation[actor].adapt(config)
		steps, nextPatterns := ai.ComputeTurn(state, weights, cfg, patterns[actor])
		patterns[actor] = nextPatterns
		stagnation[actor].observe(steps)

		if len(steps) == 0 {
			break
		}
		state = steps[len(steps)-1].State
	}

	if state.Phase == engine.Ended {
		return state.Winner
	}
	return nil
}
