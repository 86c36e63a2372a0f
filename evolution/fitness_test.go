package evolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
	"github.com/beauBalthazarBruneau/Solitario-Russo/engine"
)

func TestEvaluateIndividualIsDeterministicForFixedSeeds(t *testing.T) {
	ind1 := &Individual{Weights: ai.DefaultWeights()}
	ind2 := &Individual{Weights: ai.DefaultWeights()}
	seeds := []int64{1, 2, 3}

	EvaluateIndividual(ind1, ai.DefaultWeights(), seeds, 3, 200, ai.DefaultConfig())
	EvaluateIndividual(ind2, ai.DefaultWeights(), seeds, 3, 200, ai.DefaultConfig())

	assert.Equal(t, ind1.Wins, ind2.Wins)
	assert.Equal(t, ind1.Losses, ind2.Losses)
	assert.Equal(t, ind1.Draws, ind2.Draws)
	assert.Equal(t, ind1.Fitness, ind2.Fitness)
}

func TestEvaluateIndividualTalliesEveryGame(t *testing.T) {
	ind := &Individual{Weights: ai.DefaultWeights()}
	seeds := []int64{10, 20}
	EvaluateIndividual(ind, ai.DefaultWeights(), seeds, len(seeds), 200, ai.DefaultConfig())

	require.Equal(t, 2*len(seeds), ind.GamesPlayed)
	assert.Equal(t, ind.Wins+ind.Losses+ind.Draws, ind.GamesPlayed)
	assert.GreaterOrEqual(t, ind.Fitness, 0.0)
	assert.LessOrEqual(t, ind.Fitness, 1.0)
}

func TestTallyClassifiesWinnerSide(t *testing.T) {
	var wins, losses, draws int
	p1 := engine.Player1

	tally(&p1, engine.Player1, &wins, &losses, &draws)
	assert.Equal(t, 1, wins)

	p2 := engine.Player2
	tally(&p2, engine.Player1, &wins, &losses, &draws)
	assert.Equal(t, 1, losses)

	tally(nil, engine.Player1, &wins, &losses, &draws)
	assert.Equal(t, 1, draws)
}

func TestPlayGameReturnsNilOnTurnCapDraw(t *testing.T) {
	var seed int64 = 42
	winner := playGame(ai.DefaultWeights(), ai.DefaultWeights(), seed, 0, ai.DefaultConfig())
	assert.Nil(t, winner)
}
