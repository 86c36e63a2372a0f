// Command benchmark plays an exported weights file against the reference
// baseline and reports win/loss/draw counts (spec.md §6).
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
	"github.com/beauBalthazarBruneau/Solitario-Russo/evolution"
)

var (
	weightsPath string
	games       int
	maxTurns    int
)

func init() {
	flag.StringVar(&weightsPath, "weights", "", "path to a weights file saved by train (required)")
	flag.IntVar(&games, "games", 20, "number of paired games to play per side")
	flag.IntVar(&maxTurns, "max-turns", 1000, "turn cap per game")
}

func main() {
	flag.Parse()

	if weightsPath == "" {
		fmt.Fprintln(os.Stderr, "benchmark: --weights PATH is required")
		os.Exit(1)
	}

	wf, err := evolution.LoadWeightsFile(weightsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seeds := make([]int64, games)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	ind := &evolution.Individual{Weights: wf.Weights}
	evolution.EvaluateIndividual(ind, ai.DefaultWeights(), seeds, games, maxTurns, ai.DefaultConfig())

	fmt.Printf("Games played: %d\n", ind.GamesPlayed)
	fmt.Printf("Wins:  %d\n", ind.Wins)
	fmt.Printf("Losses: %d\n", ind.Losses)
	fmt.Printf("Draws: %d\n", ind.Draws)
	fmt.Printf("Fitness: %.4f\n", ind.Fitness)
}
