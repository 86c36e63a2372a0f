package ai

import (
	"fmt"

	"github.com/beauBalthazarBruneau/Solitario-Russo/engine"
)

// movePattern renders a move's location shape with card identity excluded,
// per spec.md §4.2.4: "from-kind:from-owner:from-idx -> to-kind:to-owner:to-idx".
func movePattern(m engine.Move) string {
	return fmt.Sprintf("%d:%d:%d->%d:%d:%d",
		m.From.Kind, m.From.Owner, m.From.Index,
		m.To.Kind, m.To.Owner, m.To.Index)
}

// isTableauToTableau reports whether a move's pattern is eligible for the
// shuffle-pattern penalty (only tableau-to-tableau moves are penalized).
func isTableauToTableau(m engine.Move) bool {
	return m.From.Kind == engine.KindTableau && m.To.Kind == engine.KindTableau
}

// shufflePenalty returns the score deduction for m given the current
// pattern window: shufflePenalty × (count of identical patterns in window).
func shufflePenalty(m engine.Move, mem *turnMemory, perRepeat float64) float64 {
	if !isTableauToTableau(m) {
		return 0
	}
	pattern := movePattern(m)
	count := 0
	for _, p := range mem.patternWindow {
		if p == pattern {
			count++
		}
	}
	return perRepeat * float64(count)
}

// recordPattern appends m's pattern to the sliding window, trimming to the
// configured memory size. Every applied move is recorded, not only
// tableau-to-tableau ones, since the window tracks general move shape.
func recordPattern(mem *turnMemory, m engine.Move) {
	mem.patternWindow = append(mem.patternWindow, movePattern(m))
	if excess := len(mem.patternWindow) - mem.patternMemory; excess > 0 {
		mem.patternWindow = mem.patternWindow[excess:]
	}
}
