package engine

import "errors"

// The two engine error kinds of spec.md §7 (the third, the checkpoint
// version error, lives in package evolution). Both are returned as sentinel
// errors (errors.Is-compatible), never panicked — callers decide whether a
// failed move is a retry opportunity or a programming error.
var (
	// ErrInvalidMove is returned by ApplyMove when the move is not a member
	// of LegalMoves(state).
	ErrInvalidMove = errors.New("engine: invalid move")
	// ErrNoCardsToDraw is returned by DrawFromHand when both hand and waste
	// are empty (nothing left to recycle or draw).
	ErrNoCardsToDraw = errors.New("engine: no cards to draw")
)
