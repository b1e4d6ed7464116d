package searcher

import (
	"errors"
	"othello/game"
)

var ErrInvalidDepth = errors.New("search depth must be at least 1")

// Result is the outcome of searching one node. Found is false when the node
// was scored without choosing a move: a depth limit leaf, a finished game or
// a forced pass. Value is the backed-up negamax score from the perspective of
// the side to move; Move.Gain keeps the enumeration weight untouched.
type Result struct {
	Move  game.Move
	Found bool
	Value int
}
