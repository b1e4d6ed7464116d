package agent

import (
	"context"
	"othello/experiments/metrics"
	"othello/game"
)

// Decision is an agent's answer for one turn. Found is false when the side to
// move has no legal move and must pass.
type Decision struct {
	Move   game.Move
	Found  bool
	Metric metrics.SearchMetric
}

type Agent interface {
	// FindMove chooses a move for color on an immutable snapshot of the board
	FindMove(ctx context.Context, b game.Board, color game.Color) (Decision, error)
}
