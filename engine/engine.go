package engine

import (
	"context"
	"errors"
	"othello/experiments/metrics"
	"othello/game"
)

var (
	ErrGameOver     = errors.New("game is over - no moves allowed")
	ErrHumanTurn    = errors.New("side to move is played by a human")
	ErrNotHumanTurn = errors.New("side to move is played by an agent")
	ErrNoAgentMove  = errors.New("agent passed although a legal move exists")
	ErrTurnLimit    = errors.New("turn limit reached before the game ended")
)

type Runner interface {
	// Run plays agent moves until the game ends
	Run(ctx context.Context) (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Update records one move applied by the engine.
type Update struct {
	Step   int
	Player game.Color
	Move   game.Move
	Board  game.Board
	Hash   uint64
	Pass   bool // The opponent has no reply, Player moves again
	Metric metrics.SearchMetric
}
