package agent

import (
	"context"
	"othello/game"
	"sync"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// Agents with the same seed play the same moves on the same boards.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, b game.Board, color game.Color) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	if !color.Valid() {
		return Decision{}, game.ErrInvalidColor
	}
	moves, ok := game.EnumerateMoves(b, color)
	if !ok {
		return Decision{}, nil
	}

	a.Lock()
	defer a.Unlock()
	return Decision{Move: moves[a.rng.Intn(len(moves))], Found: true}, nil
}
