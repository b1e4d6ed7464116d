package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth limited negamax searcher. It holds configuration only,
// so one value may serve concurrent searches.
type AlphaBeta struct {
	depth   int
	metrics bool
}

// WithDepth sets the search depth. A depth below 1 is ignored with a warning.
func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth < 1 {
			log.Warn().Msgf("ignoring search depth %d: %v", depth, ErrInvalidDepth)
			return
		}
		ab.depth = depth
	}
}

// WithMetrics makes Search count nodes, leaves, passes and cutoffs.
func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = true
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{depth: 1}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

// Search runs one negamax search for color. Each call gets its own collector.
func (ab *AlphaBeta) Search(b game.Board, color game.Color) (Result, metrics.SearchMetric, error) {
	collector := metrics.NewDummyCollector()
	if ab.metrics {
		collector = metrics.NewCollector()
	}

	collector.Start(ab.depth)
	r, err := search(b, color, ab.depth, collector)
	if err != nil {
		return Result{}, metrics.SearchMetric{}, err
	}
	return r, collector.Complete(r.Value), nil
}

func (ab *AlphaBeta) FindMove(b game.Board, color game.Color) (game.Move, bool, error) {
	r, _, err := ab.Search(b, color)
	if err != nil {
		return game.Move{}, false, err
	}
	return r.Move, r.Found, nil
}
