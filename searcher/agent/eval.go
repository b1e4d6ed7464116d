package agent

import (
	"context"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	searcher *searcher.AlphaBeta
}

// NewSearchAgent returns an agent that plays the alpha-beta choice at depth.
func NewSearchAgent(depth int) Agent {
	return searchAgent{searcher: searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics())}
}

type searchResult struct {
	result searcher.Result
	metric metrics.SearchMetric
	err    error
}

// FindMove searches on a separate goroutine and waits for the result or for
// ctx to finish. A cancelled search keeps running until its depth is
// exhausted; its result is dropped.
func (a searchAgent) FindMove(ctx context.Context, b game.Board, color game.Color) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	done := make(chan searchResult, 1)
	go func() {
		r, metric, err := a.searcher.Search(b, color)
		done <- searchResult{result: r, metric: metric, err: err}
	}()

	select {
	case <-ctx.Done():
		return Decision{}, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return Decision{}, res.err
		}
		log.Debug().Msgf("%v searched %d nodes to depth %d in %v: %v scores %d",
			color, res.metric.Nodes, res.metric.Depth, res.metric.Duration, res.result.Move.Coord, res.result.Value)
		return Decision{Move: res.result.Move, Found: res.result.Found, Metric: res.metric}, nil
	}
}
