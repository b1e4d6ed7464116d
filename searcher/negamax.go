package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Negamax scores b for color with alpha-beta pruning inside the window
// (alpha, beta), looking depth plies ahead. Moves are tried in enumeration
// order and only a strictly better value replaces the current best, so equal
// values keep the earlier move. stats may be nil.
func Negamax(b game.Board, color game.Color, alpha, beta, depth int, stats metrics.Collector) Result {
	if stats == nil {
		stats = metrics.NewDummyCollector()
	}
	return negamax(b, color, alpha, beta, depth, stats)
}

func negamax(b game.Board, color game.Color, alpha, beta, depth int, stats metrics.Collector) Result {
	stats.AddNode()

	if depth == 0 {
		stats.AddLeaf()
		return Result{Value: game.Heuristic(b, color)}
	}

	moves, ok := game.EnumerateMoves(b, color)
	if !ok {
		opponent := color.Opponent()
		if game.HasNoMove(b, opponent) {
			stats.AddTerminal()
			return Result{Value: game.TerminalValue(b, color)}
		}
		// Pass: the opponent moves again on the same board
		stats.AddPass()
		reply := negamax(b, opponent, -beta, -alpha, depth-1, stats)
		return Result{Value: -reply.Value}
	}

	best := Result{Move: moves[0], Found: true, Value: alpha}
	for _, move := range moves {
		if beta <= alpha {
			stats.AddCutoff()
			break
		}
		child := game.MustApplyMove(b, move.Coord, color)
		value := -negamax(child, color.Opponent(), -beta, -alpha, depth-1, stats).Value
		if value > alpha {
			alpha = value
			best = Result{Move: move, Found: true, Value: alpha}
		}
	}
	return best
}

// BestMove searches depth plies and returns the move it prefers for color.
// ok is false when color has no legal move.
func BestMove(b game.Board, color game.Color, depth int) (game.Move, bool, error) {
	r, err := search(b, color, depth, nil)
	if err != nil {
		return game.Move{}, false, err
	}
	return r.Move, r.Found, nil
}

func search(b game.Board, color game.Color, depth int, stats metrics.Collector) (Result, error) {
	if depth < 1 {
		return Result{}, ErrInvalidDepth
	}
	if !color.Valid() {
		return Result{}, game.ErrInvalidColor
	}
	if game.HasNoMove(b, color) {
		return Result{}, nil
	}
	return Negamax(b, color, game.MinScore, game.MaxScore, depth, stats), nil
}
