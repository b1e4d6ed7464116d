package engine

import (
	"context"
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine owns the current board and decides whose turn it is. A nil agent
// seat is played by a human through Play; agent seats move through Step.
type Engine struct {
	board    game.Board
	turn     game.Color
	starting game.Color
	agents   map[game.Color]agent.Agent
	history  []Update
	over     bool
	maxTurns int
}

// WithPosition starts the game from b with turn to move instead of the opening.
// A turn that is not a playing color keeps the opening and logs a warning.
func WithPosition(b game.Board, turn game.Color) Option {
	return func(e *Engine) {
		if !turn.Valid() {
			log.Warn().Msgf("ignoring position with %v to move: %v", turn, game.ErrInvalidColor)
			return
		}
		e.board = b
		e.turn = turn
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func LocalEngine(black, white agent.Agent, options ...Option) *Engine {
	e := &Engine{ // Default values
		board:    game.InitialBoard(),
		turn:     game.Black,
		agents:   map[game.Color]agent.Agent{game.Black: black, game.White: white},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}

	// The side to move may already be stuck in a custom position
	if game.IsTerminal(e.board, game.Black, game.White) {
		e.over = true
	} else if game.HasNoMove(e.board, e.turn) {
		e.turn = e.turn.Opponent()
	}
	e.starting = e.turn
	return e
}

func (e *Engine) Board() game.Board {
	return e.board
}

// Turn is the color to move. It is None once the game is over.
func (e *Engine) Turn() game.Color {
	if e.over {
		return game.None
	}
	return e.turn
}

func (e *Engine) Over() bool {
	return e.over
}

func (e *Engine) Outcome() game.Outcome {
	return game.Result(e.board)
}

func (e *Engine) History() []Update {
	history := make([]Update, len(e.history))
	copy(history, e.history)
	return history
}

// Play applies a human move for the side to move.
func (e *Engine) Play(c game.Coord) (Update, error) {
	if e.over {
		return Update{}, ErrGameOver
	}
	if e.agents[e.turn] != nil {
		return Update{}, ErrNotHumanTurn
	}
	return e.apply(c, metrics.SearchMetric{})
}

// Step asks the agent of the side to move for its move and applies it.
func (e *Engine) Step(ctx context.Context) (Update, error) {
	if e.over {
		return Update{}, ErrGameOver
	}
	a := e.agents[e.turn]
	if a == nil {
		return Update{}, ErrHumanTurn
	}

	decision, err := a.FindMove(ctx, e.board, e.turn)
	if err != nil {
		return Update{}, fmt.Errorf("%v agent: %w", e.turn, err)
	}
	if !decision.Found {
		return Update{}, fmt.Errorf("%v agent: %w", e.turn, ErrNoAgentMove)
	}
	return e.apply(decision.Move.Coord, decision.Metric)
}

func (e *Engine) apply(c game.Coord, metric metrics.SearchMetric) (Update, error) {
	player := e.turn
	next, err := game.ApplyMove(e.board, c, player)
	if err != nil {
		return Update{}, err
	}
	gain := game.LegalMoveGain(e.board, c.Row, c.Col, player)
	e.board = next
	pass := e.advance(player)

	u := Update{
		Step:   len(e.history) + 1,
		Player: player,
		Move:   game.Move{Coord: c, Gain: gain},
		Board:  next,
		Hash:   next.Hash(),
		Pass:   pass,
		Metric: metric,
	}
	e.history = append(e.history, u)

	log.Debug().Msgf("step %d: %v plays %v", u.Step, player, c)
	if pass {
		log.Debug().Msgf("%v has no move and passes", player.Opponent())
	}
	return u, nil
}

// advance hands the turn to the opponent of mover, or back to mover when the
// opponent has no move. It reports whether the opponent passed.
func (e *Engine) advance(mover game.Color) bool {
	if game.IsTerminal(e.board, game.Black, game.White) {
		e.over = true
		return false
	}
	opponent := mover.Opponent()
	if game.HasNoMove(e.board, opponent) {
		e.turn = mover
		return true
	}
	e.turn = opponent
	return false
}

// Run executes the game loop until it is over or the turn limit is reached.
func (e *Engine) Run(ctx context.Context) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	startTime := time.Now()
	log.Info().Msgf("%v is starting", e.Turn())

	var moveMetrics []metrics.MoveMetric
	for !e.over && len(e.history) < e.maxTurns {
		u, err := e.Step(ctx)
		if err != nil {
			return game.Outcome{}, metrics.GameMetric{}, moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         u.Step,
			Player:       u.Player,
			Move:         u.Move.Coord.String(),
			Pass:         u.Pass,
			Hash:         u.Hash,
			SearchMetric: u.Metric,
		})
	}
	if !e.over {
		return game.Outcome{}, metrics.GameMetric{}, moveMetrics, ErrTurnLimit
	}

	outcome := e.Outcome()
	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.starting,
		Winner:         outcome.Winner,
		Black:          outcome.Black,
		White:          outcome.White,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     len(e.history),
		Passes:         e.passes(),
	}
	log.Info().Msgf("game over after %d moves: %s %d-%d", gameMetric.TotalMoves, outcome.Label(), outcome.Black, outcome.White)
	return outcome, gameMetric, moveMetrics, nil
}

func (e *Engine) passes() int {
	n := 0
	for _, u := range e.history {
		if u.Pass {
			n++
		}
	}
	return n
}
