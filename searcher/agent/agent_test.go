package agent

import (
	"context"
	"othello/game"
	"othello/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchAgent(t *testing.T) {
	t.Run("plays the alpha-beta choice", func(t *testing.T) {
		b := game.InitialBoard()
		want, ok, err := searcher.BestMove(b, game.Black, 3)
		require.NoError(t, err)
		require.True(t, ok)

		got, err := NewSearchAgent(3).FindMove(context.Background(), b, game.Black)

		require.NoError(t, err)
		require.True(t, got.Found)
		require.Equal(t, want, got.Move)
		require.Equal(t, 3, got.Metric.Depth)
		require.Positive(t, got.Metric.Nodes)
	})

	t.Run("reports a pass", func(t *testing.T) {
		b := game.InitialBoard()
		b[3][4], b[4][3] = game.White, game.White

		got, err := NewSearchAgent(2).FindMove(context.Background(), b, game.Black)

		require.NoError(t, err)
		require.False(t, got.Found)
	})

	t.Run("stops waiting when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewSearchAgent(6).FindMove(ctx, game.InitialBoard(), game.Black)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("propagates search errors", func(t *testing.T) {
		_, err := NewSearchAgent(1).FindMove(context.Background(), game.InitialBoard(), game.None)
		require.ErrorIs(t, err, game.ErrInvalidColor)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		a := NewRandomAgent(1)
		b := game.InitialBoard()
		for i := 0; i < 20; i++ {
			got, err := a.FindMove(context.Background(), b, game.Black)
			require.NoError(t, err)
			require.True(t, got.Found)
			require.True(t, game.IsLegal(b, got.Move.Coord, game.Black))
		}
	})

	t.Run("same seed same moves", func(t *testing.T) {
		a1, a2 := NewRandomAgent(42), NewRandomAgent(42)
		b := game.InitialBoard()
		for i := 0; i < 10; i++ {
			m1, err := a1.FindMove(context.Background(), b, game.Black)
			require.NoError(t, err)
			m2, err := a2.FindMove(context.Background(), b, game.Black)
			require.NoError(t, err)
			require.Equal(t, m1, m2)
		}
	})

	t.Run("reports a pass", func(t *testing.T) {
		var b game.Board
		b[0][0] = game.White

		got, err := NewRandomAgent(1).FindMove(context.Background(), b, game.Black)

		require.NoError(t, err)
		require.False(t, got.Found)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewRandomAgent(1).FindMove(ctx, game.InitialBoard(), game.Black)

		require.ErrorIs(t, err, context.Canceled)
	})
}
