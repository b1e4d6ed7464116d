package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	require.NoError(t, err)
	return b
}

// Two capturing directions from c3: two stones to the right and one below.
// The run to the left is not closed by a black stone.
const twoLines = `
  abcdefgh
1 ........
2 ........
3 OO.OOX..
4 ..O.....
5 ..X.....
6 ........
7 ........
8 ........
`

func TestInitialBoard(t *testing.T) {
	b := InitialBoard()

	black, white := Score(b, Black, White)
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)
	require.Equal(t, Cells-4, b.Empty(), "Only the four center cells should be occupied")

	require.Equal(t, White, b[3][3])
	require.Equal(t, Black, b[3][4])
	require.Equal(t, Black, b[4][3])
	require.Equal(t, White, b[4][4])
	require.Equal(t, b[3][3], b[4][4], "Each color should hold a diagonal")
	require.Equal(t, b[3][4], b[4][3], "Each color should hold a diagonal")
}

func TestColorOpponent(t *testing.T) {
	for _, c := range []Color{Black, White} {
		require.NotEqual(t, c, c.Opponent())
		require.Equal(t, c, c.Opponent().Opponent(), "Opponent should be involutive")
	}
	require.Equal(t, None, None.Opponent())
	require.False(t, None.Valid())
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{7, 7, true},
		{3, 5, true},
		{-1, 0, false},
		{0, -1, false},
		{8, 0, false},
		{0, 8, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, InBounds(tt.row, tt.col), "InBounds(%d, %d)", tt.row, tt.col)
	}
}

func TestCountCaptures(t *testing.T) {
	b := mustParse(t, twoLines)

	t.Run("run closed by the other color", func(t *testing.T) {
		require.Equal(t, 2, CountCaptures(b, 2, 3, 0, 1))
		require.Equal(t, 1, CountCaptures(b, 3, 2, 1, 0))
	})

	t.Run("run reaching the board edge", func(t *testing.T) {
		require.Equal(t, 0, CountCaptures(b, 2, 1, 0, -1))
	})

	t.Run("run reaching an empty cell", func(t *testing.T) {
		require.Equal(t, 0, CountCaptures(b, 3, 2, -1, 1))
	})

	t.Run("panics on an empty start cell", func(t *testing.T) {
		require.Panics(t, func() { CountCaptures(b, 0, 0, 1, 1) })
	})

	t.Run("panics on a bad direction", func(t *testing.T) {
		for _, d := range [][2]int{{0, 0}, {2, 0}, {0, -2}, {1, 3}} {
			require.PanicsWithError(t,
				fmt.Errorf("%w: (%d,%d)", ErrInvalidDirection, d[0], d[1]).Error(),
				func() { CountCaptures(InitialBoard(), 3, 3, d[0], d[1]) })
		}
	})
}

func TestLegalMoveGain(t *testing.T) {
	t.Run("stops at the first capturing direction", func(t *testing.T) {
		b := mustParse(t, twoLines)
		require.Equal(t, 2, LegalMoveGain(b, 2, 2, Black),
			"Gain should be the count of the first capturing direction, not the sum")
	})

	t.Run("no capture", func(t *testing.T) {
		require.Equal(t, 0, LegalMoveGain(InitialBoard(), 0, 0, Black))
	})

	t.Run("panics on an occupied cell", func(t *testing.T) {
		require.Panics(t, func() { LegalMoveGain(InitialBoard(), 3, 3, Black) })
	})

	t.Run("panics on the empty color", func(t *testing.T) {
		require.Panics(t, func() { LegalMoveGain(InitialBoard(), 2, 3, None) })
	})
}

func TestEnumerateMoves(t *testing.T) {
	t.Run("opening moves in row-major order", func(t *testing.T) {
		moves, ok := EnumerateMoves(InitialBoard(), Black)

		require.True(t, ok)
		require.Equal(t, []Move{
			{Coord: Coord{2, 3}, Gain: 1},
			{Coord: Coord{3, 2}, Gain: 1},
			{Coord: Coord{4, 5}, Gain: 1},
			{Coord: Coord{5, 4}, Gain: 1},
		}, moves)
	})

	t.Run("no move is reported as absent", func(t *testing.T) {
		var b Board
		b[0][0] = White

		moves, ok := EnumerateMoves(b, Black)

		require.False(t, ok)
		require.Nil(t, moves)
	})

	t.Run("agrees with IsLegal on every cell", func(t *testing.T) {
		b := mustParse(t, midGame)
		for _, color := range []Color{Black, White} {
			moves, _ := EnumerateMoves(b, color)
			listed := map[Coord]bool{}
			for _, m := range moves {
				require.True(t, IsLegal(b, m.Coord, color), "%v should be legal for %v", m.Coord, color)
				listed[m.Coord] = true
			}
			for row := 0; row < Size; row++ {
				for col := 0; col < Size; col++ {
					c := Coord{row, col}
					require.Equal(t, listed[c], IsLegal(b, c, color), "%v for %v", c, color)
				}
			}
		}
	})
}

func TestIsLegal(t *testing.T) {
	b := InitialBoard()

	require.True(t, IsLegal(b, Coord{2, 3}, Black))
	require.False(t, IsLegal(b, Coord{2, 3}, White))
	require.False(t, IsLegal(b, Coord{3, 3}, Black), "Occupied cells are never legal")
	require.False(t, IsLegal(b, Coord{0, 0}, Black))
	require.Panics(t, func() { IsLegal(b, Coord{8, 0}, Black) })
}

func TestApplyMove(t *testing.T) {
	t.Run("opening capture", func(t *testing.T) {
		b := InitialBoard()

		got, err := ApplyMove(b, Coord{2, 3}, Black)

		require.NoError(t, err)
		require.Equal(t, Black, got[2][3], "Placed stone")
		require.Equal(t, Black, got[3][3], "Captured stone should flip")
		require.Equal(t, White, got[4][4], "Stones off the line should not change")
		require.Equal(t, InitialBoard(), b, "Input board should not change")

		black, white := Score(got, Black, White)
		require.Equal(t, 4, black)
		require.Equal(t, 1, white)
	})

	t.Run("flips every closed direction", func(t *testing.T) {
		b := mustParse(t, twoLines)

		got, err := ApplyMove(b, Coord{2, 2}, Black)

		require.NoError(t, err)
		require.Equal(t, mustParse(t, `
			........
			........
			OOXXXX..
			..X.....
			..X.....
			........
			........
			........
		`), got)
		require.Equal(t, 3, Count(got, Black)-Count(b, Black)-1,
			"Three stones should flip although the enumeration gain is 2")
	})

	t.Run("occupancy grows by exactly one", func(t *testing.T) {
		b := mustParse(t, midGame)
		for _, color := range []Color{Black, White} {
			moves, ok := EnumerateMoves(b, color)
			require.True(t, ok)
			for _, m := range moves {
				next, err := ApplyMove(b, m.Coord, color)
				require.NoError(t, err)
				require.Equal(t, b.Empty()-1, next.Empty(), "%v for %v", m.Coord, color)
			}
		}
	})

	t.Run("illegal move", func(t *testing.T) {
		b := InitialBoard()

		got, err := ApplyMove(b, Coord{0, 0}, Black)

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, b, got)
	})

	t.Run("occupied cell", func(t *testing.T) {
		_, err := ApplyMove(InitialBoard(), Coord{3, 3}, Black)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := ApplyMove(InitialBoard(), Coord{-1, 3}, Black)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("invalid color", func(t *testing.T) {
		_, err := ApplyMove(InitialBoard(), Coord{2, 3}, None)
		require.ErrorIs(t, err, ErrInvalidColor)
	})

	t.Run("must apply panics on illegal move", func(t *testing.T) {
		require.Panics(t, func() { MustApplyMove(InitialBoard(), Coord{0, 0}, Black) })
	})
}
