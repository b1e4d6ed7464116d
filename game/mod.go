package game

import "errors"

// Size is the number of rows and columns of the board.
const Size = 8

// Cells is the number of cells on the board.
const Cells = Size * Size

const (
	MaxScore = Cells  // Value of a decisive win
	MinScore = -Cells // Value of a decisive loss
)

// Color identifies the stone occupying a cell. None doubles as the empty cell.
type Color int8

const (
	None Color = iota
	Black
	White
)

var (
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrInvalidColor = errors.New("invalid stone color")
	ErrIllegalMove  = errors.New("illegal move")

	ErrInvalidDirection = errors.New("invalid scan direction")
)

// Opponent returns the other stone color. None has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

// Valid reports whether c is one of the two playing colors.
func (c Color) Valid() bool {
	return c == Black || c == White
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

func (c Color) symbol() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}

func mustBeColor(c Color) {
	if !c.Valid() {
		panic(ErrInvalidColor)
	}
}
