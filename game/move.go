package game

import (
	"fmt"
	"strings"
)

// Coord addresses a cell by row and column, both in [0, Size).
type Coord struct {
	Row int
	Col int
}

func (c Coord) InBounds() bool {
	return InBounds(c.Row, c.Col)
}

// String renders the coordinate in algebraic form: column letter, then row number.
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
}

// ParseCoord reads the algebraic form written by Coord.String, e.g. "d3".
func ParseCoord(s string) (Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	c := Coord{Row: int(s[1]) - '1', Col: int(s[0]) - 'a'}
	if !c.InBounds() {
		return Coord{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	return c, nil
}

// Move is a legal destination found by enumeration. Gain is the capture weight
// reported by LegalMoveGain, which stops at the first capturing direction and
// so may be lower than the number of stones ApplyMove flips.
type Move struct {
	Coord Coord
	Gain  int
}

func (m Move) String() string {
	return fmt.Sprintf("%s(+%d)", m.Coord, m.Gain)
}
