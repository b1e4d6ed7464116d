package game

import "fmt"

// CountCaptures measures the run of stones starting at (row, col) and heading
// in direction (dRow, dCol). The start cell must hold a stone. The run counts
// the start cell plus every following stone of the same color; it is
// capturable, and its length returned, only if it ends at a stone of the other
// color. A run ending at an empty cell or the board edge returns 0. The
// direction components must lie in {-1, 0, 1} and not both be 0.
func CountCaptures(b Board, row, col, dRow, dCol int) int {
	if !InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col))
	}
	if !validDirection(dRow, dCol) {
		panic(fmt.Errorf("%w: (%d,%d)", ErrInvalidDirection, dRow, dCol))
	}
	stone := b[row][col]
	if stone == None {
		panic(fmt.Errorf("count captures from empty cell (%d,%d)", row, col))
	}

	points := 1
	for r, c := row+dRow, col+dCol; ; r, c = r+dRow, c+dCol {
		if !InBounds(r, c) {
			return 0
		}
		switch b[r][c] {
		case None:
			return 0
		case stone:
			points++
		default:
			return points
		}
	}
}

func validDirection(dRow, dCol int) bool {
	return -1 <= dRow && dRow <= 1 && -1 <= dCol && dCol <= 1 && (dRow != 0 || dCol != 0)
}

// LegalMoveGain returns the capture weight of placing color on the empty cell
// (row, col). Directions are examined in a fixed order and the scan stops at
// the first one that captures anything, so the result says whether the move
// is legal but is not the number of stones the move flips.
func LegalMoveGain(b Board, row, col int, color Color) int {
	mustBeColor(color)
	if !InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col))
	}
	if b[row][col] != None {
		panic(fmt.Errorf("legal move gain on occupied cell (%d,%d)", row, col))
	}

	opponent := color.Opponent()
	points := 0
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			r, c := row+dRow, col+dCol
			if !InBounds(r, c) {
				continue
			}
			if b[r][c] == opponent {
				points += CountCaptures(b, r, c, dRow, dCol)
			}
			if points > 0 {
				return points
			}
		}
	}
	return points
}

// EnumerateMoves lists every legal move for color in row-major order. ok is
// false when color has no legal move at all.
func EnumerateMoves(b Board, color Color) (moves []Move, ok bool) {
	mustBeColor(color)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] != None {
				continue
			}
			if gain := LegalMoveGain(b, row, col, color); gain > 0 {
				moves = append(moves, Move{Coord: Coord{Row: row, Col: col}, Gain: gain})
			}
		}
	}
	return moves, len(moves) > 0
}

// IsLegal reports whether color may place a stone on c.
func IsLegal(b Board, c Coord, color Color) bool {
	if b.At(c) != None {
		return false
	}
	return LegalMoveGain(b, c.Row, c.Col, color) > 0
}

// ApplyMove places color on c and flips every line of opponent stones closed
// by another stone of color, in all eight directions. The input board is not
// modified. An out of bounds coordinate, a bad color or an illegal move is an
// error; no stone is placed on the caller's behalf.
func ApplyMove(b Board, c Coord, color Color) (Board, error) {
	if !c.InBounds() {
		return b, fmt.Errorf("apply %v: %w", c, ErrOutOfBounds)
	}
	if !color.Valid() {
		return b, fmt.Errorf("apply %v for %v: %w", c, color, ErrInvalidColor)
	}
	if !IsLegal(b, c, color) {
		return b, fmt.Errorf("apply %v for %v: %w", c, color, ErrIllegalMove)
	}
	return place(b, c, color), nil
}

// MustApplyMove is ApplyMove for moves known to be legal, such as those
// returned by EnumerateMoves. It panics otherwise.
func MustApplyMove(b Board, c Coord, color Color) Board {
	next, err := ApplyMove(b, c, color)
	if err != nil {
		panic(err)
	}
	return next
}

func place(b Board, c Coord, color Color) Board {
	next := b
	next[c.Row][c.Col] = color

	var flips [Size]Coord
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			n := 0
			for r, col := c.Row+dRow, c.Col+dCol; InBounds(r, col); r, col = r+dRow, col+dCol {
				cell := next[r][col]
				if cell == None {
					break
				}
				if cell == color {
					for _, f := range flips[:n] {
						next[f.Row][f.Col] = color
					}
					break
				}
				flips[n] = Coord{Row: r, Col: col}
				n++
			}
		}
	}
	return next
}
