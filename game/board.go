package game

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Board is an 8x8 grid of stones. It is an array, so assigning or passing a
// Board copies it; operations never modify a board in place.
type Board [Size][Size]Color

// InitialBoard returns the standard four stone starting position.
func InitialBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return 0 <= row && row < Size && 0 <= col && col < Size
}

// At returns the stone on c.
func (b Board) At(c Coord) Color {
	if !c.InBounds() {
		panic(fmt.Errorf("%w: %v", ErrOutOfBounds, c))
	}
	return b[c.Row][c.Col]
}

// Empty returns the number of unoccupied cells.
func (b Board) Empty() int {
	return Count(b, None)
}

// Hash fingerprints the position with FNV-1a over the 64 cells in row-major order.
func (b Board) Hash() uint64 {
	hasher := fnv.New64a()
	var cells [Cells]byte
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cells[row*Size+col] = byte(b[row][col])
		}
	}
	hasher.Write(cells[:])
	return hasher.Sum64()
}

// String draws the board with a column header and row numbers:
//
//	  abcdefgh
//	1 ........
//	4 ...OX...
//
// X is black, O is white and . is empty.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  abcdefgh\n")
	for row := 0; row < Size; row++ {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte(' ')
		for col := 0; col < Size; col++ {
			sb.WriteByte(b[row][col].symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads a board drawn by String. The header and row numbers are
// optional; blank lines and spaces are ignored, so bare 8x8 grids of X, O and
// . are accepted too.
func ParseBoard(s string) (Board, error) {
	var b Board
	row := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "abcdefgh" {
			continue
		}
		if line[0] >= '1' && line[0] <= '8' {
			line = strings.TrimSpace(line[1:])
		}
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != Size {
			return Board{}, fmt.Errorf("row %d: expected %d cells, got %d", row+1, Size, len(line))
		}
		if row >= Size {
			return Board{}, fmt.Errorf("too many rows: expected %d", Size)
		}
		for col := 0; col < Size; col++ {
			switch line[col] {
			case '.':
				b[row][col] = None
			case 'X', 'x':
				b[row][col] = Black
			case 'O', 'o':
				b[row][col] = White
			default:
				return Board{}, fmt.Errorf("row %d col %d: unknown cell %q", row+1, col+1, line[col])
			}
		}
		row++
	}
	if row != Size {
		return Board{}, fmt.Errorf("expected %d rows, got %d", Size, row)
	}
	return b, nil
}
