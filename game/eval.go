package game

// Count tallies the cells holding color. Count(b, None) is the number of empty cells.
func Count(b Board, color Color) int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == color {
				n++
			}
		}
	}
	return n
}

// Score returns the number of stones of each of the two colors. Both must be
// playing colors; use Count for empty cells.
func Score(b Board, a, c Color) (countA, countC int) {
	mustBeColor(a)
	mustBeColor(c)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case None:
			case a:
				countA++
			case c:
				countC++
			}
		}
	}
	return countA, countC
}

// Heuristic is the material balance from color's perspective: own stones
// minus opponent stones.
func Heuristic(b Board, color Color) int {
	mustBeColor(color)
	own, opp := Score(b, color, color.Opponent())
	return own - opp
}

// TerminalValue saturates the material balance of a finished game to MaxScore
// or MinScore, so any decided line outranks an undecided one of the same sign.
// A drawn game is worth 0.
func TerminalValue(b Board, color Color) int {
	mustBeColor(color)
	score := Heuristic(b, color)
	switch {
	case score > 0:
		return MaxScore
	case score < 0:
		return MinScore
	default:
		return score
	}
}

// HasNoMove reports whether color has no legal move.
func HasNoMove(b Board, color Color) bool {
	_, ok := EnumerateMoves(b, color)
	return !ok
}

// IsTerminal reports whether the game is over: the board is full or neither
// color can move.
func IsTerminal(b Board, a, c Color) bool {
	countA, countC := Score(b, a, c)
	if countA+countC == Cells {
		return true
	}
	return HasNoMove(b, a) && HasNoMove(b, c)
}

// Outcome is the final tally of a game. Winner is None for a draw.
type Outcome struct {
	Black  int
	White  int
	Winner Color
}

// Result scores the board and names the leading color.
func Result(b Board) Outcome {
	black, white := Score(b, Black, White)
	o := Outcome{Black: black, White: white}
	switch {
	case black > white:
		o.Winner = Black
	case white > black:
		o.Winner = White
	}
	return o
}

func (o Outcome) Label() string {
	switch o.Winner {
	case Black:
		return "black wins"
	case White:
		return "white wins"
	default:
		return "draw"
	}
}
