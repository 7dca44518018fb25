package tictactoe

import "fmt"

// GameStatus is derived from a board on every query.
type GameStatus int

const (
	Unfinished GameStatus = iota
	Won
	Draw
)

func (that GameStatus) String() string {
	switch that {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unfinished"
	}
}

func (that GameStatus) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *GameStatus) UnmarshalText(text []byte) error {
	for _, status := range []GameStatus{Unfinished, Won, Draw} {
		if status.String() == string(text) {
			*that = status
			return nil
		}
	}

	return fmt.Errorf("unknown game status %q", text)
}

func (that GameStatus) IsTerminal() bool {
	return that == Won || that == Draw
}

// Line is three cells that end the game when owned by one mark.
type Line [Size]Move

// Lines in scan order: main diagonal, anti diagonal, rows top to bottom,
// columns left to right.
var Lines = [...]Line{
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
}

// Evaluate reports Won when any line is complete, Draw when the board is full
// otherwise, and Unfinished in every other case.
func Evaluate(board Board) GameStatus {
	if _, ok := WinningLine(board); ok {
		return Won
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return Draw
	}

	return Unfinished
}

// WinningLine returns the first complete line in scan order.
func WinningLine(board Board) (Line, bool) {
	for _, line := range Lines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != Empty && a == b && b == c {
			return line, true
		}
	}

	return Line{}, false
}

// Winner returns the mark owning the first complete line, or Empty.
func Winner(board Board) Cell {
	line, ok := WinningLine(board)
	if !ok {
		return Empty
	}
	return board.At(line[0])
}
