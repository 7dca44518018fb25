package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/triqui/internal/apperror"
)

// Size is the number of rows and columns of the board.
const Size = 3

// Cell is the state of one board position.
type Cell int

const (
	Empty Cell = iota
	PlayerA
	PlayerB
)

// Human and Opponent name the marks by role.
const (
	Human    = PlayerA
	Opponent = PlayerB
)

func (that Cell) String() string {
	switch that {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	default:
		return ""
	}
}

// IsMark reports whether the cell value is a player's mark.
func (that Cell) IsMark() bool {
	return that == PlayerA || that == PlayerB
}

// Rival returns the other player's mark.
func (that Cell) Rival() Cell {
	if that == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Move identifies one cell of the board.
type Move struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Column >= 0 && that.Column < Size
}

// Index is the row-major position of the move.
func (that Move) Index() int {
	return that.Row*Size + that.Column
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Column)
}

// MoveAt converts a row-major index into a Move.
func MoveAt(index int) Move {
	return Move{Row: index / Size, Column: index % Size}
}

// Board is a 3x3 grid. It is a value type: assigning it copies every cell.
type Board [Size][Size]Cell

// Apply sets the cell to mark. It is a no-op returning false when the cell is
// taken, out of range, or mark is not a player's mark.
func (that *Board) Apply(row, column int, mark Cell) bool {
	move := Move{Row: row, Column: column}
	if !move.InRange() || !mark.IsMark() {
		return false
	}

	if that[row][column] != Empty {
		return false
	}

	that[row][column] = mark

	return true
}

// Reset clears every cell.
func (that *Board) Reset() {
	*that = Board{}
}

// At returns the cell at move; out of range positions read as Empty.
func (that Board) At(move Move) Cell {
	if !move.InRange() {
		return Empty
	}
	return that[move.Row][move.Column]
}

// With returns a copy of the board with mark placed on move.
func (that Board) With(move Move, mark Cell) Board {
	that[move.Row][move.Column] = mark
	return that
}

// EmptyCells lists free cells in row-major order.
func (that Board) EmptyCells() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range Size {
		for column := range Size {
			if that[row][column] == Empty {
				moves = append(moves, Move{Row: row, Column: column})
			}
		}
	}
	return moves
}

func (that Board) IsFull() bool {
	for row := range Size {
		for column := range Size {
			if that[row][column] == Empty {
				return false
			}
		}
	}
	return true
}

// Evaluate reports the status of the board.
func (that Board) Evaluate() GameStatus {
	return Evaluate(that)
}

// Snapshot flattens the board row-major into {0,1,2} values.
func (that Board) Snapshot() [Size * Size]int {
	var cells [Size * Size]int
	for row := range Size {
		for column := range Size {
			cells[row*Size+column] = int(that[row][column])
		}
	}
	return cells
}

// RestoreBoard rebuilds a board from its Snapshot form.
func RestoreBoard(cells [Size * Size]int) (Board, error) {
	var board Board
	for i, value := range cells {
		cell := Cell(value)
		if cell != Empty && !cell.IsMark() {
			return Board{}, fmt.Errorf("%w: cell %d has value %d", apperror.ErrInvalidSnapshot, i, value)
		}
		board[i/Size][i%Size] = cell
	}
	return board, nil
}
