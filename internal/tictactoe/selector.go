package tictactoe

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/triqui/internal/apperror"
)

type randomSource interface {
	Intn(n int) int
}

// Selector picks the opponent's cell. It is not safe for concurrent use
// because the random source is not.
type Selector struct {
	random   randomSource
	self     Cell
	opponent Cell
}

// NewSelector returns a selector playing Opponent against Human.
func NewSelector(random randomSource) *Selector {
	if random == nil {
		random = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	return &Selector{
		random:   random,
		self:     Opponent,
		opponent: Human,
	}
}

// SelectMove returns the move the opponent makes on board at difficulty.
func (that *Selector) SelectMove(board Board, difficulty Difficulty) (Move, error) {
	if board.IsFull() {
		return Move{}, apperror.ErrNoLegalMove
	}

	switch difficulty {
	case Easy:
		return that.RandomMove(board)
	case Harder:
		if move, ok := WinningMove(board, that.self); ok {
			return move, nil
		}
		return that.RandomMove(board)
	case Expert:
		// try to win, but if that's not possible, block
		if move, ok := WinningMove(board, that.self); ok {
			return move, nil
		}
		if move, ok := WinningMove(board, that.opponent); ok {
			return move, nil
		}
		return that.RandomMove(board)
	default:
		return Move{}, fmt.Errorf("%w: ordinal %d", apperror.ErrUnknownDifficulty, int(difficulty))
	}
}

// RandomMove picks an empty cell uniformly at random.
func (that *Selector) RandomMove(board Board) (Move, error) {
	available := board.EmptyCells()
	if len(available) == 0 {
		return Move{}, apperror.ErrNoLegalMove
	}

	return available[that.random.Intn(len(available))], nil
}

// WinningMove returns the first empty cell, row-major, where mark would
// complete a line. The board is evaluated on copies only.
func WinningMove(board Board, mark Cell) (Move, bool) {
	for _, move := range board.EmptyCells() {
		if Evaluate(board.With(move, mark)) == Won {
			return move, true
		}
	}

	return Move{}, false
}
