package entity

import (
	"fmt"

	"github.com/rocketscienceinc/triqui/internal/apperror"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
)

// Snapshot is the transient state of a round: the board as 9 ints row-major,
// the difficulty ordinal, who moves next and the counters. It survives a
// client reconnect, nothing longer.
type Snapshot struct {
	PlayerID     string `json:"player_id"`
	Board        [9]int `json:"board"`
	Difficulty   int    `json:"difficulty"`
	Turn         int    `json:"turn"`
	HumanWins    int    `json:"human_wins"`
	OpponentWins int    `json:"opponent_wins"`
	Ties         int    `json:"ties"`
}

// Validate checks every field can be turned back into a round.
func (that *Snapshot) Validate() error {
	if _, err := tictactoe.RestoreBoard(that.Board); err != nil {
		return err
	}

	if _, err := tictactoe.DifficultyFromOrdinal(that.Difficulty); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidSnapshot, err)
	}

	if !tictactoe.Cell(that.Turn).IsMark() {
		return fmt.Errorf("%w: turn %d", apperror.ErrInvalidSnapshot, that.Turn)
	}

	if that.HumanWins < 0 || that.OpponentWins < 0 || that.Ties < 0 {
		return fmt.Errorf("%w: negative counter", apperror.ErrInvalidSnapshot)
	}

	return nil
}

func (that *Snapshot) Score() Score {
	return Score{
		HumanWins:    that.HumanWins,
		OpponentWins: that.OpponentWins,
		Ties:         that.Ties,
	}
}

// Finished reports whether the saved board is already won or drawn. An
// invalid board is never finished.
func (that *Snapshot) Finished() bool {
	board, err := tictactoe.RestoreBoard(that.Board)
	if err != nil {
		return false
	}

	return board.Evaluate().IsTerminal()
}
