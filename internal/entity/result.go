package entity

import (
	"time"

	"github.com/rocketscienceinc/triqui/internal/tictactoe"
)

// Outcome names who took a finished round.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeHuman    Outcome = "human"
	OutcomeOpponent Outcome = "opponent"
	OutcomeDraw     Outcome = "draw"
)

// OutcomeOf maps a status and the mark that made the last move to an Outcome.
func OutcomeOf(status tictactoe.GameStatus, mover tictactoe.Cell) Outcome {
	switch status {
	case tictactoe.Won:
		if mover == tictactoe.Human {
			return OutcomeHuman
		}
		return OutcomeOpponent
	case tictactoe.Draw:
		return OutcomeDraw
	default:
		return OutcomeNone
	}
}

// Result is an archived finished round.
type Result struct {
	ID         int64                `json:"id"`
	PlayerID   string               `json:"player_id"`
	Outcome    Outcome              `json:"outcome"`
	Difficulty tictactoe.Difficulty `json:"difficulty"`
	Board      [9]int               `json:"board"`
	FinishedAt time.Time            `json:"finished_at"`
}
