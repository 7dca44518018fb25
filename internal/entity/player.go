package entity

import "github.com/rocketscienceinc/triqui/internal/tictactoe"

// Settings are the player's preferences.
type Settings struct {
	Difficulty     tictactoe.Difficulty `json:"difficulty"`
	Sound          bool                 `json:"sound"`
	VictoryMessage string               `json:"victory_message"`
}

// Score counts finished rounds.
type Score struct {
	HumanWins    int `json:"human_wins"`
	OpponentWins int `json:"opponent_wins"`
	Ties         int `json:"ties"`
}

// Record bumps the counter matching the round's outcome.
func (that *Score) Record(outcome Outcome) {
	switch outcome {
	case OutcomeHuman:
		that.HumanWins++
	case OutcomeOpponent:
		that.OpponentWins++
	case OutcomeDraw:
		that.Ties++
	}
}

func (that *Score) Reset() {
	*that = Score{}
}

func (that Score) Total() int {
	return that.HumanWins + that.OpponentWins + that.Ties
}

type Player struct {
	ID       string   `json:"id"`
	Settings Settings `json:"settings"`
	Score    Score    `json:"score"`
}
