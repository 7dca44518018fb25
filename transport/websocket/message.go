package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
	"github.com/rocketscienceinc/triqui/internal/usecase"
)

const (
	actionConnect        = "connect"
	actionGameNew        = "game:new"
	actionGameTurn       = "game:turn"
	actionGameState      = "game:state"
	actionGameOpponent   = "game:opponent"
	actionSettingsUpdate = "settings:update"
	actionScoreReset     = "score:reset"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player   *PlayerRef       `json:"player,omitempty"`
	Cell     *tictactoe.Move  `json:"cell,omitempty"`
	Settings *entity.Settings `json:"settings,omitempty"`
}

type PlayerRef struct {
	ID string `json:"id"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *Game          `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// Game is a round as clients render it: cells are "X", "O" or "".
type Game struct {
	Board      [tictactoe.Size * tictactoe.Size]string `json:"board"`
	Status     tictactoe.GameStatus                    `json:"status"`
	Turn       string                                  `json:"turn,omitempty"`
	LastMove   *tictactoe.Move                         `json:"last_move,omitempty"`
	Line       []tictactoe.Move                        `json:"line,omitempty"`
	Outcome    entity.Outcome                          `json:"outcome,omitempty"`
	Message    string                                  `json:"message,omitempty"`
	Sound      bool                                    `json:"sound"`
	Difficulty tictactoe.Difficulty                    `json:"difficulty"`
	Score      entity.Score                            `json:"score"`
}

func newGame(round usecase.Round) *Game {
	game := &Game{
		Status:     round.Status,
		Turn:       round.Turn.String(),
		LastMove:   round.Move,
		Outcome:    round.Outcome,
		Message:    round.Message,
		Sound:      round.Sound,
		Difficulty: round.Difficulty,
		Score:      round.Score,
	}

	for row := range tictactoe.Size {
		for column := range tictactoe.Size {
			game.Board[row*tictactoe.Size+column] = round.Board[row][column].String()
		}
	}

	if round.Line != nil {
		game.Line = round.Line[:]
	}

	return game
}
