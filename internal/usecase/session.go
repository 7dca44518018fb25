package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/triqui/internal/apperror"
	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
)

var ErrOpponentThinking = errors.New("opponent is already thinking")

// Messages are shown when a round ends. Victory is used when the player has
// no message of their own.
type Messages struct {
	Victory string
	Defeat  string
	Draw    string
}

// Round is what a client needs to render the game after an operation.
type Round struct {
	PlayerID   string
	Board      tictactoe.Board
	Status     tictactoe.GameStatus
	Turn       tictactoe.Cell
	Mover      tictactoe.Cell
	Move       *tictactoe.Move
	Line       *tictactoe.Line
	Outcome    entity.Outcome
	Message    string
	Sound      bool
	Difficulty tictactoe.Difficulty
	Score      entity.Score
}

func (that Round) Finished() bool {
	return that.Status.IsTerminal()
}

type opponentDep interface {
	ChooseMove(ctx context.Context, board tictactoe.Board, difficulty tictactoe.Difficulty) (tictactoe.Move, error)
}

// Session is one player's round against the computer. The human always plays
// tictactoe.Human and moves first in every round.
type Session struct {
	mu sync.Mutex

	playerID string
	board    tictactoe.Board
	turn     tictactoe.Cell
	settings entity.Settings
	score    entity.Score
	messages Messages
	opponent opponentDep

	// generation changes whenever the board is replaced, so a pending
	// opponent move computed for an older board is dropped.
	generation uint64
	thinking   bool
	cancel     context.CancelFunc
}

func NewSession(playerID string, settings entity.Settings, score entity.Score, messages Messages, opponent opponentDep) *Session {
	return &Session{
		playerID: playerID,
		turn:     tictactoe.Human,
		settings: settings,
		score:    score,
		messages: messages,
		opponent: opponent,
	}
}

// PlayHuman places the human's mark on move.
func (that *Session) PlayHuman(move tictactoe.Move) (Round, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.board.Evaluate().IsTerminal() {
		return Round{}, apperror.ErrGameFinished
	}

	if that.turn != tictactoe.Human {
		return Round{}, apperror.ErrNotYourTurn
	}

	if !move.InRange() {
		return Round{}, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if !that.board.Apply(move.Row, move.Column, tictactoe.Human) {
		return Round{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return that.afterMove(tictactoe.Human, move), nil
}

// PlayOpponent lets the computer move. The wait for the opponent is canceled
// by ctx, NewGame, Restore and Close; the board is left untouched then.
func (that *Session) PlayOpponent(ctx context.Context) (Round, error) {
	that.mu.Lock()

	switch {
	case that.board.Evaluate().IsTerminal():
		that.mu.Unlock()
		return Round{}, apperror.ErrGameFinished
	case that.turn != tictactoe.Opponent:
		that.mu.Unlock()
		return Round{}, apperror.ErrNotYourTurn
	case that.thinking:
		that.mu.Unlock()
		return Round{}, ErrOpponentThinking
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	board := that.board
	difficulty := that.settings.Difficulty
	generation := that.generation
	that.thinking = true
	that.cancel = cancel
	that.mu.Unlock()

	move, err := that.opponent.ChooseMove(ctx, board, difficulty)

	that.mu.Lock()
	defer that.mu.Unlock()

	if generation != that.generation {
		return Round{}, apperror.ErrTurnCanceled
	}

	that.thinking = false
	that.cancel = nil

	if err != nil {
		return Round{}, err
	}

	if !that.board.Apply(move.Row, move.Column, tictactoe.Opponent) {
		return Round{}, fmt.Errorf("%w: opponent chose %s", apperror.ErrCellOccupied, move)
	}

	return that.afterMove(tictactoe.Opponent, move), nil
}

func (that *Session) afterMove(mover tictactoe.Cell, move tictactoe.Move) Round {
	status := that.board.Evaluate()
	if status.IsTerminal() {
		that.score.Record(entity.OutcomeOf(status, mover))
	} else {
		that.turn = mover.Rival()
	}

	round := that.round()
	round.Mover = mover
	round.Move = &move

	return round
}

// NewGame clears the board and hands the first move to the human. The score
// is kept.
func (that *Session) NewGame() Round {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.replaceBoard(tictactoe.Board{}, tictactoe.Human)

	return that.round()
}

func (that *Session) ResetScore() Round {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.score.Reset()

	return that.round()
}

// SetSettings applies new settings; a new difficulty is used from the next
// opponent move on.
func (that *Session) SetSettings(settings entity.Settings) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.settings = settings
}

func (that *Session) SetScore(score entity.Score) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.score = score
}

func (that *Session) State() Round {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.round()
}

func (that *Session) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.Snapshot{
		PlayerID:     that.playerID,
		Board:        that.board.Snapshot(),
		Difficulty:   int(that.settings.Difficulty),
		Turn:         int(that.turn),
		HumanWins:    that.score.HumanWins,
		OpponentWins: that.score.OpponentWins,
		Ties:         that.score.Ties,
	}
}

// Restore replaces the round with a saved snapshot. The session is left
// unchanged when the snapshot is invalid.
func (that *Session) Restore(snapshot entity.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	board, err := tictactoe.RestoreBoard(snapshot.Board)
	if err != nil {
		return err
	}

	difficulty, err := tictactoe.DifficultyFromOrdinal(snapshot.Difficulty)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidSnapshot, err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.replaceBoard(board, tictactoe.Cell(snapshot.Turn))
	that.settings.Difficulty = difficulty
	that.score = snapshot.Score()

	return nil
}

// Close cancels a pending opponent move.
func (that *Session) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopThinking()
}

func (that *Session) replaceBoard(board tictactoe.Board, turn tictactoe.Cell) {
	that.stopThinking()
	that.board = board
	that.turn = turn
}

func (that *Session) stopThinking() {
	if that.cancel != nil {
		that.cancel()
	}

	that.cancel = nil
	that.thinking = false
	that.generation++
}

func (that *Session) round() Round {
	status := that.board.Evaluate()

	round := Round{
		PlayerID:   that.playerID,
		Board:      that.board,
		Status:     status,
		Turn:       that.turn,
		Sound:      that.settings.Sound,
		Difficulty: that.settings.Difficulty,
		Score:      that.score,
	}

	if !status.IsTerminal() {
		return round
	}

	round.Turn = tictactoe.Empty

	switch status {
	case tictactoe.Won:
		line, _ := tictactoe.WinningLine(that.board)
		round.Line = &line

		if tictactoe.Winner(that.board) == tictactoe.Human {
			round.Outcome = entity.OutcomeHuman
			round.Message = that.victoryMessage()
		} else {
			round.Outcome = entity.OutcomeOpponent
			round.Message = that.messages.Defeat
		}
	case tictactoe.Draw:
		round.Outcome = entity.OutcomeDraw
		round.Message = that.messages.Draw
	}

	return round
}

func (that *Session) victoryMessage() string {
	if that.settings.VictoryMessage != "" {
		return that.settings.VictoryMessage
	}

	return that.messages.Victory
}
