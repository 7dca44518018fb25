package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrNoLegalMove       = errors.New("no legal move left on the board")
	ErrUnknownDifficulty = errors.New("unknown difficulty level")
	ErrInvalidSnapshot   = errors.New("invalid board snapshot")
	ErrNoActiveGame      = errors.New("no active game")
	ErrTurnCanceled      = errors.New("opponent turn canceled")
)
