package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/triqui/internal/apperror"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
)

type OpponentService interface {
	ChooseMove(ctx context.Context, board tictactoe.Board, difficulty tictactoe.Difficulty) (tictactoe.Move, error)
}

type opponentService struct {
	mu         sync.Mutex
	selector   *tictactoe.Selector
	thinkDelay time.Duration
}

// NewOpponentService returns the computer opponent. Each move is chosen after
// thinkDelay, so the client can render the human's mark first.
func NewOpponentService(selector *tictactoe.Selector, thinkDelay time.Duration) OpponentService {
	return &opponentService{
		selector:   selector,
		thinkDelay: thinkDelay,
	}
}

func (that *opponentService) ChooseMove(
	ctx context.Context,
	board tictactoe.Board,
	difficulty tictactoe.Difficulty,
) (tictactoe.Move, error) {
	if err := that.think(ctx); err != nil {
		return tictactoe.Move{}, err
	}

	that.mu.Lock()
	move, err := that.selector.SelectMove(board, difficulty)
	that.mu.Unlock()

	if err != nil {
		return tictactoe.Move{}, fmt.Errorf("opponent failed to choose a move: %w", err)
	}

	return move, nil
}

func (that *opponentService) think(ctx context.Context) error {
	if that.thinkDelay <= 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", apperror.ErrTurnCanceled, err)
		}
		return nil
	}

	timer := time.NewTimer(that.thinkDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", apperror.ErrTurnCanceled, ctx.Err())
	case <-timer.C:
		return nil
	}
}
