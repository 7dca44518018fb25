package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
)

// ResultRepository archives finished rounds.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.Result, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, result *entity.Result) error {
	query := `INSERT INTO results (player_id, outcome, difficulty, board, finished_at) VALUES (?, ?, ?, ?, ?)`

	board, err := json.Marshal(result.Board)
	if err != nil {
		return fmt.Errorf("can't marshal board: %w", err)
	}

	res, err := that.conn.ExecContext(ctx, query,
		result.PlayerID, string(result.Outcome), int(result.Difficulty), string(board), result.FinishedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("can't read result id: %w", err)
	}
	result.ID = id

	return nil
}

func (that *resultRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.Result, error) {
	query := `SELECT id, player_id, outcome, difficulty, board, finished_at
		FROM results WHERE player_id = ? ORDER BY finished_at DESC, id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	results := make([]*entity.Result, 0, max(limit, 0))
	for rows.Next() {
		var (
			result     entity.Result
			outcome    string
			difficulty int
			board      string
			finishedAt int64
		)

		if err = rows.Scan(&result.ID, &result.PlayerID, &outcome, &difficulty, &board, &finishedAt); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		if err = json.Unmarshal([]byte(board), &result.Board); err != nil {
			return nil, fmt.Errorf("can't unmarshal board: %w", err)
		}

		result.Outcome = entity.Outcome(outcome)
		result.Difficulty = tictactoe.Difficulty(difficulty)
		result.FinishedAt = time.UnixMilli(finishedAt).UTC()

		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate results: %w", err)
	}

	return results, nil
}
