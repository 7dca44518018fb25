package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/triqui/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

// GameRepository keeps the snapshot of a player's round in progress.
type GameRepository interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Snapshot, error)
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository stores snapshots that expire after ttl; zero keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(playerID string) string {
	return "game:" + playerID
}

func (that *dbGame) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	gameJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKey(snapshot.PlayerID), gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByPlayerID(ctx context.Context, playerID string) (*entity.Snapshot, error) {
	response, err := that.client.Get(ctx, gameKey(playerID)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by player id: %w", err)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &snapshot, nil
}

func (that *dbGame) DeleteByPlayerID(ctx context.Context, playerID string) error {
	deleted, err := that.client.Del(ctx, gameKey(playerID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by player id: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
