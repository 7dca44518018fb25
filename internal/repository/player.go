package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/triqui/internal/entity"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository stores player profiles as JSON under "player:<id>". Profiles
// never expire; they hold the score and settings between rounds.
type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type redisPlayers struct {
	client *redis.Client
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &redisPlayers{client: client}
}

func playerKey(id string) string {
	return "player:" + id
}

func (that *redisPlayers) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	if player.ID == "" {
		return errors.New("failed to save player: empty id")
	}

	raw, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to encode player %q: %w", player.ID, err)
	}

	if err = that.client.Set(ctx, playerKey(player.ID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save player %q: %w", player.ID, err)
	}

	return nil
}

func (that *redisPlayers) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	raw, err := that.client.Get(ctx, playerKey(id)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, id)
	case err != nil:
		return nil, fmt.Errorf("failed to load player %q: %w", id, err)
	}

	player := new(entity.Player)
	if err = json.Unmarshal(raw, player); err != nil {
		return nil, fmt.Errorf("failed to decode player %q: %w", id, err)
	}

	return player, nil
}
