package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/triqui/internal/apperror"
	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/repository"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
)

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepoDep interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Snapshot, error)
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

type resultRepoDep interface {
	Save(ctx context.Context, result *entity.Result) error
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.Result, error)
}

type Options struct {
	Defaults     entity.Settings
	Messages     Messages
	HistoryLimit int
}

// GameManager keeps a Session per connected player and persists what the
// sessions do: snapshots of the round in progress, the player's profile and
// the archive of finished rounds.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepoDep
	gameRepo   gameRepoDep
	resultRepo resultRepoDep
	opponent   opponentDep
	options    Options
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*liveSession
}

type liveSession struct {
	session *Session
	clients int
}

func NewGameManager(
	logger *slog.Logger,
	playerRepo playerRepoDep,
	gameRepo gameRepoDep,
	resultRepo resultRepoDep,
	opponent opponentDep,
	options Options,
) *GameManager {
	return &GameManager{
		logger: logger,

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		resultRepo: resultRepo,
		opponent:   opponent,
		options:    options,
		now:        time.Now,

		sessions: make(map[string]*liveSession),
	}
}

// Connect attaches a client to the player's session, creating the player when
// the id is empty or unknown. A saved round is restored on the first connect;
// the score and settings always come from the player's profile. Every
// successful Connect must be paired with a Disconnect.
func (that *GameManager) Connect(ctx context.Context, playerID string) (*entity.Player, Round, error) {
	log := that.logger.With("method", "Connect")

	player, err := that.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, Round{}, err
	}

	if session, ok := that.attach(player.ID, nil); ok {
		return player, session.State(), nil
	}

	session := NewSession(player.ID, player.Settings, player.Score, that.options.Messages, that.opponent)

	snapshot, err := that.gameRepo.GetByPlayerID(ctx, player.ID)
	switch {
	case err == nil:
		if err = session.Restore(*snapshot); err != nil {
			log.Warn("dropping invalid snapshot", "player_id", player.ID, "error", err)

			if err = that.gameRepo.DeleteByPlayerID(ctx, player.ID); err != nil {
				log.Error("failed to delete snapshot", "player_id", player.ID, "error", err)
			}
		}

		// The profile may have changed while nobody was connected.
		session.SetSettings(player.Settings)
		session.SetScore(player.Score)
	case errors.Is(err, repository.ErrGameNotFound):
	default:
		return nil, Round{}, fmt.Errorf("failed to get saved game: %w", err)
	}

	session, _ = that.attach(player.ID, session)

	log.Info("player connected", "player_id", player.ID)

	return player, session.State(), nil
}

// attach adds a client to the live session of playerID. When there is none,
// fresh becomes the live session; a nil fresh attaches nothing.
func (that *GameManager) attach(playerID string, fresh *Session) (*Session, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if live, ok := that.sessions[playerID]; ok {
		live.clients++
		return live.session, true
	}

	if fresh == nil {
		return nil, false
	}

	that.sessions[playerID] = &liveSession{session: fresh, clients: 1}

	return fresh, false
}

func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		return that.createPlayer(ctx, uuid.NewString())
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		return that.createPlayer(ctx, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *GameManager) createPlayer(ctx context.Context, id string) (*entity.Player, error) {
	player := &entity.Player{
		ID:       id,
		Settings: that.options.Defaults,
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *GameManager) NewGame(ctx context.Context, playerID string) (Round, error) {
	session, err := that.session(playerID)
	if err != nil {
		return Round{}, err
	}

	round := session.NewGame()

	if err = that.persist(ctx, session); err != nil {
		return Round{}, err
	}

	return round, nil
}

// MakeTurn places the human's mark. When the round goes on, the caller is
// expected to follow up with OpponentTurn.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, move tictactoe.Move) (Round, error) {
	session, err := that.session(playerID)
	if err != nil {
		return Round{}, err
	}

	round, err := session.PlayHuman(move)
	if err != nil {
		return Round{}, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.afterTurn(ctx, session, round); err != nil {
		return Round{}, err
	}

	return round, nil
}

// OpponentTurn blocks for the opponent's think delay, then applies its move.
func (that *GameManager) OpponentTurn(ctx context.Context, playerID string) (Round, error) {
	session, err := that.session(playerID)
	if err != nil {
		return Round{}, err
	}

	round, err := session.PlayOpponent(ctx)
	if err != nil {
		return Round{}, fmt.Errorf("opponent failed to make turn: %w", err)
	}

	// The move is already on the board; it is persisted even if the client left.
	if err = that.afterTurn(context.WithoutCancel(ctx), session, round); err != nil {
		return Round{}, err
	}

	return round, nil
}

func (that *GameManager) State(playerID string) (Round, error) {
	session, err := that.session(playerID)
	if err != nil {
		return Round{}, err
	}

	return session.State(), nil
}

func (that *GameManager) Player(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) Score(ctx context.Context, playerID string) (entity.Score, error) {
	player, err := that.Player(ctx, playerID)
	if err != nil {
		return entity.Score{}, err
	}

	return player.Score, nil
}

// UpdateSettings stores the player's settings and applies them to a live
// session, if any.
func (that *GameManager) UpdateSettings(ctx context.Context, playerID string, settings entity.Settings) (*entity.Player, error) {
	if !settings.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: ordinal %d", apperror.ErrUnknownDifficulty, int(settings.Difficulty))
	}

	player, err := that.Player(ctx, playerID)
	if err != nil {
		return nil, err
	}

	player.Settings = settings

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if session, ok := that.lookup(playerID); ok {
		session.SetSettings(settings)

		if err = that.persist(ctx, session); err != nil {
			return nil, err
		}
	}

	return player, nil
}

func (that *GameManager) ResetScore(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.Player(ctx, playerID)
	if err != nil {
		return nil, err
	}

	player.Score.Reset()

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if session, ok := that.lookup(playerID); ok {
		session.ResetScore()

		if err = that.persist(ctx, session); err != nil {
			return nil, err
		}
	}

	return player, nil
}

// History returns the player's latest finished rounds, newest first.
func (that *GameManager) History(ctx context.Context, playerID string) ([]*entity.Result, error) {
	results, err := that.resultRepo.ListByPlayer(ctx, playerID, that.options.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

// Disconnect detaches a client. The session is dropped with its last client;
// the saved snapshot stays so the round can be resumed.
func (that *GameManager) Disconnect(playerID string) {
	that.mu.Lock()
	live, ok := that.sessions[playerID]
	if ok {
		live.clients--
		if live.clients > 0 {
			ok = false
		} else {
			delete(that.sessions, playerID)
		}
	}
	that.mu.Unlock()

	if ok {
		live.session.Close()
		that.logger.Info("player disconnected", "player_id", playerID)
	}
}

func (that *GameManager) afterTurn(ctx context.Context, session *Session, round Round) error {
	if err := that.persist(ctx, session); err != nil {
		return err
	}

	if !round.Finished() {
		return nil
	}

	return that.finishRound(ctx, round)
}

func (that *GameManager) finishRound(ctx context.Context, round Round) error {
	log := that.logger.With("method", "finishRound")

	player, err := that.Player(ctx, round.PlayerID)
	if err != nil {
		return err
	}

	player.Score = round.Score

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	result := &entity.Result{
		PlayerID:   round.PlayerID,
		Outcome:    round.Outcome,
		Difficulty: round.Difficulty,
		Board:      round.Board.Snapshot(),
		FinishedAt: that.now(),
	}

	if err = that.resultRepo.Save(ctx, result); err != nil {
		return fmt.Errorf("failed to archive result: %w", err)
	}

	log.Info("round finished", "player_id", round.PlayerID, "outcome", round.Outcome, "difficulty", round.Difficulty)

	return nil
}

// persist keeps the snapshot of a round in progress. A finished round has
// nothing to resume, so its snapshot is dropped.
func (that *GameManager) persist(ctx context.Context, session *Session) error {
	snapshot := session.Snapshot()

	if snapshot.Finished() {
		if err := that.gameRepo.DeleteByPlayerID(ctx, snapshot.PlayerID); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
			return fmt.Errorf("failed to delete game: %w", err)
		}

		return nil
	}

	if err := that.gameRepo.Save(ctx, &snapshot); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *GameManager) session(playerID string) (*Session, error) {
	session, ok := that.lookup(playerID)
	if !ok {
		return nil, fmt.Errorf("%w for player %q", apperror.ErrNoActiveGame, playerID)
	}

	return session, nil
}

func (that *GameManager) lookup(playerID string) (*Session, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	live, ok := that.sessions[playerID]
	if !ok {
		return nil, false
	}

	return live.session, true
}
