package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triqui/internal/apperror"
	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/repository"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/triqui/mocks/usecase"
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

var defaultSettings = entity.Settings{
	Difficulty:     tictactoe.Easy,
	Sound:          true,
	VictoryMessage: "You won!",
}

type managerDeps struct {
	players  *mockedUseCase.MockplayerRepoDep
	games    *mockedUseCase.MockgameRepoDep
	results  *mockedUseCase.MockresultRepoDep
	opponent *mockedUseCase.MockopponentDep
}

func newTestManager(t *testing.T) (*GameManager, managerDeps) {
	t.Helper()

	deps := managerDeps{
		players:  mockedUseCase.NewMockplayerRepoDep(t),
		games:    mockedUseCase.NewMockgameRepoDep(t),
		results:  mockedUseCase.NewMockresultRepoDep(t),
		opponent: mockedUseCase.NewMockopponentDep(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := NewGameManager(logger, deps.players, deps.games, deps.results, deps.opponent, Options{
		Defaults:     defaultSettings,
		Messages:     testMessages,
		HistoryLimit: 20,
	})

	return manager, deps
}

// connect attaches player1 with the given saved board, or none when board is nil.
func connect(t *testing.T, manager *GameManager, deps managerDeps, board *tictactoe.Board, turn tictactoe.Cell) {
	t.Helper()

	deps.players.EXPECT().
		GetByID(mock.Anything, "player1").
		Return(&entity.Player{ID: "player1", Settings: defaultSettings}, nil).
		Once()

	if board == nil {
		deps.games.EXPECT().
			GetByPlayerID(mock.Anything, "player1").
			Return((*entity.Snapshot)(nil), repository.ErrGameNotFound).
			Once()
	} else {
		deps.games.EXPECT().
			GetByPlayerID(mock.Anything, "player1").
			Return(&entity.Snapshot{PlayerID: "player1", Board: board.Snapshot(), Turn: int(turn)}, nil).
			Once()
	}

	_, _, err := manager.Connect(context.Background(), "player1")
	require.NoError(t, err)
}

func TestGameManager_Connect(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a new player when the id is empty", func(t *testing.T) {
		// Given: a manager with empty storage
		manager, deps := newTestManager(t)

		deps.players.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(nil).
			Once()
		deps.games.EXPECT().
			GetByPlayerID(mock.Anything, mock.AnythingOfType("string")).
			Return((*entity.Snapshot)(nil), repository.ErrGameNotFound).
			Once()

		// When: connecting without an id
		player, round, err := manager.Connect(ctx, "")

		// Then: a player with default settings and an empty board is returned
		require.NoError(t, err)
		assert.NotEmpty(t, player.ID)
		assert.Equal(t, defaultSettings, player.Settings)
		assert.Equal(t, tictactoe.Board{}, round.Board)
		assert.Equal(t, tictactoe.Human, round.Turn)
	})

	t.Run("Creates the player under an unknown id", func(t *testing.T) {
		// Given: the id is not in storage
		manager, deps := newTestManager(t)

		deps.players.EXPECT().
			GetByID(mock.Anything, "ghost").
			Return((*entity.Player)(nil), repository.ErrPlayerNotFound).
			Once()
		deps.players.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(player *entity.Player) bool {
				return player.ID == "ghost"
			})).
			Return(nil).
			Once()
		deps.games.EXPECT().
			GetByPlayerID(mock.Anything, "ghost").
			Return((*entity.Snapshot)(nil), repository.ErrGameNotFound).
			Once()

		// When: connecting with it
		player, _, err := manager.Connect(ctx, "ghost")

		// Then: the player keeps the requested id
		require.NoError(t, err)
		assert.Equal(t, "ghost", player.ID)
	})

	t.Run("Restores a saved round", func(t *testing.T) {
		// Given: a saved round waiting for the opponent
		manager, deps := newTestManager(t)
		board := tictactoe.Board{{tictactoe.Human, e, e}, {e, e, e}, {e, e, e}}

		// When: connecting
		connect(t, manager, deps, &board, tictactoe.Opponent)

		// Then: the session carries the saved board
		round, err := manager.State("player1")
		require.NoError(t, err)
		assert.Equal(t, board, round.Board)
		assert.Equal(t, tictactoe.Opponent, round.Turn)
	})

	t.Run("Drops an invalid snapshot", func(t *testing.T) {
		// Given: a stored snapshot with a broken turn
		manager, deps := newTestManager(t)

		deps.players.EXPECT().
			GetByID(mock.Anything, "player1").
			Return(&entity.Player{ID: "player1"}, nil).
			Once()
		deps.games.EXPECT().
			GetByPlayerID(mock.Anything, "player1").
			Return(&entity.Snapshot{PlayerID: "player1", Turn: 7}, nil).
			Once()
		deps.games.EXPECT().
			DeleteByPlayerID(mock.Anything, "player1").
			Return(nil).
			Once()

		// When: connecting
		_, round, err := manager.Connect(ctx, "player1")

		// Then: a fresh round is started instead
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Human, round.Turn)
	})

	t.Run("Profile wins over a stale snapshot", func(t *testing.T) {
		// Given: the score was reset and the difficulty raised while offline,
		// but the saved round still carries the old values
		manager, deps := newTestManager(t)
		settings := entity.Settings{Difficulty: tictactoe.Expert, Sound: true}
		board := tictactoe.Board{{h, e, e}, {e, o, e}, {e, e, e}}

		deps.players.EXPECT().
			GetByID(mock.Anything, "player1").
			Return(&entity.Player{ID: "player1", Settings: settings}, nil).
			Once()
		deps.games.EXPECT().
			GetByPlayerID(mock.Anything, "player1").
			Return(&entity.Snapshot{
				PlayerID:   "player1",
				Board:      board.Snapshot(),
				Turn:       int(h),
				Difficulty: int(tictactoe.Easy),
				HumanWins:  3,
				Ties:       2,
			}, nil).
			Once()

		// When: connecting
		_, round, err := manager.Connect(ctx, "player1")

		// Then: the board is resumed with the profile's score and settings
		require.NoError(t, err)
		assert.Equal(t, board, round.Board)
		assert.Equal(t, entity.Score{}, round.Score)
		assert.Equal(t, tictactoe.Expert, round.Difficulty)
		assert.True(t, round.Sound)
	})

	t.Run("Second client shares the live session", func(t *testing.T) {
		// Given: a connected player with a move on the board
		manager, deps := newTestManager(t)
		board := tictactoe.Board{{h, o, e}, {e, e, e}, {e, e, e}}
		connect(t, manager, deps, &board, h)

		deps.players.EXPECT().
			GetByID(mock.Anything, "player1").
			Return(&entity.Player{ID: "player1", Settings: defaultSettings}, nil).
			Once()

		// When: another client connects as the same player
		_, round, err := manager.Connect(ctx, "player1")

		// Then: storage is not read again and the live board is returned
		require.NoError(t, err)
		assert.Equal(t, board, round.Board)
	})

	t.Run("Does not block other players while loading a snapshot", func(t *testing.T) {
		// Given: a snapshot read that hangs until released
		manager, deps := newTestManager(t)
		release := make(chan struct{})

		deps.players.EXPECT().
			GetByID(mock.Anything, "player1").
			Return(&entity.Player{ID: "player1"}, nil).
			Once()
		deps.games.EXPECT().
			GetByPlayerID(mock.Anything, "player1").
			Run(func(context.Context, string) { <-release }).
			Return((*entity.Snapshot)(nil), repository.ErrGameNotFound).
			Once()

		connected := make(chan error, 1)
		go func() {
			_, _, err := manager.Connect(ctx, "player1")
			connected <- err
		}()

		// When: another player's session is looked up meanwhile
		looked := make(chan error, 1)
		go func() {
			_, err := manager.State("player2")
			looked <- err
		}()

		// Then: the lookup answers before the read finishes
		select {
		case err := <-looked:
			require.ErrorIs(t, err, apperror.ErrNoActiveGame)
		case <-time.After(time.Second):
			t.Fatal("lookup blocked by a pending snapshot read")
		}

		close(release)
		require.NoError(t, <-connected)
	})

	t.Run("Returns error if the snapshot cannot be read", func(t *testing.T) {
		// Given: storage is down for games
		manager, deps := newTestManager(t)

		deps.players.EXPECT().
			GetByID(mock.Anything, "player1").
			Return(&entity.Player{ID: "player1"}, nil).
			Once()
		deps.games.EXPECT().
			GetByPlayerID(mock.Anything, "player1").
			Return((*entity.Snapshot)(nil), errRedisDown).
			Once()

		// When: connecting
		_, _, err := manager.Connect(ctx, "player1")

		// Then: the error is returned and no session is kept
		require.ErrorIs(t, err, errRedisDown)
		_, err = manager.State("player1")
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Fails without a connected session", func(t *testing.T) {
		// Given: nobody connected
		manager, _ := newTestManager(t)

		// When: making a turn
		_, err := manager.MakeTurn(ctx, "player1", tictactoe.Move{})

		// Then: ErrNoActiveGame is returned
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})

	t.Run("Saves the round in progress", func(t *testing.T) {
		// Given: a connected player
		manager, deps := newTestManager(t)
		connect(t, manager, deps, nil, tictactoe.Human)

		deps.games.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
				return snapshot.Board[4] == int(tictactoe.Human) && snapshot.Turn == int(tictactoe.Opponent)
			})).
			Return(nil).
			Once()

		// When: the human marks the center
		round, err := manager.MakeTurn(ctx, "player1", tictactoe.Move{Row: 1, Column: 1})

		// Then: the snapshot is stored and the opponent moves next
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Opponent, round.Turn)
	})

	t.Run("Returns the session error for an occupied cell", func(t *testing.T) {
		// Given: a saved board with the corner taken
		manager, deps := newTestManager(t)
		board := tictactoe.Board{{tictactoe.Opponent, e, e}, {e, tictactoe.Human, e}, {e, e, e}}
		connect(t, manager, deps, &board, tictactoe.Human)

		// When: the human picks the corner
		_, err := manager.MakeTurn(ctx, "player1", tictactoe.Move{Row: 0, Column: 0})

		// Then: ErrCellOccupied is returned and nothing is stored
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Finishes the round", func(t *testing.T) {
		// Given: the human can complete the top row
		manager, deps := newTestManager(t)
		finishedAt := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
		manager.now = func() time.Time { return finishedAt }
		board := tictactoe.Board{
			{tictactoe.Human, tictactoe.Human, e},
			{tictactoe.Opponent, tictactoe.Opponent, e},
			{e, e, e},
		}
		connect(t, manager, deps, &board, tictactoe.Human)

		deps.games.EXPECT().
			DeleteByPlayerID(mock.Anything, "player1").
			Return(nil).
			Once()
		deps.players.EXPECT().
			GetByID(mock.Anything, "player1").
			Return(&entity.Player{ID: "player1", Settings: defaultSettings}, nil).
			Once()
		deps.players.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(player *entity.Player) bool {
				return player.Score == entity.Score{HumanWins: 1}
			})).
			Return(nil).
			Once()
		deps.results.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(result *entity.Result) bool {
				return result.PlayerID == "player1" &&
					result.Outcome == entity.OutcomeHuman &&
					result.Difficulty == tictactoe.Easy &&
					result.FinishedAt.Equal(finishedAt)
			})).
			Return(nil).
			Once()

		// When: the human completes the row
		round, err := manager.MakeTurn(ctx, "player1", tictactoe.Move{Row: 0, Column: 2})

		// Then: the snapshot is dropped, the score saved and the result archived
		require.NoError(t, err)
		assert.True(t, round.Finished())
		assert.Equal(t, "You won!", round.Message)
	})

	t.Run("Returns error if the result cannot be archived", func(t *testing.T) {
		// Given: the archive is full
		manager, deps := newTestManager(t)
		board := tictactoe.Board{
			{tictactoe.Human, tictactoe.Human, e},
			{tictactoe.Opponent, tictactoe.Opponent, e},
			{e, e, e},
		}
		connect(t, manager, deps, &board, tictactoe.Human)

		deps.games.EXPECT().
			DeleteByPlayerID(mock.Anything, "player1").
			Return(repository.ErrGameNotFound).
			Once()
		deps.players.EXPECT().
			GetByID(mock.Anything, "player1").
			Return(&entity.Player{ID: "player1"}, nil).
			Once()
		deps.players.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(nil).
			Once()
		deps.results.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("*entity.Result")).
			Return(errStorageIsFull).
			Once()

		// When: the human wins
		_, err := manager.MakeTurn(ctx, "player1", tictactoe.Move{Row: 0, Column: 2})

		// Then: the storage error is returned
		require.ErrorIs(t, err, errStorageIsFull)
	})
}

func TestGameManager_OpponentTurn(t *testing.T) {
	// Given: a saved round where the opponent is to move
	manager, deps := newTestManager(t)
	board := tictactoe.Board{{tictactoe.Human, e, e}, {e, e, e}, {e, e, e}}
	connect(t, manager, deps, &board, tictactoe.Opponent)

	deps.opponent.EXPECT().
		ChooseMove(mock.Anything, board, tictactoe.Easy).
		Return(tictactoe.Move{Row: 1, Column: 1}, nil).
		Once()
	deps.games.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
			return snapshot.Board[4] == int(tictactoe.Opponent) && snapshot.Turn == int(tictactoe.Human)
		})).
		Return(nil).
		Once()

	// When: the opponent plays
	round, err := manager.OpponentTurn(context.Background(), "player1")

	// Then: its move is applied and stored
	require.NoError(t, err)
	assert.Equal(t, &tictactoe.Move{Row: 1, Column: 1}, round.Move)
	assert.Equal(t, tictactoe.Human, round.Turn)
}

func TestGameManager_NewGame(t *testing.T) {
	// Given: a saved round in progress
	manager, deps := newTestManager(t)
	board := tictactoe.Board{{tictactoe.Human, tictactoe.Opponent, e}, {e, e, e}, {e, e, e}}
	connect(t, manager, deps, &board, tictactoe.Human)

	deps.games.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
			return snapshot.Board == [9]int{} && snapshot.Turn == int(tictactoe.Human)
		})).
		Return(nil).
		Once()

	// When: starting a new game
	round, err := manager.NewGame(context.Background(), "player1")

	// Then: an empty board is stored
	require.NoError(t, err)
	assert.Equal(t, tictactoe.Board{}, round.Board)
}

func TestGameManager_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the settings and applies them to the session", func(t *testing.T) {
		// Given: a connected player
		manager, deps := newTestManager(t)
		connect(t, manager, deps, nil, tictactoe.Human)
		settings := entity.Settings{Difficulty: tictactoe.Expert, VictoryMessage: "GG"}

		deps.players.EXPECT().
			GetByID(mock.Anything, "player1").
			Return(&entity.Player{ID: "player1", Settings: defaultSettings}, nil).
			Once()
		deps.players.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(player *entity.Player) bool {
				return player.Settings == settings
			})).
			Return(nil).
			Once()
		deps.games.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
				return snapshot.Difficulty == int(tictactoe.Expert)
			})).
			Return(nil).
			Once()

		// When: updating the settings
		player, err := manager.UpdateSettings(ctx, "player1", settings)

		// Then: the player and the live session use them
		require.NoError(t, err)
		assert.Equal(t, settings, player.Settings)

		round, err := manager.State("player1")
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Expert, round.Difficulty)
		assert.False(t, round.Sound)
	})

	t.Run("Rejects an unknown difficulty", func(t *testing.T) {
		// Given: a manager
		manager, _ := newTestManager(t)

		// When: updating with an out of range difficulty
		_, err := manager.UpdateSettings(ctx, "player1", entity.Settings{Difficulty: tictactoe.Difficulty(5)})

		// Then: ErrUnknownDifficulty is returned
		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})

	t.Run("Returns error for an unknown player", func(t *testing.T) {
		// Given: the player does not exist
		manager, deps := newTestManager(t)

		deps.players.EXPECT().
			GetByID(mock.Anything, "ghost").
			Return((*entity.Player)(nil), repository.ErrPlayerNotFound).
			Once()

		// When: updating their settings
		_, err := manager.UpdateSettings(ctx, "ghost", defaultSettings)

		// Then: ErrPlayerNotFound is returned
		require.ErrorIs(t, err, repository.ErrPlayerNotFound)
	})
}

func TestGameManager_ResetScore(t *testing.T) {
	// Given: a player with a score and no live session
	manager, deps := newTestManager(t)

	deps.players.EXPECT().
		GetByID(mock.Anything, "player1").
		Return(&entity.Player{ID: "player1", Score: entity.Score{HumanWins: 3, Ties: 2}}, nil).
		Once()
	deps.players.EXPECT().
		CreateOrUpdate(mock.Anything, mock.MatchedBy(func(player *entity.Player) bool {
			return player.Score == entity.Score{}
		})).
		Return(nil).
		Once()

	// When: resetting the score
	player, err := manager.ResetScore(context.Background(), "player1")

	// Then: the stored counters are zero
	require.NoError(t, err)
	assert.Zero(t, player.Score.Total())
}

func TestGameManager_History(t *testing.T) {
	// Given: archived results
	manager, deps := newTestManager(t)
	results := []*entity.Result{{ID: 2, PlayerID: "player1", Outcome: entity.OutcomeDraw}}

	deps.results.EXPECT().
		ListByPlayer(mock.Anything, "player1", 20).
		Return(results, nil).
		Once()

	// When: asking for the history
	history, err := manager.History(context.Background(), "player1")

	// Then: the configured page size is used
	require.NoError(t, err)
	assert.Equal(t, results, history)
}

func TestGameManager_Disconnect(t *testing.T) {
	t.Run("Drops the session with its last client", func(t *testing.T) {
		// Given: a connected player
		manager, deps := newTestManager(t)
		connect(t, manager, deps, nil, tictactoe.Human)

		// When: disconnecting
		manager.Disconnect("player1")

		// Then: the session is gone
		_, err := manager.State("player1")
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})

	t.Run("Keeps the session while another client is attached", func(t *testing.T) {
		// Given: a player connected from two clients
		manager, deps := newTestManager(t)
		connect(t, manager, deps, nil, tictactoe.Human)

		deps.players.EXPECT().
			GetByID(mock.Anything, "player1").
			Return(&entity.Player{ID: "player1", Settings: defaultSettings}, nil).
			Once()

		_, _, err := manager.Connect(context.Background(), "player1")
		require.NoError(t, err)

		// When: one of them goes away
		manager.Disconnect("player1")

		// Then: the other one can still play
		_, err = manager.State("player1")
		require.NoError(t, err)

		// And: the session ends with the last client
		manager.Disconnect("player1")
		_, err = manager.State("player1")
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})

	t.Run("Ignores an unknown player", func(t *testing.T) {
		// Given: nobody is connected
		manager, _ := newTestManager(t)

		// When: disconnecting a stranger
		manager.Disconnect("ghost")

		// Then: nothing breaks
		_, err := manager.State("ghost")
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})
}
