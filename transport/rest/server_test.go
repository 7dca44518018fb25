package rest

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triqui/internal/apperror"
	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/repository"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
	mockedRest "github.com/rocketscienceinc/triqui/mocks/rest"
)

var errRedisDown = errors.New("redis down")

func newTestServer(t *testing.T) (*Server, *mockedRest.MockplayerUseCase) {
	t.Helper()

	players := mockedRest.NewMockplayerUseCase(t)

	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), players), players
}

func serve(server *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	return rec
}

func TestPing(t *testing.T) {
	// Given: a server
	server, _ := newTestServer(t)

	// When: pinging it
	rec := serve(server, http.MethodGet, "/ping", "")

	// Then: it answers pong
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestPlayerHandler_Settings(t *testing.T) {
	t.Run("Returns the stored settings", func(t *testing.T) {
		// Given: a stored player
		server, players := newTestServer(t)

		players.EXPECT().
			Player(mock.Anything, "player1").
			Return(&entity.Player{
				ID:       "player1",
				Settings: entity.Settings{Difficulty: tictactoe.Harder, Sound: true, VictoryMessage: "Yay"},
			}, nil).
			Once()

		// When: reading the settings
		rec := serve(server, http.MethodGet, "/players/player1/settings", "")

		// Then: difficulty is sent by label
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"difficulty":"harder","sound":true,"victory_message":"Yay"}`, rec.Body.String())
	})

	t.Run("Unknown player", func(t *testing.T) {
		// Given: the player is not stored
		server, players := newTestServer(t)

		players.EXPECT().
			Player(mock.Anything, "ghost").
			Return((*entity.Player)(nil), repository.ErrPlayerNotFound).
			Once()

		// When: reading the settings
		rec := serve(server, http.MethodGet, "/players/ghost/settings", "")

		// Then: 404 is returned
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Updates the settings", func(t *testing.T) {
		// Given: a stored player
		server, players := newTestServer(t)
		settings := entity.Settings{Difficulty: tictactoe.Expert, VictoryMessage: "Nice"}

		players.EXPECT().
			UpdateSettings(mock.Anything, "player1", settings).
			Return(&entity.Player{ID: "player1", Settings: settings}, nil).
			Once()

		// When: putting new settings
		rec := serve(server, http.MethodPut, "/players/player1/settings",
			`{"difficulty":"expert","sound":false,"victory_message":"Nice"}`)

		// Then: the stored settings come back
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"difficulty":"expert","sound":false,"victory_message":"Nice"}`, rec.Body.String())
	})

	t.Run("Rejects an unknown difficulty label", func(t *testing.T) {
		// Given: a server
		server, _ := newTestServer(t)

		// When: putting an unknown difficulty
		rec := serve(server, http.MethodPut, "/players/player1/settings", `{"difficulty":"impossible"}`)

		// Then: 400 is returned without touching storage
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Maps an out of range difficulty to 400", func(t *testing.T) {
		// Given: the use case rejects the difficulty
		server, players := newTestServer(t)

		players.EXPECT().
			UpdateSettings(mock.Anything, "player1", mock.Anything).
			Return((*entity.Player)(nil), apperror.ErrUnknownDifficulty).
			Once()

		// When: putting the settings
		rec := serve(server, http.MethodPut, "/players/player1/settings", `{"sound":true}`)

		// Then: 400 is returned
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlayerHandler_Score(t *testing.T) {
	t.Run("Returns the counters", func(t *testing.T) {
		// Given: a player with a score
		server, players := newTestServer(t)

		players.EXPECT().
			Score(mock.Anything, "player1").
			Return(entity.Score{HumanWins: 2, OpponentWins: 1, Ties: 4}, nil).
			Once()

		// When: reading the score
		rec := serve(server, http.MethodGet, "/players/player1/score", "")

		// Then: all counters are returned
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"human_wins":2,"opponent_wins":1,"ties":4}`, rec.Body.String())
	})

	t.Run("Resets the counters", func(t *testing.T) {
		// Given: a player with a score
		server, players := newTestServer(t)

		players.EXPECT().
			ResetScore(mock.Anything, "player1").
			Return(&entity.Player{ID: "player1"}, nil).
			Once()

		// When: deleting the score
		rec := serve(server, http.MethodDelete, "/players/player1/score", "")

		// Then: zeros are returned
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"human_wins":0,"opponent_wins":0,"ties":0}`, rec.Body.String())
	})

	t.Run("Hides storage errors", func(t *testing.T) {
		// Given: storage is down
		server, players := newTestServer(t)

		players.EXPECT().
			Score(mock.Anything, "player1").
			Return(entity.Score{}, errRedisDown).
			Once()

		// When: reading the score
		rec := serve(server, http.MethodGet, "/players/player1/score", "")

		// Then: 500 is returned without details
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "redis")
	})
}

func TestPlayerHandler_Results(t *testing.T) {
	// Given: an archived round
	server, players := newTestServer(t)
	finishedAt := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

	players.EXPECT().
		History(mock.Anything, "player1").
		Return([]*entity.Result{{
			ID:         7,
			PlayerID:   "player1",
			Outcome:    entity.OutcomeDraw,
			Difficulty: tictactoe.Easy,
			Board:      [9]int{1, 2, 1, 1, 2, 2, 2, 1, 1},
			FinishedAt: finishedAt,
		}}, nil).
		Once()

	// When: listing the results
	rec := serve(server, http.MethodGet, "/players/player1/results", "")

	// Then: the archive is returned
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": 7,
		"player_id": "player1",
		"outcome": "draw",
		"difficulty": "easy",
		"board": [1,2,1,1,2,2,2,1,1],
		"finished_at": "2024-10-01T12:00:00Z"
	}]`, rec.Body.String())
}
