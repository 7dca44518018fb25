package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/triqui/internal/apperror"
	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/repository"
)

type playerUseCase interface {
	Player(ctx context.Context, playerID string) (*entity.Player, error)
	UpdateSettings(ctx context.Context, playerID string, settings entity.Settings) (*entity.Player, error)
	Score(ctx context.Context, playerID string) (entity.Score, error)
	ResetScore(ctx context.Context, playerID string) (*entity.Player, error)
	History(ctx context.Context, playerID string) ([]*entity.Result, error)
}

type PlayerHandler interface {
	GetSettings(ctx echo.Context) error
	UpdateSettings(ctx echo.Context) error
	GetScore(ctx echo.Context) error
	ResetScore(ctx echo.Context) error
	GetResults(ctx echo.Context) error
}

type playerHandler struct {
	logger  *slog.Logger
	players playerUseCase
}

func NewPlayerHandler(logger *slog.Logger, players playerUseCase) PlayerHandler {
	return &playerHandler{
		logger:  logger,
		players: players,
	}
}

func (that *playerHandler) GetSettings(ctx echo.Context) error {
	player, err := that.players.Player(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail("GetSettings", err)
	}

	return ctx.JSON(http.StatusOK, player.Settings)
}

func (that *playerHandler) UpdateSettings(ctx echo.Context) error {
	var settings entity.Settings
	if err := ctx.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid settings")
	}

	player, err := that.players.UpdateSettings(ctx.Request().Context(), ctx.Param("id"), settings)
	if err != nil {
		return that.fail("UpdateSettings", err)
	}

	return ctx.JSON(http.StatusOK, player.Settings)
}

func (that *playerHandler) GetScore(ctx echo.Context) error {
	score, err := that.players.Score(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail("GetScore", err)
	}

	return ctx.JSON(http.StatusOK, score)
}

func (that *playerHandler) ResetScore(ctx echo.Context) error {
	player, err := that.players.ResetScore(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail("ResetScore", err)
	}

	return ctx.JSON(http.StatusOK, player.Score)
}

func (that *playerHandler) GetResults(ctx echo.Context) error {
	results, err := that.players.History(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail("GetResults", err)
	}

	return ctx.JSON(http.StatusOK, results)
}

func (that *playerHandler) fail(method string, err error) error {
	switch {
	case errors.Is(err, repository.ErrPlayerNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "player not found")
	case errors.Is(err, apperror.ErrUnknownDifficulty):
		return echo.NewHTTPError(http.StatusBadRequest, apperror.ErrUnknownDifficulty.Error())
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
