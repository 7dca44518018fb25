package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/triqui/internal/config"
	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/repository"
	"github.com/rocketscienceinc/triqui/internal/repository/storage"
	"github.com/rocketscienceinc/triqui/internal/service"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
	"github.com/rocketscienceinc/triqui/internal/usecase"
	"github.com/rocketscienceinc/triqui/transport/rest"
	"github.com/rocketscienceinc/triqui/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	defaults, err := playerDefaults(conf)
	if err != nil {
		return fmt.Errorf("invalid player defaults: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Redis.SnapshotTTL)
	resultRepo := repository.NewResultRepository(sqliteStorage.Connection)

	opponent := service.NewOpponentService(tictactoe.NewSelector(nil), conf.Opponent.ThinkDelay)

	gameManager := usecase.NewGameManager(logger, playerRepo, gameRepo, resultRepo, opponent, usecase.Options{
		Defaults: defaults,
		Messages: usecase.Messages{
			Victory: conf.Defaults.VictoryMessage,
			Defeat:  conf.Opponent.WinMessage,
			Draw:    conf.Opponent.DrawMessage,
		},
		HistoryLimit: conf.Opponent.HistoryPageSize,
	})

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, gameManager)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func playerDefaults(conf *config.Config) (entity.Settings, error) {
	difficulty, err := tictactoe.ParseDifficulty(conf.Defaults.Difficulty)
	if err != nil {
		return entity.Settings{}, err
	}

	return entity.Settings{
		Difficulty:     difficulty,
		Sound:          conf.Defaults.Sound,
		VictoryMessage: conf.Defaults.VictoryMessage,
	}, nil
}
