package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
	"github.com/rocketscienceinc/triqui/internal/usecase"
)

const (
	maxMessageSize  = 4096
	shutdownTimeout = 5 * time.Second
)

type gameUseCase interface {
	Connect(ctx context.Context, playerID string) (*entity.Player, usecase.Round, error)
	NewGame(ctx context.Context, playerID string) (usecase.Round, error)
	MakeTurn(ctx context.Context, playerID string, move tictactoe.Move) (usecase.Round, error)
	OpponentTurn(ctx context.Context, playerID string) (usecase.Round, error)
	State(playerID string) (usecase.Round, error)
	UpdateSettings(ctx context.Context, playerID string, settings entity.Settings) (*entity.Player, error)
	ResetScore(ctx context.Context, playerID string) (*entity.Player, error)
	Disconnect(playerID string)
}

type handlerFunc func(ctx context.Context, client *client, message *Message) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	upgrader    websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger,
		gameUseCase: gameUseCase,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		actionConnect:        server.handleConnect,
		actionGameNew:        server.handleNewGame,
		actionGameTurn:       server.handleGameTurn,
		actionGameState:      server.handleGameState,
		actionSettingsUpdate: server.handleSettingsUpdate,
		actionScoreReset:     server.handleScoreReset,
	}

	return server
}

// Start serves /ws on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.ServeWS)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeWS upgrades the request and handles the client's messages until the
// connection is closed.
func (that *Server) ServeWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(req.Context())
	client := newClient(conn)

	defer func() {
		cancel()

		if client.playerID != "" {
			that.gameUseCase.Disconnect(client.playerID)
		}

		if err = conn.Close(); err != nil {
			log.Debug("failed to close connection", "error", err)
		}
	}()

	conn.SetReadLimit(maxMessageSize)

	go func() {
		if writeErr := client.writeLoop(ctx); writeErr != nil {
			log.Warn("failed to write to client", "error", writeErr)
			cancel()
		}
	}()

	log.Info("WebSocket connection established")

	that.handleMessages(ctx, client)
}

func (that *Server) handleMessages(ctx context.Context, client *client) {
	log := that.logger.With("method", "handleMessages")

	for {
		message, err := client.read()
		if errors.Is(err, errMalformedMessage) {
			log.Warn("failed to unmarshal message", "error", err)
			client.sendError(ctx, "", "malformed message")
			continue
		}

		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			client.sendError(ctx, message.Action, "unknown action")
			continue
		}

		if err = handler(ctx, client, message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}
