package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/triqui/internal/apperror"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
	"github.com/rocketscienceinc/triqui/internal/usecase"
)

func (that *Server) handleConnect(ctx context.Context, client *client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload
	if err := decodePayload(msg, &payloadReq); err != nil {
		client.sendError(ctx, msg.Action, "malformed payload")
		return err
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, round, err := that.gameUseCase.Connect(ctx, playerID)
	if err != nil {
		log.Error("failed to connect player", "error", err)
		client.sendError(ctx, msg.Action, "failed to connect player")
		return err
	}

	// Each Connect holds its own reference, so the previous one is released
	// even when the client reconnects as the same player.
	if client.playerID != "" {
		that.gameUseCase.Disconnect(client.playerID)
	}

	client.playerID = player.ID
	log = log.With("playerID", player.ID)

	if err = client.sendMessage(ctx, msg.Action, ResponsePayload{Player: player, Game: newGame(round)}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	// A restored round may be waiting for the opponent.
	that.scheduleOpponent(ctx, client, round)

	log.Info("successfully connected player")

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, client *client, msg *Message) error {
	if client.playerID == "" {
		client.sendError(ctx, msg.Action, "connect first")
		return nil
	}

	round, err := that.gameUseCase.NewGame(ctx, client.playerID)
	if err != nil {
		client.sendError(ctx, msg.Action, clientError(err))
		return fmt.Errorf("failed to start new game: %w", err)
	}

	return client.sendMessage(ctx, msg.Action, ResponsePayload{Game: newGame(round)})
}

func (that *Server) handleGameTurn(ctx context.Context, client *client, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn")

	if client.playerID == "" {
		client.sendError(ctx, msg.Action, "connect first")
		return nil
	}

	var payloadReq Payload
	if err := decodePayload(msg, &payloadReq); err != nil {
		client.sendError(ctx, msg.Action, "malformed payload")
		return err
	}

	if payloadReq.Cell == nil {
		client.sendError(ctx, msg.Action, "cell is required")
		return nil
	}

	round, err := that.gameUseCase.MakeTurn(ctx, client.playerID, *payloadReq.Cell)
	if err != nil {
		client.sendError(ctx, msg.Action, clientError(err))
		if isClientError(err) {
			return nil
		}
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if err = client.sendMessage(ctx, msg.Action, ResponsePayload{Game: newGame(round)}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	that.scheduleOpponent(ctx, client, round)

	log.Info("player made a turn", "playerID", client.playerID, "move", payloadReq.Cell.String())

	return nil
}

func (that *Server) handleGameState(ctx context.Context, client *client, msg *Message) error {
	if client.playerID == "" {
		client.sendError(ctx, msg.Action, "connect first")
		return nil
	}

	round, err := that.gameUseCase.State(client.playerID)
	if err != nil {
		client.sendError(ctx, msg.Action, clientError(err))
		return fmt.Errorf("failed to get game state: %w", err)
	}

	return client.sendMessage(ctx, msg.Action, ResponsePayload{Game: newGame(round)})
}

func (that *Server) handleSettingsUpdate(ctx context.Context, client *client, msg *Message) error {
	if client.playerID == "" {
		client.sendError(ctx, msg.Action, "connect first")
		return nil
	}

	var payloadReq Payload
	if err := decodePayload(msg, &payloadReq); err != nil {
		client.sendError(ctx, msg.Action, "malformed payload")
		return err
	}

	if payloadReq.Settings == nil {
		client.sendError(ctx, msg.Action, "settings are required")
		return nil
	}

	player, err := that.gameUseCase.UpdateSettings(ctx, client.playerID, *payloadReq.Settings)
	if err != nil {
		client.sendError(ctx, msg.Action, clientError(err))
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return client.sendMessage(ctx, msg.Action, ResponsePayload{Player: player})
}

func (that *Server) handleScoreReset(ctx context.Context, client *client, msg *Message) error {
	if client.playerID == "" {
		client.sendError(ctx, msg.Action, "connect first")
		return nil
	}

	player, err := that.gameUseCase.ResetScore(ctx, client.playerID)
	if err != nil {
		client.sendError(ctx, msg.Action, clientError(err))
		return fmt.Errorf("failed to reset score: %w", err)
	}

	return client.sendMessage(ctx, msg.Action, ResponsePayload{Player: player})
}

// scheduleOpponent lets the opponent move in the background when it is its
// turn, and pushes the result to the client. The move is dropped when the
// connection closes or a new round starts first.
func (that *Server) scheduleOpponent(ctx context.Context, client *client, round usecase.Round) {
	if round.Finished() || round.Turn != tictactoe.Opponent {
		return
	}

	playerID := client.playerID

	go func() {
		log := that.logger.With("method", "scheduleOpponent", "playerID", playerID)

		next, err := that.gameUseCase.OpponentTurn(ctx, playerID)
		if errors.Is(err, apperror.ErrTurnCanceled) || errors.Is(err, usecase.ErrOpponentThinking) {
			log.Debug("opponent turn dropped", "error", err)
			return
		}

		if err != nil {
			log.Error("opponent failed to make turn", "error", err)
			client.sendError(ctx, actionGameOpponent, clientError(err))
			return
		}

		if err = client.sendMessage(ctx, actionGameOpponent, ResponsePayload{Game: newGame(next)}); err != nil {
			log.Warn("failed to push opponent move", "error", err)
		}
	}()
}

func decodePayload(msg *Message, payload *Payload) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}

var clientErrors = []error{
	apperror.ErrGameFinished,
	apperror.ErrNotYourTurn,
	apperror.ErrCellOccupied,
	apperror.ErrInvalidCell,
	apperror.ErrUnknownDifficulty,
	apperror.ErrNoActiveGame,
}

func isClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// clientError hides storage failures from clients.
func clientError(err error) string {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return "internal error"
}
