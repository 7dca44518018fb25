package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

const (
	pingInterval = 30 * time.Second
	writeWait    = 10 * time.Second
	sendBuffer   = 16
)

var errMalformedMessage = errors.New("malformed message")

// client is one WebSocket connection. Only writeLoop writes to conn; other
// goroutines queue messages on send.
type client struct {
	conn *websocket.Conn
	send chan []byte

	// playerID is set by the connect action and only touched by the
	// connection's reading goroutine.
	playerID string
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

func (that *client) read() (*Message, error) {
	_, data, err := that.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var message Message
	if err = json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedMessage, err)
	}

	return &message, nil
}

func (that *client) writeLoop(ctx context.Context) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case data := <-that.send:
			if err := that.write(websocket.TextMessage, data); err != nil {
				return err
			}
		case <-ticker.C:
			if err := that.write(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

func (that *client) write(messageType int, data []byte) error {
	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteMessage(messageType, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// sendMessage queues a message for the client. It gives up when the
// connection is gone.
func (that *client) sendMessage(ctx context.Context, action string, payload ResponsePayload) error {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: rawPayload})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	select {
	case that.send <- data:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("connection closed: %w", ctx.Err())
	}
}

func (that *client) sendError(ctx context.Context, action, errorMsg string) {
	_ = that.sendMessage(ctx, action, ResponsePayload{Error: errorMsg})
}
