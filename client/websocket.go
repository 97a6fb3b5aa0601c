package client

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketCallback receives each raw message read from the server.
type WebSocketCallback interface {
	OnMessage(message string)
}

// WebSocketConnection maintains a connection to the ComfyUI websocket,
// redialing with exponential backoff when the link drops.
type WebSocketConnection struct {
	WebSocketURL string
	MaxRetry     int
	BaseDelay    time.Duration // initial backoff delay, e.g. 1 second
	MaxDelay     time.Duration // backoff cap, e.g. 1 minute
	Dialer       websocket.Dialer
	Callback     WebSocketCallback

	conn       *websocket.Conn
	retryCount int
}

// ConnectAndServe dials the websocket and pumps messages to the callback.
// When the connection drops it reconnects, and only returns once
// MaxRetry consecutive dial attempts have failed.
func (w *WebSocketConnection) ConnectAndServe() error {
	for {
		conn, _, err := w.Dialer.Dial(w.WebSocketURL, nil)
		if err != nil {
			w.retryCount++
			if w.retryCount > w.MaxRetry {
				return fmt.Errorf("websocket connect: %w", err)
			}
			delay := w.reconnectDelay()
			slog.Warn("websocket connect failed, retrying", "error", err, "delay", delay)
			time.Sleep(delay)
			continue
		}

		w.conn = conn
		w.retryCount = 0
		w.readMessages()
	}
}

func (w *WebSocketConnection) readMessages() {
	defer w.conn.Close()
	for {
		_, message, err := w.conn.ReadMessage()
		if err != nil {
			slog.Warn("websocket read error", "error", err)
			return
		}
		if w.Callback != nil {
			w.Callback.OnMessage(string(message))
		}
	}
}

// Ping sends a ping frame on the current connection.
func (w *WebSocketConnection) Ping() error {
	return w.conn.WriteMessage(websocket.PingMessage, nil)
}

// reconnectDelay is BaseDelay * 2^(retries-1), capped at MaxDelay.
func (w *WebSocketConnection) reconnectDelay() time.Duration {
	delay := w.BaseDelay * time.Duration(math.Pow(2, float64(w.retryCount-1)))
	if delay > w.MaxDelay {
		delay = w.MaxDelay
	}
	return delay
}
