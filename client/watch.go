package client

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// wsMessage is the subset of the ComfyUI status protocol watch mode
// needs: enough to notice a prompt starting and its final node finishing.
type wsMessage struct {
	Type string `json:"type"`
	Data struct {
		PromptID string  `json:"prompt_id"`
		Node     *string `json:"node"`
	} `json:"data"`
}

type promptWatcher struct {
	client       *ComfyClient
	onFinished   func(PromptHistoryItem)
	lastPromptID string
}

func (w *promptWatcher) OnMessage(msg string) {
	message := &wsMessage{}
	if err := json.Unmarshal([]byte(msg), message); err != nil {
		slog.Error("deserializing status message", "error", err)
		return
	}

	switch message.Type {
	case "execution_start":
		w.lastPromptID = message.Data.PromptID
	case "executing":
		// a null node id means the prompt's final node was processed
		if message.Data.Node != nil || w.lastPromptID == "" {
			return
		}
		promptID := w.lastPromptID
		w.lastPromptID = ""

		item, err := w.client.GetHistoryItem(promptID)
		if err != nil {
			slog.Warn("fetching finished prompt from history", "prompt_id", promptID, "error", err)
			return
		}
		if item == nil {
			slog.Warn("finished prompt missing from history", "prompt_id", promptID)
			return
		}
		w.onFinished(*item)
	}
}

// WatchPrompts connects to the server's websocket and invokes onFinished
// with the workflow of every prompt that completes while connected. It
// blocks until the connection is lost for good.
func (c *ComfyClient) WatchPrompts(onFinished func(PromptHistoryItem)) error {
	ws := &WebSocketConnection{
		WebSocketURL: fmt.Sprintf("ws://%s/ws?clientId=%s", c.serverBaseAddress, c.clientid),
		MaxRetry:     5,
		BaseDelay:    time.Second,
		MaxDelay:     time.Minute,
		Callback: &promptWatcher{
			client:     c,
			onFinished: onFinished,
		},
	}
	return ws.ConnectAndServe()
}
