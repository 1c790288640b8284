package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID string `json:"game_id,omitempty"`
	Column *int   `json:"column,omitempty"`
	Row    *int   `json:"row,omitempty"`
}

type ResponsePayload struct {
	Game     *entity.Game     `json:"game,omitempty"`
	Snapshot *entity.Snapshot `json:"snapshot,omitempty"`
	Hint     *entity.Position `json:"hint,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// connection serialises writes; gorilla allows one concurrent writer only.
type connection struct {
	*websocket.Conn
	mu sync.Mutex
}

func (that *connection) sendMessage(action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) sendError(action, errorMsg string) error {
	return that.sendMessage(action, ResponsePayload{Error: errorMsg})
}

func gamePayload(game *entity.Game) ResponsePayload {
	snapshot := game.Snapshot()
	return ResponsePayload{Game: game, Snapshot: &snapshot}
}
