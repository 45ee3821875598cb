// internal/handlers/room_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/davialves/unoroom/internal/game"
)

// RoomMessage is the structure for incoming WebSocket messages once a
// player sits in a room.
type RoomMessage struct {
	Type string `json:"type"`

	// Index selects the hand card for play_card.
	Index *int `json:"index,omitempty"`

	// Color carries the chosen color for choose_color, or rides along
	// with play_card when the client already knows the wild's color.
	Color string `json:"color,omitempty"`
}

// stateMessage wraps a per-player state projection for delivery.
type stateMessage struct {
	Type  string    `json:"type"`
	State game.View `json:"state"`
}

// RoomWSHandler upgrades the HTTP connection to WebSocket for a room,
// establishes the caller's guest session, seats them in the match and
// runs the read loop. When the second seat fills, the handler starts the
// match and pushes each player their opening state.
func RoomWSHandler(logger *logrus.Logger, rs *RoomServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Extract the room code from the URL path: /room/ws/{code}
		code := strings.ToUpper(strings.Trim(strings.TrimPrefix(r.URL.Path, "/room/ws/"), "/"))
		if code == "" {
			http.Error(w, "missing room code in path (/room/ws/{code})", http.StatusBadRequest)
			return
		}

		m, ok := rs.Matches.GetMatch(code)
		if !ok {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			name = "Guest"
		}

		// Guest session must be resolved before the upgrade; the cookie
		// rides on the handshake response.
		playerID, err := EnsureGuestSession(w, r)
		if err != nil {
			logger.Warnf("Guest session failed for room %s: %v", code, err)
			http.Error(w, "failed to establish session", http.StatusInternalServerError)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"uno"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for room %s: %v", code, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "internal server error during handler exit")

		if c.Subprotocol() != "uno" {
			c.Close(websocket.StatusCode(BadSubprotocolError), "client must use the 'uno' subprotocol")
			return
		}
		logger.Infof("Player %s (%s) connecting to room %s from %s", playerID, name, code, r.RemoteAddr)

		if err := m.AddPlayer(playerID, name); err != nil {
			switch {
			case errors.Is(err, game.ErrRoomFull):
				c.Close(websocket.StatusCode(RoomFullError), "room is full")
			case errors.Is(err, game.ErrAlreadyStarted):
				c.Close(websocket.StatusCode(RoomStartedError), "match has already started")
			default:
				c.Close(websocket.StatusPolicyViolation, err.Error())
			}
			return
		}

		attachConn(m, playerID, c)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		sendWsMessage(ctx, c, map[string]interface{}{
			"type":      "room_joined",
			"room_code": code,
		}, logger)

		// The transport owns the obligation to start the match once both
		// seats are filled.
		if seatedPlayers(m) == game.MaxPlayers {
			if err := m.Start(); err != nil {
				logger.Errorf("Failed to start match in room %s: %v", code, err)
			} else {
				logger.Infof("Match started in room %s", code)
				broadcastState(m, "game_start", logger)
			}
		}

		readRoomMessages(ctx, c, m, playerID, logger)

		logger.Infof("Player %s read loop exited for room %s", playerID, code)
		if detachConn(m, playerID) == 0 {
			rs.Matches.DeleteMatch(code)
			logger.Infof("Room %s is empty, removed", code)
		}
	}
}

// attachConn records the player's live connection on their seat.
func attachConn(m *game.Match, playerID uuid.UUID, c *websocket.Conn) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	for _, p := range m.Players {
		if p.ID == playerID {
			p.Conn = c
			p.Connected = true
			return
		}
	}
}

// detachConn clears the player's connection and returns how many players
// remain connected.
func detachConn(m *game.Match, playerID uuid.UUID) int {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	remaining := 0
	for _, p := range m.Players {
		if p.ID == playerID {
			p.Conn = nil
			p.Connected = false
		}
		if p.Connected {
			remaining++
		}
	}
	return remaining
}

func seatedPlayers(m *game.Match) int {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return len(m.Players)
}

// readRoomMessages reads and routes client messages until the connection
// drops. Action errors go back to the acting connection only; successful
// mutations are followed by a fresh state push to every player.
func readRoomMessages(ctx context.Context, c *websocket.Conn, m *game.Match, playerID uuid.UUID, logger *logrus.Logger) {
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				logger.Infof("WebSocket closed normally for player %s in room %s", playerID, m.RoomCode)
			} else if !strings.Contains(err.Error(), "context canceled") {
				logger.Warnf("Error reading from WebSocket for player %s in room %s: %v", playerID, m.RoomCode, err)
			}
			return
		}
		if msgType != websocket.MessageText {
			logger.Warnf("Ignoring non-text message from player %s in room %s", playerID, m.RoomCode)
			continue
		}

		var msg RoomMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("Invalid JSON from player %s in room %s: %v", playerID, m.RoomCode, err)
			sendWsError(ctx, c, "invalid JSON format", logger)
			continue
		}

		logger.Debugf("Received action '%s' from player %s in room %s", msg.Type, playerID, m.RoomCode)

		switch msg.Type {
		case "play_card":
			if msg.Index == nil {
				sendWsError(ctx, c, "play_card requires an index", logger)
				continue
			}
			outcome, err := m.PlayCard(playerID, *msg.Index, game.Color(msg.Color))
			if err != nil {
				sendWsError(ctx, c, err.Error(), logger)
				continue
			}
			broadcastState(m, "update_state", logger)
			if outcome.NeedColorChoice {
				sendWsMessage(ctx, c, map[string]string{"type": "choose_color"}, logger)
			}

		case "choose_color":
			if err := m.ChooseColor(playerID, game.Color(msg.Color)); err != nil {
				sendWsError(ctx, c, err.Error(), logger)
				continue
			}
			broadcastState(m, "update_state", logger)

		case "draw_card":
			if _, err := m.DrawCard(playerID); err != nil {
				sendWsError(ctx, c, err.Error(), logger)
				continue
			}
			broadcastState(m, "update_state", logger)

		case "call_uno":
			if err := m.CallUno(playerID); err != nil {
				sendWsError(ctx, c, err.Error(), logger)
				continue
			}
			broadcastState(m, "update_state", logger)

		case "ping":
			sendWsMessage(ctx, c, map[string]string{"type": "pong"}, logger)

		default:
			sendWsError(ctx, c, fmt.Sprintf("unknown action type: %s", msg.Type), logger)
		}
	}
}

// broadcastState sends every connected player their own private view.
// Hands travel only to their owner; everyone else sees hand counts.
func broadcastState(m *game.Match, msgType string, logger *logrus.Logger) {
	type recipient struct {
		id   uuid.UUID
		conn *websocket.Conn
	}

	m.Mu.Lock()
	recipients := make([]recipient, 0, len(m.Players))
	for _, p := range m.Players {
		if p.Connected && p.Conn != nil {
			recipients = append(recipients, recipient{id: p.ID, conn: p.Conn})
		}
	}
	m.Mu.Unlock()

	for _, rcp := range recipients {
		view, err := m.PrivateView(rcp.id)
		if err != nil {
			logger.Errorf("Failed to build private view for player %s in room %s: %v", rcp.id, m.RoomCode, err)
			continue
		}
		msgBytes, err := json.Marshal(stateMessage{Type: msgType, State: view})
		if err != nil {
			logger.Errorf("Failed to marshal state for player %s in room %s: %v", rcp.id, m.RoomCode, err)
			continue
		}
		go func(conn *websocket.Conn, data []byte, id uuid.UUID) {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				logger.Warnf("Failed to push state to player %s in room %s: %v", id, m.RoomCode, err)
			}
		}(rcp.conn, msgBytes, rcp.id)
	}
}

// sendWsMessage marshals a message and sends it to one client with a
// write timeout.
func sendWsMessage(ctx context.Context, c *websocket.Conn, message interface{}, logger *logrus.Logger) {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		logger.Errorf("Failed to marshal WebSocket message: %v", err)
		return
	}
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Write(writeCtx, websocket.MessageText, msgBytes); err != nil {
		status := websocket.CloseStatus(err)
		if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
			logger.Warnf("Error writing WebSocket message: %v", err)
		}
	}
}

// sendWsError sends a structured error message to the acting client.
// Failures are never broadcast to the other player.
func sendWsError(ctx context.Context, c *websocket.Conn, errorMsg string, logger *logrus.Logger) {
	sendWsMessage(ctx, c, map[string]interface{}{
		"type":    "error",
		"message": errorMsg,
	}, logger)
}
