// internal/handlers/room.go
package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strings"

	"github.com/davialves/unoroom/internal/game"
)

const roomCodeLetters = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// generateRoomCode picks a short join code. The ambiguous characters
// (0/O, 1/I/L) are left out.
func generateRoomCode() string {
	code := make([]byte, 4)
	for i := range code {
		code[i] = roomCodeLetters[rand.Intn(len(roomCodeLetters))]
	}
	return string(code)
}

type createRoomRequest struct {
	Code string `json:"code"`
}

// CreateRoomHandler creates a room with an empty match in it. The client
// may pick its own code (the original flow lets friends agree on one out
// of band); otherwise a random one is generated. Players join over the
// room's websocket, not here.
func CreateRoomHandler(rs *RoomServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if _, err := EnsureGuestSession(w, r); err != nil {
			http.Error(w, "failed to establish session", http.StatusInternalServerError)
			return
		}

		var req createRoomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
			http.Error(w, "bad create room payload", http.StatusBadRequest)
			return
		}

		code := strings.ToUpper(strings.TrimSpace(req.Code))
		if code != "" {
			m := game.NewMatch(code)
			if !rs.Matches.AddMatch(m) {
				http.Error(w, "room already exists", http.StatusConflict)
				return
			}
		} else {
			for {
				code = generateRoomCode()
				if rs.Matches.AddMatch(game.NewMatch(code)) {
					break
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"room_code": code})
	}
}

// ListRoomsHandler returns the live room codes, for debugging.
func ListRoomsHandler(rs *RoomServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"rooms": rs.Matches.RoomCodes(),
		})
	}
}
