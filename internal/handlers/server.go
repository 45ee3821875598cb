// internal/handlers/server.go
package handlers

import (
	"log"

	"github.com/davialves/unoroom/internal/game"
)

// RoomServer holds the match store shared by the HTTP and WebSocket
// handlers. The engine itself keeps no process-wide state; every match
// is reached through this store.
type RoomServer struct {
	Matches *game.MatchStore
	Logf    func(f string, v ...interface{})
}

func NewRoomServer() *RoomServer {
	return &RoomServer{
		Matches: game.NewMatchStore(),
		Logf:    log.Printf,
	}
}
