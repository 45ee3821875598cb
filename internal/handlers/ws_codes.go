// internal/handlers/ws_codes.go
package handlers

// Custom WebSocket close codes used by the room handlers. These give
// clients a more specific reason for closure than the standard codes.
const (
	BadSubprotocolError   = 3000 // Client connected with an unsupported subprotocol.
	InvalidAuthTokenError = 3001 // Session token was invalid and could not be replaced.
	RoomNotFoundError     = 3002 // Target room code does not exist.
	RoomFullError         = 3003 // Both seats in the room are taken.
	RoomStartedError      = 3004 // The match in the room has already started.
)
