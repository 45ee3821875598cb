// internal/game/errors.go
package game

import "errors"

// Action errors. All of them are recoverable: the match state is left
// untouched and the error is reported to the acting player only.
var (
	// Join errors.
	ErrRoomFull       = errors.New("room is full")
	ErrAlreadyStarted = errors.New("match has already started")
	ErrAlreadySeated  = errors.New("player is already seated in this match")

	// Start errors.
	ErrNotEnoughPlayers = errors.New("not enough players to start")

	// Play/draw errors.
	ErrNotStarted         = errors.New("match has not started")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrColorChoicePending = errors.New("waiting for a color choice")
	ErrGameOver           = errors.New("match is over")
	ErrInvalidCardIndex   = errors.New("invalid card index")
	ErrIllegalMove        = errors.New("card cannot be played on the top card")
	ErrMustPlayInstead    = errors.New("you hold a playable card")
	ErrDeckExhausted      = errors.New("no cards left to draw")

	// Color choice errors.
	ErrNoColorPending = errors.New("no color choice is pending")
	ErrInvalidColor   = errors.New("invalid color")

	// UNO call errors.
	ErrTooManyCards = errors.New("too many cards to call uno")

	ErrUnknownPlayer = errors.New("player is not in this match")
)
