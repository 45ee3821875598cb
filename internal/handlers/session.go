// internal/handlers/session.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/davialves/unoroom/internal/auth"
	"github.com/google/uuid"
)

const sessionCookieName = "auth_token"

// EnsureGuestSession resolves the caller's player identity from the
// auth_token cookie, minting a fresh guest session (and setting the
// cookie) when the caller arrives without one or with a stale token.
// The same identity is presented on every action for the lifetime of
// the match.
func EnsureGuestSession(w http.ResponseWriter, r *http.Request) (uuid.UUID, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		playerID, err := auth.AuthenticateToken(cookie.Value)
		if err == nil {
			return playerID, nil
		}
	}

	playerID, newToken, err := auth.NewGuestSession()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create guest session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    newToken,
		HttpOnly: true,
		Path:     "/",
	})
	return playerID, nil
}
