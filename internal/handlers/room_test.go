// internal/handlers/room_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davialves/unoroom/internal/auth"
)

func TestGenerateRoomCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := generateRoomCode()
		require.Len(t, code, 4)
		for _, r := range code {
			assert.Contains(t, roomCodeLetters, string(r))
		}
	}
}

func TestCreateRoomHandler(t *testing.T) {
	require.NoError(t, auth.Init())
	rs := NewRoomServer()
	handler := CreateRoomHandler(rs)

	t.Run("rejects non-POST", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/room/create", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("creates a room with a chosen code", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodPost, "/room/create", strings.NewReader(`{"code":"abcd"}`)))
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ABCD", resp["room_code"], "codes are upper-cased")

		_, ok := rs.Matches.GetMatch("ABCD")
		assert.True(t, ok)
	})

	t.Run("duplicate codes conflict", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodPost, "/room/create", strings.NewReader(`{"code":"ABCD"}`)))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("generates a code when none is given", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodPost, "/room/create", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp["room_code"], 4)
		_, ok := rs.Matches.GetMatch(resp["room_code"])
		assert.True(t, ok)
	})

	t.Run("sets a guest session cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodPost, "/room/create", strings.NewReader(`{"code":"WXYZ"}`)))
		require.Equal(t, http.StatusOK, w.Code)

		cookie := w.Header().Get("Set-Cookie")
		assert.Contains(t, cookie, "auth_token=")
	})
}

func TestListRoomsHandler(t *testing.T) {
	require.NoError(t, auth.Init())
	rs := NewRoomServer()

	createW := httptest.NewRecorder()
	CreateRoomHandler(rs)(createW, httptest.NewRequest(http.MethodPost, "/room/create", strings.NewReader(`{"code":"LIST"}`)))
	require.Equal(t, http.StatusOK, createW.Code)

	w := httptest.NewRecorder()
	ListRoomsHandler(rs)(w, httptest.NewRequest(http.MethodGet, "/room/list", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rooms []string `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"LIST"}, resp.Rooms)
}

func TestEnsureGuestSessionReusesIdentity(t *testing.T) {
	require.NoError(t, auth.Init())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	first, err := EnsureGuestSession(w, r)
	require.NoError(t, err)

	token := sessionCookieValue(t, w)
	require.NotEmpty(t, token)

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	second, err := EnsureGuestSession(httptest.NewRecorder(), r2)
	require.NoError(t, err)
	assert.Equal(t, first, second, "the cookie pins the same player identity")
}

func TestEnsureGuestSessionIgnoresLookAlikeCookie(t *testing.T) {
	require.NoError(t, auth.Init())

	w := httptest.NewRecorder()
	first, err := EnsureGuestSession(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	token := sessionCookieValue(t, w)
	require.NotEmpty(t, token)

	// A cookie whose name merely ends in the session cookie's name must
	// not be read as the session; the caller gets a fresh identity.
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "x" + sessionCookieName, Value: token})
	second, err := EnsureGuestSession(httptest.NewRecorder(), r)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

// sessionCookieValue pulls the guest session token out of a recorded
// response's Set-Cookie headers.
func sessionCookieValue(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c.Value
		}
	}
	return ""
}
