// internal/game/view_test.go
package game

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicView(t *testing.T) {
	m, alice, bob := setupTestMatch(t)
	v := m.PublicView()

	assert.Equal(t, "TEST", v.RoomCode)
	assert.Equal(t, alice.ID, v.CurrentPlayerID)
	assert.Equal(t, 1, v.Direction)
	assert.NotNil(t, v.TopCard)
	assert.NotEmpty(t, v.GameLog)
	assert.False(t, v.PendingColorChoice)
	assert.Empty(t, v.Winner)
	assert.Nil(t, v.Hand, "public view never carries a hand")

	require.Len(t, v.Players, 2)
	assert.Equal(t, alice.ID, v.Players[0].ID)
	assert.Equal(t, "Alice", v.Players[0].Name)
	assert.Equal(t, 7, v.Players[0].CardCount)
	assert.True(t, v.Players[0].IsCurrent)
	assert.Equal(t, bob.ID, v.Players[1].ID)
	assert.False(t, v.Players[1].IsCurrent)
}

func TestPublicViewHidesHands(t *testing.T) {
	m, _, _ := setupTestMatch(t)

	data, err := json.Marshal(m.PublicView())
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "hand")
}

func TestPrivateView(t *testing.T) {
	m, alice, bob := setupTestMatch(t)

	va, err := m.PrivateView(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.Hand, va.Hand)

	vb, err := m.PrivateView(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.Hand, vb.Hand)

	// Everything except the hand is the shared public projection.
	assert.Equal(t, va.Players, vb.Players)
	assert.Equal(t, va.TopCard, vb.TopCard)

	_, err = m.PrivateView(uuid.New())
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestViewIsStableSnapshot(t *testing.T) {
	m, alice, _ := setupTestMatch(t)
	rig(m, &Card{Color: ColorWild, Value: ValueWild},
		[]*Card{{Color: ColorWild, Value: ValueWild}, {Color: ColorRed, Value: "7"}},
		[]*Card{{Color: ColorBlue, Value: "9"}})
	m.PendingColorChoice = true

	public := m.PublicView()
	private, err := m.PrivateView(alice.ID)
	require.NoError(t, err)
	require.Equal(t, ColorWild, public.TopCard.Color)

	require.NoError(t, m.ChooseColor(alice.ID, ColorGreen))

	// Recoloring the live top card must not reach into views taken
	// before the choice.
	assert.Equal(t, ColorWild, public.TopCard.Color)
	assert.Equal(t, ColorWild, private.TopCard.Color)

	// The hand copy is by value too: mutating it leaves the seat alone.
	private.Hand[1].Color = ColorYellow
	assert.Equal(t, ColorRed, alice.Hand[1].Color)
}

func TestViewWinnerAndPending(t *testing.T) {
	m, alice, _ := setupTestMatch(t)

	m.PendingColorChoice = true
	assert.True(t, m.PublicView().PendingColorChoice)
	m.PendingColorChoice = false

	m.Winner = alice
	assert.Equal(t, "Alice", m.PublicView().Winner)
}

func TestLogIsBounded(t *testing.T) {
	m, _, _ := setupTestMatch(t)
	for i := 0; i < 25; i++ {
		m.logf("entry %d", i)
	}
	v := m.PublicView()
	assert.Len(t, v.GameLog, logCapacity)
	assert.Equal(t, "entry 24", v.GameLog[len(v.GameLog)-1], "oldest entries are evicted first")
}
