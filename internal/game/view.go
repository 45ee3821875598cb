// internal/game/view.go
package game

import "github.com/google/uuid"

// PlayerView is the public projection of one seat: hand size only,
// never hand contents.
type PlayerView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CardCount    int       `json:"cardCount"`
	IsCurrent    bool      `json:"isCurrent"`
	HasCalledUno bool      `json:"hasCalledUno"`
}

// View is the state projection delivered to clients. Hand is populated
// only by PrivateView and only with the recipient's own cards; the
// transport layer must deliver each private view solely to its owner.
type View struct {
	RoomCode           string       `json:"roomCode"`
	Players            []PlayerView `json:"players"`
	CurrentPlayerID    uuid.UUID    `json:"currentPlayerId"`
	TopCard            *Card        `json:"topCard"`
	Direction          int          `json:"direction"`
	GameLog            []string     `json:"gameLog"`
	Winner             string       `json:"winner,omitempty"`
	PendingColorChoice bool         `json:"isColorChoicePending"`

	Hand []*Card `json:"hand,omitempty"`
}

// PublicView derives the shared table state: seats with hand counts,
// whose turn it is, the top card, direction, recent log and winner.
func (m *Match) PublicView() View {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.buildView()
}

// PrivateView is PublicView plus the identified player's own hand.
func (m *Match) PrivateView(playerID uuid.UUID) (View, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	p := m.playerByID(playerID)
	if p == nil {
		return View{}, ErrUnknownPlayer
	}
	v := m.buildView()
	v.Hand = make([]*Card, len(p.Hand))
	for i, c := range p.Hand {
		cc := *c
		v.Hand[i] = &cc
	}
	return v, nil
}

// buildView assumes the lock is held. Cards are copied by value so the
// view stays a stable snapshot after a wild is recolored in place.
func (m *Match) buildView() View {
	cur := m.currentPlayer()

	v := View{
		RoomCode:           m.RoomCode,
		Players:            make([]PlayerView, 0, len(m.Players)),
		Direction:          m.Direction,
		GameLog:            append([]string(nil), m.Log...),
		PendingColorChoice: m.PendingColorChoice,
	}
	if top := m.topCard(); top != nil {
		tc := *top
		v.TopCard = &tc
	}
	if cur != nil {
		v.CurrentPlayerID = cur.ID
	}
	if m.Winner != nil {
		v.Winner = m.Winner.Name
	}
	for _, p := range m.Players {
		v.Players = append(v.Players, PlayerView{
			ID:           p.ID,
			Name:         p.Name,
			CardCount:    len(p.Hand),
			IsCurrent:    cur != nil && p.ID == cur.ID,
			HasCalledUno: p.HasCalledUno,
		})
	}
	return v
}
