// internal/game/player.go
package game

import (
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Player is one seat in a match. Conn and Connected belong to the
// transport layer; the rules never look at them.
type Player struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Hand         []*Card         `json:"-"`
	HasCalledUno bool            `json:"hasCalledUno"`
	Connected    bool            `json:"-"`
	Conn         *websocket.Conn `json:"-"`
}

// AddCard appends a card to the hand, preserving hand order for the
// client's rendering.
func (p *Player) AddCard(c *Card) {
	p.Hand = append(p.Hand, c)
}

// RemoveCard removes and returns the card at idx. Callers validate the
// index first.
func (p *Player) RemoveCard(idx int) *Card {
	c := p.Hand[idx]
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	return c
}

// CanPlayOn reports whether any card in hand could follow top.
func (p *Player) CanPlayOn(top *Card) bool {
	for _, c := range p.Hand {
		if c.CanFollow(top) {
			return true
		}
	}
	return false
}
