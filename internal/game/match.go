// internal/game/match.go
package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

const (
	// MaxPlayers is the fixed head-to-head match size.
	MaxPlayers = 2

	// HandSize is the number of cards dealt to each player at start.
	HandSize = 7

	// UnoPenaltyCount is the forced draw for reaching one card without
	// having called UNO.
	UnoPenaltyCount = 2

	logCapacity = 10
)

// Outcome reports what a successful play or draw left behind for the
// caller to act on.
type Outcome struct {
	// NeedColorChoice is set when a wild card was played without a color;
	// the match accepts only ChooseColor until the color arrives.
	NeedColorChoice bool

	// KeptTurn is set when a drawn card could follow the top card, so the
	// turn did not advance and the player may still play it.
	KeptTurn bool
}

// Match holds the entire authoritative state for one UNO match. All
// exported methods take the match lock; a match is mutated by one action
// at a time.
type Match struct {
	ID       uuid.UUID
	RoomCode string

	Players            []*Player
	CurrentPlayerIndex int
	Direction          int
	Deck               *Deck
	DiscardPile        []*Card

	Started            bool
	PendingColorChoice bool
	Winner             *Player
	Log                []string

	Mu sync.Mutex
}

// NewMatch builds an empty match for a room with a freshly shuffled deck.
func NewMatch(roomCode string) *Match {
	return &Match{
		ID:          uuid.New(),
		RoomCode:    roomCode,
		Direction:   1,
		Deck:        NewStandardDeck(),
		DiscardPile: []*Card{},
	}
}

// AddPlayer seats a new player. It fails once the match has started or
// both seats are taken.
func (m *Match) AddPlayer(id uuid.UUID, name string) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if m.Started {
		return ErrAlreadyStarted
	}
	if len(m.Players) >= MaxPlayers {
		return ErrRoomFull
	}
	if m.playerByID(id) != nil {
		return ErrAlreadySeated
	}
	m.Players = append(m.Players, &Player{ID: id, Name: name, Hand: []*Card{}, Connected: true})
	return nil
}

// Start deals seven cards to each player and flips a non-wild starting
// card. The caller invokes it once both seats are filled.
//
// Wild cards drawn while looking for the starting card are set aside for
// the rest of the match rather than returned to the deck; the loop
// terminates because the deck holds 100 non-wild cards.
func (m *Match) Start() error {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if m.Started {
		return ErrAlreadyStarted
	}
	if len(m.Players) < MaxPlayers {
		return ErrNotEnoughPlayers
	}

	m.Started = true
	m.Log = nil

	for _, p := range m.Players {
		p.Hand = make([]*Card, 0, HandSize)
		p.HasCalledUno = false
		for i := 0; i < HandSize; i++ {
			c, _ := m.Deck.Draw()
			p.AddCard(c)
		}
	}

	var start *Card
	for {
		start, _ = m.Deck.Draw()
		if !start.IsWild() {
			break
		}
	}
	m.DiscardPile = append(m.DiscardPile, start)
	m.logf("Match started! First card: %s", start)
	return nil
}

// PlayCard plays the card at cardIndex from the acting player's hand.
// chosenColor may be empty; when the played card is wild and no color was
// supplied, the match blocks on ChooseColor and the outcome says so.
func (m *Match) PlayCard(playerID uuid.UUID, cardIndex int, chosenColor Color) (Outcome, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if !m.Started {
		return Outcome{}, ErrNotStarted
	}
	cur := m.currentPlayer()
	if cur == nil || cur.ID != playerID {
		return Outcome{}, ErrNotYourTurn
	}
	if m.PendingColorChoice {
		return Outcome{}, ErrColorChoicePending
	}
	if m.Winner != nil {
		return Outcome{}, ErrGameOver
	}
	if cardIndex < 0 || cardIndex >= len(cur.Hand) {
		return Outcome{}, ErrInvalidCardIndex
	}

	card := cur.Hand[cardIndex]
	if !card.CanFollow(m.topCard()) {
		return Outcome{}, ErrIllegalMove
	}
	if card.IsWild() && chosenColor != "" && !ValidBaseColor(chosenColor) {
		return Outcome{}, ErrInvalidColor
	}

	played := cur.RemoveCard(cardIndex)
	m.DiscardPile = append(m.DiscardPile, played)
	m.logf("%s played %s", cur.Name, played)

	// UNO penalty before the win check: one card left without a call
	// costs two replacement draws. Checked only at the play that reduced
	// the hand, never re-applied on later turns.
	if len(cur.Hand) == 1 && !cur.HasCalledUno {
		m.forceDraw(cur, UnoPenaltyCount)
		m.logf("%s forgot to call UNO! Drew %d cards.", cur.Name, UnoPenaltyCount)
	}

	if len(cur.Hand) == 0 {
		m.Winner = cur
		m.logf("%s won the match!", cur.Name)
		return Outcome{}, nil
	}

	if played.IsWild() {
		if chosenColor == "" {
			m.PendingColorChoice = true
			return Outcome{NeedColorChoice: true}, nil
		}
		m.applyColorChoice(chosenColor)
		return Outcome{}, nil
	}

	m.applySpecial(played)
	m.advanceTurn()
	return Outcome{}, nil
}

// ChooseColor resolves a pending wild color choice by the current player.
// For a wild-draw-four the forced draw lands on the next player here,
// once the color is known.
func (m *Match) ChooseColor(playerID uuid.UUID, color Color) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if !m.Started {
		return ErrNotStarted
	}
	cur := m.currentPlayer()
	if cur == nil || cur.ID != playerID {
		return ErrNotYourTurn
	}
	if m.Winner != nil {
		return ErrGameOver
	}
	if !m.PendingColorChoice {
		return ErrNoColorPending
	}
	if !ValidBaseColor(color) {
		return ErrInvalidColor
	}
	m.applyColorChoice(color)
	return nil
}

// DrawCard draws one card for the acting player. Drawing is allowed only
// when no card in hand could follow the top card. If the drawn card is
// playable the player keeps the turn; otherwise the turn passes.
func (m *Match) DrawCard(playerID uuid.UUID) (Outcome, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if !m.Started {
		return Outcome{}, ErrNotStarted
	}
	cur := m.currentPlayer()
	if cur == nil || cur.ID != playerID {
		return Outcome{}, ErrNotYourTurn
	}
	if m.PendingColorChoice {
		return Outcome{}, ErrColorChoicePending
	}
	if m.Winner != nil {
		return Outcome{}, ErrGameOver
	}

	top := m.topCard()
	if cur.CanPlayOn(top) {
		return Outcome{}, ErrMustPlayInstead
	}

	c, err := m.safeDraw()
	if err != nil {
		return Outcome{}, err
	}
	cur.AddCard(c)
	m.logf("%s drew a card", cur.Name)

	if !c.CanFollow(top) {
		m.advanceTurn()
		return Outcome{}, nil
	}
	return Outcome{KeptTurn: true}, nil
}

// CallUno marks the player as having called UNO. Valid only while the
// player holds two cards or fewer; a call with a bigger hand is a no-op
// reported back as an error, never a penalty.
func (m *Match) CallUno(playerID uuid.UUID) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if !m.Started {
		return ErrNotStarted
	}
	p := m.playerByID(playerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if len(p.Hand) > 2 {
		return ErrTooManyCards
	}
	p.HasCalledUno = true
	m.logf("%s called UNO!", p.Name)
	return nil
}

// applyColorChoice rewrites the top card's color and finishes the wild
// card's turn. Assumes the lock is held.
func (m *Match) applyColorChoice(color Color) {
	top := m.topCard()
	top.Color = color
	m.PendingColorChoice = false
	m.logf("New color: %s", color)

	if top.Value == ValueWildDrawFour {
		next := m.peekNext()
		m.forceDraw(next, 4)
		m.logf("%s drew 4 cards and lost their turn!", next.Name)
		m.advanceTurn()
	}
	m.advanceTurn()
}

// applySpecial runs the effect of a non-wild action card. The caller
// still advances the turn once afterward for the normal pass, so the
// handlers advance an extra step where the next player is skipped.
// Assumes the lock is held.
func (m *Match) applySpecial(card *Card) {
	next := m.peekNext()

	switch card.Value {
	case ValueSkip:
		m.logf("%s lost their turn!", next.Name)
		m.advanceTurn()
	case ValueReverse:
		if len(m.Players) == 2 {
			// Head to head a reverse behaves exactly like a skip.
			m.logf("Reversed! %s lost their turn.", next.Name)
			m.advanceTurn()
		} else {
			m.Direction = -m.Direction
			m.logf("Play direction reversed!")
		}
	case ValueDrawTwo:
		m.forceDraw(next, 2)
		m.logf("%s drew 2 cards and lost their turn!", next.Name)
		m.advanceTurn()
	}
}

// safeDraw draws from the deck, reshuffling the discard pile into it
// first when the deck is empty. It fails only when every card outside
// the top of the discard pile is in some hand. Assumes the lock is held.
func (m *Match) safeDraw() (*Card, error) {
	if m.Deck.Empty() {
		if pile, ok := m.Deck.RefillFromDiscard(m.DiscardPile); ok {
			m.DiscardPile = pile
			m.logf("Deck reshuffled!")
		}
	}
	c, ok := m.Deck.Draw()
	if !ok {
		return nil, ErrDeckExhausted
	}
	return c, nil
}

// forceDraw deals up to n penalty cards to p, stopping quietly if the
// deck and discard pile run dry. Assumes the lock is held.
func (m *Match) forceDraw(p *Player, n int) {
	for i := 0; i < n; i++ {
		c, err := m.safeDraw()
		if err != nil {
			return
		}
		p.AddCard(c)
	}
}

func (m *Match) currentPlayer() *Player {
	if len(m.Players) == 0 {
		return nil
	}
	return m.Players[m.CurrentPlayerIndex]
}

func (m *Match) topCard() *Card {
	if len(m.DiscardPile) == 0 {
		return nil
	}
	return m.DiscardPile[len(m.DiscardPile)-1]
}

func (m *Match) playerByID(id uuid.UUID) *Player {
	for _, p := range m.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (m *Match) advanceTurn() {
	n := len(m.Players)
	m.CurrentPlayerIndex = (m.CurrentPlayerIndex + m.Direction + n) % n
}

// peekNext returns the player the turn would pass to, without moving it.
func (m *Match) peekNext() *Player {
	n := len(m.Players)
	return m.Players[(m.CurrentPlayerIndex+m.Direction+n)%n]
}

// logf appends a line to the bounded match log, evicting the oldest
// entry past capacity.
func (m *Match) logf(format string, args ...interface{}) {
	m.Log = append(m.Log, fmt.Sprintf(format, args...))
	if len(m.Log) > logCapacity {
		m.Log = m.Log[len(m.Log)-logCapacity:]
	}
}
