// internal/game/deck.go
package game

import "math/rand"

// Deck is the stack of undealt cards. Draws come off the end of the
// slice. The deck is not safe for concurrent use on its own; the owning
// Match serializes access.
type Deck struct {
	cards []*Card
}

// NewStandardDeck builds and shuffles the full 108-card UNO set:
// per color one 0 and two each of 1-9, skip, reverse and +2, plus four
// wilds and four wild-draw-fours.
func NewStandardDeck() *Deck {
	cards := make([]*Card, 0, 108)
	numberValues := []Value{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

	for _, color := range BaseColors {
		for _, v := range numberValues {
			cards = append(cards, &Card{Color: color, Value: v})
			if v != "0" {
				cards = append(cards, &Card{Color: color, Value: v})
			}
		}
		for _, v := range []Value{ValueSkip, ValueReverse, ValueDrawTwo} {
			cards = append(cards, &Card{Color: color, Value: v})
			cards = append(cards, &Card{Color: color, Value: v})
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, &Card{Color: ColorWild, Value: ValueWild})
		cards = append(cards, &Card{Color: ColorWild, Value: ValueWildDrawFour})
	}

	d := &Deck{cards: cards}
	d.Shuffle()
	return d
}

// Shuffle uniformly permutes the remaining cards (Fisher-Yates).
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. The second return is false
// when the deck is empty; callers check it before using the card.
func (d *Deck) Draw() (*Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Len returns the number of undealt cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether no cards remain.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// RefillFromDiscard moves every discard card except the current top into
// the deck and reshuffles, returning the single-card discard pile that
// remains. When the pile holds one card or less there is nothing to
// reshuffle and the pile is returned unchanged with ok=false.
func (d *Deck) RefillFromDiscard(discard []*Card) ([]*Card, bool) {
	if len(discard) <= 1 {
		return discard, false
	}
	top := discard[len(discard)-1]
	d.cards = append(d.cards, discard[:len(discard)-1]...)
	d.Shuffle()
	return []*Card{top}, true
}
