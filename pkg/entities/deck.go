package entities

import (
	"math/rand"

	"github.com/fadedpez/gofish/internal/types"
)

// DeckSize is the number of cards in a full deck
const DeckSize = 52

// ErrEmptyDeck is returned by Draw once every card has been dealt
var ErrEmptyDeck = types.NewGameError(types.ErrEmptyDeck, "deck is empty")

// Deck is an ordered pile of cards. The top of the deck is the last element.
type Deck struct {
	cards []Card
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, rank := range Ranks() {
		for _, suit := range Suits {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	return &Deck{cards: cards}
}

// NewDeckFromCards builds a deck in the given order; the last card is drawn first
func NewDeckFromCards(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle randomly permutes the remaining cards
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	top := len(d.cards) - 1
	card := d.cards[top]
	d.cards = d.cards[:top]
	return card, nil
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty reports whether there is nothing left to draw
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
