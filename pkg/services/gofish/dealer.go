package gofish

import (
	"math/rand"

	"github.com/fadedpez/gofish/pkg/games/common"
)

// Hand sizes for the initial deal
const (
	SmallTableHand = 7 // 2-3 players
	LargeTableHand = 5 // 4-5 players
)

// CardsPerPlayer returns how many cards each seat gets for a table of size
func CardsPerPlayer(size int) int {
	if size <= 3 {
		return SmallTableHand
	}
	return LargeTableHand
}

// Dealer is the dealing capability of the seat-0 player
type Dealer struct {
	Player *common.Player
}

// Shuffle shuffles the table's deck
func (d *Dealer) Shuffle(t *Table, r *rand.Rand) {
	t.Deck.Shuffle(r)
}

// Deal gives cardsPer cards to every seat, one card per seat per round in
// seat order. It stops early if the deck runs out and returns the number of
// cards dealt.
func (d *Dealer) Deal(t *Table, cardsPer int) int {
	dealt := 0
	for round := 0; round < cardsPer; round++ {
		for _, p := range t.Players {
			if _, ok := p.DrawFrom(common.DeckSource(t.Deck)); !ok {
				return dealt
			}
			dealt++
		}
	}
	return dealt
}
