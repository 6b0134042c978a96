package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

const (
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Spades   Suit = "♠"
	Clubs    Suit = "♣"
)

// Suits lists the four suits in deck-building order
var Suits = []Suit{Hearts, Diamonds, Spades, Clubs}

// Color is the color a suit is printed in
type Color string

const (
	Red   Color = "Red"
	Black Color = "Black"
)

// Color returns the color of the suit
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Rank represents a card rank, 2 through 14 with 11-14 being J, Q, K and A
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14

	MinRank = Two
	MaxRank = Ace
)

// RankCount is the number of distinct ranks, and so the number of books in a game
const RankCount = int(MaxRank-MinRank) + 1

var faceNames = map[Rank]string{
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// Ranks returns every rank in ascending order
func Ranks() []Rank {
	ranks := make([]Rank, 0, RankCount)
	for r := MinRank; r <= MaxRank; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Valid reports whether r is between 2 and 14
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// String returns the display form of the rank
func (r Rank) String() string {
	if name, ok := faceNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// ParseRank accepts a number 2-14 or one of J, Q, K, A in any case
func ParseRank(s string) (Rank, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for rank, name := range faceNames {
		if s == name {
			return rank, nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a card rank", s)
	}
	rank := Rank(n)
	if !rank.Valid() {
		return 0, fmt.Errorf("rank %d is out of range %d-%d", n, MinRank, MaxRank)
	}
	return rank, nil
}

// Card represents a playing card. Cards are values and never change once made.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{
		Rank: rank,
		Suit: suit,
	}
}

// Color returns the color derived from the suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// SameRank reports whether both cards have the same rank, ignoring suit
func (c Card) SameRank(other Card) bool {
	return c.Rank == other.Rank
}

// Less orders cards by rank only
func (c Card) Less(other Card) bool {
	return c.Rank < other.Rank
}

// String returns the string representation of the card
func (c Card) String() string {
	return c.Rank.String() + string(c.Suit)
}
