package entities

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
	deck *Deck
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) SetupTest() {
	s.deck = NewDeck()
}

func (s *DeckTestSuite) TestNewDeckHas52UniqueCards() {
	s.Equal(DeckSize, s.deck.Len())

	seen := make(map[Card]bool)
	for _, card := range s.deck.Cards() {
		s.False(seen[card], "duplicate card %s", card)
		s.True(card.Rank.Valid(), "rank out of range on %s", card)
		seen[card] = true
	}
	s.Len(seen, DeckSize)
}

func (s *DeckTestSuite) TestDrawTakesLastCard() {
	cards := s.deck.Cards()

	card, err := s.deck.Draw()

	s.Require().NoError(err)
	s.Equal(cards[len(cards)-1], card)
	s.Equal(DeckSize-1, s.deck.Len())
}

func (s *DeckTestSuite) TestSizeAfterNDraws() {
	for n := 1; n <= DeckSize; n++ {
		_, err := s.deck.Draw()
		s.Require().NoError(err)
		s.Equal(DeckSize-n, s.deck.Len())
	}
	s.True(s.deck.IsEmpty())
}

func (s *DeckTestSuite) TestDrawFromEmptyDeck() {
	deck := NewDeckFromCards()

	card, err := deck.Draw()

	s.Error(err)
	s.True(errors.Is(err, ErrEmptyDeck))
	s.True(types.IsGameError(err, types.ErrEmptyDeck))
	s.Equal(Card{}, card)
	s.Zero(deck.Len())
}

func (s *DeckTestSuite) TestShuffleIsAPermutation() {
	before := s.deck.Cards()

	s.deck.Shuffle(rand.New(rand.NewSource(7)))

	after := s.deck.Cards()
	s.ElementsMatch(before, after)
	s.NotEqual(before, after, "a seeded shuffle of 52 cards should change the order")
}

func (s *DeckTestSuite) TestShuffleIsDeterministicForSeed() {
	other := NewDeck()

	s.deck.Shuffle(rand.New(rand.NewSource(99)))
	other.Shuffle(rand.New(rand.NewSource(99)))

	s.Equal(s.deck.Cards(), other.Cards())
}

func (s *DeckTestSuite) TestCardsReturnsCopy() {
	cards := s.deck.Cards()
	cards[0] = NewCard(Ace, Spades)

	s.NotEqual(cards[0], s.deck.Cards()[0])
}

func TestCard(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "7♥", NewCard(Seven, Hearts).String())
		assert.Equal(t, "10♣", NewCard(Ten, Clubs).String())
		assert.Equal(t, "J♠", NewCard(Jack, Spades).String())
		assert.Equal(t, "A♦", NewCard(Ace, Diamonds).String())
	})

	t.Run("color", func(t *testing.T) {
		assert.Equal(t, Red, NewCard(Two, Hearts).Color())
		assert.Equal(t, Red, NewCard(Two, Diamonds).Color())
		assert.Equal(t, Black, NewCard(Two, Spades).Color())
		assert.Equal(t, Black, NewCard(Two, Clubs).Color())
	})

	t.Run("rank comparisons ignore suit", func(t *testing.T) {
		assert.True(t, NewCard(Queen, Hearts).SameRank(NewCard(Queen, Clubs)))
		assert.False(t, NewCard(Queen, Hearts).SameRank(NewCard(King, Hearts)))
		assert.True(t, NewCard(Three, Spades).Less(NewCard(Four, Hearts)))
		assert.False(t, NewCard(Four, Spades).Less(NewCard(Four, Hearts)))
	})
}

func TestParseRank(t *testing.T) {
	testCases := []struct {
		input    string
		expected Rank
		wantErr  bool
	}{
		{"2", Two, false},
		{" 10 ", Ten, false},
		{"14", Ace, false},
		{"j", Jack, false},
		{"Q", Queen, false},
		{"k", King, false},
		{"A", Ace, false},
		{"1", 0, true},
		{"15", 0, true},
		{"joker", 0, true},
		{"", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			rank, err := ParseRank(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rank)
		})
	}
}

func TestRanks(t *testing.T) {
	ranks := Ranks()

	assert.Len(t, ranks, RankCount)
	assert.Equal(t, 13, RankCount)
	assert.Equal(t, Two, ranks[0])
	assert.Equal(t, Ace, ranks[len(ranks)-1])
}
