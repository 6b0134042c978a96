package common

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
)

// Role distinguishes the dealer seat from everyone else
type Role int

const (
	RolePlayer Role = iota
	RoleDealer
)

// DealerName is the fixed name of the dealer seat
const DealerName = "Dealer"

// Player represents a player in any game
type Player struct {
	Name      string
	Hand      []entities.Card
	Automated bool
	Role      Role
}

// NewPlayer creates a new player with an empty hand
func NewPlayer(name string, automated bool) *Player {
	return &Player{
		Name:      name,
		Hand:      make([]entities.Card, 0),
		Automated: automated,
		Role:      RolePlayer,
	}
}

// NewDealer creates the dealer seat. The dealer is always called "Dealer".
func NewDealer(automated bool) *Player {
	p := NewPlayer(DealerName, automated)
	p.Role = RoleDealer
	return p
}

// IsDealer reports whether this seat deals the cards
func (p *Player) IsDealer() bool {
	return p.Role == RoleDealer
}

// SourceKind tags where DrawFrom takes a card from
type SourceKind int

const (
	FromDeck SourceKind = iota
	FromPlayer
	FromCard
)

// Source is a closed set of places a card can come from. Build one with
// DeckSource, PlayerSource or CardSource.
type Source struct {
	Kind   SourceKind
	Deck   *entities.Deck
	Player *Player
	Rand   *rand.Rand
	Card   entities.Card
}

// DeckSource draws the top card of d
func DeckSource(d *entities.Deck) Source {
	return Source{Kind: FromDeck, Deck: d}
}

// PlayerSource takes a uniformly random card out of p's hand
func PlayerSource(p *Player, r *rand.Rand) Source {
	return Source{Kind: FromPlayer, Player: p, Rand: r}
}

// CardSource adds c as is
func CardSource(c entities.Card) Source {
	return Source{Kind: FromCard, Card: c}
}

// DrawFrom takes one card from src into the hand. It returns false when the
// source had nothing to give.
func (p *Player) DrawFrom(src Source) (entities.Card, bool) {
	var card entities.Card

	switch src.Kind {
	case FromDeck:
		if src.Deck == nil {
			return entities.Card{}, false
		}
		drawn, err := src.Deck.Draw()
		if err != nil {
			return entities.Card{}, false
		}
		card = drawn
	case FromPlayer:
		if src.Player == nil || len(src.Player.Hand) == 0 {
			return entities.Card{}, false
		}
		i := src.Rand.Intn(len(src.Player.Hand))
		card = src.Player.Hand[i]
		src.Player.Hand = removeAt(src.Player.Hand, i)
	case FromCard:
		card = src.Card
	default:
		return entities.Card{}, false
	}

	p.Hand = append(p.Hand, card)
	return card, true
}

// Give moves card out of this hand into recipient's hand. The card is matched
// on rank and suit.
func (p *Player) Give(card entities.Card, recipient *Player) error {
	for i, held := range p.Hand {
		if held == card {
			p.Hand = removeAt(p.Hand, i)
			recipient.DrawFrom(CardSource(held))
			return nil
		}
	}
	return types.NewGameError(types.ErrCardNotFound, fmt.Sprintf("%s does not hold %s", p.Name, card))
}

// HasRank reports whether any held card has rank r
func (p *Player) HasRank(r entities.Rank) bool {
	for _, card := range p.Hand {
		if card.Rank == r {
			return true
		}
	}
	return false
}

// CardsOfRank returns the held cards of rank r in hand order
func (p *Player) CardsOfRank(r entities.Rank) []entities.Card {
	var cards []entities.Card
	for _, card := range p.Hand {
		if card.Rank == r {
			cards = append(cards, card)
		}
	}
	return cards
}

// Ranks returns the distinct ranks held, lowest first
func (p *Player) Ranks() []entities.Rank {
	seen := make(map[entities.Rank]bool)
	var ranks []entities.Rank
	for _, card := range p.Hand {
		if !seen[card.Rank] {
			seen[card.Rank] = true
			ranks = append(ranks, card.Rank)
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks
}

// RankCounts counts the held cards per rank
func (p *Player) RankCounts() map[entities.Rank]int {
	counts := make(map[entities.Rank]int)
	for _, card := range p.Hand {
		counts[card.Rank]++
	}
	return counts
}

// RemoveRank drops every card of rank r and returns how many were removed
func (p *Player) RemoveRank(r entities.Rank) int {
	kept := make([]entities.Card, 0, len(p.Hand))
	removed := 0
	for _, card := range p.Hand {
		if card.Rank == r {
			removed++
			continue
		}
		kept = append(kept, card)
	}
	p.Hand = kept
	return removed
}

// SortHand orders the hand by rank, keeping suit order stable within a rank
func (p *Player) SortHand() {
	sort.SliceStable(p.Hand, func(i, j int) bool {
		return p.Hand[i].Less(p.Hand[j])
	})
}

// HandSize returns the number of cards held
func (p *Player) HandSize() int {
	return len(p.Hand)
}

// ClearHand removes all cards from the player's hand
func (p *Player) ClearHand() {
	p.Hand = []entities.Card{}
}

// String returns the player and their hand
func (p *Player) String() string {
	return fmt.Sprintf("%s's hand: %v", p.Name, p.Hand)
}

func removeAt(cards []entities.Card, i int) []entities.Card {
	out := make([]entities.Card, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	return append(out, cards[i+1:]...)
}
