package gofish

import (
	"fmt"
	"strings"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/fadedpez/gofish/pkg/games/common"
)

// Seat limits, dealer included
const (
	MinPlayers = 2
	MaxPlayers = 5
)

// Table is the seating for one match: a deck, the dealer at seat 0 and
// everyone else in turn order after it.
type Table struct {
	Deck    *entities.Deck
	Players []*common.Player
	dealer  *Dealer
}

// NewTable seats an automated dealer, the human player, and enough automated
// players named P1, P2, ... to reach size seats.
func NewTable(humanName string, size int) (*Table, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	humanName = strings.TrimSpace(humanName)
	players := []*common.Player{
		common.NewDealer(true),
		common.NewPlayer(humanName, false),
	}
	for i := 0; i < size-2; i++ {
		players = append(players, common.NewPlayer(fmt.Sprintf("P%d", i+1), true))
	}

	return NewCustomTable(entities.NewDeck(), players...)
}

// NewCustomTable seats players in the given order on top of deck. The first
// player must be the dealer.
func NewCustomTable(deck *entities.Deck, players ...*common.Player) (*Table, error) {
	if err := checkSize(len(players)); err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "a table needs a deck")
	}
	if !players[0].IsDealer() {
		return nil, types.NewGameError(types.ErrInvalidArgument, "the dealer must sit at seat 0")
	}

	seen := make(map[string]bool, len(players))
	for i, p := range players {
		if p.Name == "" {
			return nil, types.NewGameError(types.ErrInvalidArgument, "player names must not be empty")
		}
		if i > 0 && p.IsDealer() {
			return nil, types.NewGameError(types.ErrInvalidArgument, "only one dealer per table")
		}
		if seen[p.Name] {
			return nil, types.NewGameError(types.ErrDuplicatePlayer, fmt.Sprintf("%s is already seated", p.Name))
		}
		seen[p.Name] = true
	}

	return &Table{
		Deck:    deck,
		Players: players,
		dealer:  &Dealer{Player: players[0]},
	}, nil
}

func checkSize(size int) error {
	if size < MinPlayers {
		return types.NewGameError(types.ErrNotEnoughPlayers, fmt.Sprintf("need at least %d players, got %d", MinPlayers, size))
	}
	if size > MaxPlayers {
		return types.NewGameError(types.ErrTooManyPlayers, fmt.Sprintf("at most %d players can sit at a table, got %d", MaxPlayers, size))
	}
	return nil
}

// Dealer returns the dealing seat
func (t *Table) Dealer() *Dealer {
	return t.dealer
}

// Size returns the number of seats
func (t *Table) Size() int {
	return len(t.Players)
}

// GetPlayer looks a player up by name, returning nil when nobody has that name
func (t *Table) GetPlayer(name string) *common.Player {
	for _, p := range t.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Seat returns the table index of p, or -1
func (t *Table) Seat(p *common.Player) int {
	for i, seated := range t.Players {
		if seated == p {
			return i
		}
	}
	return -1
}

// Names returns every player name in seat order
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Players))
	for _, p := range t.Players {
		names = append(names, p.Name)
	}
	return names
}

// Others returns everyone seated except p, in seat order
func (t *Table) Others(p *common.Player) []*common.Player {
	others := make([]*common.Player, 0, len(t.Players)-1)
	for _, seated := range t.Players {
		if seated != p {
			others = append(others, seated)
		}
	}
	return others
}

// Human returns the first seat not played automatically, or nil
func (t *Table) Human() *common.Player {
	for _, p := range t.Players {
		if !p.Automated {
			return p
		}
	}
	return nil
}

// SortHands orders every hand by rank
func (t *Table) SortHands() {
	for _, p := range t.Players {
		p.SortHand()
	}
}

// CardsInHands counts the cards held across all seats
func (t *Table) CardsInHands() int {
	total := 0
	for _, p := range t.Players {
		total += p.HandSize()
	}
	return total
}

// String lists every hand, one per line
func (t *Table) String() string {
	lines := make([]string, 0, len(t.Players))
	for _, p := range t.Players {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}
