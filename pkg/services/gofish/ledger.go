package gofish

import (
	"fmt"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/fadedpez/gofish/pkg/games/common"
)

// BookSize is the number of same-rank cards that make a book
const BookSize = 4

// BookLedger records who laid down the book for each rank. Entries are write-once.
type BookLedger struct {
	owners  [entities.RankCount]string
	claimed int
}

// NewBookLedger creates an empty ledger
func NewBookLedger() *BookLedger {
	return &BookLedger{}
}

func index(r entities.Rank) int {
	return int(r - entities.MinRank)
}

// Claim records name as the owner of rank's book
func (l *BookLedger) Claim(r entities.Rank, name string) error {
	if !r.Valid() {
		return types.NewGameError(types.ErrInvalidRank, fmt.Sprintf("rank %d does not exist", int(r)))
	}
	if name == "" {
		return types.NewGameError(types.ErrInvalidArgument, "a book needs an owner")
	}
	if owner := l.owners[index(r)]; owner != "" {
		return types.NewGameError(types.ErrBookAlreadyClaimed, fmt.Sprintf("the %s book already belongs to %s", r, owner))
	}
	l.owners[index(r)] = name
	l.claimed++
	return nil
}

// Owner returns who holds rank's book
func (l *BookLedger) Owner(r entities.Rank) (string, bool) {
	if !r.Valid() {
		return "", false
	}
	owner := l.owners[index(r)]
	return owner, owner != ""
}

// IsClaimed reports whether rank's book has been laid down
func (l *BookLedger) IsClaimed(r entities.Rank) bool {
	_, ok := l.Owner(r)
	return ok
}

// Claimed returns the number of books laid down so far
func (l *BookLedger) Claimed() int {
	return l.claimed
}

// Complete reports whether all 13 books have been laid down
func (l *BookLedger) Complete() bool {
	return l.claimed == entities.RankCount
}

// Unclaimed returns the ranks still in play, lowest first
func (l *BookLedger) Unclaimed() []entities.Rank {
	var ranks []entities.Rank
	for _, r := range entities.Ranks() {
		if !l.IsClaimed(r) {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// BooksOf returns the ranks owned by name, lowest first
func (l *BookLedger) BooksOf(name string) []entities.Rank {
	var ranks []entities.Rank
	for _, r := range entities.Ranks() {
		if owner, ok := l.Owner(r); ok && owner == name {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// CountByOwner returns the number of books per owner
func (l *BookLedger) CountByOwner() map[string]int {
	counts := make(map[string]int)
	for _, owner := range l.owners {
		if owner != "" {
			counts[owner]++
		}
	}
	return counts
}

// SecureBook lays down at most one book from p's hand: the lowest unclaimed
// rank p holds exactly four of. The cards leave the hand and the ledger
// records p as owner.
func (l *BookLedger) SecureBook(p *common.Player) (entities.Rank, bool) {
	counts := p.RankCounts()
	for _, r := range entities.Ranks() {
		if counts[r] != BookSize || l.IsClaimed(r) {
			continue
		}
		if err := l.Claim(r, p.Name); err != nil {
			return 0, false
		}
		p.RemoveRank(r)
		return r, true
	}
	return 0, false
}

// SecureBooks calls SecureBook until nothing is left to lay down
func (l *BookLedger) SecureBooks(p *common.Player) []entities.Rank {
	var ranks []entities.Rank
	for {
		r, ok := l.SecureBook(p)
		if !ok {
			return ranks
		}
		ranks = append(ranks, r)
	}
}
