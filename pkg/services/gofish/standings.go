package gofish

import (
	"github.com/fadedpez/gofish/pkg/entities"
)

// Standing is one seat's book count
type Standing struct {
	Name      string
	Seat      int
	Automated bool
	Books     int
	Ranks     []entities.Rank
}

// Standings are the book counts for every seat, in seat order
type Standings struct {
	Entries []Standing
	Winner  Standing
	// Tied lists everyone sharing the top count when more than one player does
	Tied []string
}

// IsTie reports whether more than one player has the top book count
func (s Standings) IsTie() bool {
	return len(s.Tied) > 1
}

// ComputeStandings counts books per seat. The winner has the most books; a
// tie goes to whoever sits closest to the dealer.
func ComputeStandings(t *Table, l *BookLedger) Standings {
	var s Standings
	best := -1

	for seat, p := range t.Players {
		ranks := l.BooksOf(p.Name)
		entry := Standing{
			Name:      p.Name,
			Seat:      seat,
			Automated: p.Automated,
			Books:     len(ranks),
			Ranks:     ranks,
		}
		s.Entries = append(s.Entries, entry)

		if entry.Books > best {
			best = entry.Books
			s.Winner = entry
		}
	}

	for _, entry := range s.Entries {
		if entry.Books == best {
			s.Tied = append(s.Tied, entry.Name)
		}
	}
	if len(s.Tied) < 2 {
		s.Tied = nil
	}

	return s
}

// ResultFor maps a seat's standing to WIN, TIE or LOSE
func (s Standings) ResultFor(name string) entities.StringResult {
	if name == s.Winner.Name {
		return entities.StringResultWin
	}
	for _, tied := range s.Tied {
		if tied == name {
			return entities.StringResultTie
		}
	}
	return entities.StringResultLose
}
