package entities

import "time"

// PlayerStatistics represents aggregated statistics for a player across finished matches
type PlayerStatistics struct {
	PlayerName  string
	GamesPlayed int
	Wins        int
	Losses      int
	Ties        int
	TotalBooks  int
	LastUpdated time.Time
}

// Add folds one match result into the statistics
func (s *PlayerStatistics) Add(pr *PlayerResult, completedAt time.Time) {
	s.GamesPlayed++
	s.TotalBooks += pr.Books
	switch pr.Result {
	case StringResultWin:
		s.Wins++
	case StringResultTie:
		s.Ties++
	default:
		s.Losses++
	}
	if completedAt.After(s.LastUpdated) {
		s.LastUpdated = completedAt
	}
}

// WinRate calculates the player's win rate as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100.0
}

// BooksPerGame is the average number of books laid down per match
func (s *PlayerStatistics) BooksPerGame() float64 {
	if s.GamesPlayed == 0 {
		return 0.0
	}
	return float64(s.TotalBooks) / float64(s.GamesPlayed)
}
