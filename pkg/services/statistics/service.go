package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/fadedpez/gofish/pkg/repositories/game"
)

// Service provides methods for recording results and building leaderboards
type Service struct {
	repository game.Repository
}

// NewService creates a new statistics service
func NewService(repository game.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// PlayerRank represents a player's statistics with ranking information
type PlayerRank struct {
	*entities.PlayerStatistics
	Rank         int     `json:"rank"`
	WinRate      float64 `json:"win_rate"`
	BooksPerGame float64 `json:"books_per_game"`
	IsTopWinner  bool    `json:"is_top_winner"`
	IsTopPlayer  bool    `json:"is_top_player"`
}

// Leaderboard represents a paginated leaderboard of player statistics
type Leaderboard struct {
	Players        []*PlayerRank `json:"players"`
	TotalPlayers   int           `json:"total_players"`
	CurrentPage    int           `json:"current_page"`
	TotalPages     int           `json:"total_pages"`
	PlayersPerPage int           `json:"players_per_page"`
	LastUpdated    time.Time     `json:"last_updated"`
}

// RecordMatch stores a finished match
func (s *Service) RecordMatch(ctx context.Context, result *entities.MatchResult) error {
	return s.repository.SaveMatchResult(ctx, result)
}

// PlayerSummary returns one player's statistics
func (s *Service) PlayerSummary(ctx context.Context, playerName string) (*entities.PlayerStatistics, error) {
	return s.repository.GetPlayerStatistics(ctx, playerName)
}

// RecentMatches returns up to limit finished matches, newest first
func (s *Service) RecentMatches(ctx context.Context, limit int) ([]*entities.MatchResult, error) {
	return s.repository.GetRecentResults(ctx, limit)
}

// GetLeaderboard ranks everyone who has played by wins, then win rate, then
// books per game, and returns the requested page
func (s *Service) GetLeaderboard(ctx context.Context, page, playersPerPage int) (*Leaderboard, error) {
	if page < 1 {
		page = 1
	}
	if playersPerPage < 1 {
		playersPerPage = 10
	}

	allStats, err := s.repository.GetAllPlayerStatistics(ctx)
	if err != nil {
		return nil, err
	}

	playerRanks := make([]*PlayerRank, 0, len(allStats))
	for _, stats := range allStats {
		// Skip players with no games
		if stats.GamesPlayed == 0 {
			continue
		}

		playerRanks = append(playerRanks, &PlayerRank{
			PlayerStatistics: stats,
			WinRate:          stats.WinRate(),
			BooksPerGame:     stats.BooksPerGame(),
		})
	}

	sort.SliceStable(playerRanks, func(i, j int) bool {
		a, b := playerRanks[i], playerRanks[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		if a.BooksPerGame != b.BooksPerGame {
			return a.BooksPerGame > b.BooksPerGame
		}
		return a.PlayerName < b.PlayerName
	})

	if len(playerRanks) > 0 {
		playerRanks[0].IsTopWinner = true

		// Find the player with the most games played
		mostGamesIdx := 0
		for i := 1; i < len(playerRanks); i++ {
			if playerRanks[i].GamesPlayed > playerRanks[mostGamesIdx].GamesPlayed {
				mostGamesIdx = i
			}
		}
		playerRanks[mostGamesIdx].IsTopPlayer = true
	}

	for i := range playerRanks {
		playerRanks[i].Rank = i + 1
	}

	totalPlayers := len(playerRanks)
	totalPages := (totalPlayers + playersPerPage - 1) / playersPerPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * playersPerPage
	end := start + playersPerPage
	if end > totalPlayers {
		end = totalPlayers
	}

	currentPagePlayers := []*PlayerRank{}
	if start < totalPlayers {
		currentPagePlayers = playerRanks[start:end]
	}

	return &Leaderboard{
		Players:        currentPagePlayers,
		TotalPlayers:   totalPlayers,
		CurrentPage:    page,
		TotalPages:     totalPages,
		PlayersPerPage: playersPerPage,
		LastUpdated:    time.Now(),
	}, nil
}
