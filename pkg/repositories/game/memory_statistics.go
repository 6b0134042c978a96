package game

import (
	"context"
	"sort"

	"github.com/fadedpez/gofish/pkg/entities"
)

// GetPlayerStatistics folds every stored result for playerName
func (r *MemoryRepository) GetPlayerStatistics(ctx context.Context, playerName string) (*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &entities.PlayerStatistics{PlayerName: playerName}
	for _, result := range r.playerResults[playerName] {
		if pr := result.PlayerResultFor(playerName); pr != nil {
			stats.Add(pr, result.CompletedAt)
		}
	}
	return stats, nil
}

// GetAllPlayerStatistics returns statistics for everyone who has played, by name
func (r *MemoryRepository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := make(map[string]*entities.PlayerStatistics)
	for _, result := range r.results {
		for _, pr := range result.Players {
			stats, ok := byName[pr.PlayerName]
			if !ok {
				stats = &entities.PlayerStatistics{PlayerName: pr.PlayerName}
				byName[pr.PlayerName] = stats
			}
			stats.Add(pr, result.CompletedAt)
		}
	}

	return sortedStatistics(byName), nil
}

func sortedStatistics(byName map[string]*entities.PlayerStatistics) []*entities.PlayerStatistics {
	all := make([]*entities.PlayerStatistics, 0, len(byName))
	for _, stats := range byName {
		all = append(all, stats)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].PlayerName < all[j].PlayerName
	})
	return all
}
