package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Results in the order they were saved
	results []*entities.MatchResult
	// Map of match ID to result
	byID map[string]*entities.MatchResult
	// Map of player name to the results they played in
	playerResults map[string][]*entities.MatchResult
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:          make(map[string]*entities.MatchResult),
		playerResults: make(map[string][]*entities.MatchResult),
	}
}

// SaveMatchResult stores a result and indexes it by player
func (r *MemoryRepository) SaveMatchResult(ctx context.Context, result *entities.MatchResult) error {
	if err := validateResult(result); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[result.ID]; exists {
		return types.NewGameError(types.ErrDatabaseError, fmt.Sprintf("match %s is already recorded", result.ID))
	}

	r.results = append(r.results, result)
	r.byID[result.ID] = result
	for _, pr := range result.Players {
		r.playerResults[pr.PlayerName] = append(r.playerResults[pr.PlayerName], result)
	}

	return nil
}

// GetMatchResult returns the result with id, or nil when there is none
func (r *MemoryRepository) GetMatchResult(ctx context.Context, id string) (*entities.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id], nil
}

// GetPlayerResults retrieves a player's results, most recent first
func (r *MemoryRepository) GetPlayerResults(ctx context.Context, playerName string) ([]*entities.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return newestFirst(r.playerResults[playerName], 0), nil
}

// GetRecentResults retrieves up to limit results, most recent first
func (r *MemoryRepository) GetRecentResults(ctx context.Context, limit int) ([]*entities.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return newestFirst(r.results, limit), nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}

// newestFirst reverses saved order; limit <= 0 means everything
func newestFirst(results []*entities.MatchResult, limit int) []*entities.MatchResult {
	if limit <= 0 || limit > len(results) {
		limit = len(results)
	}
	out := make([]*entities.MatchResult, 0, limit)
	for i := len(results) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, results[i])
	}
	return out
}

func validateResult(result *entities.MatchResult) error {
	if result == nil {
		return types.NewGameError(types.ErrInvalidArgument, "no result to save")
	}
	if result.ID == "" {
		return types.NewGameError(types.ErrInvalidArgument, "result has no match ID")
	}
	if len(result.Players) == 0 {
		return types.NewGameError(types.ErrInvalidArgument, "result has no players")
	}
	return nil
}
