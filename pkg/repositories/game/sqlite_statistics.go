package game

import (
	"context"
	"time"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
)

const playerRowsQuery = `
	SELECT p.player_name, p.books, p.result, m.completed_at
	FROM player_results p
	JOIN match_results m ON m.id = p.match_id`

// GetPlayerStatistics folds every stored result for playerName
func (r *SQLiteRepository) GetPlayerStatistics(ctx context.Context, playerName string) (*entities.PlayerStatistics, error) {
	byName, err := r.foldPlayerRows(ctx, playerRowsQuery+` WHERE p.player_name = ?`, playerName)
	if err != nil {
		return nil, err
	}

	if stats, ok := byName[playerName]; ok {
		return stats, nil
	}
	return &entities.PlayerStatistics{PlayerName: playerName}, nil
}

// GetAllPlayerStatistics returns statistics for everyone who has played, by name
func (r *SQLiteRepository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	byName, err := r.foldPlayerRows(ctx, playerRowsQuery)
	if err != nil {
		return nil, err
	}
	return sortedStatistics(byName), nil
}

func (r *SQLiteRepository) foldPlayerRows(ctx context.Context, query string, args ...interface{}) (map[string]*entities.PlayerStatistics, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error querying player statistics", err)
	}
	defer rows.Close()

	byName := make(map[string]*entities.PlayerStatistics)
	for rows.Next() {
		var (
			pr          entities.PlayerResult
			resultStr   string
			completedAt time.Time
		)
		if err := rows.Scan(&pr.PlayerName, &pr.Books, &resultStr, &completedAt); err != nil {
			return nil, err
		}
		pr.Result = entities.StringResult(resultStr)

		stats, ok := byName[pr.PlayerName]
		if !ok {
			stats = &entities.PlayerStatistics{PlayerName: pr.PlayerName}
			byName[pr.PlayerName] = stats
		}
		stats.Add(&pr, completedAt)
	}

	return byName, rows.Err()
}
