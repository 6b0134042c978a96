package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/db/migrations"
	"github.com/fadedpez/gofish/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if needed) the database at dbPath and
// applies any pending migrations
func NewSQLiteRepository(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error opening database", err)
	}

	migrator := migrations.NewMigrator(db, migrations.Embedded())
	if _, err := migrator.MigrateUp(ctx); err != nil {
		db.Close()
		return nil, types.WrapError(types.ErrDatabaseError, "error applying migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveMatchResult stores a match and its player rows in one transaction
func (r *SQLiteRepository) SaveMatchResult(ctx context.Context, result *entities.MatchResult) error {
	if err := validateResult(result); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO match_results (
			id, game_type, started_at, completed_at, turns, winner, tied
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.ExecContext(ctx, query,
		result.ID, result.GameType, result.StartedAt, result.CompletedAt,
		result.Turns, result.Winner, result.Tied)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, fmt.Sprintf("error saving match %s", result.ID), err)
	}

	for _, pr := range result.Players {
		ranksJSON, err := json.Marshal(pr.BookRanks)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO player_results (
				match_id, player_name, seat, automated, books, book_ranks, result
			) VALUES (?, ?, ?, ?, ?, ?, ?)`

		_, err = tx.ExecContext(ctx, query,
			result.ID, pr.PlayerName, pr.Seat, pr.Automated, pr.Books, string(ranksJSON), string(pr.Result))
		if err != nil {
			return types.WrapError(types.ErrDatabaseError, fmt.Sprintf("error saving %s's result", pr.PlayerName), err)
		}
	}

	return tx.Commit()
}

// GetMatchResult returns the result with id, or nil when there is none
func (r *SQLiteRepository) GetMatchResult(ctx context.Context, id string) (*entities.MatchResult, error) {
	results, err := r.queryMatches(ctx, `
		SELECT id, game_type, started_at, completed_at, turns, winner, tied
		FROM match_results
		WHERE id = ?`, id)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return results[0], nil
}

// GetPlayerResults retrieves a player's results, most recent first
func (r *SQLiteRepository) GetPlayerResults(ctx context.Context, playerName string) ([]*entities.MatchResult, error) {
	return r.queryMatches(ctx, `
		SELECT m.id, m.game_type, m.started_at, m.completed_at, m.turns, m.winner, m.tied
		FROM match_results m
		JOIN player_results p ON p.match_id = m.id
		WHERE p.player_name = ?
		ORDER BY m.completed_at DESC`, playerName)
}

// GetRecentResults retrieves up to limit results, most recent first
func (r *SQLiteRepository) GetRecentResults(ctx context.Context, limit int) ([]*entities.MatchResult, error) {
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}
	return r.queryMatches(ctx, `
		SELECT id, game_type, started_at, completed_at, turns, winner, tied
		FROM match_results
		ORDER BY completed_at DESC
		LIMIT ?`, limit)
}

// queryMatches runs a match_results query and attaches the player rows
func (r *SQLiteRepository) queryMatches(ctx context.Context, query string, args ...interface{}) ([]*entities.MatchResult, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error querying match results", err)
	}
	defer rows.Close()

	results := []*entities.MatchResult{}
	byID := make(map[string]*entities.MatchResult)

	for rows.Next() {
		result := &entities.MatchResult{Players: []*entities.PlayerResult{}}
		err := rows.Scan(
			&result.ID, &result.GameType, &result.StartedAt, &result.CompletedAt,
			&result.Turns, &result.Winner, &result.Tied,
		)
		if err != nil {
			return nil, err
		}
		byID[result.ID] = result
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return results, nil
	}
	if err := r.attachPlayers(ctx, byID); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *SQLiteRepository) attachPlayers(ctx context.Context, byID map[string]*entities.MatchResult) error {
	placeholders := make([]string, 0, len(byID))
	args := make([]interface{}, 0, len(byID))
	for id := range byID {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}

	query := `
		SELECT match_id, player_name, seat, automated, books, book_ranks, result
		FROM player_results
		WHERE match_id IN (` + strings.Join(placeholders, ",") + `)
		ORDER BY match_id, seat`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error querying player results", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			matchID   string
			ranksJSON string
			resultStr string
			pr        entities.PlayerResult
		)
		err := rows.Scan(&matchID, &pr.PlayerName, &pr.Seat, &pr.Automated, &pr.Books, &ranksJSON, &resultStr)
		if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(ranksJSON), &pr.BookRanks); err != nil {
			return fmt.Errorf("error decoding book ranks for %s: %w", pr.PlayerName, err)
		}
		pr.Result = entities.StringResult(resultStr)

		if result, ok := byID[matchID]; ok {
			result.Players = append(result.Players, &pr)
		}
	}

	return rows.Err()
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
