package game

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
)

// FileRepository keeps results in memory and rewrites a JSON file on every save
type FileRepository struct {
	*MemoryRepository
	path string
}

// NewFileRepository loads any results already stored at path
func NewFileRepository(path string) (*FileRepository, error) {
	r := &FileRepository{
		MemoryRepository: NewMemoryRepository(),
		path:             path,
	}

	if err := r.load(); err != nil {
		return nil, types.NewGameError(types.ErrDatabaseError, fmt.Sprintf("failed to load results from %s: %v", path, err))
	}

	return r, nil
}

// SaveMatchResult stores the result and writes the whole file
func (r *FileRepository) SaveMatchResult(ctx context.Context, result *entities.MatchResult) error {
	if err := r.MemoryRepository.SaveMatchResult(ctx, result); err != nil {
		return err
	}

	if err := r.save(); err != nil {
		return types.NewGameError(types.ErrDatabaseError, fmt.Sprintf("failed to write results: %v", err))
	}
	return nil
}

func (r *FileRepository) load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var results []*entities.MatchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return err
	}

	for _, result := range results {
		if err := r.MemoryRepository.SaveMatchResult(context.Background(), result); err != nil {
			return err
		}
	}
	return nil
}

func (r *FileRepository) save() error {
	r.mu.RLock()
	data, err := json.MarshalIndent(r.results, "", "  ")
	r.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return os.Rename(tmp, r.path)
}
