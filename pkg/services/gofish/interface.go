package gofish

import (
	"context"

	"github.com/fadedpez/gofish/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_gofish

// Prompter asks the human player for their choices. Answers are validated by
// the engine, which asks again until it gets a usable one.
type Prompter interface {
	// RequestTarget asks asker which of members to ask for cards
	RequestTarget(ctx context.Context, asker string, members []string) (string, error)

	// RequestRank asks asker which of the ranks in their hand to ask for
	RequestRank(ctx context.Context, asker string, ranks []entities.Rank) (entities.Rank, error)
}
