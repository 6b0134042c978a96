package game

import (
	"time"

	"github.com/fadedpez/gofish/pkg/entities"
)

// ESMatchDocument is a finished match as indexed in Elasticsearch
type ESMatchDocument struct {
	MatchID     string           `json:"match_id"`
	GameType    string           `json:"game_type"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt time.Time        `json:"completed_at"`
	DurationMS  int64            `json:"duration_ms"`
	Turns       int              `json:"turns"`
	Winner      string           `json:"winner"`
	Tied        bool             `json:"tied"`
	Players     []ESPlayerResult `json:"players"`
}

// ESPlayerResult is one seat of an indexed match
type ESPlayerResult struct {
	PlayerName string   `json:"player_name"`
	Seat       int      `json:"seat"`
	Automated  bool     `json:"automated"`
	Books      int      `json:"books"`
	BookRanks  []string `json:"book_ranks"`
	Result     string   `json:"result"`
}

// newESMatchDocument flattens a result for indexing; ranks are stored by name
func newESMatchDocument(result *entities.MatchResult) ESMatchDocument {
	doc := ESMatchDocument{
		MatchID:     result.ID,
		GameType:    result.GameType,
		StartedAt:   result.StartedAt,
		CompletedAt: result.CompletedAt,
		DurationMS:  result.Duration().Milliseconds(),
		Turns:       result.Turns,
		Winner:      result.Winner,
		Tied:        result.Tied,
		Players:     make([]ESPlayerResult, 0, len(result.Players)),
	}
	for _, pr := range result.Players {
		ranks := make([]string, 0, len(pr.BookRanks))
		for _, r := range pr.BookRanks {
			ranks = append(ranks, r.String())
		}
		doc.Players = append(doc.Players, ESPlayerResult{
			PlayerName: pr.PlayerName,
			Seat:       pr.Seat,
			Automated:  pr.Automated,
			Books:      pr.Books,
			BookRanks:  ranks,
			Result:     pr.Result.String(),
		})
	}
	return doc
}
