package entities

import "time"

// GameTypeGoFish identifies Go Fish results in shared storage
const GameTypeGoFish = "gofish"

// Result represents the outcome of a player's participation in a game
type Result interface {
	// String returns the string representation of the result
	String() string

	// IsWin returns true if this result represents a win
	IsWin() bool
}

// StringResult is a simple string-based implementation of Result
type StringResult string

// String returns the string representation of the result
func (r StringResult) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r StringResult) IsWin() bool {
	return r == StringResultWin
}

// Common result constants
const (
	StringResultWin  StringResult = "WIN"
	StringResultLose StringResult = "LOSE"
	StringResultTie  StringResult = "TIE" // held the top book count but lost the tie-break
)

// MatchResult is the record of one finished match
type MatchResult struct {
	ID          string          `json:"id"`
	GameType    string          `json:"game_type"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt time.Time       `json:"completed_at"`
	Turns       int             `json:"turns"`
	Winner      string          `json:"winner"`
	Tied        bool            `json:"tied"`
	Players     []*PlayerResult `json:"players"`
}

// PlayerResult is one seat's share of a MatchResult
type PlayerResult struct {
	PlayerName string       `json:"player_name"`
	Seat       int          `json:"seat"`
	Automated  bool         `json:"automated"`
	Books      int          `json:"books"`
	BookRanks  []Rank       `json:"book_ranks"`
	Result     StringResult `json:"result"`
}

// PlayerResultFor returns the entry for name, or nil
func (m *MatchResult) PlayerResultFor(name string) *PlayerResult {
	for _, pr := range m.Players {
		if pr.PlayerName == name {
			return pr
		}
	}
	return nil
}

// Duration returns how long the match took
func (m *MatchResult) Duration() time.Duration {
	return m.CompletedAt.Sub(m.StartedAt)
}
