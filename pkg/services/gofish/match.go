package gofish

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fadedpez/gofish/internal/logging"
	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/fadedpez/gofish/pkg/games/common"
	"github.com/google/uuid"
)

// Match drives a table from the deal until every book is laid down
type Match struct {
	ID     string
	Table  *Table
	Ledger *BookLedger

	engine   *Engine
	rng      *rand.Rand
	prompter Prompter
	observer Observer
	logger   *logging.Logger
	shuffle  bool
	maxTurns int

	dealt       bool
	turns       int
	startedAt   time.Time
	completedAt time.Time
}

// Option configures a Match
type Option func(*Match)

// WithSeed seeds the random source
func WithSeed(seed int64) Option {
	return func(m *Match) { m.rng = rand.New(rand.NewSource(seed)) }
}

// WithoutShuffle deals the deck in the order it was built
func WithoutShuffle() Option {
	return func(m *Match) { m.shuffle = false }
}

// WithPrompter sets where human choices come from
func WithPrompter(p Prompter) Option {
	return func(m *Match) { m.prompter = p }
}

// WithObserver sets who hears about match events
func WithObserver(o Observer) Option {
	return func(m *Match) { m.observer = o }
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(m *Match) { m.logger = l }
}

// WithMaxTurns stops the match with a TURN_LIMIT error after n turns; 0 means no limit
func WithMaxTurns(n int) Option {
	return func(m *Match) { m.maxTurns = n }
}

// NewMatch prepares a match at table
func NewMatch(table *Table, opts ...Option) *Match {
	m := &Match{
		ID:       uuid.New().String(),
		Table:    table,
		Ledger:   NewBookLedger(),
		shuffle:  true,
		observer: NopObserver{},
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.observer == nil {
		m.observer = NopObserver{}
	}
	m.logger = m.logger.WithField("match", m.ID)

	m.engine = NewEngine(table, m.Ledger, m.rng).
		WithPrompter(m.prompter).
		WithObserver(m.observer).
		WithLogger(m.logger)

	return m
}

// Engine returns the turn engine the match uses
func (m *Match) Engine() *Engine {
	return m.engine
}

// Turns returns how many turns have been started
func (m *Match) Turns() int {
	return m.turns
}

// IsOver reports whether every book has been laid down
func (m *Match) IsOver() bool {
	return m.Ledger.Complete()
}

// Deal shuffles (unless disabled) and deals the opening hands, then lays
// down any book that was dealt complete.
func (m *Match) Deal() error {
	if m.dealt {
		return types.NewGameError(types.ErrGameAlreadyEnded, "cards have already been dealt")
	}
	m.dealt = true
	m.startedAt = time.Now()

	dealer := m.Table.Dealer()
	if m.shuffle {
		dealer.Shuffle(m.Table, m.rng)
	}
	perPlayer := CardsPerPlayer(m.Table.Size())
	dealt := dealer.Deal(m.Table, perPlayer)
	m.logger.Info("dealt %d cards, %d each to %d players; %d left in the deck", dealt, perPlayer, m.Table.Size(), m.Table.Deck.Len())

	m.observer.MatchStarted(m.Table)
	for _, p := range m.Table.Players {
		m.engine.SecureBooks(p)
	}
	return nil
}

// Play runs turns in seat order until the match is won. After each turn the
// player draws a card if the deck has any; drawing the rank they just missed
// on gives them another turn straight away.
func (m *Match) Play(ctx context.Context) error {
	if !m.dealt {
		if err := m.Deal(); err != nil {
			return err
		}
	}

	for !m.Ledger.Complete() {
		for i := 0; i < m.Table.Size(); {
			if err := ctx.Err(); err != nil {
				return err
			}
			if m.maxTurns > 0 && m.turns >= m.maxTurns {
				return types.NewGameError(types.ErrTurnLimit, fmt.Sprintf("no winner after %d turns", m.turns))
			}

			p := m.Table.Players[i]
			m.Table.SortHands()
			m.observer.TurnStarted(m.Table, p)
			m.turns++

			result, err := m.engine.PlayTurn(ctx, p)
			if err != nil {
				return err
			}
			m.logger.Debug("turn %d for %s ended %s after %d catches", m.turns, p.Name, result.Outcome, result.Catches)
			if m.Ledger.Complete() {
				break
			}

			card, drew := p.DrawFrom(common.DeckSource(m.Table.Deck))
			if drew {
				m.observer.CardDrawn(p, card)
				m.engine.SecureBooks(p)
			}
			if m.Ledger.Complete() {
				break
			}

			if drew && result.WentFishing() && card.Rank == result.Asked {
				m.logger.Debug("%s fished their wish (%s)", p.Name, card)
				m.observer.FishedWish(p, card)
				continue
			}
			i++
		}
	}

	m.completedAt = time.Now()
	m.observer.MatchFinished(m.Table, m.Ledger, m.Standings())
	m.logger.Info("match finished after %d turns, winner %s", m.turns, m.Standings().Winner.Name)
	return nil
}

// Run deals and plays the match to the end and returns its result
func (m *Match) Run(ctx context.Context) (*entities.MatchResult, error) {
	if err := m.Deal(); err != nil {
		return nil, err
	}
	if err := m.Play(ctx); err != nil {
		return nil, err
	}
	return m.Result(), nil
}

// Standings returns the current book counts and leader
func (m *Match) Standings() Standings {
	return ComputeStandings(m.Table, m.Ledger)
}

// Result builds the record of the match for storage
func (m *Match) Result() *entities.MatchResult {
	standings := m.Standings()
	result := &entities.MatchResult{
		ID:          m.ID,
		GameType:    entities.GameTypeGoFish,
		StartedAt:   m.startedAt,
		CompletedAt: m.completedAt,
		Turns:       m.turns,
		Winner:      standings.Winner.Name,
		Tied:        standings.IsTie(),
		Players:     make([]*entities.PlayerResult, 0, len(standings.Entries)),
	}
	for _, entry := range standings.Entries {
		result.Players = append(result.Players, &entities.PlayerResult{
			PlayerName: entry.Name,
			Seat:       entry.Seat,
			Automated:  entry.Automated,
			Books:      entry.Books,
			BookRanks:  entry.Ranks,
			Result:     standings.ResultFor(entry.Name),
		})
	}
	return result
}
