package gofish

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/fadedpez/gofish/internal/logging"
	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/fadedpez/gofish/pkg/games/common"
)

// TurnState is where a turn currently is
type TurnState int

const (
	StateAwaitDraw TurnState = iota
	StateAwaitTarget
	StateAwaitRank
	StateResolving
)

var turnStateNames = map[TurnState]string{
	StateAwaitDraw:   "AWAIT_DRAW",
	StateAwaitTarget: "AWAIT_TARGET",
	StateAwaitRank:   "AWAIT_RANK",
	StateResolving:   "RESOLVING",
}

func (s TurnState) String() string {
	return turnStateNames[s]
}

// TurnOutcome is how a turn ended
type TurnOutcome int

const (
	// OutcomeEmpty means the player had nothing to ask with and nothing to draw
	OutcomeEmpty TurnOutcome = iota
	// OutcomeMatchOver means every book was already laid down
	OutcomeMatchOver
	// OutcomeGoFish means the last ask missed
	OutcomeGoFish
)

var turnOutcomeNames = map[TurnOutcome]string{
	OutcomeEmpty:     "EMPTY",
	OutcomeMatchOver: "MATCH_OVER",
	OutcomeGoFish:    "GO_FISH",
}

func (o TurnOutcome) String() string {
	return turnOutcomeNames[o]
}

// TurnResult summarises one call to PlayTurn
type TurnResult struct {
	Player     string
	Outcome    TurnOutcome
	Asked      entities.Rank // rank of the missed ask, set only on OutcomeGoFish
	Target     string        // who was asked last
	Catches    int           // asks that got cards
	CardsTaken int
	Books      []entities.Rank
}

// WentFishing reports whether the turn ended on a miss
func (r TurnResult) WentFishing() bool {
	return r.Outcome == OutcomeGoFish
}

// Engine plays single turns against a table and its ledger
type Engine struct {
	table    *Table
	ledger   *BookLedger
	rng      *rand.Rand
	prompter Prompter
	observer Observer
	logger   *logging.Logger
}

// NewEngine creates an engine with no prompter, a no-op observer and a
// discarding logger
func NewEngine(table *Table, ledger *BookLedger, rng *rand.Rand) *Engine {
	return &Engine{
		table:    table,
		ledger:   ledger,
		rng:      rng,
		observer: NopObserver{},
		logger:   logging.Discard(),
	}
}

// WithPrompter sets where human choices come from
func (e *Engine) WithPrompter(p Prompter) *Engine {
	e.prompter = p
	return e
}

// WithObserver sets who hears about turn events
func (e *Engine) WithObserver(o Observer) *Engine {
	if o == nil {
		o = NopObserver{}
	}
	e.observer = o
	return e
}

// WithLogger sets the logger
func (e *Engine) WithLogger(l *logging.Logger) *Engine {
	if l != nil {
		e.logger = l
	}
	return e
}

// PlayTurn runs p's whole turn. A successful ask sends the player straight
// back round the loop for another ask; the turn ends on a miss, when the
// player has no cards and the deck is empty, or when the match is won.
// Errors come only from the prompter or from a broken hand invariant.
func (e *Engine) PlayTurn(ctx context.Context, p *common.Player) (TurnResult, error) {
	result := TurnResult{Player: p.Name}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	var (
		state  = StateAwaitDraw
		target *common.Player
		rank   entities.Rank
	)

	for {
		e.logger.Debug("%s: %s with %d cards", p.Name, state, p.HandSize())

		switch state {
		case StateAwaitDraw:
			if p.HandSize() == 0 {
				card, ok := p.DrawFrom(common.DeckSource(e.table.Deck))
				if !ok {
					e.logger.Debug("%s has no cards and the deck is empty", p.Name)
					result.Outcome = OutcomeEmpty
					return result, nil
				}
				e.observer.CardDrawn(p, card)
			}
			if e.ledger.Complete() {
				result.Outcome = OutcomeMatchOver
				return result, nil
			}
			state = StateAwaitTarget

		case StateAwaitTarget:
			t, err := e.chooseTarget(ctx, p)
			if err != nil {
				return result, err
			}
			target = t
			state = StateAwaitRank

		case StateAwaitRank:
			r, ok, err := e.chooseRank(ctx, p)
			if err != nil {
				return result, err
			}
			if !ok {
				result.Outcome = OutcomeEmpty
				return result, nil
			}
			rank = r
			state = StateResolving

		case StateResolving:
			e.observer.Asked(p, target, rank)
			result.Target = target.Name

			cards := target.CardsOfRank(rank)
			if len(cards) == 0 {
				e.logger.Debug("%s asked %s for %s: go fish", p.Name, target.Name, rank)
				e.observer.GoFish(p, target, rank)
				result.Outcome = OutcomeGoFish
				result.Asked = rank
				return result, nil
			}

			for _, card := range cards {
				if err := target.Give(card, p); err != nil {
					return result, fmt.Errorf("moving %s from %s to %s: %w", card, target.Name, p.Name, err)
				}
			}
			e.logger.Debug("%s took %d %s from %s", p.Name, len(cards), rank, target.Name)
			e.observer.CardsTaken(p, target, rank, len(cards))
			result.Catches++
			result.CardsTaken += len(cards)
			result.Books = append(result.Books, e.SecureBooks(p)...)

			state = StateAwaitDraw
		}
	}
}

// SecureBooks lays down any complete books in p's hand and reports them
func (e *Engine) SecureBooks(p *common.Player) []entities.Rank {
	ranks := e.ledger.SecureBooks(p)
	for _, r := range ranks {
		e.logger.Debug("%s laid down the %s book (%d/%d)", p.Name, r, e.ledger.Claimed(), entities.RankCount)
		e.observer.BookSecured(p, r)
	}
	return ranks
}

func (e *Engine) chooseTarget(ctx context.Context, p *common.Player) (*common.Player, error) {
	others := e.table.Others(p)
	if len(others) == 0 {
		return nil, types.NewGameError(types.ErrNotEnoughPlayers, fmt.Sprintf("%s has nobody to ask", p.Name))
	}

	if p.Automated {
		return others[e.rng.Intn(len(others))], nil
	}

	if e.prompter == nil {
		return nil, types.NewGameError(types.ErrInternalError, fmt.Sprintf("no prompter for human player %s", p.Name))
	}

	names := make([]string, 0, len(others))
	for _, o := range others {
		names = append(names, o.Name)
	}

	for {
		name, err := e.prompter.RequestTarget(ctx, p.Name, names)
		if err != nil {
			return nil, fmt.Errorf("asking %s for a target: %w", p.Name, err)
		}

		target := e.table.GetPlayer(name)
		switch {
		case target == nil:
			e.reject(p, types.NewGameError(types.ErrInvalidTarget, fmt.Sprintf("%q is not playing with you", name)))
		case target == p:
			e.reject(p, types.NewGameError(types.ErrInvalidTarget, "you cannot ask yourself"))
		default:
			return target, nil
		}
	}
}

func (e *Engine) chooseRank(ctx context.Context, p *common.Player) (entities.Rank, bool, error) {
	ranks := p.Ranks()
	if len(ranks) == 0 {
		return 0, false, nil
	}

	if p.Automated {
		return ranks[e.rng.Intn(len(ranks))], true, nil
	}

	if e.prompter == nil {
		return 0, false, types.NewGameError(types.ErrInternalError, fmt.Sprintf("no prompter for human player %s", p.Name))
	}

	for {
		r, err := e.prompter.RequestRank(ctx, p.Name, ranks)
		if err != nil {
			return 0, false, fmt.Errorf("asking %s for a rank: %w", p.Name, err)
		}
		if !p.HasRank(r) {
			e.reject(p, types.NewGameError(types.ErrInvalidRank, fmt.Sprintf("you must ask for a rank you already hold, not %s", r)))
			continue
		}
		return r, true, nil
	}
}

func (e *Engine) reject(p *common.Player, err error) {
	e.logger.Debug("rejected input from %s: %v", p.Name, err)
	e.observer.InputRejected(p, err)
}
