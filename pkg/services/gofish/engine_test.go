package gofish

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/fadedpez/gofish/pkg/games/common"
	mock_gofish "github.com/fadedpez/gofish/pkg/services/gofish/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngineTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	prompter *mock_gofish.MockPrompter
	observer *recordingObserver
	ledger   *BookLedger
	table    *Table
	dealer   *common.Player
	human    *common.Player
	engine   *Engine
	ctx      context.Context
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.prompter = mock_gofish.NewMockPrompter(s.ctrl)
	s.observer = &recordingObserver{}
	s.ledger = NewBookLedger()
	s.ctx = context.Background()
	s.dealer = common.NewDealer(true)
	s.human = common.NewPlayer("Ana", false)

	table, err := NewCustomTable(entities.NewDeckFromCards(), s.dealer, s.human)
	s.Require().NoError(err)
	s.table = table

	s.engine = NewEngine(s.table, s.ledger, rand.New(rand.NewSource(1))).
		WithPrompter(s.prompter).
		WithObserver(s.observer)
}

func hold(p *common.Player, cards ...entities.Card) {
	for _, card := range cards {
		p.DrawFrom(common.CardSource(card))
	}
}

func (s *EngineTestSuite) TestMissLeavesHandsAlone() {
	// Setup
	hold(s.human, c(entities.Seven, entities.Hearts))
	hold(s.dealer, c(entities.Two, entities.Clubs))
	s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", []string{common.DealerName}).Return(common.DealerName, nil)
	s.prompter.EXPECT().RequestRank(s.ctx, "Ana", []entities.Rank{entities.Seven}).Return(entities.Seven, nil)

	// Execute
	result, err := s.engine.PlayTurn(s.ctx, s.human)

	// Assert
	s.Require().NoError(err)
	s.Equal(OutcomeGoFish, result.Outcome)
	s.True(result.WentFishing())
	s.Equal(entities.Seven, result.Asked)
	s.Equal(common.DealerName, result.Target)
	s.Zero(result.Catches)
	s.Equal([]entities.Card{c(entities.Seven, entities.Hearts)}, s.human.Hand)
	s.Equal([]entities.Card{c(entities.Two, entities.Clubs)}, s.dealer.Hand)
}

func (s *EngineTestSuite) TestCatchTakesEveryCardAndAsksAgain() {
	// Setup
	hold(s.human, c(entities.Seven, entities.Hearts), c(entities.King, entities.Spades))
	hold(s.dealer, c(entities.Seven, entities.Spades), c(entities.Seven, entities.Clubs), c(entities.Two, entities.Clubs))
	gomock.InOrder(
		s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return(common.DealerName, nil),
		s.prompter.EXPECT().RequestRank(s.ctx, "Ana", []entities.Rank{entities.Seven, entities.King}).Return(entities.Seven, nil),
		s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return(common.DealerName, nil),
		s.prompter.EXPECT().RequestRank(s.ctx, "Ana", []entities.Rank{entities.Seven, entities.King}).Return(entities.King, nil),
	)

	// Execute
	result, err := s.engine.PlayTurn(s.ctx, s.human)

	// Assert
	s.Require().NoError(err)
	s.Equal(OutcomeGoFish, result.Outcome)
	s.Equal(entities.King, result.Asked, "the rank of the final miss is the one to fish for")
	s.Equal(1, result.Catches)
	s.Equal(2, result.CardsTaken)
	s.Len(s.human.CardsOfRank(entities.Seven), 3)
	s.Equal([]entities.Card{c(entities.Two, entities.Clubs)}, s.dealer.Hand)
}

func (s *EngineTestSuite) TestCatchCompletingBookLaysItDown() {
	// Setup
	hold(s.human, c(entities.Seven, entities.Hearts), c(entities.Seven, entities.Diamonds), c(entities.Seven, entities.Clubs), c(entities.King, entities.Spades))
	hold(s.dealer, c(entities.Seven, entities.Spades), c(entities.Two, entities.Clubs))
	gomock.InOrder(
		s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return(common.DealerName, nil),
		s.prompter.EXPECT().RequestRank(s.ctx, "Ana", gomock.Any()).Return(entities.Seven, nil),
		s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return(common.DealerName, nil),
		s.prompter.EXPECT().RequestRank(s.ctx, "Ana", []entities.Rank{entities.King}).Return(entities.King, nil),
	)

	// Execute
	result, err := s.engine.PlayTurn(s.ctx, s.human)

	// Assert
	s.Require().NoError(err)
	s.Equal([]entities.Rank{entities.Seven}, result.Books)
	s.Equal([]entities.Rank{entities.Seven}, s.observer.books)
	owner, ok := s.ledger.Owner(entities.Seven)
	s.True(ok)
	s.Equal("Ana", owner)
	s.Equal([]entities.Card{c(entities.King, entities.Spades)}, s.human.Hand)
}

func (s *EngineTestSuite) TestInvalidTargetIsAskedAgain() {
	// Setup
	hold(s.human, c(entities.Seven, entities.Hearts))
	hold(s.dealer, c(entities.Two, entities.Clubs))
	gomock.InOrder(
		s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return("Nobody", nil),
		s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return("Ana", nil),
		s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return(common.DealerName, nil),
		s.prompter.EXPECT().RequestRank(s.ctx, "Ana", gomock.Any()).Return(entities.Seven, nil),
	)

	// Execute
	result, err := s.engine.PlayTurn(s.ctx, s.human)

	// Assert
	s.Require().NoError(err)
	s.Equal(common.DealerName, result.Target)
	s.Require().Len(s.observer.rejected, 2)
	for _, rejected := range s.observer.rejected {
		s.True(types.IsGameError(rejected, types.ErrInvalidTarget))
	}
}

func (s *EngineTestSuite) TestRankNotHeldIsAskedAgain() {
	// Setup
	hold(s.human, c(entities.Seven, entities.Hearts))
	hold(s.dealer, c(entities.Seven, entities.Clubs))
	gomock.InOrder(
		s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return(common.DealerName, nil),
		s.prompter.EXPECT().RequestRank(s.ctx, "Ana", gomock.Any()).Return(entities.Ace, nil),
		s.prompter.EXPECT().RequestRank(s.ctx, "Ana", gomock.Any()).Return(entities.Seven, nil),
		s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return(common.DealerName, nil),
		s.prompter.EXPECT().RequestRank(s.ctx, "Ana", gomock.Any()).Return(entities.Seven, nil),
	)

	// Execute
	result, err := s.engine.PlayTurn(s.ctx, s.human)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(s.observer.rejected, 1)
	s.True(types.IsGameError(s.observer.rejected[0], types.ErrInvalidRank))
	s.Equal(1, result.Catches)
	s.Equal(entities.Seven, result.Asked)
	s.Empty(s.dealer.Hand)
}

func (s *EngineTestSuite) TestEmptyHandDrawsFirst() {
	// Setup
	s.table.Deck = entities.NewDeckFromCards(c(entities.Queen, entities.Hearts))
	hold(s.dealer, c(entities.Two, entities.Clubs))
	s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return(common.DealerName, nil)
	s.prompter.EXPECT().RequestRank(s.ctx, "Ana", []entities.Rank{entities.Queen}).Return(entities.Queen, nil)

	// Execute
	result, err := s.engine.PlayTurn(s.ctx, s.human)

	// Assert
	s.Require().NoError(err)
	s.Equal(OutcomeGoFish, result.Outcome)
	s.Equal([]entities.Card{c(entities.Queen, entities.Hearts)}, s.observer.drawn)
	s.True(s.table.Deck.IsEmpty())
}

func (s *EngineTestSuite) TestEmptyHandAndDeckEndsTurn() {
	hold(s.dealer, c(entities.Two, entities.Clubs))

	result, err := s.engine.PlayTurn(s.ctx, s.human)

	s.Require().NoError(err)
	s.Equal(OutcomeEmpty, result.Outcome)
	s.False(result.WentFishing())
}

func (s *EngineTestSuite) TestMatchOverEndsTurn() {
	for _, r := range entities.Ranks() {
		s.Require().NoError(s.ledger.Claim(r, "Ana"))
	}
	hold(s.human, c(entities.Two, entities.Clubs))

	result, err := s.engine.PlayTurn(s.ctx, s.human)

	s.Require().NoError(err)
	s.Equal(OutcomeMatchOver, result.Outcome)
}

func (s *EngineTestSuite) TestAutomatedPlayerNeedsNoPrompter() {
	// Setup
	hold(s.dealer, c(entities.Five, entities.Hearts))
	hold(s.human, c(entities.Five, entities.Spades), c(entities.Five, entities.Diamonds))

	// Execute
	result, err := s.engine.PlayTurn(s.ctx, s.dealer)

	// Assert
	s.Require().NoError(err)
	s.Equal(OutcomeGoFish, result.Outcome)
	s.Equal(entities.Five, result.Asked)
	s.Equal("Ana", result.Target)
	s.Equal(2, result.CardsTaken)
	s.Len(s.dealer.Hand, 3)
	s.Empty(s.human.Hand)
}

func (s *EngineTestSuite) TestHumanWithoutPrompter() {
	hold(s.human, c(entities.Five, entities.Hearts))
	engine := NewEngine(s.table, s.ledger, rand.New(rand.NewSource(1)))

	_, err := engine.PlayTurn(s.ctx, s.human)

	s.True(types.IsGameError(err, types.ErrInternalError))
}

func (s *EngineTestSuite) TestPrompterErrorIsReturned() {
	hold(s.human, c(entities.Five, entities.Hearts))
	quit := errors.New("input closed")
	s.prompter.EXPECT().RequestTarget(s.ctx, "Ana", gomock.Any()).Return("", quit)

	_, err := s.engine.PlayTurn(s.ctx, s.human)

	s.ErrorIs(err, quit)
}

func (s *EngineTestSuite) TestCancelledContext() {
	hold(s.human, c(entities.Five, entities.Hearts))
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.engine.PlayTurn(ctx, s.human)

	s.ErrorIs(err, context.Canceled)
}

func (s *EngineTestSuite) TestStateNames() {
	s.Equal("AWAIT_DRAW", StateAwaitDraw.String())
	s.Equal("RESOLVING", StateResolving.String())
	s.Equal("GO_FISH", OutcomeGoFish.String())
}
