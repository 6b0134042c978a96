package terminal

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/suite"
)

// scriptedReader answers prompts from a fixed list, then returns err
type scriptedReader struct {
	lines   []string
	err     error
	history []string
}

func (r *scriptedReader) Prompt(string) (string, error) {
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) AppendHistory(item string) {
	r.history = append(r.history, item)
}

type PrompterTestSuite struct {
	suite.Suite
	out *bytes.Buffer
	ctx context.Context
}

func TestPrompterSuite(t *testing.T) {
	suite.Run(t, new(PrompterTestSuite))
}

func (s *PrompterTestSuite) SetupTest() {
	color.NoColor = true
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

func (s *PrompterTestSuite) prompter(lines ...string) (*Prompter, *scriptedReader) {
	reader := &scriptedReader{lines: lines}
	return NewPrompter(reader, s.out), reader
}

func (s *PrompterTestSuite) TestTargetByNumber() {
	p, reader := s.prompter("", "7", "2")

	name, err := p.RequestTarget(s.ctx, "Ana", []string{"Dealer", "P1"})

	s.Require().NoError(err)
	s.Equal("P1", name)
	s.Contains(s.out.String(), " 1: Dealer")
	s.Contains(s.out.String(), "between 1 and 2")
	s.Equal([]string{"7", "2"}, reader.history)
}

func (s *PrompterTestSuite) TestTargetByNameIgnoresCase() {
	p, _ := s.prompter("  dealer ")

	name, err := p.RequestTarget(s.ctx, "Ana", []string{"Dealer", "P1"})

	s.Require().NoError(err)
	s.Equal("Dealer", name)
}

func (s *PrompterTestSuite) TestUnknownTargetIsPassedOn() {
	p, _ := s.prompter("Zed")

	name, err := p.RequestTarget(s.ctx, "Ana", []string{"Dealer"})

	s.Require().NoError(err)
	s.Equal("Zed", name)
}

func (s *PrompterTestSuite) TestRankParsing() {
	p, _ := s.prompter("fish", "q")

	r, err := p.RequestRank(s.ctx, "Ana", []entities.Rank{entities.Seven, entities.Queen})

	s.Require().NoError(err)
	s.Equal(entities.Queen, r)
	s.Contains(s.out.String(), "Which rank? (7, Q)")
	s.Contains(s.out.String(), `"fish" is not a rank`)
}

func (s *PrompterTestSuite) TestAbortIsQuit() {
	p := NewPrompter(&scriptedReader{err: liner.ErrPromptAborted}, s.out)

	_, err := p.RequestRank(s.ctx, "Ana", []entities.Rank{entities.Two})

	s.ErrorIs(err, ErrQuit)
}

func (s *PrompterTestSuite) TestEOFIsQuit() {
	p, _ := s.prompter()

	_, err := p.RequestTarget(s.ctx, "Ana", []string{"Dealer"})

	s.ErrorIs(err, ErrQuit)
}

func (s *PrompterTestSuite) TestCancelledContext() {
	p, reader := s.prompter("1")
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := p.RequestTarget(ctx, "Ana", []string{"Dealer"})

	s.ErrorIs(err, context.Canceled)
	s.Len(reader.lines, 1, "nothing is read once cancelled")
}

func (s *PrompterTestSuite) TestRequestInt() {
	p, _ := s.prompter("nine", "9", "3")

	n, err := p.RequestInt(s.ctx, "How many players? ", 2, 5)

	s.Require().NoError(err)
	s.Equal(3, n)
	s.Contains(s.out.String(), "between 2 and 5")
}

func (s *PrompterTestSuite) TestRequestStringFallback() {
	p, _ := s.prompter("", " Bo ")

	first, err := p.RequestString(s.ctx, "Name? ", "Player")
	s.Require().NoError(err)
	second, err := p.RequestString(s.ctx, "Name? ", "Player")
	s.Require().NoError(err)

	s.Equal("Player", first)
	s.Equal("Bo", second)
}
