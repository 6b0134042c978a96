package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/peterh/liner"
)

// ErrQuit is returned when the player aborts input with Ctrl-C or Ctrl-D
var ErrQuit = errors.New("player quit")

// LineReader reads one line of input. *liner.State implements it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Prompter asks the human player for their choices on the terminal
type Prompter struct {
	reader LineReader
	out    io.Writer
}

// NewPrompter creates a prompter reading from reader and writing prompts to out
func NewPrompter(reader LineReader, out io.Writer) *Prompter {
	return &Prompter{reader: reader, out: out}
}

// readLine prints the colored prompt, then reads with an uncolored one
func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	C.Prompt.Fprint(p.out, prompt)
	input, err := p.reader.Prompt("")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrQuit
		}
		return "", fmt.Errorf("error reading line: %w", err)
	}

	input = strings.TrimSpace(input)
	if input != "" {
		p.reader.AppendHistory(input)
	}
	return input, nil
}

// RequestTarget asks which player to ask. A number picks from the list;
// anything else is taken as a name, matched without regard to case.
func (p *Prompter) RequestTarget(ctx context.Context, asker string, members []string) (string, error) {
	for i, name := range members {
		fmt.Fprintf(p.out, "%2d: %s\n", i+1, name)
	}

	for {
		input, err := p.readLine(ctx, fmt.Sprintf("%s, who do you want to ask? ", asker))
		if err != nil {
			return "", err
		}
		if input == "" {
			continue
		}

		if n, err := strconv.Atoi(input); err == nil {
			if n >= 1 && n <= len(members) {
				return members[n-1], nil
			}
			C.Warn.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(members))
			continue
		}

		for _, name := range members {
			if strings.EqualFold(name, input) {
				return name, nil
			}
		}
		return input, nil
	}
}

// RequestRank asks which rank to ask for
func (p *Prompter) RequestRank(ctx context.Context, asker string, ranks []entities.Rank) (entities.Rank, error) {
	for {
		input, err := p.readLine(ctx, fmt.Sprintf("Which rank? (%s) ", RankList(ranks)))
		if err != nil {
			return 0, err
		}
		if input == "" {
			continue
		}

		r, err := entities.ParseRank(input)
		if err != nil {
			C.Warn.Fprintf(p.out, "%q is not a rank. Use 2-10, J, Q, K or A.\n", input)
			continue
		}
		return r, nil
	}
}

// RequestInt asks for a number between min and max
func (p *Prompter) RequestInt(ctx context.Context, prompt string, min, max int) (int, error) {
	for {
		input, err := p.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < min || n > max {
			C.Warn.Fprintf(p.out, "Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// RequestString asks for a line of text, using fallback when the answer is empty
func (p *Prompter) RequestString(ctx context.Context, prompt, fallback string) (string, error) {
	input, err := p.readLine(ctx, prompt)
	if err != nil {
		return "", err
	}
	if input == "" {
		return fallback, nil
	}
	return input, nil
}
