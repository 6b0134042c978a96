package terminal

import (
	"strings"

	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/fatih/color"
)

// Palette holds the colors used for terminal output
type Palette struct {
	Yes, No, Info, Warn, Header, Prompt, Red, Black *color.Color
}

// C is the palette in use
var C = Palette{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Red:    color.New(color.FgHiRed, color.Bold),
	Black:  color.New(color.FgHiWhite, color.Bold),
}

// CardString renders a card in its suit color
func CardString(c entities.Card) string {
	if c.Color() == entities.Red {
		return C.Red.Sprint(c.String())
	}
	return C.Black.Sprint(c.String())
}

// HandString renders cards separated by spaces
func HandString(cards []entities.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, CardString(c))
	}
	return strings.Join(parts, " ")
}

// RankList renders ranks separated by commas
func RankList(ranks []entities.Rank) string {
	parts := make([]string, 0, len(ranks))
	for _, r := range ranks {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ", ")
}

// plural names a rank as a group, e.g. "7s" or "Qs"
func plural(r entities.Rank) string {
	return r.String() + "s"
}
