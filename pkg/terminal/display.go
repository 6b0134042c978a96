package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/fadedpez/gofish/pkg/games/common"
	"github.com/fadedpez/gofish/pkg/services/gofish"
	"github.com/fadedpez/gofish/pkg/services/statistics"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Display prints match events for the human player. Automated hands and
// their draws stay hidden unless reveal is set.
type Display struct {
	out    io.Writer
	reveal bool
}

var _ gofish.Observer = (*Display)(nil)

// NewDisplay creates a display writing to out
func NewDisplay(out io.Writer, reveal bool) *Display {
	return &Display{out: out, reveal: reveal}
}

func (d *Display) shows(p *common.Player) bool {
	return d.reveal || !p.Automated
}

// newTable returns a light-style table writer that keeps header case as written
func (d *Display) newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(d.out)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	return tw
}

// Banner prints the title
func (d *Display) Banner() {
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("GO ", pterm.FgCyan.ToStyle()),
		putils.LettersFromStringWithStyle("FISH", pterm.FgLightBlue.ToStyle()),
	).Srender()
	if err != nil {
		C.Header.Fprintln(d.out, "GO FISH")
		return
	}
	fmt.Fprint(d.out, title)
}

// MatchStarted prints the seating
func (d *Display) MatchStarted(t *gofish.Table) {
	C.Header.Fprintf(d.out, "\n--- %d players, %d cards each ---\n", t.Size(), gofish.CardsPerPlayer(t.Size()))

	tw := d.newTable()
	tw.AppendHeader(table.Row{"Seat", "Player", "Plays"})
	for seat, p := range t.Players {
		plays := "you"
		if p.Automated {
			plays = "computer"
		}
		tw.AppendRow(table.Row{seat, p.Name, plays})
	}
	tw.Render()
}

// TurnStarted prints whose turn it is and the hands the player may see
func (d *Display) TurnStarted(t *gofish.Table, p *common.Player) {
	C.Header.Fprintf(d.out, "\n--- %s's turn (%d cards left in the deck) ---\n", p.Name, t.Deck.Len())
	if !d.shows(p) {
		return
	}
	d.printHands(t)
}

func (d *Display) printHands(t *gofish.Table) {
	tw := d.newTable()
	tw.AppendHeader(table.Row{"Player", "Cards", "Hand"})
	for _, p := range t.Players {
		hand := "hidden"
		if d.shows(p) {
			hand = HandString(p.Hand)
		}
		tw.AppendRow(table.Row{p.Name, p.HandSize(), hand})
	}
	tw.Render()
}

// CardDrawn implements gofish.Observer
func (d *Display) CardDrawn(p *common.Player, c entities.Card) {
	if d.shows(p) {
		fmt.Fprintf(d.out, "%s draws %s.\n", p.Name, CardString(c))
		return
	}
	fmt.Fprintf(d.out, "%s draws a card.\n", p.Name)
}

// Asked implements gofish.Observer
func (d *Display) Asked(asker, target *common.Player, r entities.Rank) {
	fmt.Fprintf(d.out, "%s asks %s for %s.\n", asker.Name, target.Name, plural(r))
}

// CardsTaken implements gofish.Observer
func (d *Display) CardsTaken(asker, target *common.Player, r entities.Rank, count int) {
	C.Info.Fprintf(d.out, "%s hands over %d %s to %s.\n", target.Name, count, plural(r), asker.Name)
}

// GoFish implements gofish.Observer
func (d *Display) GoFish(asker, target *common.Player, r entities.Rank) {
	C.Info.Fprintf(d.out, "%s has no %s. Go fish!\n", target.Name, plural(r))
}

// BookSecured implements gofish.Observer
func (d *Display) BookSecured(p *common.Player, r entities.Rank) {
	C.Yes.Fprintf(d.out, "%s lays down the book of %s.\n", p.Name, plural(r))
}

// FishedWish implements gofish.Observer
func (d *Display) FishedWish(p *common.Player, c entities.Card) {
	C.Yes.Fprintf(d.out, "%s fished their wish (%s) and goes again!\n", p.Name, CardString(c))
}

// InputRejected implements gofish.Observer
func (d *Display) InputRejected(p *common.Player, err error) {
	var gameErr *types.GameError
	if errors.As(err, &gameErr) {
		C.Warn.Fprintln(d.out, gameErr.Message)
		return
	}
	C.Warn.Fprintln(d.out, err.Error())
}

// MatchFinished prints the book ledger, the standings and the winner
func (d *Display) MatchFinished(t *gofish.Table, l *gofish.BookLedger, s gofish.Standings) {
	C.Header.Fprintln(d.out, "\n--- Books ---")
	books := d.newTable()
	books.AppendHeader(table.Row{"Rank", "Laid down by"})
	for _, r := range entities.Ranks() {
		owner, _ := l.Owner(r)
		books.AppendRow(table.Row{r.String(), owner})
	}
	books.Render()

	d.PrintStandings(s)

	summary := fmt.Sprintf("%s wins with %s", s.Winner.Name, bookCount(s.Winner.Books))
	if s.IsTie() {
		summary += fmt.Sprintf("\ntied with %s, won on seat order", strings.Join(s.Tied[1:], ", "))
	}
	box := pterm.DefaultBox.
		WithLeftPadding(4).
		WithRightPadding(4).
		WithTopPadding(1).
		WithBottomPadding(1).
		WithTitle(pterm.LightGreen("|WINNER|")).
		WithTitleTopCenter().
		Sprint(summary)
	fmt.Fprintln(d.out, box)
}

// PrintStandings prints books per seat
func (d *Display) PrintStandings(s gofish.Standings) {
	tw := d.newTable()
	tw.AppendHeader(table.Row{"Seat", "Player", "Books", "Ranks", "Result"})
	for _, e := range s.Entries {
		tw.AppendRow(table.Row{e.Seat, e.Name, e.Books, RankList(e.Ranks), s.ResultFor(e.Name)})
	}
	tw.Render()
}

// PrintLeaderboard prints one page of the leaderboard
func (d *Display) PrintLeaderboard(board *statistics.Leaderboard) {
	C.Header.Fprintf(d.out, "\n--- Leaderboard (page %d of %d) ---\n", board.CurrentPage, board.TotalPages)
	if len(board.Players) == 0 {
		fmt.Fprintln(d.out, "No finished matches yet.")
		return
	}

	tw := d.newTable()
	tw.AppendHeader(table.Row{"#", "Player", "Played", "Won", "Tied", "Lost", "Win %", "Books/Game"})
	for _, p := range board.Players {
		name := p.PlayerName
		if p.IsTopWinner {
			name += " *"
		}
		tw.AppendRow(table.Row{
			p.Rank, name, p.GamesPlayed, p.Wins, p.Ties, p.Losses,
			fmt.Sprintf("%.1f", p.WinRate), fmt.Sprintf("%.2f", p.BooksPerGame),
		})
	}
	tw.Render()
}

// PrintPlayerSummary prints one line of lifetime results for a player
func (d *Display) PrintPlayerSummary(stats *entities.PlayerStatistics) {
	if stats.GamesPlayed == 0 {
		fmt.Fprintf(d.out, "%s has no finished matches yet.\n", stats.PlayerName)
		return
	}
	C.Info.Fprintf(d.out, "%s: %d played, %d won, %d tied, %d lost (%.1f%%), %.2f books per game\n",
		stats.PlayerName, stats.GamesPlayed, stats.Wins, stats.Ties, stats.Losses, stats.WinRate(), stats.BooksPerGame())
}

// PrintRecentMatches prints finished matches, newest first
func (d *Display) PrintRecentMatches(results []*entities.MatchResult) {
	C.Header.Fprintln(d.out, "\n--- Recent matches ---")
	if len(results) == 0 {
		fmt.Fprintln(d.out, "No finished matches yet.")
		return
	}

	tw := d.newTable()
	tw.AppendHeader(table.Row{"Finished", "Players", "Turns", "Winner"})
	for _, result := range results {
		winner := result.Winner
		if result.Tied {
			winner += " (tie)"
		}
		names := make([]string, 0, len(result.Players))
		for _, pr := range result.Players {
			names = append(names, fmt.Sprintf("%s %d", pr.PlayerName, pr.Books))
		}
		tw.AppendRow(table.Row{result.CompletedAt.Local().Format("2006-01-02 15:04"), strings.Join(names, ", "), result.Turns, winner})
	}
	tw.Render()
}

func bookCount(n int) string {
	if n == 1 {
		return "1 book"
	}
	return fmt.Sprintf("%d books", n)
}
