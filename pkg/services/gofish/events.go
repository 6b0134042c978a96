package gofish

import (
	"github.com/fadedpez/gofish/pkg/entities"
	"github.com/fadedpez/gofish/pkg/games/common"
)

// Observer is told about everything that happens at the table so it can be shown
type Observer interface {
	MatchStarted(t *Table)
	TurnStarted(t *Table, p *common.Player)
	CardDrawn(p *common.Player, c entities.Card)
	Asked(asker, target *common.Player, r entities.Rank)
	CardsTaken(asker, target *common.Player, r entities.Rank, count int)
	GoFish(asker, target *common.Player, r entities.Rank)
	BookSecured(p *common.Player, r entities.Rank)
	FishedWish(p *common.Player, c entities.Card)
	InputRejected(p *common.Player, err error)
	MatchFinished(t *Table, l *BookLedger, s Standings)
}

// NopObserver ignores every event. Embed it to implement only some methods.
type NopObserver struct{}

func (NopObserver) MatchStarted(*Table) {}
func (NopObserver) TurnStarted(*Table, *common.Player) {}
func (NopObserver) CardDrawn(*common.Player, entities.Card) {}
func (NopObserver) Asked(*common.Player, *common.Player, entities.Rank) {}
func (NopObserver) CardsTaken(*common.Player, *common.Player, entities.Rank, int) {}
func (NopObserver) GoFish(*common.Player, *common.Player, entities.Rank) {}
func (NopObserver) BookSecured(*common.Player, entities.Rank) {}
func (NopObserver) FishedWish(*common.Player, entities.Card) {}
func (NopObserver) InputRejected(*common.Player, error) {}
func (NopObserver) MatchFinished(*Table, *BookLedger, Standings) {}
