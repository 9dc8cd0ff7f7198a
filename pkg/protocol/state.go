// Package protocol reads and writes the judge's eight-line game state
// snapshot.
package protocol

import (
	"github.com/ShiftForward/sueca-bot/pkg/cards"
)

// GameState is everything the judge tells a player for one decision.
type GameState struct {
	PlayerNumber int
	Hand         cards.Cards
	TrumpPlayer  int
	TrumpCard    cards.Card
	CurrentTrick cards.Trick
	// CurrentSuit is the suit led in CurrentTrick, as sent by the judge.
	// It is NoSuit when this player leads. Use it rather than
	// CurrentTrick.LeadSuit() when deciding.
	CurrentSuit    cards.Suit
	PreviousTricks []cards.Trick
	Points         [2]int
}

func (gs GameState) TrumpSuit() cards.Suit {
	return gs.TrumpCard.Suit
}

// Leading reports whether this player opens the current trick.
func (gs GameState) Leading() bool {
	return gs.CurrentSuit == cards.NoSuit
}

// PlayedCards lists every card seen so far this deal, oldest trick first.
func (gs GameState) PlayedCards() cards.Cards {
	var cs cards.Cards
	for _, t := range gs.PreviousTricks {
		cs = append(cs, t.CardsInPlayOrder()...)
	}
	return append(cs, gs.CurrentTrick.CardsInPlayOrder()...)
}

// Team is the scoring side of a seat: partners sit opposite each other.
func Team(seat int) int {
	return seat % 2
}
