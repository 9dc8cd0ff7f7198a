// Package strategy chooses the card to play for a game state.
package strategy

import (
	"errors"

	"github.com/ShiftForward/sueca-bot/pkg/cards"
	"github.com/ShiftForward/sueca-bot/pkg/protocol"
)

var ErrEmptyHand = errors.New("no cards in hand")

// Strategy picks one card from gs.Hand.
type Strategy interface {
	ChooseCard(gs protocol.GameState) (cards.Card, error)
}

// LegalPlays is the hand when leading or void in the led suit, and the
// cards of the led suit otherwise.
func LegalPlays(gs protocol.GameState) cards.Cards {
	if gs.Leading() {
		return gs.Hand
	}
	if !gs.Hand.ContainsSuit(gs.CurrentSuit) {
		return gs.Hand
	}
	return gs.Hand.FilterBySuit(gs.CurrentSuit)
}
