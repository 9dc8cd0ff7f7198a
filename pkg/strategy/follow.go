package strategy

import (
	"math/rand"

	"github.com/ShiftForward/sueca-bot/pkg/cards"
	"github.com/ShiftForward/sueca-bot/pkg/protocol"
)

// Plays the first card of the current suit in hand order, or any card at
// random when there is none.

func NewFollowStrategy(rng *rand.Rand) Strategy {
	return &followStrategy{rng: rng}
}

type followStrategy struct {
	rng *rand.Rand
}

func (s followStrategy) ChooseCard(gs protocol.GameState) (cards.Card, error) {
	if len(gs.Hand) == 0 {
		return cards.NoCard, ErrEmptyHand
	}
	if c, ok := gs.Hand.FirstOfSuit(gs.CurrentSuit); ok {
		return c, nil
	}
	return gs.Hand.Pick(s.rng), nil
}
