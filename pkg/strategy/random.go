package strategy

import (
	"math/rand"

	"github.com/ShiftForward/sueca-bot/pkg/cards"
	"github.com/ShiftForward/sueca-bot/pkg/protocol"
)

// Plays a random (legal) card.

func NewRandomStrategy(rng *rand.Rand) Strategy {
	return &randomStrategy{rng: rng}
}

type randomStrategy struct {
	rng *rand.Rand
}

func (s randomStrategy) ChooseCard(gs protocol.GameState) (cards.Card, error) {
	legalPlays := LegalPlays(gs)
	if len(legalPlays) == 0 {
		return cards.NoCard, ErrEmptyHand
	}
	return legalPlays.Pick(s.rng), nil
}
