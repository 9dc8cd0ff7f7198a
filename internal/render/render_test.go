package render

import (
	"bytes"
	"testing"

	"github.com/ShiftForward/sueca-bot/pkg/cards"
	"github.com/ShiftForward/sueca-bot/pkg/protocol"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestHand(t *testing.T) {
	hand := cards.Cards{cards.Cas, cards.C2h, cards.C7h, cards.Cqc, cards.C3h}
	require.Equal(t, hand.HandString(), Hand(hand))
}

func TestTrick(t *testing.T) {
	tr := cards.NewTrick(2)
	tr.Add(2, cards.Cqh)
	require.Equal(t, "0:-- 1:-- *2:QH 3:--", Trick(tr))
}

func TestState(t *testing.T) {
	tr := cards.NewTrick(1)
	tr.Add(1, cards.Cqh)
	gs := protocol.GameState{
		PlayerNumber: 2,
		Hand:         cards.Cards{cards.C7h, cards.Cks},
		TrumpPlayer:  0,
		TrumpCard:    cards.Cad,
		CurrentTrick: tr,
		CurrentSuit:  cards.Hearts,
		Points:       [2]int{12, 30},
	}
	var buf bytes.Buffer
	require.NoError(t, State(&buf, gs))
	require.Equal(t,
		"sueca seat 2 (team 0)  trump AD (seat 0)  score 12-30  tricks played 0\n"+
			"  hand:  7H   KS\n"+
			"  trick: 0:-- *1:QH 2:-- 3:--  led: H  played 1/4\n",
		buf.String())
}
