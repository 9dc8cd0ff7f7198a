// Package render prints a game state for people watching a match.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ShiftForward/sueca-bot/pkg/cards"
	"github.com/ShiftForward/sueca-bot/pkg/protocol"
	"github.com/fatih/color"
)

var (
	red   = color.New(color.FgHiRed).SprintFunc()
	black = color.New(color.FgHiWhite).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func Card(c cards.Card) string {
	switch {
	case c.IsNone():
		return faint("--")
	case c.IsRed():
		return red(c.String())
	default:
		return black(c.String())
	}
}

func Cards(cs cards.Cards) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, Card(c))
	}
	return strings.Join(parts, " ")
}

// Hand groups by suit, like Cards.HandString.
func Hand(cs cards.Cards) string {
	bySuit := cs.SplitBySuit()
	groups := []string{}
	for _, s := range cs.SuitsPresent() {
		scs := bySuit[s]
		scs.Sort()
		groups = append(groups, Cards(scs))
	}
	return strings.Join(groups, "   ")
}

// Trick shows every seat, marking the leader.
func Trick(t cards.Trick) string {
	parts := make([]string, 0, cards.NumSeats)
	for seat, c := range t.Cards {
		s := fmt.Sprintf("%d:%s", seat, Card(c))
		if seat == t.StartingPlayer {
			s = bold("*") + s
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// State writes a multi-line summary of gs to w.
func State(w io.Writer, gs protocol.GameState) error {
	led := "nothing (leading)"
	if !gs.Leading() {
		led = gs.CurrentSuit.String()
	}
	_, err := fmt.Fprintf(w,
		"%s seat %d (team %d)  trump %s (seat %d)  score %d-%d  tricks played %d\n"+
			"  hand:  %s\n"+
			"  trick: %s  led: %s  played %d/%d\n",
		bold("sueca"), gs.PlayerNumber, protocol.Team(gs.PlayerNumber), Card(gs.TrumpCard), gs.TrumpPlayer,
		gs.Points[0], gs.Points[1], len(gs.PreviousTricks),
		Hand(gs.Hand),
		Trick(gs.CurrentTrick), led, gs.CurrentTrick.NumPlayed(), cards.NumSeats)
	return err
}
