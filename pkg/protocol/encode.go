package protocol

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ShiftForward/sueca-bot/pkg/cards"
)

// Lines formats gs as the eight snapshot lines; Parse(gs.Lines()) gives back gs.
func (gs GameState) Lines() []string {
	hand := append([]string{strconv.Itoa(len(gs.Hand))}, gs.Hand.Strings()...)
	history := []string{strconv.Itoa(len(gs.PreviousTricks))}
	for _, t := range gs.PreviousTricks {
		history = append(history, t.Tokens()...)
	}
	return []string{
		strconv.Itoa(gs.PlayerNumber),
		strings.Join(hand, " "),
		strconv.Itoa(gs.TrumpPlayer),
		gs.TrumpCard.String(),
		strings.Join(gs.CurrentTrick.Tokens(), " "),
		gs.CurrentSuit.String(),
		strings.Join(history, " "),
		strconv.Itoa(gs.Points[0]) + " " + strconv.Itoa(gs.Points[1]),
	}
}

// Encode writes gs to w in the form Decode reads.
func Encode(w io.Writer, gs GameState) error {
	bw := bufio.NewWriter(w)
	for _, line := range gs.Lines() {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeCard writes the chosen card as the single output line.
func EncodeCard(w io.Writer, c cards.Card) error {
	if c.IsNone() {
		return errors.New("can't play an empty slot")
	}
	_, err := io.WriteString(w, c.String()+"\n")
	return err
}
