package cards

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrBadTrick = errors.New("malformed trick")

// Trick holds one card per seat, indexed by seat number. Seats that have
// not played yet hold NoCard.
type Trick struct {
	StartingPlayer int
	Cards          [NumSeats]Card
}

// NewTrick returns an empty trick led by startingPlayer.
func NewTrick(startingPlayer int) Trick {
	return Trick{StartingPlayer: startingPlayer}
}

// ParseTrick reads the protocol block "starting_player card_0 .. card_3".
func ParseTrick(tokens []string) (Trick, error) {
	if len(tokens) != NumSeats+1 {
		return Trick{}, fmt.Errorf("%w: want %d tokens, got %d", ErrBadTrick, NumSeats+1, len(tokens))
	}
	start, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Trick{}, fmt.Errorf("%w: starting player: %w", ErrBadTrick, err)
	}
	if start < 0 || start >= NumSeats {
		return Trick{}, fmt.Errorf("%w: starting player %d out of range", ErrBadTrick, start)
	}
	t := NewTrick(start)
	for i, tok := range tokens[1:] {
		c, err := ParseCard(tok)
		if err != nil {
			return Trick{}, fmt.Errorf("%w: seat %d: %w", ErrBadTrick, i, err)
		}
		t.Add(i, c)
	}
	return t, nil
}

// Tokens is the inverse of ParseTrick.
func (t Trick) Tokens() []string {
	return append([]string{strconv.Itoa(t.StartingPlayer)}, t.CardsInSeatOrder().Strings()...)
}

func (t Trick) String() string {
	return t.CardsInPlayOrder().String()
}

func (t Trick) CardsInSeatOrder() Cards {
	return Cards(t.Cards[:]).Copy()
}

// CardsInPlayOrder lists the played cards starting from the leader.
func (t Trick) CardsInPlayOrder() Cards {
	var cs Cards
	for i := 0; i < NumSeats; i++ {
		c := t.Cards[(t.StartingPlayer+i)%NumSeats]
		if !c.IsNone() {
			cs = append(cs, c)
		}
	}
	return cs
}

func (t *Trick) Add(seat int, c Card) {
	t.Cards[seat] = c
}

// Returns false if the leader has not played.
func (t Trick) LeadSuit() (Suit, bool) {
	lead := t.Cards[t.StartingPlayer]
	if lead.IsNone() {
		return NoSuit, false
	}
	return lead.Suit, true
}

func (t Trick) NumPlayed() int {
	return len(Cards(t.Cards[:]).Played())
}
