package cards

import (
	"errors"
	"fmt"
)

// NumSeats is the number of players at the table, and so the number of
// slots in every trick.
const NumSeats = 4

// The wire marker for "no card played in this slot".
const noCardMarker = 'X'

var ErrBadToken = errors.New("malformed card token")

// A card's suit, as its one-letter protocol code.
type Suit byte

const (
	NoSuit   Suit = 0
	Clubs    Suit = 'C'
	Diamonds Suit = 'D'
	Hearts   Suit = 'H'
	Spades   Suit = 'S'
)

var Suits = []Suit{
	Clubs,
	Diamonds,
	Hearts,
	Spades,
}

func (s Suit) String() string {
	if s == NoSuit {
		return string(noCardMarker)
	}
	return string(s)
}

// ParseSuit reads the single-character suit field. The marker X means no
// suit has been led yet.
func ParseSuit(s string) (Suit, error) {
	if len(s) != 1 {
		return NoSuit, fmt.Errorf("no such suit '%s'", s)
	}
	if s[0] == noCardMarker {
		return NoSuit, nil
	}
	return Suit(s[0]), nil
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// A card's rank, as its one-character protocol code.
type Rank byte

const (
	Two   Rank = '2'
	Three Rank = '3'
	Four  Rank = '4'
	Five  Rank = '5'
	Six   Rank = '6'
	Seven Rank = '7'
	Queen Rank = 'Q'
	Jack  Rank = 'J'
	King  Rank = 'K'
	Ace   Rank = 'A'
)

// Ranks of the 40-card deck, lowest first.
var Ranks = []Rank{
	Two,
	Three,
	Four,
	Five,
	Six,
	Queen,
	Jack,
	King,
	Seven,
	Ace,
}

func (r Rank) String() string {
	if r == 0 {
		return ""
	}
	return string(r)
}

// order is the rank's position in Ranks; unknown ranks sort after all known ones.
func (r Rank) order() int {
	for i, known := range Ranks {
		if r == known {
			return i
		}
	}
	return len(Ranks) + int(r)
}

type Card struct {
	Rank
	Suit
}

// NoCard fills the trick slots of seats that have not played.
var NoCard = Card{}

func (c Card) IsNone() bool {
	return c == NoCard
}

func (c Card) String() string {
	if c.IsNone() {
		return string(noCardMarker)
	}
	return c.Rank.String() + c.Suit.String()
}

// ParseCard reads a card token: any token starting with X is NoCard,
// otherwise the first character is the rank and the second the suit.
// Anything after the second character is ignored.
func ParseCard(c string) (Card, error) {
	if len(c) > 0 && c[0] == noCardMarker {
		return NoCard, nil
	}
	if len(c) < 2 {
		return NoCard, fmt.Errorf("can't parse card '%s': %w", c, ErrBadToken)
	}
	return Card{Rank(c[0]), Suit(c[1])}, nil
}

func (c1 Card) LessThan(c2 Card) bool {
	if c1.Suit == c2.Suit {
		return c1.Rank.order() < c2.Rank.order()
	}
	return c1.Suit < c2.Suit
}
