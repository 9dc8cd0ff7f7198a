package cards

import (
	"log"
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Cards is an ordered run of cards: a hand, in the order the protocol
// reported it, or a pile of played cards.
type Cards []Card

func MakeDeck() Cards {
	d := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			d = append(d, Card{r, s})
		}
	}
	return d
}

func (cs Cards) Copy() Cards {
	cardsCopy := make([]Card, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

// Equals compares as multisets, ignoring order.
func (cs Cards) Equals(other Cards) bool {
	sorted := cs.Copy()
	sorted.Sort()
	otherSorted := other.Copy()
	otherSorted.Sort()
	return slices.Equal(sorted, otherSorted)
}

func (cs Cards) Contains(match func(Card) bool) bool {
	return slices.IndexFunc(cs, match) >= 0
}

func (cs Cards) ContainsCard(c Card) bool {
	return slices.Contains(cs, c)
}

func (cs Cards) ContainsSuit(s Suit) bool {
	return cs.Contains(func(c Card) bool { return c.Suit == s })
}

// FirstOfSuit returns the earliest card of suit s in order, or false if
// there is none.
func (cs Cards) FirstOfSuit(s Suit) (Card, bool) {
	i := slices.IndexFunc(cs, func(c Card) bool { return c.Suit == s })
	if i < 0 {
		return NoCard, false
	}
	return cs[i], true
}

// Pick returns a card chosen uniformly with rng.
// If no cards are present, fatal error.
func (cs Cards) Pick(rng *rand.Rand) Card {
	if len(cs) == 0 {
		log.Fatal("Can't pick from empty list of cards")
	}
	return cs[rng.Intn(len(cs))]
}

func (cs Cards) Sort() {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].LessThan(cs[j])
	})
}

func (cs Cards) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(cs), func(i, j int) { cs[i], cs[j] = cs[j], cs[i] })
}

func (cs Cards) Filter(match func(c Card) bool) Cards {
	var filtered Cards
	for _, c := range cs {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (cs Cards) FilterBySuit(suits ...Suit) Cards {
	return cs.Filter(func(c Card) bool {
		return slices.Contains(suits, c.Suit)
	})
}

// Played drops the NoCard slots.
func (cs Cards) Played() Cards {
	return cs.Filter(func(c Card) bool { return !c.IsNone() })
}

func Combine(cardss ...Cards) Cards {
	var cs Cards
	for _, cards := range cardss {
		cs = append(cs, cards...)
	}
	return cs
}

func (cs Cards) SplitBySuit() map[Suit]Cards {
	cbs := make(map[Suit]Cards)
	for _, c := range cs {
		cbs[c.Suit] = append(cbs[c.Suit], c)
	}
	return cbs
}

// SuitsPresent lists the suits in cs in suit order, including any outside Suits.
func (cs Cards) SuitsPresent() []Suit {
	suits := maps.Keys(cs.SplitBySuit())
	slices.Sort(suits)
	return suits
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	cardStrings := cs.Strings()
	return strings.Join(cardStrings, " ")
}

func (cs Cards) HandString() string {
	cbs := cs.SplitBySuit()
	suitStrings := []string{}
	for _, s := range cs.SuitsPresent() {
		scs := cbs[s]
		scs.Sort()
		suitStrings = append(suitStrings, scs.String())
	}
	return strings.Join(suitStrings, "   ")
}

func ParseCards(cs []string) (Cards, error) {
	cards := Cards{}
	for _, c := range cs {
		card, err := ParseCard(c)
		if err != nil {
			return Cards{}, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Deal shuffles a fresh deck with rng and deals it round-robin. Hands keep
// the order the cards were dealt in.
func Deal(numHands int, rng *rand.Rand) []Cards {
	hs := make([]Cards, numHands)
	d := MakeDeck()
	d.Shuffle(rng)
	for i, c := range d {
		hi := i % numHands
		hs[hi] = append(hs[hi], c)
	}
	return hs
}
