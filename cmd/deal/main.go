// Command deal shuffles a deck and prints the opening snapshot for one
// seat, in the form the bot reads. Useful for feeding the bot by hand.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/ShiftForward/sueca-bot/internal/render"
	"github.com/ShiftForward/sueca-bot/pkg/cards"
	"github.com/ShiftForward/sueca-bot/pkg/protocol"
	"github.com/charmbracelet/log"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("deal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	player := fs.Int("player", 0, "Seat to write the snapshot for")
	trumpPlayer := fs.Int("trump-player", 0, "Seat whose last dealt card sets trump")
	leader := fs.Int("leader", 0, "Seat that opens the first trick")
	showHands := fs.Bool("hands", false, "Print every hand to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, seat := range []int{*player, *trumpPlayer, *leader} {
		if seat < 0 || seat >= cards.NumSeats {
			return fmt.Errorf("seat %d out of range", seat)
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	gs := dealSnapshot(rand.New(rand.NewSource(*seed)), *player, *trumpPlayer, *leader)
	if *showHands {
		for seat, h := range gs.hands {
			fmt.Fprintf(stderr, "%d: %s\n", seat, render.Hand(h))
		}
	}
	return protocol.Encode(stdout, gs.GameState)
}

type deal struct {
	protocol.GameState
	hands []cards.Cards
}

// dealSnapshot builds the snapshot player sees before any card has been played.
func dealSnapshot(rng *rand.Rand, player, trumpPlayer, leader int) deal {
	hands := cards.Deal(cards.NumSeats, rng)
	trumpHand := hands[trumpPlayer]
	gs := protocol.GameState{
		PlayerNumber:   player,
		Hand:           hands[player],
		TrumpPlayer:    trumpPlayer,
		TrumpCard:      trumpHand[len(trumpHand)-1],
		CurrentTrick:   cards.NewTrick(leader),
		CurrentSuit:    cards.NoSuit,
		PreviousTricks: []cards.Trick{},
	}
	return deal{GameState: gs, hands: hands}
}
