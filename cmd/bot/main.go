// Command bot reads one game state snapshot on stdin and prints the card to play.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/ShiftForward/sueca-bot/internal/config"
	"github.com/ShiftForward/sueca-bot/internal/logging"
	"github.com/ShiftForward/sueca-bot/internal/render"
	"github.com/ShiftForward/sueca-bot/pkg/protocol"
	"github.com/ShiftForward/sueca-bot/pkg/strategy"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("bot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	strategy.AddStrategyFlag(fs, &cfg.Strategy, "strategy")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 seeds from the clock")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Print the game state to stderr")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = logger.With("decision", uuid.NewString())

	gs, err := protocol.Decode(stdin)
	if err != nil {
		return fmt.Errorf("couldn't decode game state: %w", err)
	}
	if cfg.Verbose {
		if err := render.State(stderr, gs); err != nil {
			return err
		}
	}
	if lead, ok := gs.CurrentTrick.LeadSuit(); ok && lead != gs.CurrentSuit {
		logger.Debug("current suit differs from trick leader's card", "current", gs.CurrentSuit, "leader", lead)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := strategy.New(cfg.Strategy, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	card, err := s.ChooseCard(gs)
	if err != nil {
		return fmt.Errorf("couldn't choose card for seat %d: %w", gs.PlayerNumber, err)
	}
	logger.Info("playing", "card", card, "strategy", cfg.Strategy, "seed", seed, "hand", gs.Hand, "trump", gs.TrumpSuit())
	return protocol.EncodeCard(stdout, card)
}
