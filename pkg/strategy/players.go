package strategy

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/ShiftForward/sueca-bot/internal/cmdline"
)

const (
	Follow = "follow"
	Random = "random"
)

var Names = []string{Follow, Random}

// Creates a flag for specifying the strategy to use.
func AddStrategyFlag(fs *flag.FlagSet, target *string, name string) {
	cmdline.EnumFlag(fs, target, name, Names, "Card selection strategy")
}

// Constructs a strategy from a strategy flag value.
func New(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case "", Follow:
		return NewFollowStrategy(rng), nil
	case Random:
		return NewRandomStrategy(rng), nil
	default:
		return nil, fmt.Errorf("invalid strategy %s", name)
	}
}
