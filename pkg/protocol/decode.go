package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ShiftForward/sueca-bot/pkg/cards"
)

// NumLines is the number of lines in one snapshot.
const NumLines = 8

const trickWidth = cards.NumSeats + 1

var errMissingLine = errors.New("missing line")

// FieldError reports which line of the snapshot could not be decoded.
type FieldError struct {
	Line  int // 1-based
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Decode reads one snapshot from r. Lines after the eighth are ignored.
func Decode(r io.Reader) (GameState, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for len(lines) < NumLines && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return GameState{}, fmt.Errorf("couldn't read game state: %w", err)
	}
	return Parse(lines)
}

// Parse decodes the eight snapshot lines. No partial state is returned on error.
func Parse(lines []string) (GameState, error) {
	if len(lines) < NumLines {
		return GameState{}, &FieldError{len(lines) + 1, fieldNames[len(lines)], errMissingLine}
	}
	var gs GameState
	for i, decode := range decoders {
		line := strings.TrimRight(lines[i], "\r")
		if err := decode(&gs, line); err != nil {
			return GameState{}, &FieldError{i + 1, fieldNames[i], err}
		}
	}
	return gs, nil
}

var fieldNames = [NumLines]string{
	"player number",
	"hand",
	"trump player",
	"trump card",
	"current trick",
	"current suit",
	"previous tricks",
	"points",
}

var decoders = [NumLines]func(*GameState, string) error{
	func(gs *GameState, line string) (err error) {
		gs.PlayerNumber, err = parseSeat(line)
		return err
	},
	decodeHand,
	func(gs *GameState, line string) (err error) {
		gs.TrumpPlayer, err = parseSeat(line)
		return err
	},
	func(gs *GameState, line string) (err error) {
		gs.TrumpCard, err = cards.ParseCard(strings.TrimSpace(line))
		return err
	},
	func(gs *GameState, line string) (err error) {
		gs.CurrentTrick, err = cards.ParseTrick(strings.Fields(line))
		return err
	},
	func(gs *GameState, line string) (err error) {
		gs.CurrentSuit, err = cards.ParseSuit(strings.TrimSpace(line))
		return err
	},
	decodePreviousTricks,
	decodePoints,
}

func parseSeat(line string) (int, error) {
	seat, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, err
	}
	if seat < 0 || seat >= cards.NumSeats {
		return 0, fmt.Errorf("seat %d out of range", seat)
	}
	return seat, nil
}

// splitCount splits "count tok..." into the leading count and the tokens after it.
func splitCount(line string) (int, []string, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return 0, nil, errors.New("missing count")
	}
	count, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, nil, fmt.Errorf("count: %w", err)
	}
	return count, tokens[1:], nil
}

// The hand's count is not checked against the cards that follow it.
func decodeHand(gs *GameState, line string) error {
	_, tokens, err := splitCount(line)
	if err != nil {
		return err
	}
	hand, err := cards.ParseCards(tokens)
	if err != nil {
		return err
	}
	if hand.Contains(cards.Card.IsNone) {
		return fmt.Errorf("hand '%s' holds an empty slot", line)
	}
	gs.Hand = hand
	return nil
}

func decodePreviousTricks(gs *GameState, line string) error {
	count, tokens, err := splitCount(line)
	if err != nil {
		return err
	}
	if count < 0 || len(tokens) != count*trickWidth {
		return fmt.Errorf("count %d doesn't match %d tokens", count, len(tokens))
	}
	tricks := []cards.Trick{}
	for start := 0; start < len(tokens); start += trickWidth {
		t, err := cards.ParseTrick(tokens[start : start+trickWidth])
		if err != nil {
			return fmt.Errorf("trick %d: %w", len(tricks), err)
		}
		if _, ok := t.LeadSuit(); !ok {
			return fmt.Errorf("trick %d: %w: leader %d didn't play", len(tricks), cards.ErrBadTrick, t.StartingPlayer)
		}
		tricks = append(tricks, t)
	}
	gs.PreviousTricks = tricks
	return nil
}

func decodePoints(gs *GameState, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) != len(gs.Points) {
		return fmt.Errorf("want %d scores, got %d", len(gs.Points), len(tokens))
	}
	for i, tok := range tokens {
		p, err := strconv.Atoi(tok)
		if err != nil {
			return err
		}
		gs.Points[i] = p
	}
	return nil
}
