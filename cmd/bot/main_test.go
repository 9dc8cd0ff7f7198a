package main

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ShiftForward/sueca-bot/pkg/protocol"
	"github.com/ShiftForward/sueca-bot/pkg/strategy"
	"github.com/stretchr/testify/require"
)

func snapshot(hand, suit string) string {
	return strings.Join([]string{
		"2",
		hand,
		"0",
		"AD",
		"1 X QH X X",
		suit,
		"0",
		"0 0",
	}, "\n") + "\n"
}

func TestRunFollowsSuit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-seed", "1"}, strings.NewReader(snapshot("2 7H 9H KS", "H")), &stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, "7H\n", stdout.String())
}

func TestRunKeepsLongTokensToTwoCharacters(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-seed", "1"}, strings.NewReader(snapshot("2 10H 7H", "H")), &stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, "7H\n", stdout.String())
}

func TestRunVoidPlaysAnyCard(t *testing.T) {
	seen := map[string]bool{}
	for seed := 1; seed <= 60; seed++ {
		var stdout, stderr bytes.Buffer
		err := run([]string{"-seed", strconv.Itoa(seed)}, strings.NewReader(snapshot("2 7C 9C KS", "H")), &stdout, &stderr)
		require.NoError(t, err)
		seen[stdout.String()] = true
	}
	require.Equal(t, map[string]bool{"7C\n": true, "9C\n": true, "KS\n": true}, seen)
}

func TestRunRandomStrategy(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-strategy", "random", "-seed", "3"}, strings.NewReader(snapshot("3 7H KS 9H", "H")), &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, []string{"7H\n", "9H\n"}, stdout.String())
}

func TestRunVerboseWritesOnlyCardToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-verbose", "-log-level", "debug", "-seed", "1"}, strings.NewReader(snapshot("3 7H 9H KS", "H")), &stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, "7H\n", stdout.String())
	require.Contains(t, stderr.String(), "hand:")
	require.Contains(t, stderr.String(), "decision=")
	require.Contains(t, stderr.String(), "trump=D")
	require.Contains(t, stderr.String(), "(team 0)")
}

func TestRunMalformedInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, strings.NewReader("2\n3 7H 9H\n"), &stdout, &stderr)
	require.Error(t, err)
	var fieldErr *protocol.FieldError
	require.True(t, errors.As(err, &fieldErr))
	require.Empty(t, stdout.String())
}

func TestRunEmptyHand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, strings.NewReader(snapshot("0", "H")), &stdout, &stderr)
	require.True(t, errors.Is(err, strategy.ErrEmptyHand))
	require.Empty(t, stdout.String())
}

func TestRunUnknownStrategy(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-strategy", "basic"}, strings.NewReader(snapshot("3 7H 9H KS", "H")), &stdout, &stderr)
	require.Error(t, err)
	require.Empty(t, stdout.String())
}
