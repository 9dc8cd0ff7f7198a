package main

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/ShiftForward/sueca-bot/pkg/cards"
	"github.com/ShiftForward/sueca-bot/pkg/protocol"
	"github.com/stretchr/testify/require"
)

func TestDeal(t *testing.T) {
	d := dealSnapshot(rand.New(rand.NewSource(5)), 2, 1, 3)
	require.Len(t, d.hands, cards.NumSeats)
	require.Len(t, d.Hand, 10)
	require.Equal(t, d.hands[2], d.Hand)
	require.True(t, d.hands[1].ContainsCard(d.TrumpCard))
	require.True(t, cards.Combine(d.hands...).Equals(cards.MakeDeck()))
	require.Equal(t, 3, d.CurrentTrick.StartingPlayer)
	require.True(t, d.Leading())
}

func TestRunWritesDecodableSnapshot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-seed", "11", "-player", "1", "-hands"}, &stdout, &stderr)
	require.NoError(t, err)

	gs, err := protocol.Decode(&stdout)
	require.NoError(t, err)
	require.Equal(t, 1, gs.PlayerNumber)
	require.Len(t, gs.Hand, 10)
	require.Equal(t, cards.NoSuit, gs.CurrentSuit)
	require.Empty(t, gs.PreviousTricks)
	require.Equal(t, [2]int{0, 0}, gs.Points)
	require.Contains(t, stderr.String(), "3: ")
}

func TestRunRejectsBadSeat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Error(t, run([]string{"-player", "4"}, &stdout, &stderr))
	require.Empty(t, stdout.String())
}
