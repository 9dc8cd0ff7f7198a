package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Info("dealt", "cards", 10)
	require.Empty(t, buf.String())

	logger.Warn("leader slot empty", "seat", 2)
	require.Contains(t, buf.String(), "leader slot empty")
	require.Contains(t, buf.String(), "seat=2")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "chatty")
	require.Error(t, err)
}
