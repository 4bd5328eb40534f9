package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/palpite/internal/round"
	"github.com/f3rmion/palpite/internal/words"
)

func decodeLines(t *testing.T, b []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	return out
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}

func TestRoundEventsLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug")
	require.NoError(t, err)

	c, err := round.New(
		words.Catalog{{Word: "SOL", Tip: "Estrela"}},
		round.WithSubscriber(RoundEvents(log)),
	)
	require.NoError(t, err)

	_, _ = c.Submit("")
	for _, l := range []string{"s", "o", "l"} {
		_, err := c.Submit(l)
		require.NoError(t, err)
	}

	lines := decodeLines(t, buf.Bytes())
	var events []string
	for _, l := range lines {
		events = append(events, l["event"].(string))
	}
	assert.Equal(t, []string{
		"round_started", "rejected", "guessed", "guessed", "guessed", "round_ended", "round_started",
	}, events)

	end := lines[5]
	assert.Equal(t, "win", end["outcome"])
	assert.Equal(t, "SOL", end["word"])
}

func TestInfoLevelSkipsGuesses(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info")
	require.NoError(t, err)

	c, err := round.New(words.Catalog{{Word: "SOL", Tip: "Estrela"}}, round.WithSubscriber(RoundEvents(log)))
	require.NoError(t, err)
	_, err = c.Submit("x")
	require.NoError(t, err)

	assert.Len(t, decodeLines(t, buf.Bytes()), 1)
}

func TestOpenDisabledTouchesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "palpite.log")
	_, closer, err := Open(path, "disabled")
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "palpite.log")
	log, closer, err := Open(path, "info")
	require.NoError(t, err)
	log.Info().Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}
