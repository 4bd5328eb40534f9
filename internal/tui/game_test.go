package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/palpite/internal/config"
	"github.com/f3rmion/palpite/internal/round"
	"github.com/f3rmion/palpite/internal/words"
)

func newTestGame(t *testing.T) (GameModel, *round.Controller) {
	t.Helper()
	ctrl, err := round.New(words.Catalog{{Word: "GIRAFA", Tip: "Animal alto"}})
	require.NoError(t, err)
	settings := config.Default()
	settings.BigLetters = false
	return NewGameModel(ctrl, settings), ctrl
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func send(m GameModel, msgs ...tea.Msg) GameModel {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestTypingUpdatesPending(t *testing.T) {
	m, ctrl := newTestGame(t)
	m = send(m, runes("a"))
	assert.Equal(t, "a", ctrl.Snapshot().Pending)
}

func TestSubmitGuess(t *testing.T) {
	m, ctrl := newTestGame(t)
	m = send(m, runes("a"), enter)

	snap := ctrl.Snapshot()
	require.Len(t, snap.Guesses, 1)
	assert.Equal(t, 2, snap.Score)
	assert.Empty(t, snap.Pending)
	assert.False(t, m.ModalOpen())

	view := m.View()
	assert.Contains(t, view, "1 de 10 tentativas")
	assert.Contains(t, view, "Animal alto")
	assert.Contains(t, view, "Letras utilizadas")
}

func TestEmptySubmitShowsAlert(t *testing.T) {
	m, ctrl := newTestGame(t)
	m = send(m, enter)

	require.True(t, m.ModalOpen())
	assert.Contains(t, m.View(), "Digite uma letra!")
	assert.Empty(t, ctrl.Snapshot().Guesses)

	// Any key closes the alert without reaching the input
	m = send(m, runes("b"))
	assert.False(t, m.ModalOpen())
	assert.Empty(t, ctrl.Snapshot().Pending)
}

func TestDuplicateSubmitShowsAlert(t *testing.T) {
	m, ctrl := newTestGame(t)
	m = send(m, runes("a"), enter, runes("A"))
	before := ctrl.Snapshot()
	require.Equal(t, "A", before.Pending)

	m = send(m, enter)
	require.True(t, m.ModalOpen())
	assert.Contains(t, m.View(), "Você já utilizou a letra A")
	if diff := cmp.Diff(before, ctrl.Snapshot()); diff != "" {
		t.Errorf("rejected guess changed state (-want +got):\n%s", diff)
	}

	// Closing the alert keeps the typed letter
	m = send(m, esc)
	assert.False(t, m.ModalOpen())
	assert.Equal(t, "A", ctrl.Snapshot().Pending)
	assert.Equal(t, "A", m.input.Value())
}

func TestRestartNeedsConfirmation(t *testing.T) {
	m, ctrl := newTestGame(t)
	m = send(m, runes("a"), enter, ctrlR)

	require.True(t, m.ModalOpen())
	assert.Contains(t, m.View(), "Você tem certeza que deseja reiniciar?")

	m = send(m, runes("n"))
	assert.False(t, m.ModalOpen())
	assert.Equal(t, 1, ctrl.Snapshot().Round)
	assert.Len(t, ctrl.Snapshot().Guesses, 1)

	m = send(m, ctrlR, esc)
	assert.Equal(t, 1, ctrl.Snapshot().Round)

	m = send(m, ctrlR, runes("s"))
	assert.False(t, m.ModalOpen())
	assert.Equal(t, 2, ctrl.Snapshot().Round)
	assert.Empty(t, ctrl.Snapshot().Guesses)
}

func TestWinAnnouncesAndRestarts(t *testing.T) {
	m, ctrl := newTestGame(t)
	for _, l := range []string{"g", "i", "r", "a", "f"} {
		m = send(m, runes(l), enter)
	}

	require.True(t, m.ModalOpen())
	view := m.View()
	assert.Contains(t, view, "Parabéns, você descobriu a palavra!")
	assert.Contains(t, view, "GIRAFA")

	snap := ctrl.Snapshot()
	assert.Equal(t, 2, snap.Round)
	assert.Empty(t, snap.Guesses)

	// The board behind the announcement already shows the new round
	assert.Contains(t, view, "0 de 10 tentativas")
	assert.Contains(t, view, "Animal alto")

	m = send(m, enter)
	assert.False(t, m.ModalOpen())
	assert.Contains(t, m.View(), "0 de 10 tentativas")
}

func TestLossAnnounces(t *testing.T) {
	m, _ := newTestGame(t)
	for _, l := range []string{"b", "c", "d", "e", "h", "j", "k", "l", "m", "n"} {
		m = send(m, runes(l), enter)
	}

	require.True(t, m.ModalOpen())
	assert.Contains(t, m.View(), "Que pena, você usou todas as tentativas!")
}

func TestBigLettersFallBackOnNarrowTerminal(t *testing.T) {
	m, ctrl := newTestGame(t)
	m.settings.BigLetters = true
	m.SetSize(20, 30)
	assert.False(t, m.useBigLetters(ctrl.Snapshot()))

	m.SetSize(120, 30)
	assert.True(t, m.useBigLetters(ctrl.Snapshot()))

	m = send(m, runes("a"), enter)
	assert.NotEmpty(t, m.View())
}

func TestWordWrap(t *testing.T) {
	assert.Equal(t, "Animal\nalto", wordWrap("Animal alto", 8))
	assert.Equal(t, "Animal alto", wordWrap("Animal alto", 0))
	assert.Empty(t, wordWrap("   ", 10))
}
