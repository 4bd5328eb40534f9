package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/palpite/internal/config"
	"github.com/f3rmion/palpite/internal/round"
	"github.com/f3rmion/palpite/internal/tui/bigchar"
)

const (
	restartQuestion = "Você tem certeza que deseja reiniciar?"

	bigTileCols = 5
	bigTileRows = 3
)

// GameModel is the game screen. It reads round state from the controller
// on every render and only changes it through controller operations.
type GameModel struct {
	ctrl     *round.Controller
	settings config.Settings
	input    textinput.Model
	modal    *dialog

	width  int
	height int
}

// NewGameModel creates the game screen for ctrl.
func NewGameModel(ctrl *round.Controller, settings config.Settings) GameModel {
	ti := textinput.New()
	ti.Placeholder = "?"
	ti.CharLimit = 1
	ti.Width = 2
	ti.Prompt = ""
	ti.Focus()
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	return GameModel{
		ctrl:     ctrl,
		settings: settings,
		input:    ti,
	}
}

// SetSize updates the view dimensions.
func (m *GameModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ModalOpen reports whether a blocking dialog is shown.
func (m GameModel) ModalOpen() bool {
	return m.modal != nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.modal != nil {
			if m.modal.handleKey(key) {
				m.modal = nil
			}
			return m, nil
		}

		switch key.String() {
		case "enter":
			m.submit()
			return m, nil
		case "ctrl+r":
			ctrl := m.ctrl
			m.modal = newConfirm(restartQuestion, func() {
				ctrl.Restart()
			})
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetPending(m.input.Value())
	return m, cmd
}

// submit sends the pending letter to the controller and opens the matching
// dialog for rejected guesses and finished rounds.
func (m *GameModel) submit() {
	res, err := m.ctrl.Submit(m.input.Value())
	if err != nil {
		m.modal = newAlert(round.Message(err), "")
		return
	}

	m.input.Reset()

	if res.End != nil {
		m.modal = newAlert(
			res.End.Outcome.Message(),
			fmt.Sprintf("A palavra era %s", res.End.Entry.Word),
		)
	}
}

// View renders the game screen. An open dialog is drawn under the board,
// which keeps showing the current round.
func (m GameModel) View() string {
	snap := m.ctrl.Snapshot()
	var b strings.Builder

	b.WriteString(m.renderHeader(snap))
	b.WriteString("\n")
	b.WriteString(m.renderTip(snap))
	b.WriteString("\n")
	b.WriteString(m.renderWord(snap))
	b.WriteString("\n\n")
	b.WriteString(SectionStyle.Render("Palpite"))
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n\n")
	b.WriteString(m.renderUsedLetters(snap))
	b.WriteString("\n\n")

	if m.modal != nil {
		b.WriteString(m.modal.view())
		return b.String()
	}
	b.WriteString(HelpStyle.Render("enter: confirmar • ctrl+r: reiniciar • ?: ajuda • esc: sair"))

	return b.String()
}

func (m GameModel) renderHeader(snap round.Snapshot) string {
	title := TitleStyle.Render("  PALPITE  ")
	attempts := AttemptsCountStyle.Render(fmt.Sprintf("%d", snap.AttemptsUsed)) + " " +
		AttemptsLabelStyle.Render(fmt.Sprintf("de %d tentativas", snap.AttemptLimit))
	return title + "  " + attempts
}

func (m GameModel) renderTip(snap round.Snapshot) string {
	width := 60
	if m.width > 0 && m.width-8 < width {
		width = max(m.width-8, 10)
	}
	content := TipTitleStyle.Render("Dica") + "\n" +
		TipTextStyle.Render(wordWrap(snap.Tip, width))
	return TipBoxStyle.Render(content)
}

func (m GameModel) renderWord(snap round.Snapshot) string {
	if m.useBigLetters(snap) {
		return m.renderBigWord(snap)
	}

	tiles := make([]string, 0, len(snap.Cells))
	for _, cell := range snap.Cells {
		if cell.Revealed {
			tiles = append(tiles, TileCorrectStyle.Render(string(cell.Letter)))
		} else {
			tiles = append(tiles, TileDefaultStyle.Render(" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// useBigLetters reports whether block-art tiles fit the terminal.
func (m GameModel) useBigLetters(snap round.Snapshot) bool {
	if !m.settings.BigLetters || !bigchar.IsAvailable() || m.width <= 0 {
		return false
	}
	return snap.WordLength*(bigTileCols+2) <= m.width-4
}

func (m GameModel) renderBigWord(snap round.Snapshot) string {
	blank := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", bigTileCols)+"\n", bigTileRows), "\n")

	tiles := make([]string, 0, len(snap.Cells))
	for _, cell := range snap.Cells {
		art := blank
		style := TileDefaultStyle
		if cell.Revealed {
			if rendered := bigchar.GetCached(cell.Letter, bigTileCols, bigTileRows); rendered != "" {
				art = rendered
			}
			style = TileCorrectStyle
		}
		tiles = append(tiles, style.Width(bigTileCols).Render(art))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func (m GameModel) renderInput() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		InputBoxStyle.Render(m.input.View()),
		ButtonStyle.Render("Confirmar"),
	)
}

func (m GameModel) renderUsedLetters(snap round.Snapshot) string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render("Letras utilizadas"))
	b.WriteString("\n")

	if len(snap.Guesses) == 0 {
		b.WriteString(HelpStyle.Render("nenhuma"))
		return b.String()
	}

	for _, g := range snap.Guesses {
		if g.Correct {
			b.WriteString(SmallTileCorrectStyle.Render(g.String()))
		} else {
			b.WriteString(SmallTileWrongStyle.Render(g.String()))
		}
	}
	return b.String()
}
