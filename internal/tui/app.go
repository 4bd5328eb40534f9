package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/palpite/internal/config"
	"github.com/f3rmion/palpite/internal/round"
)

// AppModel is the top-level Bubble Tea model: the game screen plus the
// help overlay and global keys.
type AppModel struct {
	game GameModel

	width  int
	height int
	ready  bool

	showHelp bool
}

// NewApp creates the application for a running controller.
func NewApp(ctrl *round.Controller, settings config.Settings) AppModel {
	return AppModel{
		game: NewGameModel(ctrl, settings),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		if !m.game.ModalOpen() {
			switch msg.String() {
			case "esc":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.game.SetSize(m.width-4, m.height-2)
		return m, nil
	}

	var cmd tea.Cmd
	m.game, cmd = m.game.Update(msg)
	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Carregando..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return ContentStyle.Render(m.game.View())
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	helpText := TitleStyle.MarginBottom(1).Render("Palpite") + "\n\n"

	helpText += SectionStyle.Render("Como jogar") + "\n"
	helpText += descStyle.Render("Descubra a palavra letra por letra.") + "\n"
	helpText += descStyle.Render("Você tem 10 tentativas.") + "\n\n"

	helpText += SectionStyle.Render("Teclas") + "\n"
	helpText += keyStyle.Render("a-z") + descStyle.Render("Digitar palpite") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Confirmar") + "\n"
	helpText += keyStyle.Render("ctrl+r") + descStyle.Render("Reiniciar") + "\n"
	helpText += keyStyle.Render("?") + descStyle.Render("Ajuda") + "\n"
	helpText += keyStyle.Render("esc") + descStyle.Render("Sair") + "\n"

	helpText += "\n" + HelpStyle.Italic(true).Render("Pressione qualquer tecla para fechar")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2).
		Width(50)

	helpBox := boxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
