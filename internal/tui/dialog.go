package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type dialogKind int

const (
	dialogAlert dialogKind = iota
	dialogConfirm
)

// dialog is a blocking modal. While one is open it receives every key.
type dialog struct {
	kind    dialogKind
	title   string
	body    string
	confirm func() // Runs when a confirm dialog is accepted
}

func newAlert(title, body string) *dialog {
	return &dialog{kind: dialogAlert, title: title, body: body}
}

func newConfirm(question string, onYes func()) *dialog {
	return &dialog{kind: dialogConfirm, title: question, confirm: onYes}
}

// handleKey consumes a key and reports whether the dialog should close.
func (d *dialog) handleKey(msg tea.KeyMsg) bool {
	if d.kind == dialogAlert {
		return true
	}

	switch strings.ToLower(msg.String()) {
	case "y", "s", "enter":
		if d.confirm != nil {
			d.confirm()
		}
		return true
	case "n", "esc":
		return true
	}
	return false
}

func (d *dialog) view() string {
	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render(d.title))
	if d.body != "" {
		b.WriteString("\n\n")
		b.WriteString(ModalTextStyle.Render(d.body))
	}
	b.WriteString("\n\n")
	if d.kind == dialogConfirm {
		b.WriteString(HelpStyle.Render("s/y: sim • n/esc: não"))
	} else {
		b.WriteString(HelpStyle.Render("pressione qualquer tecla"))
	}
	return ModalStyle.Render(b.String())
}
