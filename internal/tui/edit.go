package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreaprogra/rapport-vocal/internal/service"
	"github.com/andreaprogra/rapport-vocal/models"
)

// startEditMsg opens the editor on a ready draft.
type startEditMsg struct {
	draft models.Draft
}

// EditModel is the draft editor: a title input and a body textarea. Saving
// marks the draft modified; validation happens back on the drafts page.
type EditModel struct {
	ctx      context.Context
	services *service.ClientServices

	draftID    string
	titleInput textinput.Model
	bodyArea   textarea.Model
	focusTitle bool
	saving     bool
	errMsg     string
}

func NewEditModel(ctx context.Context, services *service.ClientServices) *EditModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "titre du rapport"
	titleInput.CharLimit = 120
	titleInput.Width = 60

	bodyArea := textarea.New()
	bodyArea.Placeholder = "contenu du rapport"
	bodyArea.SetWidth(70)
	bodyArea.SetHeight(14)
	bodyArea.CharLimit = 0

	return &EditModel{
		ctx:        ctx,
		services:   services,
		titleInput: titleInput,
		bodyArea:   bodyArea,
	}
}

func (m *EditModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startEditMsg:
		m.draftID = msg.draft.ID
		m.titleInput.SetValue(msg.draft.Title)
		m.bodyArea.SetValue(msg.draft.Body)
		m.focusTitle = true
		m.titleInput.Focus()
		m.bodyArea.Blur()
		m.saving = false
		m.errMsg = ""
		return m, textinput.Blink

	case draftSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "drafts"} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "drafts"} }
		case "tab":
			m.toggleFocus()
			return m, nil
		case "ctrl+s":
			if m.saving {
				return m, nil
			}
			title := strings.TrimSpace(m.titleInput.Value())
			body := strings.TrimSpace(m.bodyArea.Value())
			if title == "" || body == "" {
				m.errMsg = "Veuillez remplir le titre et le contenu"
				return m, nil
			}
			m.saving = true
			m.errMsg = ""
			return m, m.cmdSave(title, body)
		}
	}

	var cmd tea.Cmd
	if m.focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.bodyArea, cmd = m.bodyArea.Update(msg)
	}
	return m, cmd
}

func (m *EditModel) View() string {
	var b strings.Builder

	b.WriteString("Titre du rapport :\n[")
	b.WriteString(m.titleInput.View())
	b.WriteString("]\n\n")
	b.WriteString("Contenu :\n")
	b.WriteString(m.bodyArea.View())
	b.WriteString("\n")

	if m.saving {
		b.WriteString("\n[Sauvegarde...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Erreur : " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("MODIFIER LE BROUILLON", strings.TrimRight(b.String(), "\n"),
		"tab: champ suivant │ ctrl+s: sauvegarder │ esc: annuler")
}

func (m *EditModel) toggleFocus() {
	m.focusTitle = !m.focusTitle
	if m.focusTitle {
		m.titleInput.Focus()
		m.bodyArea.Blur()
	} else {
		m.titleInput.Blur()
		m.bodyArea.Focus()
	}
}

func (m *EditModel) cmdSave(title, body string) tea.Cmd {
	ctx, services, draftID := m.ctx, m.services, m.draftID
	return func() tea.Msg {
		return draftSavedMsg{err: services.Lifecycle.EditDraft(ctx, draftID, title, body)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
