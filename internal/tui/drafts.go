package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreaprogra/rapport-vocal/internal/service"
	"github.com/andreaprogra/rapport-vocal/models"
)

// DraftsModel is the "Brouillons" page: every transcription in progress or
// awaiting validation.
type DraftsModel struct {
	ctx      context.Context
	services *service.ClientServices

	drafts  []models.Draft
	idx     int
	loading bool
	detail  bool
	status  string
	errMsg  string

	confirming    bool
	pendingDelete string
}

func NewDraftsModel(ctx context.Context, services *service.ClientServices) *DraftsModel {
	return &DraftsModel{ctx: ctx, services: services}
}

func (m *DraftsModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *DraftsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.drafts = msg.data.Drafts
		m.clampIndex()
		return m, nil

	case ingestDoneMsg:
		// Transcription finished (or failed) in the background; either way
		// the draft state on disk changed.
		if msg.err != nil {
			m.status = "La génération d'un rapport a échoué"
		} else {
			m.status = "Un rapport est prêt à être validé"
		}
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())

	case draftValidatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.outcome.PDFErr != nil {
			m.status = "Rapport validé (PDF indisponible)"
		} else {
			m.status = "Rapport validé !"
		}
		m.errMsg = ""
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())

	case draftDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Brouillon supprimé"
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())

	case toastMsg:
		m.status = msg.text
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		switch keyMsg.String() {
		case "y", "o":
			m.confirming = false
			id := m.pendingDelete
			m.pendingDelete = ""
			return m, m.cmdDelete(id)
		case "n", "esc":
			m.confirming = false
			m.pendingDelete = ""
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.drafts)-1 {
			m.idx++
		}
	case "enter":
		if len(m.drafts) > 0 {
			m.detail = !m.detail
		}
	case "esc":
		m.detail = false
	case "e":
		if draft, ok := m.selected(); ok {
			return m, func() tea.Msg {
				return NavigateTo{Page: "edit", Payload: startEditMsg{draft: draft}}
			}
		}
	case "v":
		if draft, ok := m.selected(); ok {
			if draft.Status != models.DraftReady {
				m.errMsg = humanizeError(service.ErrDraftNotReady)
				return m, nil
			}
			return m, m.cmdValidate(draft.ID)
		}
	case "d":
		if draft, ok := m.selected(); ok {
			m.confirming = true
			m.pendingDelete = draft.ID
		}
	case "R":
		m.loading = true
		return m, m.cmdLoad()
	case "1":
		return m, func() tea.Msg { return NavigateTo{Page: "record"} }
	case "3":
		return m, func() tea.Msg { return NavigateTo{Page: "reports"} }
	case "4":
		return m, func() tea.Msg { return NavigateTo{Page: "settings"} }
	}

	return m, nil
}

func (m *DraftsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Chargement...\n")
	case len(m.drafts) == 0:
		b.WriteString("Aucun brouillon pour le moment\n")
		b.WriteString("Enregistrez ou importez votre premier rapport vocal !\n")
	case m.detail:
		if draft, ok := m.selected(); ok {
			b.WriteString(titleStyle.Render(draft.Title))
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("%s │ %s │ %s\n\n",
				statusLabel(draft.Status), draft.SourceDescription, formatDate(draft.CreatedAt)))
			b.WriteString(draft.Body)
			b.WriteString("\n")
		}
	default:
		for i, draft := range m.drafts {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			modified := ""
			if draft.IsModified {
				modified = " (modifié)"
			}
			b.WriteString(fmt.Sprintf("%s %s %s%s\n", cursor, statusIcon(draft.Status),
				fitText(draft.Title, 48), modified))
			b.WriteString(fmt.Sprintf("    %s │ %s\n", draft.SourceDescription, formatDate(draft.CreatedAt)))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Erreur : " + m.errMsg))
		b.WriteString("\n")
	}

	body := strings.TrimRight(b.String(), "\n")
	if m.confirming {
		body += "\n\n" + overlayBoxStyle.Render("Supprimer ce brouillon ?\n\no/y oui    n non")
	}

	hotKeys := "enter: détail │ e: modifier │ v: valider │ d: supprimer │ R: actualiser"
	if m.detail {
		hotKeys = "esc: retour à la liste"
	}
	return renderPage("1 Nouveau rapport │ 2 BROUILLONS │ 3 Rapports │ 4 Paramètres", body, hotKeys)
}

func (m *DraftsModel) selected() (models.Draft, bool) {
	if m.idx < 0 || m.idx >= len(m.drafts) {
		return models.Draft{}, false
	}
	return m.drafts[m.idx], true
}

func (m *DraftsModel) clampIndex() {
	if m.idx >= len(m.drafts) {
		m.idx = len(m.drafts) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *DraftsModel) cmdLoad() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		data, err := services.Lifecycle.Data(ctx)
		return dataLoadedMsg{data: data, err: err}
	}
}

func (m *DraftsModel) cmdValidate(draftID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		outcome, err := services.Lifecycle.ValidateDraft(ctx, draftID, nil)
		return draftValidatedMsg{outcome: outcome, err: err}
	}
}

func (m *DraftsModel) cmdDelete(draftID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return draftDeletedMsg{err: services.Lifecycle.DeleteDraft(ctx, draftID)}
	}
}

func statusIcon(status models.DraftStatus) string {
	switch status {
	case models.DraftGenerating:
		return "⏳"
	case models.DraftError:
		return "⚠️"
	default:
		return "📄"
	}
}

func statusLabel(status models.DraftStatus) string {
	switch status {
	case models.DraftGenerating:
		return "Génération en cours"
	case models.DraftError:
		return "Erreur de génération"
	default:
		return "Prêt à valider"
	}
}
