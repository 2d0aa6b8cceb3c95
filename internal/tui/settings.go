package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreaprogra/rapport-vocal/internal/service"
	"github.com/andreaprogra/rapport-vocal/models"
)

// SettingsModel is the "Paramètres" page: session info, roster diagnostics
// and logout.
type SettingsModel struct {
	ctx      context.Context
	services *service.ClientServices

	stats  models.UserStats
	loaded bool
	status string
}

func NewSettingsModel(ctx context.Context, services *service.ClientServices) *SettingsModel {
	return &SettingsModel{ctx: ctx, services: services}
}

func (m *SettingsModel) Init() tea.Cmd {
	return m.cmdStats()
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.stats = msg.stats
		m.loaded = true
		return m, nil

	case rosterRefreshedMsg:
		m.status = fmt.Sprintf("Annuaire actualisé : %d utilisateurs", msg.count)
		return m, tea.Batch(m.cmdStats(), cmdClearStatus())

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "r":
		m.status = "Actualisation de l'annuaire..."
		return m, m.cmdRefresh()
	case "l":
		return m, func() tea.Msg { return logoutMsg{} }
	case "1":
		return m, func() tea.Msg { return NavigateTo{Page: "record"} }
	case "2":
		return m, func() tea.Msg { return NavigateTo{Page: "drafts"} }
	case "3":
		return m, func() tea.Msg { return NavigateTo{Page: "reports"} }
	}

	return m, nil
}

func (m *SettingsModel) View() string {
	var b strings.Builder

	user := getSessionUser()
	b.WriteString(titleStyle.Render("Session"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Utilisateur : %s (%s)\n", user.DisplayName, user.Username))
	b.WriteString(fmt.Sprintf("Rôle : %s\n\n", user.Role))

	b.WriteString(titleStyle.Render("Annuaire"))
	b.WriteString("\n")
	if m.loaded {
		b.WriteString(fmt.Sprintf("Total : %d │ Actifs : %d │ Inactifs : %d\n",
			m.stats.Total, m.stats.Active, m.stats.Inactive))
		b.WriteString(fmt.Sprintf("Commerciaux : %d │ Managers : %d │ Admins : %d\n",
			m.stats.SalesReps, m.stats.Managers, m.stats.Admins))
	} else {
		b.WriteString("Chargement...\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("1 Nouveau rapport │ 2 Brouillons │ 3 Rapports │ 4 PARAMÈTRES",
		strings.TrimRight(b.String(), "\n"),
		"r: actualiser l'annuaire │ l: se déconnecter")
}

type statsLoadedMsg struct {
	stats models.UserStats
}

func (m *SettingsModel) cmdStats() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return statsLoadedMsg{stats: services.Auth.DirectoryStats(ctx)}
	}
}

func (m *SettingsModel) cmdRefresh() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return rosterRefreshedMsg{count: services.Auth.RefreshDirectory(ctx)}
	}
}
