package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreaprogra/rapport-vocal/internal/service"
	"github.com/andreaprogra/rapport-vocal/models"
)

// searchDebounce is how long the search input stays quiet before a query
// actually runs.
const searchDebounce = 300 * time.Millisecond

type confirmTarget int

const (
	confirmNone confirmTarget = iota
	confirmReport
	confirmFolder
)

// ReportsModel is the "Rapports" page: validated reports with search,
// folders, sharing and exports.
type ReportsModel struct {
	ctx      context.Context
	services *service.ClientServices

	folders []models.Folder
	reports []models.Report
	idx     int
	loading bool
	detail  bool
	status  string
	errMsg  string

	searchInput textinput.Model
	searching   bool
	query       string

	// folderFilter indexes folders; -1 means all reports.
	folderFilter int

	moveMode bool
	moveIdx  int

	creatingFolder bool
	folderInput    textinput.Model

	confirming    confirmTarget
	pendingDelete string
}

func NewReportsModel(ctx context.Context, services *service.ClientServices) *ReportsModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "rechercher..."
	searchInput.CharLimit = 80
	searchInput.Width = 40

	folderInput := textinput.New()
	folderInput.Placeholder = "nom du dossier"
	folderInput.CharLimit = 40
	folderInput.Width = 30

	return &ReportsModel{
		ctx:          ctx,
		services:     services,
		searchInput:  searchInput,
		folderInput:  folderInput,
		folderFilter: -1,
	}
}

func (m *ReportsModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.folders = msg.data.Folders
		m.reports = msg.data.Reports
		if m.folderFilter >= len(m.folders) {
			m.folderFilter = -1
		}
		m.clampIndex()
		return m, nil

	case searchTickMsg:
		// Only run the query if the input has settled on this value.
		if msg.query == m.searchInput.Value() && msg.query != m.query {
			return m, m.cmdSearch(msg.query)
		}
		return m, nil

	case searchResultsMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.query = msg.query
		m.reports = msg.reports
		m.clampIndex()
		return m, nil

	case sharedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		switch msg.channel {
		case "clipboard":
			m.status = "Rapport copié dans le presse-papiers"
		case "text-file":
			m.status = "Rapport exporté en texte"
		default:
			m.status = "Rapport partagé !"
		}
		m.errMsg = ""
		return m, cmdClearStatus()

	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Exporté : " + msg.path
		m.errMsg = ""
		return m, cmdClearStatus()

	case reportDeletedMsg, reportMovedMsg, folderDeletedMsg:
		if err := messageError(msg); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdLoad()

	case folderSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Dossier « %s » créé", msg.folder.Name)
		m.errMsg = ""
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

	if m.confirming != confirmNone {
		return m.updateConfirm(keyMsg)
	}
	if m.searching {
		return m.updateSearch(keyMsg)
	}
	if m.creatingFolder {
		return m.updateFolderInput(keyMsg)
	}
	if m.moveMode {
		return m.updateMove(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m *ReportsModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y", "o":
		target := m.confirming
		id := m.pendingDelete
		m.confirming = confirmNone
		m.pendingDelete = ""
		if target == confirmFolder {
			return m, m.cmdDeleteFolder(id)
		}
		return m, m.cmdDeleteReport(id)
	case "n", "esc":
		m.confirming = confirmNone
		m.pendingDelete = ""
	}
	return m, nil
}

func (m *ReportsModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, m.cmdSearch(m.searchInput.Value())
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(keyMsg)

	query := m.searchInput.Value()
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{query: query}
	})
	return m, tea.Batch(cmd, debounce)
}

func (m *ReportsModel) updateFolderInput(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.creatingFolder = false
		m.folderInput.Blur()
		m.folderInput.SetValue("")
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.folderInput.Value())
		m.creatingFolder = false
		m.folderInput.Blur()
		m.folderInput.SetValue("")
		if name == "" {
			return m, nil
		}
		return m, m.cmdCreateFolder(name)
	}

	var cmd tea.Cmd
	m.folderInput, cmd = m.folderInput.Update(keyMsg)
	return m, cmd
}

func (m *ReportsModel) updateMove(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// moveIdx 0 means "unfiled"; folders follow shifted by one.
	switch keyMsg.String() {
	case "esc":
		m.moveMode = false
		return m, nil
	case "up", "k":
		if m.moveIdx > 0 {
			m.moveIdx--
		}
	case "down", "j":
		if m.moveIdx < len(m.folders) {
			m.moveIdx++
		}
	case "enter":
		m.moveMode = false
		report, ok := m.selected()
		if !ok {
			return m, nil
		}
		var folderID *string
		if m.moveIdx > 0 {
			folderID = &m.folders[m.moveIdx-1].ID
		}
		return m, m.cmdMove(report.ID, folderID)
	}
	return m, nil
}

func (m *ReportsModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.visibleReports())-1 {
			m.idx++
		}
	case "enter":
		if len(m.visibleReports()) > 0 {
			m.detail = !m.detail
		}
	case "esc":
		m.detail = false
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "tab":
		m.cycleFolderFilter()
		m.clampIndex()
	case "s":
		if report, ok := m.selected(); ok {
			return m, m.cmdShare(report.ID)
		}
	case "t":
		if report, ok := m.selected(); ok {
			return m, m.cmdExportText(report.ID)
		}
	case "p":
		if report, ok := m.selected(); ok {
			return m, m.cmdDownloadPDF(report.ID)
		}
	case "m":
		if _, ok := m.selected(); ok && !m.moveMode {
			m.moveMode = true
			m.moveIdx = 0
		}
	case "f":
		m.creatingFolder = true
		m.folderInput.Focus()
		return m, textinput.Blink
	case "x":
		if m.folderFilter >= 0 && m.folderFilter < len(m.folders) {
			m.confirming = confirmFolder
			m.pendingDelete = m.folders[m.folderFilter].ID
		}
	case "d":
		if report, ok := m.selected(); ok {
			m.confirming = confirmReport
			m.pendingDelete = report.ID
		}
	case "R":
		m.loading = true
		m.query = ""
		m.searchInput.SetValue("")
		return m, m.cmdLoad()
	case "1":
		return m, func() tea.Msg { return NavigateTo{Page: "record"} }
	case "2":
		return m, func() tea.Msg { return NavigateTo{Page: "drafts"} }
	case "4":
		return m, func() tea.Msg { return NavigateTo{Page: "settings"} }
	}
	return m, nil
}

func (m *ReportsModel) View() string {
	var b strings.Builder

	b.WriteString("Recherche : [")
	b.WriteString(m.searchInput.View())
	b.WriteString("]   Filtre : ")
	b.WriteString(m.folderFilterLabel())
	b.WriteString("\n\n")

	visible := m.visibleReports()
	switch {
	case m.loading:
		b.WriteString("Chargement...\n")
	case len(visible) == 0:
		b.WriteString("Aucun rapport validé\n")
	case m.detail:
		if report, ok := m.selected(); ok {
			b.WriteString(titleStyle.Render(report.Title))
			b.WriteString("\n")
			pdfLabel := "sans PDF"
			if report.HasPDF {
				pdfLabel = "PDF disponible"
			}
			b.WriteString(fmt.Sprintf("Validé le %s │ %s │ %s\n\n",
				formatDate(report.ValidatedAt), report.SourceDescription, pdfLabel))
			b.WriteString(report.Body)
			b.WriteString("\n")
		}
	default:
		for i, report := range visible {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			pdfMark := " "
			if report.HasPDF {
				pdfMark = "📎"
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, pdfMark, fitText(report.Title, 48)))
			b.WriteString(fmt.Sprintf("    %s │ %s\n", m.folderNameOf(report), formatDate(report.ValidatedAt)))
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
	switch {
	case m.confirming == confirmReport:
		body += "\n\n" + overlayBoxStyle.Render("Supprimer ce rapport ?\n\no/y oui    n non")
	case m.confirming == confirmFolder:
		body += "\n\n" + overlayBoxStyle.Render("Supprimer ce dossier ?\nLes rapports seront conservés.\n\no/y oui    n non")
	case m.creatingFolder:
		body += "\n\n" + overlayBoxStyle.Render("Nouveau dossier : ["+m.folderInput.View()+"]")
	case m.moveMode:
		body += "\n\n" + overlayBoxStyle.Render(m.renderMovePicker())
	}

	hotKeys := "/: rechercher │ tab: dossier │ s: partager │ t: texte │ p: PDF │ m: déplacer │ f: nouveau dossier │ d: supprimer"
	if m.detail {
		hotKeys = "esc: retour à la liste"
	}
	return renderPage("1 Nouveau rapport │ 2 Brouillons │ 3 RAPPORTS │ 4 Paramètres", body, hotKeys)
}

func (m *ReportsModel) renderMovePicker() string {
	var b strings.Builder
	b.WriteString("Déplacer vers :\n\n")
	options := append([]string{"(aucun dossier)"}, folderNames(m.folders)...)
	for i, option := range options {
		cursor := " "
		if i == m.moveIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, option))
	}
	b.WriteString("\nenter: valider    esc: annuler")
	return b.String()
}

func (m *ReportsModel) visibleReports() []models.Report {
	if m.folderFilter < 0 || m.folderFilter >= len(m.folders) {
		return m.reports
	}
	folderID := m.folders[m.folderFilter].ID

	var filtered []models.Report
	for _, report := range m.reports {
		if report.FolderID != nil && *report.FolderID == folderID {
			filtered = append(filtered, report)
		}
	}
	return filtered
}

func (m *ReportsModel) folderFilterLabel() string {
	if m.folderFilter < 0 || m.folderFilter >= len(m.folders) {
		return "tous les rapports"
	}
	return m.folders[m.folderFilter].Name
}

func (m *ReportsModel) folderNameOf(report models.Report) string {
	if report.FolderID == nil {
		return "non classé"
	}
	for _, folder := range m.folders {
		if folder.ID == *report.FolderID {
			return folder.Name
		}
	}
	return "non classé"
}

func (m *ReportsModel) cycleFolderFilter() {
	m.folderFilter++
	if m.folderFilter >= len(m.folders) {
		m.folderFilter = -1
	}
}

func (m *ReportsModel) selected() (models.Report, bool) {
	visible := m.visibleReports()
	if m.idx < 0 || m.idx >= len(visible) {
		return models.Report{}, false
	}
	return visible[m.idx], true
}

func (m *ReportsModel) clampIndex() {
	visible := m.visibleReports()
	if m.idx >= len(visible) {
		m.idx = len(visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *ReportsModel) cmdLoad() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		data, err := services.Lifecycle.Data(ctx)
		return dataLoadedMsg{data: data, err: err}
	}
}

func (m *ReportsModel) cmdSearch(query string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		reports, err := services.Lifecycle.SearchReports(ctx, query)
		return searchResultsMsg{query: query, reports: reports, err: err}
	}
}

func (m *ReportsModel) cmdShare(reportID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		channel, err := services.Lifecycle.ShareReport(ctx, reportID)
		return sharedMsg{channel: channel, err: err}
	}
}

func (m *ReportsModel) cmdExportText(reportID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		path, err := services.Lifecycle.ExportReportAsText(ctx, reportID)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m *ReportsModel) cmdDownloadPDF(reportID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		path, err := services.Lifecycle.DownloadPDF(ctx, reportID)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m *ReportsModel) cmdMove(reportID string, folderID *string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return reportMovedMsg{err: services.Lifecycle.MoveReportToFolder(ctx, reportID, folderID)}
	}
}

func (m *ReportsModel) cmdCreateFolder(name string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		folder, err := services.Lifecycle.CreateFolder(ctx, name, "")
		return folderSavedMsg{folder: folder, err: err}
	}
}

func (m *ReportsModel) cmdDeleteFolder(folderID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return folderDeletedMsg{err: services.Lifecycle.DeleteFolder(ctx, folderID)}
	}
}

func (m *ReportsModel) cmdDeleteReport(reportID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return reportDeletedMsg{err: services.Lifecycle.DeleteReport(ctx, reportID)}
	}
}

func folderNames(folders []models.Folder) []string {
	names := make([]string, len(folders))
	for i, folder := range folders {
		names[i] = folder.Name
	}
	return names
}

func messageError(msg tea.Msg) error {
	switch m := msg.(type) {
	case reportDeletedMsg:
		return m.err
	case reportMovedMsg:
		return m.err
	case folderDeletedMsg:
		return m.err
	}
	return nil
}
