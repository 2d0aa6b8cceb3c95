package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreaprogra/rapport-vocal/internal/audio"
	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/service"
	"github.com/andreaprogra/rapport-vocal/models"
)

// RecordModel is the "Nouveau rapport" page: capture a voice memo or pick an
// audio file, then submit it for transcription. Submission stays on screen
// only long enough to create the generating draft; the webhook call continues
// in the background while the user is free to navigate away.
type RecordModel struct {
	ctx       context.Context
	services  *service.ClientServices
	recorder  audio.Recorder
	ingestCfg config.Ingestion

	pathInput textinput.Model
	picking   bool

	recording  bool
	submitting bool
	status     string
	errMsg     string
}

func NewRecordModel(ctx context.Context, services *service.ClientServices, recorder audio.Recorder, ingestCfg config.Ingestion) *RecordModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "/chemin/vers/audio.mp3"
	pathInput.CharLimit = 256
	pathInput.Width = 50

	return &RecordModel{
		ctx:       ctx,
		services:  services,
		recorder:  recorder,
		ingestCfg: ingestCfg,
		pathInput: pathInput,
	}
}

func (m *RecordModel) Init() tea.Cmd {
	return nil
}

func (m *RecordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordingStartedMsg:
		if msg.err != nil {
			m.recording = false
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Enregistrement en cours..."
		return m, nil

	case recordingStoppedMsg:
		m.recording = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.services.Ingestion.SetRecording(msg.rec)
		m.status = fmt.Sprintf("Enregistrement prêt (%d Ko)", len(msg.rec.Data)/1024)
		m.errMsg = ""
		return m, nil

	case uploadPickedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.services.Ingestion.SetUpload(msg.up)
		m.status = fmt.Sprintf("Fichier prêt : %s (%d Ko)", msg.up.Name, msg.up.Size/1024)
		m.errMsg = ""
		return m, nil

	case ingestStartedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = ""
		m.errMsg = ""
		// Hand off to the drafts page; transcription keeps running behind it.
		return m, tea.Batch(
			cmdCompleteIngestion(m.ctx, m.services, msg.draftID, msg.audio),
			func() tea.Msg { return NavigateTo{Page: "drafts"} },
		)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.picking {
		switch keyMsg.String() {
		case "esc":
			m.picking = false
			m.pathInput.Blur()
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.pathInput.Value())
			m.picking = false
			m.pathInput.Blur()
			if path == "" {
				return m, nil
			}
			return m, m.cmdPickFile(path)
		}

		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(keyMsg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "r":
		if m.recorder == nil {
			m.errMsg = "Aucun outil d'enregistrement disponible sur cette machine"
			return m, nil
		}
		if m.recording {
			return m, m.cmdStopRecording()
		}
		m.recording = true
		m.errMsg = ""
		return m, m.cmdStartRecording()
	case "u":
		m.picking = true
		m.pathInput.Focus()
		return m, textinput.Blink
	case "enter":
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		return m, m.cmdBeginIngestion()
	case "2":
		return m, func() tea.Msg { return NavigateTo{Page: "drafts"} }
	case "3":
		return m, func() tea.Msg { return NavigateTo{Page: "reports"} }
	case "4":
		return m, func() tea.Msg { return NavigateTo{Page: "settings"} }
	}

	return m, nil
}

func (m *RecordModel) View() string {
	var b strings.Builder

	user := getSessionUser()
	b.WriteString(fmt.Sprintf("Connecté : %s\n\n", user.DisplayName))

	if m.recording {
		b.WriteString("● ENREGISTREMENT EN COURS\n\n")
	} else if pending := m.services.Ingestion.Pending(); pending != nil {
		b.WriteString(fmt.Sprintf("Audio en attente : %s\n\n", pending.Description()))
	} else {
		b.WriteString("Aucun audio en attente\n\n")
	}

	if m.picking {
		b.WriteString("Fichier audio : [")
		b.WriteString(m.pathInput.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Envoi en cours...]\n")
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

	hotKeys := "r: enregistrer/arrêter │ u: importer un fichier │ enter: générer le rapport"
	if m.picking {
		hotKeys = "enter: valider │ esc: annuler"
	}
	return renderPage("1 NOUVEAU RAPPORT │ 2 Brouillons │ 3 Rapports │ 4 Paramètres",
		strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *RecordModel) cmdStartRecording() tea.Cmd {
	ctx, recorder := m.ctx, m.recorder
	return func() tea.Msg {
		return recordingStartedMsg{err: recorder.Start(ctx)}
	}
}

func (m *RecordModel) cmdStopRecording() tea.Cmd {
	recorder := m.recorder
	return func() tea.Msg {
		rec, err := recorder.Stop()
		return recordingStoppedMsg{rec: rec, err: err}
	}
}

func (m *RecordModel) cmdPickFile(path string) tea.Cmd {
	cfg := m.ingestCfg
	return func() tea.Msg {
		up, err := audio.LoadUpload(path, cfg)
		return uploadPickedMsg{up: up, err: err}
	}
}

func (m *RecordModel) cmdBeginIngestion() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		draftID, audioPayload, err := services.Ingestion.Begin(ctx, getSessionUser().Username)
		return ingestStartedMsg{draftID: draftID, audio: audioPayload, err: err}
	}
}

func cmdCompleteIngestion(ctx context.Context, services *service.ClientServices, draftID string, audioPayload models.PendingAudio) tea.Cmd {
	return func() tea.Msg {
		err := services.Ingestion.Complete(ctx, draftID, getSessionUser().Username, audioPayload)
		return ingestDoneMsg{draftID: draftID, err: err}
	}
}
