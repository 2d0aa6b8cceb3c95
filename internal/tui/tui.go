package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreaprogra/rapport-vocal/internal/audio"
	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/internal/service"
	"github.com/andreaprogra/rapport-vocal/models"
)

var ErrUserQuit = errors.New("user quit")

// Notifier forwards background service messages (quota trims) into the
// running Bubble Tea program as toast messages. It is safe to call before a
// program is attached; such messages are dropped.
type Notifier struct {
	mu      sync.Mutex
	program *tea.Program
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) attach(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

// Notify implements the notification hook of the service layer.
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.program != nil {
		n.program.Send(toastMsg{text: message})
	}
}

type TUI struct {
	services  *service.ClientServices
	recorder  audio.Recorder
	ingestCfg config.Ingestion
	buildInfo models.AppBuildInfo
	notifier  *Notifier
}

func New(services *service.ClientServices, recorder audio.Recorder, ingestCfg config.Ingestion, buildInfo models.AppBuildInfo, notifier *Notifier, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		recorder:  recorder,
		ingestCfg: ingestCfg,
		buildInfo: buildInfo,
		notifier:  notifier,
	}, nil
}

// LoginFlow runs the login screen until the user authenticates or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.AuthResult, error) {
	pages := map[string]tea.Model{
		"login": NewLoginModel(ctx, t.services.Auth),
	}

	root := NewRootModel(pages, "login", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.AuthResult{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.AuthResult{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return models.AuthResult{}, ErrUserQuit
	}

	return result.result, nil
}

// MainLoop runs the main application until the user logs out or quits.
// Returns true when the user chose logout (and the login flow should run
// again).
func (t *TUI) MainLoop(ctx context.Context, auth models.AuthResult) (bool, error) {
	setSessionUser(auth.User)

	pages := map[string]tea.Model{
		"record":   NewRecordModel(ctx, t.services, t.recorder, t.ingestCfg),
		"drafts":   NewDraftsModel(ctx, t.services),
		"reports":  NewReportsModel(ctx, t.services),
		"settings": NewSettingsModel(ctx, t.services),
		"edit":     NewEditModel(ctx, t.services),
	}

	root := NewRootModel(pages, "record", t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen())
	if t.notifier != nil {
		t.notifier.attach(program)
	}

	finalModel, runErr := program.Run()
	if t.notifier != nil {
		t.notifier.attach(nil)
	}
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
