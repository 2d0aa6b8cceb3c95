package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreaprogra/rapport-vocal/models"
)

// RootModel is the TUI router:
// 1) keeps the active page
// 2) handles the global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	result     models.AuthResult
	loggedIn   bool
	logout     bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isLoginPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	// Finalize the login flow on success.
	if result, ok := msg.(LoginResult); ok && result.Err == nil {
		setSessionUser(result.Result.User)
		r.result = result.Result
		r.loggedIn = true
		return r, tea.Quit
	}

	// A page requested logout.
	if _, ok := msg.(logoutMsg); ok {
		clearSessionUser()
		r.logout = true
		return r, tea.Quit
	}

	// Background transcription results always land on the drafts page, even
	// when the user navigated elsewhere meanwhile.
	if done, ok := msg.(ingestDoneMsg); ok {
		if drafts, exists := r.pages["drafts"]; exists && drafts != r.current {
			updated, cmd := drafts.Update(done)
			r.pages["drafts"] = updated
			return r, cmd
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("RAPPORT VOCAL", "", "")
	}
	return r.current.View()
}

func (r RootModel) isLoginPage() bool {
	_, ok := r.current.(*LoginModel)
	return ok
}

type logoutMsg struct{}
