package tui

import (
	"github.com/andreaprogra/rapport-vocal/internal/service"
	"github.com/andreaprogra/rapport-vocal/models"
)

// NavigateTo switches the router to another page. Payload, when set, is
// re-dispatched to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the login flow.
type LoginResult struct {
	Err    error
	Result models.AuthResult
}

type dataLoadedMsg struct {
	data models.AppData
	err  error
}

type recordingStartedMsg struct {
	err error
}

type recordingStoppedMsg struct {
	rec models.Recording
	err error
}

type uploadPickedMsg struct {
	up  models.Upload
	err error
}

type ingestStartedMsg struct {
	draftID string
	audio   models.PendingAudio
	err     error
}

type ingestDoneMsg struct {
	draftID string
	err     error
}

type draftValidatedMsg struct {
	outcome service.ValidationOutcome
	err     error
}

type draftDeletedMsg struct {
	err error
}

type draftSavedMsg struct {
	err error
}

type reportDeletedMsg struct {
	err error
}

type reportMovedMsg struct {
	err error
}

type folderSavedMsg struct {
	folder models.Folder
	err    error
}

type folderDeletedMsg struct {
	err error
}

type sharedMsg struct {
	channel string
	err     error
}

type exportDoneMsg struct {
	path string
	err  error
}

type searchResultsMsg struct {
	query   string
	reports []models.Report
	err     error
}

type searchTickMsg struct {
	query string
}

type rosterRefreshedMsg struct {
	count int
}

type toastMsg struct {
	text string
}

type clearStatusMsg struct{}
