// Package service implements the application logic of the client: login with
// device binding, audio ingestion through the transcription webhook, and the
// draft/report lifecycle over the locally persisted aggregate.
package service

import (
	"context"

	"github.com/andreaprogra/rapport-vocal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService gates access to the app against the user directory.
type AuthService interface {
	// Login runs the credential and device checks in order: roster lookup,
	// password comparison, active-status check, then the device policy.
	// On success a signed session token is issued and the directory cache
	// is stamped with the login time.
	Login(ctx context.Context, username, password string, signals models.DeviceSignals) (models.AuthResult, error)

	// VerifySession checks a previously issued token and returns the
	// username it was issued to. Returns ErrTokenIsExpired or
	// ErrInvalidSessionToken.
	VerifySession(token string) (string, error)

	// DirectoryStats exposes roster diagnostics for the settings screen.
	DirectoryStats(ctx context.Context) models.UserStats

	// RefreshDirectory forces a roster refetch and reports the user count.
	RefreshDirectory(ctx context.Context) int
}

// IngestionService carries one audio payload from capture to a resolved
// draft. Only one payload is pending at a time, matching the single record
// button of the UI.
type IngestionService interface {
	// SetRecording stages a microphone take as the pending payload,
	// replacing any previous one.
	SetRecording(rec models.Recording)

	// SetUpload stages an uploaded file as the pending payload, replacing
	// any previous one.
	SetUpload(up models.Upload)

	// Pending returns the staged payload, or nil.
	Pending() *models.PendingAudio

	// Clear drops the staged payload.
	Clear()

	// Begin consumes the pending payload and creates a generating draft
	// for it. Returns the draft ID and the payload for the Complete call.
	// Returns ErrNoPendingAudio when nothing is staged.
	Begin(ctx context.Context, username string) (string, models.PendingAudio, error)

	// Complete sends the payload to the transcription webhook and resolves
	// the draft: ready with the transcribed body on success, error state on
	// failure. The returned error reflects the webhook outcome; the draft
	// state change is already persisted either way.
	Complete(ctx context.Context, draftID, username string, audio models.PendingAudio) error

	// Submit is Begin followed by Complete.
	Submit(ctx context.Context, username string) (string, error)
}

// ValidationOutcome is the result of promoting a draft to a report.
type ValidationOutcome struct {
	Report models.Report

	// PDFErr is set when the report was created but its PDF could not be
	// rendered. Validation itself still succeeded.
	PDFErr error

	// Trimmed reports that old entries were discarded to fit the storage
	// quota while saving.
	Trimmed bool
}

// LifecycleService owns every mutation of the draft/report/folder aggregate.
type LifecycleService interface {
	// Data returns the current aggregate for display.
	Data(ctx context.Context) (models.AppData, error)

	// AddDraft inserts a new draft at the head of the list.
	AddDraft(ctx context.Context, draft models.Draft) error

	// ResolveDraft moves a generating draft to ready with the transcribed
	// content. No-op with an error if the draft vanished meanwhile.
	ResolveDraft(ctx context.Context, draftID, title, body string) error

	// FailDraft moves a generating draft to the error state.
	FailDraft(ctx context.Context, draftID string) error

	// EditDraft updates title and body of a draft in any state and marks it
	// modified.
	EditDraft(ctx context.Context, draftID, title, body string) error

	// DeleteDraft removes a draft in any state.
	DeleteDraft(ctx context.Context, draftID string) error

	// ValidateDraft promotes a ready draft to an immutable report, renders
	// its PDF and removes the draft. A non-nil folderID files the report on
	// creation. A PDF failure is reported in the outcome but does not fail
	// the promotion.
	ValidateDraft(ctx context.Context, draftID string, folderID *string) (ValidationOutcome, error)

	// DeleteReport removes a report and its embedded PDF.
	DeleteReport(ctx context.Context, reportID string) error

	// CreateFolder adds a folder. Names are unique case-insensitively.
	CreateFolder(ctx context.Context, name, colorTag string) (models.Folder, error)

	// DeleteFolder removes a folder and unfiles its reports; the reports
	// themselves are kept.
	DeleteFolder(ctx context.Context, folderID string) error

	// MoveReportToFolder files a report under folderID, or unfiles it when
	// folderID is nil.
	MoveReportToFolder(ctx context.Context, reportID string, folderID *string) error

	// SearchReports returns reports whose title or body contains query,
	// case-insensitively. An empty query returns all reports.
	SearchReports(ctx context.Context, query string) ([]models.Report, error)

	// ExportReportAsText writes the report as a text file in the export
	// directory and returns its path.
	ExportReportAsText(ctx context.Context, reportID string) (string, error)

	// DownloadPDF writes the report's stored PDF to the export directory
	// and returns its path. Returns ErrNoPDF when none was rendered.
	DownloadPDF(ctx context.Context, reportID string) (string, error)

	// ShareReport pushes the report through the share chain and returns
	// the name of the channel that accepted it.
	ShareReport(ctx context.Context, reportID string) (string, error)
}
