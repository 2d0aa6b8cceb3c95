package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/internal/mock"
	"github.com/andreaprogra/rapport-vocal/internal/share"
	"github.com/andreaprogra/rapport-vocal/models"
)

// memAppData is an in-memory AppDataRepository. A handwritten fake is simpler
// than gomock here because most lifecycle tests assert on the resulting state
// rather than on call sequences.
type memAppData struct {
	data     models.AppData
	trimNext bool
	loadErr  error
}

func (m *memAppData) Load(_ context.Context) (models.AppData, error) {
	if m.loadErr != nil {
		return models.AppData{}, m.loadErr
	}
	return m.data, nil
}

func (m *memAppData) Save(_ context.Context, data models.AppData) error {
	m.data = data
	return nil
}

func (m *memAppData) Mutate(_ context.Context, fn func(*models.AppData) error) (bool, error) {
	if m.loadErr != nil {
		return false, m.loadErr
	}
	if err := fn(&m.data); err != nil {
		return false, err
	}
	trimmed := m.trimNext
	m.trimNext = false
	return trimmed, nil
}

type lifecycleFixture struct {
	svc      LifecycleService
	repo     *memAppData
	renderer *mock.MockRenderer
	notices  *[]string
}

func newTestLifecycleSvc(t *testing.T, ctrl *gomock.Controller, sharers ...share.Sharer) lifecycleFixture {
	t.Helper()

	repo := &memAppData{}
	renderer := mock.NewMockRenderer(ctrl)
	notices := &[]string{}

	svc := NewLifecycleService(repo, renderer, sharers, t.TempDir(), func(msg string) {
		*notices = append(*notices, msg)
	}, logger.Nop())

	return lifecycleFixture{svc: svc, repo: repo, renderer: renderer, notices: notices}
}

func readyDraft(id, title, body string) models.Draft {
	return models.Draft{
		ID:                id,
		Title:             title,
		Body:              body,
		Status:            models.DraftReady,
		SourceKind:        models.SourceMicrophone,
		SourceDescription: "Enregistrement vocal",
		CreatedAt:         time.Now().UTC().Add(-time.Hour),
	}
}

// ── drafts ───────────────────────────────────────────────────────────────────

func TestLifecycleService_AddDraft_PrependsNewest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, f.svc.AddDraft(ctx, readyDraft("d1", "Premier", "corps")))
	require.NoError(t, f.svc.AddDraft(ctx, readyDraft("d2", "Deuxième", "corps")))

	require.Len(t, f.repo.data.Drafts, 2)
	assert.Equal(t, "d2", f.repo.data.Drafts[0].ID)
	assert.Equal(t, "d1", f.repo.data.Drafts[1].ID)
}

func TestLifecycleService_ResolveDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Drafts = []models.Draft{{ID: "d1", Title: generatingTitle, Status: models.DraftGenerating}}

	require.NoError(t, f.svc.ResolveDraft(ctx, "d1", "Visite client", "Le corps du rapport"))

	draft := f.repo.data.Drafts[0]
	assert.Equal(t, models.DraftReady, draft.Status)
	assert.Equal(t, "Visite client", draft.Title)
	assert.Equal(t, "Le corps du rapport", draft.Body)
}

func TestLifecycleService_FailDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Drafts = []models.Draft{{ID: "d1", Title: generatingTitle, Status: models.DraftGenerating}}

	require.NoError(t, f.svc.FailDraft(ctx, "d1"))

	draft := f.repo.data.Drafts[0]
	assert.Equal(t, models.DraftError, draft.Status)
	assert.Equal(t, errorDraftTitle, draft.Title)
	assert.Empty(t, draft.Body)
}

func TestLifecycleService_EditDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Drafts = []models.Draft{readyDraft("d1", "Avant", "ancien corps")}

	require.NoError(t, f.svc.EditDraft(ctx, "d1", "Après", "nouveau corps"))

	draft := f.repo.data.Drafts[0]
	assert.Equal(t, "Après", draft.Title)
	assert.Equal(t, "nouveau corps", draft.Body)
	assert.True(t, draft.IsModified)
}

func TestLifecycleService_EditDraft_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	err := f.svc.EditDraft(ctx, "d1", "  ", "corps")
	assert.ErrorIs(t, err, ErrValidationEmptyTitle)

	err = f.svc.EditDraft(ctx, "d1", "Titre", "")
	assert.ErrorIs(t, err, ErrValidationEmptyContent)
}

func TestLifecycleService_EditDraft_AnyStatusEditable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Drafts = []models.Draft{
		{ID: "d1", Status: models.DraftGenerating},
		{ID: "d2", Title: errorDraftTitle, Status: models.DraftError},
	}

	// A failed transcription is rescued by typing the report by hand.
	require.NoError(t, f.svc.EditDraft(ctx, "d2", "Saisi à la main", "corps tapé"))
	require.NoError(t, f.svc.EditDraft(ctx, "d1", "Titre", "corps"))

	assert.Equal(t, "Saisi à la main", f.repo.data.Drafts[1].Title)
	assert.True(t, f.repo.data.Drafts[1].IsModified)
	assert.Equal(t, "Titre", f.repo.data.Drafts[0].Title)
}

func TestLifecycleService_DeleteDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Drafts = []models.Draft{readyDraft("d1", "Un", "x"), readyDraft("d2", "Deux", "x")}

	require.NoError(t, f.svc.DeleteDraft(ctx, "d1"))
	require.Len(t, f.repo.data.Drafts, 1)
	assert.Equal(t, "d2", f.repo.data.Drafts[0].ID)

	assert.ErrorIs(t, f.svc.DeleteDraft(ctx, "absent"), ErrDraftNotFound)
}

// ── validation ───────────────────────────────────────────────────────────────

func TestLifecycleService_ValidateDraft_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Drafts = []models.Draft{readyDraft("d1", "Visite client", "corps")}
	f.renderer.EXPECT().Render(gomock.Any()).Return([]byte("%PDF-1.4"), nil)

	outcome, err := f.svc.ValidateDraft(ctx, "d1", nil)
	require.NoError(t, err)
	require.NoError(t, outcome.PDFErr)

	assert.Empty(t, f.repo.data.Drafts)
	require.Len(t, f.repo.data.Reports, 1)

	report := f.repo.data.Reports[0]
	assert.Equal(t, "Visite client", report.Title)
	assert.True(t, report.HasPDF)
	assert.Equal(t, []byte("%PDF-1.4"), report.PDF)
	assert.NotEmpty(t, report.ID)
	assert.WithinDuration(t, time.Now().UTC(), report.ValidatedAt, time.Minute)
}

func TestLifecycleService_ValidateDraft_PDFFailureKeepsReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Drafts = []models.Draft{readyDraft("d1", "Visite client", "corps")}
	f.renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("police manquante"))

	outcome, err := f.svc.ValidateDraft(ctx, "d1", nil)
	require.NoError(t, err)
	require.Error(t, outcome.PDFErr)

	require.Len(t, f.repo.data.Reports, 1)
	assert.False(t, f.repo.data.Reports[0].HasPDF)
	assert.Empty(t, f.repo.data.Reports[0].PDF)
}

func TestLifecycleService_ValidateDraft_RejectsNonReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Drafts = []models.Draft{{ID: "d1", Status: models.DraftGenerating}}

	_, err := f.svc.ValidateDraft(ctx, "d1", nil)
	assert.ErrorIs(t, err, ErrDraftNotReady)

	_, err = f.svc.ValidateDraft(ctx, "absent", nil)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestLifecycleService_ValidateDraft_FilesIntoFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Folders = []models.Folder{{ID: "f1", Name: "Clients Nord"}}
	f.repo.data.Drafts = []models.Draft{readyDraft("d1", "Visite client", "corps")}
	f.renderer.EXPECT().Render(gomock.Any()).Return([]byte("pdf"), nil)

	folderID := "f1"
	outcome, err := f.svc.ValidateDraft(ctx, "d1", &folderID)
	require.NoError(t, err)

	require.NotNil(t, outcome.Report.FolderID)
	assert.Equal(t, "f1", *outcome.Report.FolderID)
	require.Len(t, f.repo.data.Reports, 1)
	require.NotNil(t, f.repo.data.Reports[0].FolderID)
	assert.Equal(t, "f1", *f.repo.data.Reports[0].FolderID)
}

func TestLifecycleService_ValidateDraft_GhostFolderRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Drafts = []models.Draft{readyDraft("d1", "Visite client", "corps")}

	folderID := "fantôme"
	_, err := f.svc.ValidateDraft(ctx, "d1", &folderID)
	assert.ErrorIs(t, err, ErrFolderNotFound)

	// The draft survives the failed validation.
	require.Len(t, f.repo.data.Drafts, 1)
	assert.Empty(t, f.repo.data.Reports)
}

func TestLifecycleService_ValidateDraft_TrimNotifiesUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Drafts = []models.Draft{readyDraft("d1", "Visite client", "corps")}
	f.repo.trimNext = true
	f.renderer.EXPECT().Render(gomock.Any()).Return([]byte("pdf"), nil)

	outcome, err := f.svc.ValidateDraft(ctx, "d1", nil)
	require.NoError(t, err)
	assert.True(t, outcome.Trimmed)
	require.Len(t, *f.notices, 1)
	assert.Contains(t, (*f.notices)[0], "Espace de stockage plein")
}

// ── reports and folders ──────────────────────────────────────────────────────

func TestLifecycleService_DeleteReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Reports = []models.Report{{ID: "r1"}, {ID: "r2"}}

	require.NoError(t, f.svc.DeleteReport(ctx, "r1"))
	require.Len(t, f.repo.data.Reports, 1)
	assert.Equal(t, "r2", f.repo.data.Reports[0].ID)

	assert.ErrorIs(t, f.svc.DeleteReport(ctx, "absent"), ErrReportNotFound)
}

func TestLifecycleService_CreateFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	folder, err := f.svc.CreateFolder(ctx, "  Clients Nord  ", "blue")
	require.NoError(t, err)
	assert.Equal(t, "Clients Nord", folder.Name)
	assert.NotEmpty(t, folder.ID)

	_, err = f.svc.CreateFolder(ctx, "", "")
	assert.ErrorIs(t, err, ErrValidationEmptyFolderName)

	// Duplicate detection is case-insensitive.
	_, err = f.svc.CreateFolder(ctx, "clients nord", "")
	assert.ErrorIs(t, err, ErrFolderExists)
}

func TestLifecycleService_DeleteFolder_UnfilesReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	folderID := "f1"
	f.repo.data.Folders = []models.Folder{{ID: folderID, Name: "Clients Nord"}}
	f.repo.data.Reports = []models.Report{
		{ID: "r1", FolderID: &folderID},
		{ID: "r2"},
	}

	require.NoError(t, f.svc.DeleteFolder(ctx, folderID))

	assert.Empty(t, f.repo.data.Folders)
	assert.Nil(t, f.repo.data.Reports[0].FolderID)

	assert.ErrorIs(t, f.svc.DeleteFolder(ctx, "absent"), ErrFolderNotFound)
}

func TestLifecycleService_MoveReportToFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	folderID := "f1"
	f.repo.data.Folders = []models.Folder{{ID: folderID, Name: "Clients Nord"}}
	f.repo.data.Reports = []models.Report{{ID: "r1"}}

	require.NoError(t, f.svc.MoveReportToFolder(ctx, "r1", &folderID))
	require.NotNil(t, f.repo.data.Reports[0].FolderID)
	assert.Equal(t, folderID, *f.repo.data.Reports[0].FolderID)

	// Back to unfiled.
	require.NoError(t, f.svc.MoveReportToFolder(ctx, "r1", nil))
	assert.Nil(t, f.repo.data.Reports[0].FolderID)

	ghost := "absent"
	assert.ErrorIs(t, f.svc.MoveReportToFolder(ctx, "r1", &ghost), ErrFolderNotFound)
	assert.ErrorIs(t, f.svc.MoveReportToFolder(ctx, "absent", nil), ErrReportNotFound)
}

// ── search ───────────────────────────────────────────────────────────────────

func TestLifecycleService_SearchReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Reports = []models.Report{
		{ID: "r1", Title: "Visite Boulangerie Martin", Body: "commande de farine"},
		{ID: "r2", Title: "Tournée du lundi", Body: "rien à signaler"},
	}

	matches, err := f.svc.SearchReports(ctx, "BOULANGERIE")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "r1", matches[0].ID)

	matches, err = f.svc.SearchReports(ctx, "farine")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	matches, err = f.svc.SearchReports(ctx, "")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = f.svc.SearchReports(ctx, "introuvable")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// ── exports ──────────────────────────────────────────────────────────────────

func TestLifecycleService_ExportReportAsText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Reports = []models.Report{{
		ID:          "r1",
		Title:       "Visite client",
		Body:        "Le corps du rapport",
		ValidatedAt: time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
	}}

	path, err := f.svc.ExportReportAsText(ctx, "r1")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Visite client")
	assert.Contains(t, string(content), "Généré le 15/03/2026 à 14:30")
	assert.Contains(t, string(content), "Le corps du rapport")
	assert.True(t, strings.HasSuffix(path, ".txt"))
	assert.Contains(t, filepath.Base(path), "Visite_client")
}

func TestLifecycleService_DownloadPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestLifecycleSvc(t, ctrl)
	ctx := context.Background()

	f.repo.data.Reports = []models.Report{
		{ID: "r1", Title: "Avec PDF", HasPDF: true, PDF: []byte("%PDF-1.4")},
		{ID: "r2", Title: "Sans PDF"},
	}

	path, err := f.svc.DownloadPDF(ctx, "r1")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), content)

	_, err = f.svc.DownloadPDF(ctx, "r2")
	assert.ErrorIs(t, err, ErrNoPDF)
}

// ── share ────────────────────────────────────────────────────────────────────

func TestLifecycleService_ShareReport_FirstChannelWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sharer := mock.NewMockSharer(ctrl)
	sharer.EXPECT().Share(gomock.Any(), gomock.Any()).Return(nil)
	sharer.EXPECT().Name().Return("presse-papiers").AnyTimes()

	f := newTestLifecycleSvc(t, ctrl, sharer)
	ctx := context.Background()

	f.repo.data.Reports = []models.Report{{ID: "r1", Title: "Visite", Body: "corps"}}

	channel, err := f.svc.ShareReport(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "presse-papiers", channel)
}

func TestLifecycleService_ShareReport_FallsThroughUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mock.NewMockSharer(ctrl)
	first.EXPECT().Share(gomock.Any(), gomock.Any()).Return(share.ErrShareUnavailable)
	first.EXPECT().Name().Return("système").AnyTimes()

	second := mock.NewMockSharer(ctrl)
	second.EXPECT().Share(gomock.Any(), gomock.Any()).Return(nil)
	second.EXPECT().Name().Return("fichier-texte").AnyTimes()

	f := newTestLifecycleSvc(t, ctrl, first, second)
	ctx := context.Background()

	f.repo.data.Reports = []models.Report{{ID: "r1", Title: "Visite", Body: "corps"}}

	channel, err := f.svc.ShareReport(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "fichier-texte", channel)
}
