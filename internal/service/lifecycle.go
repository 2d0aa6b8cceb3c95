package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/internal/pdf"
	"github.com/andreaprogra/rapport-vocal/internal/share"
	"github.com/andreaprogra/rapport-vocal/internal/store"
	"github.com/andreaprogra/rapport-vocal/models"
)

type lifecycleService struct {
	appData  store.AppDataRepository
	renderer pdf.Renderer
	sharers  []share.Sharer

	exportDir string

	// notify surfaces background events (quota trims) to the UI. May be nil.
	notify func(message string)

	logger *logger.Logger
}

func NewLifecycleService(appData store.AppDataRepository, renderer pdf.Renderer, sharers []share.Sharer, exportDir string, notify func(string), logger *logger.Logger) LifecycleService {
	return &lifecycleService{
		appData:   appData,
		renderer:  renderer,
		sharers:   sharers,
		exportDir: exportDir,
		notify:    notify,
		logger:    logger,
	}
}

func (s *lifecycleService) notifyUser(message string) {
	if s.notify != nil {
		s.notify(message)
	}
}

// mutate wraps the repository call and turns quota trims into a user
// notification, so every mutating operation below gets the same behavior.
func (s *lifecycleService) mutate(ctx context.Context, fn func(*models.AppData) error) error {
	trimmed, err := s.appData.Mutate(ctx, fn)
	if err != nil {
		return err
	}
	if trimmed {
		s.notifyUser("Espace de stockage plein : les anciens rapports ont été supprimés")
	}
	return nil
}

// Data implements [LifecycleService].
func (s *lifecycleService) Data(ctx context.Context) (models.AppData, error) {
	return s.appData.Load(ctx)
}

// AddDraft implements [LifecycleService]. New drafts go to the head so lists
// stay most-recent-first.
func (s *lifecycleService) AddDraft(ctx context.Context, draft models.Draft) error {
	return s.mutate(ctx, func(data *models.AppData) error {
		data.Drafts = append([]models.Draft{draft}, data.Drafts...)
		return nil
	})
}

// ResolveDraft implements [LifecycleService].
func (s *lifecycleService) ResolveDraft(ctx context.Context, draftID, title, body string) error {
	return s.mutate(ctx, func(data *models.AppData) error {
		draft := data.FindDraft(draftID)
		if draft == nil {
			return ErrDraftNotFound
		}
		draft.Title = title
		draft.Body = body
		draft.Status = models.DraftReady
		return nil
	})
}

// FailDraft implements [LifecycleService].
func (s *lifecycleService) FailDraft(ctx context.Context, draftID string) error {
	return s.mutate(ctx, func(data *models.AppData) error {
		draft := data.FindDraft(draftID)
		if draft == nil {
			return ErrDraftNotFound
		}
		draft.Title = errorDraftTitle
		draft.Body = ""
		draft.Status = models.DraftError
		return nil
	})
}

// EditDraft implements [LifecycleService]. Drafts are editable in every
// status; saving an edit over a generating or errored draft is how the user
// rescues a failed transcription.
func (s *lifecycleService) EditDraft(ctx context.Context, draftID, title, body string) error {
	if strings.TrimSpace(title) == "" {
		return ErrValidationEmptyTitle
	}
	if strings.TrimSpace(body) == "" {
		return ErrValidationEmptyContent
	}

	return s.mutate(ctx, func(data *models.AppData) error {
		draft := data.FindDraft(draftID)
		if draft == nil {
			return ErrDraftNotFound
		}
		draft.Title = title
		draft.Body = body
		draft.IsModified = true
		return nil
	})
}

// DeleteDraft implements [LifecycleService].
func (s *lifecycleService) DeleteDraft(ctx context.Context, draftID string) error {
	return s.mutate(ctx, func(data *models.AppData) error {
		for i := range data.Drafts {
			if data.Drafts[i].ID == draftID {
				data.Drafts = append(data.Drafts[:i], data.Drafts[i+1:]...)
				return nil
			}
		}
		return ErrDraftNotFound
	})
}

// ValidateDraft implements [LifecycleService]. The report is created even
// when the PDF cannot be rendered; the outcome carries the render error so
// the UI can tell the user the document is text-only. A non-nil folderID
// files the new report directly.
func (s *lifecycleService) ValidateDraft(ctx context.Context, draftID string, folderID *string) (ValidationOutcome, error) {
	log := logger.FromContext(ctx)

	var outcome ValidationOutcome

	trimmed, err := s.appData.Mutate(ctx, func(data *models.AppData) error {
		draft := data.FindDraft(draftID)
		if draft == nil {
			return ErrDraftNotFound
		}
		if draft.Status != models.DraftReady {
			return ErrDraftNotReady
		}
		if folderID != nil && data.FindFolder(*folderID) == nil {
			return ErrFolderNotFound
		}

		report := models.Report{
			ID:                uuid.NewString(),
			Title:             draft.Title,
			Body:              draft.Body,
			IsModified:        draft.IsModified,
			SourceKind:        draft.SourceKind,
			SourceDescription: draft.SourceDescription,
			FolderID:          folderID,
			CreatedAt:         draft.CreatedAt,
			ValidatedAt:       time.Now().UTC(),
		}

		if rendered, renderErr := s.renderer.Render(report); renderErr != nil {
			outcome.PDFErr = renderErr
			log.Warn().Err(renderErr).
				Str("func", "lifecycleService.ValidateDraft").
				Str("report_id", report.ID).
				Msg("pdf rendering failed, keeping report without document")
		} else {
			report.HasPDF = true
			report.PDF = rendered
		}

		data.Reports = append([]models.Report{report}, data.Reports...)
		for i := range data.Drafts {
			if data.Drafts[i].ID == draftID {
				data.Drafts = append(data.Drafts[:i], data.Drafts[i+1:]...)
				break
			}
		}

		outcome.Report = report
		return nil
	})
	if err != nil {
		return ValidationOutcome{}, err
	}

	outcome.Trimmed = trimmed
	if trimmed {
		s.notifyUser("Espace de stockage plein : les anciens rapports ont été supprimés")
	}
	return outcome, nil
}

// DeleteReport implements [LifecycleService].
func (s *lifecycleService) DeleteReport(ctx context.Context, reportID string) error {
	return s.mutate(ctx, func(data *models.AppData) error {
		for i := range data.Reports {
			if data.Reports[i].ID == reportID {
				data.Reports = append(data.Reports[:i], data.Reports[i+1:]...)
				return nil
			}
		}
		return ErrReportNotFound
	})
}

// CreateFolder implements [LifecycleService].
func (s *lifecycleService) CreateFolder(ctx context.Context, name, colorTag string) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, ErrValidationEmptyFolderName
	}

	folder := models.Folder{
		ID:        uuid.NewString(),
		Name:      name,
		ColorTag:  colorTag,
		CreatedAt: time.Now().UTC(),
	}

	err := s.mutate(ctx, func(data *models.AppData) error {
		for _, existing := range data.Folders {
			if strings.EqualFold(existing.Name, name) {
				return ErrFolderExists
			}
		}
		data.Folders = append(data.Folders, folder)
		return nil
	})
	if err != nil {
		return models.Folder{}, err
	}
	return folder, nil
}

// DeleteFolder implements [LifecycleService]. Reports filed under the folder
// survive and become unfiled.
func (s *lifecycleService) DeleteFolder(ctx context.Context, folderID string) error {
	return s.mutate(ctx, func(data *models.AppData) error {
		found := false
		for i := range data.Folders {
			if data.Folders[i].ID == folderID {
				data.Folders = append(data.Folders[:i], data.Folders[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return ErrFolderNotFound
		}

		for i := range data.Reports {
			if data.Reports[i].FolderID != nil && *data.Reports[i].FolderID == folderID {
				data.Reports[i].FolderID = nil
			}
		}
		return nil
	})
}

// MoveReportToFolder implements [LifecycleService].
func (s *lifecycleService) MoveReportToFolder(ctx context.Context, reportID string, folderID *string) error {
	return s.mutate(ctx, func(data *models.AppData) error {
		report := data.FindReport(reportID)
		if report == nil {
			return ErrReportNotFound
		}
		if folderID != nil && data.FindFolder(*folderID) == nil {
			return ErrFolderNotFound
		}
		report.FolderID = folderID
		return nil
	})
}

// SearchReports implements [LifecycleService].
func (s *lifecycleService) SearchReports(ctx context.Context, query string) ([]models.Report, error) {
	data, err := s.appData.Load(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return data.Reports, nil
	}

	var matches []models.Report
	for _, report := range data.Reports {
		if strings.Contains(strings.ToLower(report.Title), query) ||
			strings.Contains(strings.ToLower(report.Body), query) {
			matches = append(matches, report)
		}
	}
	return matches, nil
}

// ExportReportAsText implements [LifecycleService].
func (s *lifecycleService) ExportReportAsText(ctx context.Context, reportID string) (string, error) {
	report, err := s.findReport(ctx, reportID)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(s.exportDir, exportFileName(report.Title, "txt"))
	body := fmt.Sprintf("%s\n\nGénéré le %s\n\n%s", report.Title,
		report.ValidatedAt.Format("02/01/2006 à 15:04"), report.Body)

	if err = os.WriteFile(path, []byte(body), 0o600); err != nil {
		return "", fmt.Errorf("write text export: %w", err)
	}
	return path, nil
}

// DownloadPDF implements [LifecycleService].
func (s *lifecycleService) DownloadPDF(ctx context.Context, reportID string) (string, error) {
	report, err := s.findReport(ctx, reportID)
	if err != nil {
		return "", err
	}
	if !report.HasPDF || len(report.PDF) == 0 {
		return "", ErrNoPDF
	}

	if err = os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(s.exportDir, exportFileName(report.Title, "pdf"))
	if err = os.WriteFile(path, report.PDF, 0o600); err != nil {
		return "", fmt.Errorf("write pdf export: %w", err)
	}
	return path, nil
}

// ShareReport implements [LifecycleService].
func (s *lifecycleService) ShareReport(ctx context.Context, reportID string) (string, error) {
	report, err := s.findReport(ctx, reportID)
	if err != nil {
		return "", err
	}

	channel, err := share.Chain(ctx, share.Content{
		Title: report.Title,
		Text:  report.Body,
		PDF:   report.PDF,
	}, s.sharers...)
	if err != nil {
		return "", fmt.Errorf("share report: %w", err)
	}

	s.logger.Debug().
		Str("func", "lifecycleService.ShareReport").
		Str("report_id", reportID).
		Str("channel", channel).
		Msg("report shared")
	return channel, nil
}

func (s *lifecycleService) findReport(ctx context.Context, reportID string) (models.Report, error) {
	data, err := s.appData.Load(ctx)
	if err != nil {
		return models.Report{}, err
	}
	report := data.FindReport(reportID)
	if report == nil {
		return models.Report{}, ErrReportNotFound
	}
	return *report, nil
}

func exportFileName(title, ext string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, title)
	if cleaned == "" {
		cleaned = "rapport"
	}
	if len(cleaned) > 60 {
		cleaned = cleaned[:60]
	}
	return fmt.Sprintf("%s_%s.%s", cleaned, time.Now().Format("2006-01-02_15-04-05"), ext)
}
