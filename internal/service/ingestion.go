package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andreaprogra/rapport-vocal/internal/adapter"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/models"
)

type ingestionService struct {
	transcriber adapter.TranscriptionClient
	lifecycle   LifecycleService

	mu      sync.Mutex
	pending *models.PendingAudio

	logger *logger.Logger
}

func NewIngestionService(transcriber adapter.TranscriptionClient, lifecycle LifecycleService, logger *logger.Logger) IngestionService {
	return &ingestionService{
		transcriber: transcriber,
		lifecycle:   lifecycle,
		logger:      logger,
	}
}

// SetRecording implements [IngestionService].
func (s *ingestionService) SetRecording(rec models.Recording) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &models.PendingAudio{Recording: &rec}
}

// SetUpload implements [IngestionService].
func (s *ingestionService) SetUpload(up models.Upload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &models.PendingAudio{Upload: &up}
}

// Pending implements [IngestionService].
func (s *ingestionService) Pending() *models.PendingAudio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Clear implements [IngestionService].
func (s *ingestionService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// Begin implements [IngestionService]. The generating draft is persisted
// before any network call so the user sees a placeholder immediately, even
// if the webhook takes minutes.
func (s *ingestionService) Begin(ctx context.Context, username string) (string, models.PendingAudio, error) {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	if pending == nil || len(pending.Bytes()) == 0 {
		return "", models.PendingAudio{}, ErrNoPendingAudio
	}

	draft := models.Draft{
		ID:                uuid.NewString(),
		Title:             generatingTitle,
		Status:            models.DraftGenerating,
		SourceKind:        pending.Kind(),
		SourceDescription: pending.Description(),
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.lifecycle.AddDraft(ctx, draft); err != nil {
		return "", models.PendingAudio{}, fmt.Errorf("create generating draft: %w", err)
	}

	s.logger.Debug().
		Str("func", "ingestionService.Begin").
		Str("draft_id", draft.ID).
		Str("source", string(draft.SourceKind)).
		Int("audio_bytes", len(pending.Bytes())).
		Msg("ingestion started")

	return draft.ID, *pending, nil
}

// Complete implements [IngestionService]. Both outcomes are persisted before
// returning: the caller only decides how to present the result.
func (s *ingestionService) Complete(ctx context.Context, draftID, username string, audio models.PendingAudio) error {
	log := logger.FromContext(ctx)

	request := models.TranscriptionRequest{
		AudioData: base64.StdEncoding.EncodeToString(audio.Bytes()),
		UserID:    username,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	response, err := s.transcriber.Transcribe(ctx, request)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "ingestionService.Complete").
			Str("draft_id", draftID).
			Msg("transcription failed")

		if failErr := s.lifecycle.FailDraft(ctx, draftID); failErr != nil {
			return fmt.Errorf("mark draft failed after %v: %w", err, failErr)
		}
		return fmt.Errorf("transcription: %w", err)
	}

	// The title is always derived from the transcribed content; a title field
	// in the response only ever serves as the content fallback, handled by the
	// adapter.
	title := ExtractTitle(response.Content)

	if err = s.lifecycle.ResolveDraft(ctx, draftID, title, response.Content); err != nil {
		return fmt.Errorf("resolve draft: %w", err)
	}

	log.Debug().
		Str("func", "ingestionService.Complete").
		Str("draft_id", draftID).
		Msg("draft ready")
	return nil
}

// Submit implements [IngestionService].
func (s *ingestionService) Submit(ctx context.Context, username string) (string, error) {
	draftID, audio, err := s.Begin(ctx, username)
	if err != nil {
		return "", err
	}
	return draftID, s.Complete(ctx, draftID, username, audio)
}
