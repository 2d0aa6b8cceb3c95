package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/models"
)

type httpTranscriptionClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPTranscriptionClient constructs a [TranscriptionClient] targeting the
// configured webhook URL. The timeout is deliberately long: transcription of
// a multi-minute recording can take well over a minute on the remote side.
func NewHTTPTranscriptionClient(cfg config.Webhook, logger *logger.Logger) (TranscriptionClient, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("transcription client: webhook url is required")
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpTranscriptionClient{client: client, logger: logger}, nil
}

// Transcribe implements [TranscriptionClient]. The webhook is free-form: it
// may answer with a JSON object carrying content/title fields, or with plain
// text that is then taken as the report body verbatim.
func (c *httpTranscriptionClient) Transcribe(ctx context.Context, req models.TranscriptionRequest) (models.TranscriptionResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("")
	if err != nil {
		return models.TranscriptionResponse{}, fmt.Errorf("transcription request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TranscriptionResponse{}, err
	}

	result, err := decodeTranscription(resp.Body())
	if err != nil {
		return models.TranscriptionResponse{}, err
	}

	c.logger.Debug().
		Str("func", "httpTranscriptionClient.Transcribe").
		Str("user", req.UserID).
		Int("content_len", len(result.Content)).
		Bool("has_title", result.Title != "").
		Msg("transcription received")

	return result, nil
}

func decodeTranscription(body []byte) (models.TranscriptionResponse, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return models.TranscriptionResponse{}, ErrEmptyTranscription
	}

	var result models.TranscriptionResponse
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		// Not JSON: treat the whole body as the report text.
		return models.TranscriptionResponse{Content: trimmed}, nil
	}

	// Some workflow revisions put the text under "title" only.
	if strings.TrimSpace(result.Content) == "" {
		result.Content = result.Title
		result.Title = ""
	}
	if strings.TrimSpace(result.Content) == "" {
		return models.TranscriptionResponse{}, ErrEmptyTranscription
	}
	return result, nil
}
