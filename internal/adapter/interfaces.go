// Package adapter provides the outbound HTTP clients of the application.
//
// Two remote endpoints exist: the Google Sheets export endpoint serving the
// user directory ([DirectoryClient]) and the transcription webhook that turns
// audio into report text ([TranscriptionClient]). Both are implemented on
// resty; transport errors are mapped to the sentinel values defined in
// errors.go so that callers can use [errors.Is] without knowing about HTTP
// status codes.
package adapter

import (
	"context"

	"github.com/andreaprogra/rapport-vocal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DirectoryClient fetches the raw user table from the remote spreadsheet.
// The returned bytes are in the configured export format (gviz JSON or CSV)
// and are decoded by the directory package, not here.
type DirectoryClient interface {
	// FetchTable downloads the current sheet content. Returns an error if
	// the request fails or the endpoint responds with a non-2xx status.
	FetchTable(ctx context.Context) ([]byte, error)
}

// TranscriptionClient submits recorded or uploaded audio to the external
// transcription webhook and returns the generated report text.
type TranscriptionClient interface {
	// Transcribe POSTs the base64 audio payload and blocks until the webhook
	// answers or ctx expires. A webhook reply with no usable content is an
	// error; titles are optional and may be empty in the response.
	Transcribe(ctx context.Context, req models.TranscriptionRequest) (models.TranscriptionResponse, error)
}
