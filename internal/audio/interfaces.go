// Package audio captures microphone recordings and validates uploaded audio
// files before they are sent for transcription.
package audio

import (
	"context"

	"github.com/andreaprogra/rapport-vocal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/recorder_mock.go -package=mock

// Recorder captures a single microphone take at a time. Start and Stop are
// expected to be called from the UI loop and are safe for concurrent use.
type Recorder interface {
	// Start begins capturing. Returns ErrAlreadyRecording if a take is
	// already running and ErrNoRecorder if no capture tool is installed.
	Start(ctx context.Context) error

	// Stop ends the running take and returns the captured audio. Returns
	// ErrNotRecording if Start was not called first.
	Stop() (models.Recording, error)

	// Recording reports whether a take is currently running.
	Recording() bool
}
