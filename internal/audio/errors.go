package audio

import "errors"

var (
	// ErrUnsupportedFormat is returned when a file's MIME type is not in the
	// configured allow-list.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrFileTooLarge is returned when a file exceeds the configured size cap.
	ErrFileTooLarge = errors.New("audio file too large")

	// ErrNoRecorder is returned when no capture tool for any preferred
	// format is installed on the machine.
	ErrNoRecorder = errors.New("no audio capture tool available")

	ErrAlreadyRecording = errors.New("recording already in progress")
	ErrNotRecording     = errors.New("no recording in progress")
)
