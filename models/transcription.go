package models

// TranscriptionRequest is the JSON payload posted to the transcription
// webhook. AudioData carries the base64-encoded audio bytes; the wire field
// names are fixed by the workflow on the other end.
type TranscriptionRequest struct {
	AudioData string `json:"audioData"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
}

// TranscriptionResponse is the webhook reply. Content is the transcribed
// report text; some workflow revisions return it under Title instead, so
// Title is accepted as a fallback.
type TranscriptionResponse struct {
	Content string `json:"content"`
	Title   string `json:"title"`
}
