package models

import "fmt"

// Recording is an in-memory microphone capture assembled after the recorder
// stops, tagged with the encoding that was actually selected.
type Recording struct {
	Data []byte
	MIME string
}

// Upload is an audio file picked from disk, already validated against the
// supported-format allow-list and the size cap.
type Upload struct {
	Name string
	MIME string
	Size int64
	Data []byte
}

// PendingAudio is the single audio source waiting to be submitted.
// Exactly one of Recording or Upload is set; starting a new recording
// discards a pending upload and vice versa.
type PendingAudio struct {
	Recording *Recording
	Upload    *Upload
}

// Kind reports which variant is set.
func (p PendingAudio) Kind() AudioSourceKind {
	if p.Upload != nil {
		return SourceUpload
	}
	return SourceMicrophone
}

// Bytes returns the raw audio payload of whichever variant is set.
func (p PendingAudio) Bytes() []byte {
	if p.Upload != nil {
		return p.Upload.Data
	}
	if p.Recording != nil {
		return p.Recording.Data
	}
	return nil
}

// Description is the human-readable source label stored on the draft.
func (p PendingAudio) Description() string {
	if p.Upload != nil {
		return fmt.Sprintf("Fichier uploadé: %s", p.Upload.Name)
	}
	return "Enregistrement vocal"
}
