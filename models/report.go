package models

import "time"

// DraftStatus is the lifecycle state of a Draft.
//
// Transitions: generating → ready | error. A ready draft may be promoted to
// a Report (which removes the draft); an error draft is terminal and can only
// be deleted.
type DraftStatus string

const (
	DraftGenerating DraftStatus = "generating"
	DraftReady      DraftStatus = "ready"
	DraftError      DraftStatus = "error"
)

// AudioSourceKind tags where the audio of a draft came from.
type AudioSourceKind string

const (
	SourceMicrophone AudioSourceKind = "recording"
	SourceUpload     AudioSourceKind = "upload"
)

// Draft is a transcription job result in progress, pre-validation.
// While Status is DraftGenerating the Body is empty and the Title holds a
// progress placeholder; the external job resolves the draft to ready (body
// set, title extracted) or error (fixed error title, body stays empty).
type Draft struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Body       string      `json:"body"`
	Status     DraftStatus `json:"status"`
	IsModified bool        `json:"is_modified"`

	SourceKind        AudioSourceKind `json:"source_kind"`
	SourceDescription string          `json:"source_description"`

	CreatedAt time.Time `json:"created_at"`
}

// Report is a validated, immutable draft. Only FolderID may change after
// creation. When HasPDF is true, PDF holds the document rendered from the
// title/body as they were at validation time; later operations never
// regenerate it.
type Report struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	IsModified bool   `json:"is_modified"`

	SourceKind        AudioSourceKind `json:"source_kind"`
	SourceDescription string          `json:"source_description"`

	// FolderID references a Folder by ID; nil means unfiled.
	FolderID *string `json:"folder_id,omitempty"`

	HasPDF bool   `json:"has_pdf"`
	PDF    []byte `json:"pdf_data,omitempty"`

	CreatedAt   time.Time `json:"created_at"`
	ValidatedAt time.Time `json:"validated_at"`
}

// Folder is a flat, user-defined grouping label for reports. Folders
// reference nothing and own nothing: deleting one unfiles its reports.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ColorTag  string    `json:"color_tag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AppData is the whole persisted aggregate. Every mutating operation loads
// it, applies one change and writes it back in full; see store.AppDataRepository.
type AppData struct {
	Drafts    []Draft   `json:"drafts"`
	Reports   []Report  `json:"reports"`
	Folders   []Folder  `json:"folders"`
	LastSaved time.Time `json:"last_saved"`
}

// FindDraft returns a pointer into d.Drafts for the given ID, or nil.
func (d *AppData) FindDraft(id string) *Draft {
	for i := range d.Drafts {
		if d.Drafts[i].ID == id {
			return &d.Drafts[i]
		}
	}
	return nil
}

// FindReport returns a pointer into d.Reports for the given ID, or nil.
func (d *AppData) FindReport(id string) *Report {
	for i := range d.Reports {
		if d.Reports[i].ID == id {
			return &d.Reports[i]
		}
	}
	return nil
}

// FindFolder returns a pointer into d.Folders for the given ID, or nil.
func (d *AppData) FindFolder(id string) *Folder {
	for i := range d.Folders {
		if d.Folders[i].ID == id {
			return &d.Folders[i]
		}
	}
	return nil
}
