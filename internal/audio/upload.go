package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/models"
)

// extensionMIME covers the audio extensions the stdlib mime table misses or
// maps differently than the transcription webhook expects.
var extensionMIME = map[string]string{
	".mp3":  "audio/mp3",
	".mpeg": "audio/mpeg",
	".mp4":  "audio/mp4",
	".m4a":  "audio/m4a",
	".wav":  "audio/wav",
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".opus": "audio/ogg",
}

// LoadUpload reads an audio file from disk and validates it against the
// ingestion limits. The size cap is checked before the file is read so an
// oversized file never lands in memory.
func LoadUpload(path string, cfg config.Ingestion) (models.Upload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.Upload{}, fmt.Errorf("stat audio file: %w", err)
	}
	if info.IsDir() {
		return models.Upload{}, fmt.Errorf("%s is a directory", path)
	}

	if cfg.MaxFileSize > 0 && info.Size() > cfg.MaxFileSize {
		return models.Upload{}, fmt.Errorf("%w: %d bytes over %d byte limit", ErrFileTooLarge, info.Size(), cfg.MaxFileSize)
	}

	mimeType, ok := extensionMIME[strings.ToLower(filepath.Ext(path))]
	if !ok || !mimeAllowed(mimeType, cfg.SupportedMIMETypes) {
		return models.Upload{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Upload{}, fmt.Errorf("read audio file: %w", err)
	}

	return models.Upload{
		Name: filepath.Base(path),
		MIME: mimeType,
		Size: info.Size(),
		Data: data,
	}, nil
}

func mimeAllowed(mimeType string, allowed []string) bool {
	for _, entry := range allowed {
		if baseMIME(entry) == baseMIME(mimeType) {
			return true
		}
	}
	return false
}
