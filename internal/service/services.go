package service

import (
	"github.com/andreaprogra/rapport-vocal/internal/adapter"
	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/directory"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/internal/pdf"
	"github.com/andreaprogra/rapport-vocal/internal/share"
	"github.com/andreaprogra/rapport-vocal/internal/store"
)

type ClientServices struct {
	Auth      AuthService
	Ingestion IngestionService
	Lifecycle LifecycleService
}

// NewClientServices wires the service layer together. notify receives
// user-facing background messages and may be nil in tests.
func NewClientServices(
	storages *store.ClientStorages,
	users directory.UserSource,
	transcriber adapter.TranscriptionClient,
	renderer pdf.Renderer,
	sharers []share.Sharer,
	cfg config.App,
	notify func(string),
	log *logger.Logger,
) *ClientServices {
	lifecycle := NewLifecycleService(storages.AppData, renderer, sharers, cfg.ExportDir, notify, log)

	return &ClientServices{
		Auth:      NewAuthService(users, storages.Devices, cfg, log),
		Ingestion: NewIngestionService(transcriber, lifecycle, log),
		Lifecycle: lifecycle,
	}
}
