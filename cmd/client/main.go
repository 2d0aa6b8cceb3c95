package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/andreaprogra/rapport-vocal/internal/adapter"
	"github.com/andreaprogra/rapport-vocal/internal/audio"
	"github.com/andreaprogra/rapport-vocal/internal/client"
	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/directory"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/internal/pdf"
	"github.com/andreaprogra/rapport-vocal/internal/service"
	"github.com/andreaprogra/rapport-vocal/internal/share"
	"github.com/andreaprogra/rapport-vocal/internal/store"
	"github.com/andreaprogra/rapport-vocal/internal/tui"
	"github.com/andreaprogra/rapport-vocal/internal/workers"
	"github.com/andreaprogra/rapport-vocal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("rapport-vocal")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	users, err := newUserSource(cfg.Directory, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create user directory")
	}

	transcriber, err := adapter.NewHTTPTranscriptionClient(cfg.Webhook, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create transcription client")
	}

	recorder, err := audio.NewExecRecorder(cfg.Ingestion, log)
	if err != nil {
		if !errors.Is(err, audio.ErrNoRecorder) {
			log.Fatal().Err(err).Msg("create audio recorder")
		}
		// No capture tool installed: the app still works with file uploads.
		log.Warn().Msg("no audio capture tool found, recording disabled")
		recorder = nil
	}

	notifier := tui.NewNotifier()

	sharers := []share.Sharer{
		share.NewSystemSharer(cfg.App.ShareCommand, log),
		share.NewTextFileSharer(cfg.App.ExportDir, log),
		share.NewClipboardSharer(log),
	}

	services := service.NewClientServices(storages, users, transcriber,
		pdf.NewRenderer(), sharers, cfg.App, notifier.Notify, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ui, err := tui.New(services, recorder, cfg.Ingestion, buildInfo, notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	// Keep the roster warm while the TUI owns the foreground.
	background := workers.NewWorkers(
		workers.NewRosterRefreshWorker(users, cfg.Directory.CacheTTL, log),
	)
	background.Run()
	defer background.Stop()

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func newUserSource(cfg config.Directory, log *logger.Logger) (directory.UserSource, error) {
	if cfg.Mode == config.ModeStatic {
		return directory.NewStaticRoster(nil), nil
	}

	directoryClient, err := adapter.NewHTTPDirectoryClient(cfg, log)
	if err != nil {
		return nil, err
	}
	return directory.NewLoader(directoryClient, cfg, log), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
