package client

import (
	"context"
	"errors"

	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/internal/service"
	"github.com/andreaprogra/rapport-vocal/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run implements [Client]: login, main loop, and back to login on logout.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	for {
		auth, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.logger.Info().
			Str("func", "App.Run").
			Str("username", auth.User.Username).
			Msg("user logged in")

		logout, err := a.tui.MainLoop(ctx, auth)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().
			Str("func", "App.Run").
			Str("username", auth.User.Username).
			Msg("user logged out")
	}
}
