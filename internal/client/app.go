package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/service"
	"github.com/MKhiriev/go-qr-notes/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{services: services, ui: ui, logger: log}, nil
}

// Run drives the session cycle: login, account gate, main loop. Logging out
// of the main loop or backing out of the gate returns to the login screens;
// quitting anywhere exits the process cleanly.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		if err := a.ui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		passed, err := a.ui.SecurityGate(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
		if !passed {
			a.services.AuthService.Logout()
			continue
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Msg("user logged out")
		a.services.AuthService.Logout()
	}
}
