package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/internal/service"
	"github.com/ciphershare/go-cipher-share/internal/tui"
)

// App glues client services and the terminal UI into a single process
// lifecycle: authenticate, run the main loop, and on logout start over.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are not initialized")
	}
	if ui == nil {
		return nil, fmt.Errorf("terminal ui is not initialized")
	}

	return &App{services: services, tui: ui, logger: log}, nil
}

// Run starts the client application and blocks until the user quits.
// A logout from the main loop returns to the login flow instead of exiting.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		a.logger.Info().Str("email", user.Email).Msg("user signed in")

		logout, err := a.tui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("email", user.Email).Msg("user signed out")
	}
}
