package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/service"
	"github.com/veilpost/veilpost-go/internal/store"
	"github.com/veilpost/veilpost-go/models"
)

// TUI owns the terminal client's screen set and runs the Bubble Tea
// program over them.
type TUI struct {
	services *service.ClientServices
	accounts store.KnownAccountRepository
	info     models.BuildInfo
	logger   *logger.Logger
}

// New assembles the terminal client. accounts may be nil, which disables
// the login-history features.
func New(services *service.ClientServices, accounts store.KnownAccountRepository, info models.BuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services: services,
		accounts: accounts,
		info:     info,
		logger:   log,
	}
}

// Run starts the program and blocks until the user quits or ctx is
// cancelled. When a restored session is active, the program opens on the
// account screen instead of the welcome menu.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"welcome":  NewWelcomeModel(ctx, t.accounts),
		"login":    NewLoginModel(ctx, t.services.Login, t.services.Keys),
		"register": NewRegisterModel(ctx, t.services.Registration),
		"home":     NewHomeModel(ctx, t.services, t.accounts),
		"otp":      NewOTPModel(ctx, t.services.OTP),
	}

	startPage := "welcome"
	if t.services.Sessions.Active() {
		startPage = "home"
	}
	t.logger.Debug().Str("start_page", startPage).Msg("starting terminal client")

	root := NewRootModel(pages, startPage, t.info)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrInterrupted) {
		return err
	}

	t.logger.Debug().Msg("terminal client stopped")
	return nil
}
