package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/service"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the pre-auth screens (menu, login, register) until the user
// either signs in or quits. A nil error means an authenticated session is
// held by the backend adapter.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// SecurityGate asks for the account security password when the profile has
// one configured. Returns passed=false when the user backs out, which the
// caller treats as a logout.
func (t *TUI) SecurityGate(ctx context.Context) (passed bool, err error) {
	profile, err := t.services.AuthService.Profile(ctx)
	if err != nil {
		return false, err
	}
	if !profile.HasSecurityGate() {
		return true, nil
	}

	model := newGateFlowModel(t.services.AuthService, profile.SecurityPassword)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(gateFlowModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	return result.passed, nil
}

func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
