package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-notes/internal/service"
)

// gateFlowModel is the account-level security password prompt shown right
// after sign-in. The comparison happens locally against the stored value, so
// no command dispatch is needed.
type gateFlowModel struct {
	auth   service.ClientAuthService
	stored string

	input  textinput.Model
	errMsg string

	passed     bool
	quitByUser bool
}

func newGateFlowModel(auth service.ClientAuthService, stored string) gateFlowModel {
	input := textinput.New()
	input.Placeholder = "security password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return gateFlowModel{
		auth:   auth,
		stored: stored,
		input:  input,
	}
}

func (m gateFlowModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m gateFlowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case "esc":
			// back out to the login screens
			return m, tea.Quit
		case "enter":
			err := m.auth.CheckSecurityPassword(m.stored, m.input.Value())
			switch {
			case err == nil:
				m.passed = true
				return m, tea.Quit
			case errors.Is(err, service.ErrEmptySecurityPassword):
				m.errMsg = "Введите пароль безопасности"
			default:
				m.errMsg = "Неверный пароль безопасности"
			}
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m gateFlowModel) View() string {
	var b strings.Builder
	b.WriteString("Аккаунт защищён паролем безопасности.\n\n")
	b.WriteString("Пароль    │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ПРОВЕРКА ДОСТУПА", strings.TrimRight(b.String(), "\n"), "enter: подтвердить │ esc: выйти из аккаунта")
}
