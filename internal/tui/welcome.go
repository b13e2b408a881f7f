package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veilpost/veilpost-go/internal/store"
)

const lastLoginTimeLayout = "2006-01-02 15:04"

// WelcomeModel is the entry screen: sign in, create an account, or quit.
// When the device has login history, the most recent account is shown and
// picking "Sign in" prefills its email.
type WelcomeModel struct {
	ctx      context.Context
	accounts store.KnownAccountRepository

	items  []string
	idx    int
	last   lastAccountMsg
	status string
}

func NewWelcomeModel(ctx context.Context, accounts store.KnownAccountRepository) *WelcomeModel {
	return &WelcomeModel{
		ctx:      ctx,
		accounts: accounts,
		items:    []string{"Sign in", "Create account", "Quit"},
	}
}

// Init implements [tea.Model]. Loads the most recently used account so the
// screen can offer it.
func (m *WelcomeModel) Init() tea.Cmd {
	return m.cmdLoadLastAccount()
}

// Update implements [tea.Model]. Handled messages:
//   - [lastAccountMsg]   — remembers the device's most recent account.
//   - [homeNoticeMsg]    — shows a status line (arrives here after logout).
//   - up/down            — moves the selection.
//   - enter              — opens the selected screen or quits.
func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lastAccountMsg:
		m.last = msg
		return m, nil
	case homeNoticeMsg:
		m.status = msg.text
		return m, m.cmdLoadLastAccount()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		switch m.idx {
		case 0:
			if m.last.ok {
				prefill := loginPrefillMsg{email: m.last.account.Email, otpHint: m.last.account.OTPEnabled}
				return m, func() tea.Msg { return NavigateTo{Page: "login", Payload: prefill} }
			}
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: "register"} }
		default:
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements [tea.Model].
func (m *WelcomeModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	if m.last.ok {
		b.WriteString("Last signed in: ")
		b.WriteString(m.last.account.Email)
		if !m.last.account.LastLoginAt.IsZero() {
			b.WriteString(" (")
			b.WriteString(m.last.account.LastLoginAt.Local().Format(lastLoginTimeLayout))
			b.WriteString(")")
		}
		b.WriteString("\n\n")
	}

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-3s │ %-*s\n", "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", 3))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d │ %-*s\n", cursor, i+1, actionColWidth, item))
	}

	return renderPage("VEILPOST", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: about")
}

func (m *WelcomeModel) cmdLoadLastAccount() tea.Cmd {
	if m.accounts == nil {
		return nil
	}

	ctx := m.ctx
	accounts := m.accounts
	return func() tea.Msg {
		account, err := accounts.Last(ctx)
		if err != nil {
			return lastAccountMsg{}
		}
		return lastAccountMsg{account: account, ok: true}
	}
}
