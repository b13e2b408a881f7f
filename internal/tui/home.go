// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package tui

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veilpost/veilpost-go/internal/service"
	"github.com/veilpost/veilpost-go/internal/store"
	"github.com/veilpost/veilpost-go/models"
)

// HomeModel is the authenticated account screen. It shows the session
// summary (address, verification state, key fingerprints) and offers the
// account actions: two-factor enrollment, re-sending the verification
// mail, and signing out.
type HomeModel struct {
	ctx          context.Context
	sessions     *service.SessionManager
	login        service.LoginService
	registration service.RegistrationService
	accounts     store.KnownAccountRepository

	session models.Session
	active  bool
	otp     otpHintMsg
	busy    bool

	status string
	errMsg string
}

func NewHomeModel(ctx context.Context, services *service.ClientServices, accounts store.KnownAccountRepository) *HomeModel {
	return &HomeModel{
		ctx:          ctx,
		sessions:     services.Sessions,
		login:        services.Login,
		registration: services.Registration,
		accounts:     accounts,
	}
}

// Init implements [tea.Model]. Snapshots the active session and loads the
// device's two-factor hint for it.
func (m *HomeModel) Init() tea.Cmd {
	m.session, m.active = m.sessions.Current()
	m.otp = otpHintMsg{}
	m.status = ""
	m.errMsg = ""
	return m.cmdLoadOTPHint()
}

// Update implements [tea.Model]. Handled messages:
//   - [homeNoticeMsg]  — refreshes the session snapshot and shows a status
//     line (arrives after two-factor enrollment).
//   - [otpHintMsg]     — fills the two-factor line.
//   - [resendDoneMsg]  — reports the verification mail result.
//   - [loggedOutMsg]   — navigates back to the welcome screen.
//   - o                — opens two-factor enrollment.
//   - r                — re-sends the verification mail when pending.
//   - l                — signs out.
//   - q                — quits.
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case homeNoticeMsg:
		m.session, m.active = m.sessions.Current()
		m.status = msg.text
		if msg.otpNow {
			m.otp = otpHintMsg{enabled: true, known: true}
			return m, nil
		}
		return m, m.cmdLoadOTPHint()

	case otpHintMsg:
		m.otp = msg
		return m, nil

	case resendDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Verification mail sent to " + m.session.Email
		return m, nil

	case loggedOutMsg:
		m.busy = false
		return m, func() tea.Msg {
			return NavigateTo{Page: "welcome", Payload: homeNoticeMsg{text: "Signed out"}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.otp):
		if !m.active {
			return m, nil
		}
		m.status = ""
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: "otp"} }

	case key.Matches(keyMsg, keys.resend):
		if !m.active {
			return m, nil
		}
		if m.session.EmailVerified {
			m.status = "Email is already verified"
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		return m, m.cmdResendVerification()

	case key.Matches(keyMsg, keys.logout):
		if !m.active {
			return m, nil
		}
		m.busy = true
		return m, m.cmdLogout()

	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// View implements [tea.Model].
func (m *HomeModel) View() string {
	if !m.active {
		return renderPage("ACCOUNT", "No active session.", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Email           ")
	b.WriteString(m.session.Email)
	b.WriteString("\n")
	b.WriteString("Account ID      ")
	b.WriteString(m.session.AccountID)
	b.WriteString("\n")

	b.WriteString("Email status    ")
	if m.session.EmailVerified {
		b.WriteString("verified")
	} else {
		b.WriteString("pending verification")
	}
	b.WriteString("\n")

	b.WriteString("Session         ")
	if m.session.OneDayLogin {
		b.WriteString("24-hour token")
	} else {
		b.WriteString("standard token")
	}
	b.WriteString("\n")

	b.WriteString("Encryption key  X25519 ")
	b.WriteString(keyFingerprint(m.session.Keypair.Public))
	b.WriteString("\n")
	b.WriteString("Signing key     Ed25519 ")
	b.WriteString(keyFingerprint(m.session.SignKeypair.Public))
	b.WriteString("\n")

	b.WriteString("Two-factor      ")
	switch {
	case m.otp.known && m.otp.enabled:
		b.WriteString("enabled")
	case m.otp.known:
		b.WriteString("not configured")
	default:
		b.WriteString("unknown")
	}

	if m.busy {
		b.WriteString("\n\nWorking...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	hotKeys := "o: two-factor │ l: sign out │ q: quit"
	if !m.session.EmailVerified {
		hotKeys = "o: two-factor │ r: resend verification │ l: sign out │ q: quit"
	}
	return renderPage("ACCOUNT", b.String(), hotKeys)
}

func (m *HomeModel) cmdLoadOTPHint() tea.Cmd {
	if m.accounts == nil || !m.active {
		return nil
	}

	ctx := m.ctx
	accounts := m.accounts
	email := m.session.Email
	return func() tea.Msg {
		known, err := accounts.All(ctx)
		if err != nil {
			return otpHintMsg{}
		}
		for _, account := range known {
			if account.Email == email {
				return otpHintMsg{enabled: account.OTPEnabled, known: true}
			}
		}
		return otpHintMsg{}
	}
}

func (m *HomeModel) cmdResendVerification() tea.Cmd {
	ctx := m.ctx
	registration := m.registration
	email := m.session.Email
	return func() tea.Msg {
		return resendDoneMsg{err: registration.ResendVerification(ctx, email)}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	login := m.login
	return func() tea.Msg {
		login.Logout(ctx)
		return loggedOutMsg{}
	}
}

// keyFingerprint renders a short identifying prefix of a public key, enough
// to compare by eye across devices.
func keyFingerprint(pub []byte) string {
	if len(pub) == 0 {
		return "-"
	}
	return fitText(base64.StdEncoding.EncodeToString(pub), 16)
}
