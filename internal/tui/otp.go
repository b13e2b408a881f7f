// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veilpost/veilpost-go/internal/service"
	"github.com/veilpost/veilpost-go/models"
)

const statusClearAfter = 3 * time.Second

// OTPModel is the two-factor enrollment screen. Opening it requests a fresh
// shared secret from the server, shows the otpauth:// provisioning URI for
// the authenticator app (with a clipboard shortcut), and confirms enrollment
// with a current code.
type OTPModel struct {
	ctx context.Context
	otp service.OTPService

	loading        bool
	alreadyEnabled bool
	setup          models.OTPSetup
	gotSetup       bool

	code       textinput.Model
	submitting bool
	spin       spinner.Model

	status string
	errMsg string
}

func NewOTPModel(ctx context.Context, otp service.OTPService) *OTPModel {
	code := textinput.New()
	code.Placeholder = "123456"
	code.CharLimit = 8
	code.Width = 10

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	return &OTPModel{
		ctx:  ctx,
		otp:  otp,
		code: code,
		spin: spin,
	}
}

// Init implements [tea.Model]. Starts a fresh enrollment: every visit asks
// the server for a new secret, which replaces any unconfirmed one.
func (m *OTPModel) Init() tea.Cmd {
	m.loading = true
	m.alreadyEnabled = false
	m.gotSetup = false
	m.setup = models.OTPSetup{}
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	m.code.SetValue("")
	m.code.Focus()
	return tea.Batch(m.cmdSetup(), m.spin.Tick)
}

// Update implements [tea.Model]. Handled messages:
//   - [otpSetupMsg]     — stores the secret and URI, or reports that
//     two-factor is already on.
//   - [otpConfirmedMsg] — on success navigates back to the account screen;
//     a rejected code stays on the form.
//   - [copiedMsg]       — reports the clipboard result, auto-cleared.
//   - c                 — copies the provisioning URI to the clipboard.
//   - esc               — navigates back to the account screen.
//   - enter             — submits the code.
func (m *OTPModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case otpSetupMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrOTPAlreadyEnabled) {
				m.alreadyEnabled = true
				return m, nil
			}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.setup = msg.setup
		m.gotSetup = true
		return m, textinput.Blink

	case otpConfirmedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "home",
				Payload: homeNoticeMsg{text: "Two-factor authentication enabled", otpNow: true},
			}
		}

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Provisioning URI copied to clipboard"
		return m, tea.Tick(statusClearAfter, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "home"} }
		case "c":
			if m.gotSetup {
				return m, cmdCopyToClipboard(m.setup.ProvisioningURI)
			}
		case "enter":
			if m.submitting || !m.gotSetup {
				return m, nil
			}

			code := strings.TrimSpace(m.code.Value())
			if code == "" {
				m.errMsg = "Enter the code from your authenticator app"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, tea.Batch(m.cmdConfirm(code), m.spin.Tick)
		}
	}

	if m.gotSetup {
		var cmd tea.Cmd
		m.code, cmd = m.code.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements [tea.Model].
func (m *OTPModel) View() string {
	if m.loading {
		return renderPage("TWO-FACTOR", m.spin.View()+" Requesting enrollment...", "esc: back")
	}
	if m.alreadyEnabled {
		return renderPage("TWO-FACTOR", "Two-factor authentication is already enabled for this account.", "esc: back")
	}
	if !m.gotSetup {
		body := "Enrollment could not be started."
		if m.errMsg != "" {
			body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
		}
		return renderPage("TWO-FACTOR", body, "esc: back")
	}

	var b strings.Builder
	b.WriteString("Scan the URI in your authenticator app, or add the secret manually.\n\n")
	b.WriteString("Secret  ")
	b.WriteString(m.setup.Secret)
	b.WriteString("\n")
	b.WriteString("URI     ")
	b.WriteString(wrapText(m.setup.ProvisioningURI, 56, "        "))
	b.WriteString("\n\n")
	b.WriteString("Code    [")
	b.WriteString(m.code.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(" Confirming...\n")
	} else {
		b.WriteString("\n[Confirm]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("TWO-FACTOR", strings.TrimRight(b.String(), "\n"), "c: copy URI │ enter: confirm │ esc: back")
}

func (m *OTPModel) cmdSetup() tea.Cmd {
	ctx := m.ctx
	otp := m.otp
	return func() tea.Msg {
		setup, err := otp.Setup(ctx)
		return otpSetupMsg{setup: setup, err: err}
	}
}

func (m *OTPModel) cmdConfirm(code string) tea.Cmd {
	ctx := m.ctx
	otp := m.otp
	return func() tea.Msg {
		return otpConfirmedMsg{err: otp.Confirm(ctx, code)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

// wrapText breaks s into width-sized lines, indenting continuations.
func wrapText(s string, width int, indent string) string {
	if width <= 0 || len(s) <= width {
		return s
	}

	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteString("\n")
		b.WriteString(indent)
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}
