// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veilpost/veilpost-go/internal/service"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldOTP
)

// LoginModel is the Bubble Tea model for the login screen. It renders email
// and password inputs, an optional one-time-code input, and a toggle for a
// short-lived session. Submission runs the whole challenge-signature flow on
// a separate goroutine and streams [service.LoginStep] updates back into the
// program, so the screen can show which stage the derivation is on.
//
// The model carries the shared derived-key cache: when the server demands a
// one-time code after the first attempt, the retry skips the memory-hard
// derivation entirely.
type LoginModel struct {
	ctx       context.Context
	login     service.LoginService
	keysCache *service.DerivedKeyCache

	inputs     []textinput.Model
	focus      int
	otpVisible bool
	oneDay     bool

	attempt    int
	submitting bool
	step       service.LoginStep
	spin       spinner.Model
	progress   chan service.LoginStep
	done       chan loginDoneMsg

	status string
	errMsg string
}

// NewLoginModel creates a [LoginModel] with pre-configured inputs. The email
// field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, login service.LoginService, keysCache *service.DerivedKeyCache) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "you@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	otpInput := textinput.New()
	otpInput.Placeholder = "123456"
	otpInput.CharLimit = 8
	otpInput.Width = 10

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	return &LoginModel{
		ctx:       ctx,
		login:     login,
		keysCache: keysCache,
		inputs:    []textinput.Model{emailInput, passwordInput, otpInput},
		spin:      spin,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginPrefillMsg]   — seeds the email field from login history and
//     moves focus to the password.
//   - [loginProgressMsg]  — advances the step indicator.
//   - [loginDoneMsg]      — finishes the flow: ErrOTPRequired reveals the
//     code field, other errors populate errMsg, success opens the account
//     screen.
//   - esc                 — cancels and navigates back to the welcome screen.
//   - tab / shift+tab     — moves focus across inputs and the session toggle.
//   - space               — flips the session toggle when it has focus.
//   - enter               — validates inputs and dispatches the login flow.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginPrefillMsg:
		m.inputs[loginFieldEmail].SetValue(msg.email)
		if msg.notice != "" {
			m.status = msg.notice
		}
		if msg.otpHint {
			m.otpVisible = true
		}
		if msg.email != "" {
			m.setFocus(loginFieldPassword)
		}
		return m, textinput.Blink

	case loginProgressMsg:
		if msg.attempt != m.attempt {
			return m, nil
		}
		m.step = msg.step
		return m, m.awaitFlow()

	case loginDoneMsg:
		if msg.attempt != m.attempt {
			return m, nil
		}
		m.submitting = false

		if msg.err == nil {
			m.resetAfterSuccess()
			return m, func() tea.Msg { return NavigateTo{Page: "home"} }
		}
		if errors.Is(msg.err, service.ErrOTPRequired) {
			m.otpVisible = true
			m.errMsg = ""
			m.status = "This account asks for a one-time code"
			m.setFocus(loginFieldOTP)
			return m, textinput.Blink
		}
		m.errMsg = humanizeError(msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
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
			m.cancelSubmission()
			m.errMsg = ""
			m.status = ""
			return m, func() tea.Msg { return NavigateTo{Page: "welcome"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case " ":
			if m.focus == m.toggleIndex() {
				m.oneDay = !m.oneDay
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[loginFieldEmail].Value())
			password := m.inputs[loginFieldPassword].Value()
			if email == "" || password == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			m.step = service.LoginStepCaptchaCheck
			return m, tea.Batch(m.cmdSubmit(service.LoginParams{
				Email:       email,
				Password:    password,
				OTPCode:     strings.TrimSpace(m.inputs[loginFieldOTP].Value()),
				OneDayLogin: m.oneDay,
				Keys:        m.keysCache,
			}), m.spin.Tick)
		}
	}

	if m.focus < m.visibleInputs() {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements [tea.Model]. Renders the login form as a two-column table,
// the in-flight step indicator, and optional status and error lines.
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[loginFieldEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[loginFieldPassword].View())
	b.WriteString("]\n")
	if m.otpVisible {
		b.WriteString("Code      │ [")
		b.WriteString(m.inputs[loginFieldOTP].View())
		b.WriteString("]\n")
	}

	marker := " "
	if m.focus == m.toggleIndex() {
		marker = ">"
	}
	check := " "
	if m.oneDay {
		check = "x"
	}
	b.WriteString("Session   │ ")
	b.WriteString(marker)
	b.WriteString(" [")
	b.WriteString(check)
	b.WriteString("] 24-hour token\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(m.step.String())
		b.WriteString("...\n")
	} else {
		b.WriteString("\n[Sign in]\n")
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

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ space: toggle │ enter: sign in")
}

// cmdSubmit starts the login flow on its own goroutine. Progress lands in a
// buffered channel sized past the step count, so the flow never blocks on a
// slow screen.
func (m *LoginModel) cmdSubmit(params service.LoginParams) tea.Cmd {
	m.attempt++
	m.progress = make(chan service.LoginStep, 16)
	m.done = make(chan loginDoneMsg, 1)

	attempt := m.attempt
	progress, done := m.progress, m.done
	params.Progress = func(step service.LoginStep) { progress <- step }

	ctx := m.ctx
	login := m.login
	go func() {
		session, err := login.Login(ctx, params)
		close(progress)
		done <- loginDoneMsg{attempt: attempt, session: session, err: err}
	}()

	return m.awaitFlow()
}

// awaitFlow produces the next flow event: a progress step while the channel
// is open, the final result after it closes.
func (m *LoginModel) awaitFlow() tea.Cmd {
	attempt := m.attempt
	progress, done := m.progress, m.done
	return func() tea.Msg {
		if step, ok := <-progress; ok {
			return loginProgressMsg{attempt: attempt, step: step}
		}
		return <-done
	}
}

// cancelSubmission abandons an in-flight attempt. The goroutine finishes on
// its own; bumping the attempt counter makes its result fall on the floor.
func (m *LoginModel) cancelSubmission() {
	if m.submitting {
		m.attempt++
		m.submitting = false
	}
}

func (m *LoginModel) resetAfterSuccess() {
	m.inputs[loginFieldPassword].SetValue("")
	m.inputs[loginFieldOTP].SetValue("")
	m.otpVisible = false
	m.oneDay = false
	m.status = ""
	m.errMsg = ""
	m.setFocus(loginFieldEmail)
}

// visibleInputs is the count of text inputs currently on screen; the session
// toggle sits right after them in the focus order.
func (m *LoginModel) visibleInputs() int {
	if m.otpVisible {
		return 3
	}
	return 2
}

func (m *LoginModel) toggleIndex() int {
	return m.visibleInputs()
}

func (m *LoginModel) setFocus(idx int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = idx
	if idx < m.visibleInputs() {
		m.inputs[idx].Focus()
	}
}

func (m *LoginModel) focusNext() {
	m.setFocus((m.focus + 1) % (m.visibleInputs() + 1))
}

func (m *LoginModel) focusPrev() {
	total := m.visibleInputs() + 1
	m.setFocus((m.focus - 1 + total) % total)
}
