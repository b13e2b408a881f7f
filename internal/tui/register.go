package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veilpost/veilpost-go/internal/service"
)

const (
	registerFieldEmail = iota
	registerFieldPassword
	registerFieldRepeat
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders three text inputs (email, password, password confirmation) and
// dispatches the whole zero-knowledge registration ceremony on submission,
// streaming [service.RegistrationStep] updates while the derivation runs.
// On success the model resets the form and opens the login screen with the
// fresh address prefilled.
type RegisterModel struct {
	ctx          context.Context
	registration service.RegistrationService

	inputs []textinput.Model
	focus  int

	attempt    int
	submitting bool
	step       service.RegistrationStep
	spin       spinner.Model
	progress   chan service.RegistrationStep
	done       chan registerDoneMsg

	errMsg string
}

// NewRegisterModel creates a [RegisterModel] with pre-configured inputs.
// The email field receives focus immediately; the password fields use
// masked echo.
func NewRegisterModel(ctx context.Context, registration service.RegistrationService) *RegisterModel {
	fields := make([]textinput.Model, 3)

	fields[registerFieldEmail] = textinput.New()
	fields[registerFieldEmail].Placeholder = "you@example.com"
	fields[registerFieldEmail].CharLimit = 254
	fields[registerFieldEmail].Width = 40
	fields[registerFieldEmail].Focus()

	fields[registerFieldPassword] = textinput.New()
	fields[registerFieldPassword].Placeholder = "password"
	fields[registerFieldPassword].CharLimit = 256
	fields[registerFieldPassword].Width = 40
	fields[registerFieldPassword].EchoMode = textinput.EchoPassword
	fields[registerFieldPassword].EchoCharacter = '*'

	fields[registerFieldRepeat] = textinput.New()
	fields[registerFieldRepeat].Placeholder = "repeat password"
	fields[registerFieldRepeat].CharLimit = 256
	fields[registerFieldRepeat].Width = 40
	fields[registerFieldRepeat].EchoMode = textinput.EchoPassword
	fields[registerFieldRepeat].EchoCharacter = '*'

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	return &RegisterModel{
		ctx:          ctx,
		registration: registration,
		inputs:       fields,
		spin:         spin,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [registerProgressMsg] — advances the step indicator.
//   - [registerDoneMsg]     — finishes the flow: on error, populates errMsg;
//     on success, resets the form and opens the login screen with the new
//     address prefilled.
//   - esc                   — cancels and navigates back to the welcome screen.
//   - tab / shift+tab       — moves focus between inputs.
//   - enter                 — validates inputs (all required, passwords must
//     match) and dispatches the registration flow.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerProgressMsg:
		if msg.attempt != m.attempt {
			return m, nil
		}
		m.step = msg.step
		return m, m.awaitFlow()

	case registerDoneMsg:
		if msg.attempt != m.attempt {
			return m, nil
		}
		m.submitting = false

		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}

		email := msg.record.Email
		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page: "login",
				Payload: loginPrefillMsg{
					email:  email,
					notice: "Account created. A verification link is on its way to " + email,
				},
			}
		}

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
			return m, func() tea.Msg { return NavigateTo{Page: "welcome"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[registerFieldEmail].Value())
			password := m.inputs[registerFieldPassword].Value()
			repeat := m.inputs[registerFieldRepeat].Value()

			if email == "" || password == "" || repeat == "" {
				m.errMsg = "All fields are required"
				return m, nil
			}
			if password != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			m.step = service.RegStepCheckPasswordStrength
			return m, tea.Batch(m.cmdSubmit(service.RegisterParams{
				Email:    email,
				Password: password,
			}), m.spin.Tick)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the registration form as a two-column
// table, the in-flight step indicator, and an optional error message.
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	b.WriteString("Email            │ [")
	b.WriteString(m.inputs[registerFieldEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[registerFieldPassword].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[registerFieldRepeat].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(m.step.String())
		b.WriteString("...\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: create")
}

// cmdSubmit starts the registration flow on its own goroutine, streaming
// progress through a buffered channel sized past the step count.
func (m *RegisterModel) cmdSubmit(params service.RegisterParams) tea.Cmd {
	m.attempt++
	m.progress = make(chan service.RegistrationStep, 16)
	m.done = make(chan registerDoneMsg, 1)

	attempt := m.attempt
	progress, done := m.progress, m.done
	params.Progress = func(step service.RegistrationStep) { progress <- step }

	ctx := m.ctx
	registration := m.registration
	go func() {
		record, err := registration.Register(ctx, params)
		close(progress)
		done <- registerDoneMsg{attempt: attempt, record: record, err: err}
	}()

	return m.awaitFlow()
}

func (m *RegisterModel) awaitFlow() tea.Cmd {
	attempt := m.attempt
	progress, done := m.progress, m.done
	return func() tea.Msg {
		if step, ok := <-progress; ok {
			return registerProgressMsg{attempt: attempt, step: step}
		}
		return <-done
	}
}

func (m *RegisterModel) cancelSubmission() {
	if m.submitting {
		m.attempt++
		m.submitting = false
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = registerFieldEmail
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
