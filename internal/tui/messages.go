package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veilpost/veilpost-go/internal/service"
	"github.com/veilpost/veilpost-go/models"
)

// NavigateTo switches the active screen. Payload, when non-nil, is
// delivered to the target screen instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// loginPrefillMsg seeds the login form with a known address. otpHint asks
// the form to show the one-time code field up front.
type loginPrefillMsg struct {
	email   string
	notice  string
	otpHint bool
}

// homeNoticeMsg shows a status line on the account screen. otpNow marks
// two-factor as enabled without waiting for the next hint refresh.
type homeNoticeMsg struct {
	text   string
	otpNow bool
}

type lastAccountMsg struct {
	account models.KnownAccount
	ok      bool
}

// Flow messages carry the attempt counter of the submission that produced
// them, so an abandoned attempt's late results are dropped instead of
// overwriting a newer one.

type registerProgressMsg struct {
	attempt int
	step    service.RegistrationStep
}

type registerDoneMsg struct {
	attempt int
	record  models.AccountRecord
	err     error
}

type loginProgressMsg struct {
	attempt int
	step    service.LoginStep
}

type loginDoneMsg struct {
	attempt int
	session models.Session
	err     error
}

type otpSetupMsg struct {
	setup models.OTPSetup
	err   error
}

type otpConfirmedMsg struct {
	err error
}

type otpHintMsg struct {
	enabled bool
	known   bool
}

type resendDoneMsg struct {
	err error
}

type loggedOutMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
