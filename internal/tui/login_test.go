package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/veilpost/veilpost-go/internal/mock/servicemock"
	"github.com/veilpost/veilpost-go/internal/service"
	"github.com/veilpost/veilpost-go/models"
)

// paramsRecorder captures the LoginParams each attempt was submitted with.
// The flow runs on its own goroutine, so access is synchronized.
type paramsRecorder struct {
	mu     sync.Mutex
	params []service.LoginParams
}

func (r *paramsRecorder) add(p service.LoginParams) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.params = append(r.params, p)
}

func (r *paramsRecorder) last(t *testing.T) service.LoginParams {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.params)
	return r.params[len(r.params)-1]
}

func TestLoginModel_SubmitNavigatesHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	login := servicemock.NewMockLoginService(ctrl)
	cache := service.NewDerivedKeyCache()

	recorded := &paramsRecorder{}
	login.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params service.LoginParams) (models.Session, error) {
			recorded.add(params)
			params.Progress(service.LoginStepDeriveKey)
			params.Progress(service.LoginStepEstablishSession)
			return models.Session{AccountID: "acc-1", Email: params.Email}, nil
		})

	m := NewLoginModel(context.Background(), login, cache)
	m.inputs[loginFieldEmail].SetValue("kim@veilpost.dev")
	m.inputs[loginFieldPassword].SetValue("correct horse battery staple")

	_, cmd := m.Update(enterKey)
	require.True(t, m.submitting)

	msg := pumpUntil(t, m, cmd, stopOnNavigate)
	nav, ok := msg.(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "home", nav.Page)

	params := recorded.last(t)
	assert.Equal(t, "kim@veilpost.dev", params.Email)
	assert.Equal(t, "correct horse battery staple", params.Password)
	assert.False(t, params.OneDayLogin)
	assert.Same(t, cache, params.Keys)

	// The form keeps the address but drops the password.
	assert.Equal(t, "kim@veilpost.dev", m.inputs[loginFieldEmail].Value())
	assert.Empty(t, m.inputs[loginFieldPassword].Value())
	assert.False(t, m.submitting)
}

func TestLoginModel_ShowsProgressSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	login := servicemock.NewMockLoginService(ctrl)

	block := make(chan struct{})
	login.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params service.LoginParams) (models.Session, error) {
			params.Progress(service.LoginStepDeriveKey)
			<-block
			return models.Session{}, nil
		})

	m := NewLoginModel(context.Background(), login, service.NewDerivedKeyCache())
	m.inputs[loginFieldEmail].SetValue("kim@veilpost.dev")
	m.inputs[loginFieldPassword].SetValue("pw")

	_, cmd := m.Update(enterKey)

	// Execute until the derive step lands, then render mid-flight.
	msg := pumpUntil(t, m, cmd, func(msg tea.Msg) bool {
		progress, ok := msg.(loginProgressMsg)
		return ok && progress.step == service.LoginStepDeriveKey
	})
	progress, ok := msg.(loginProgressMsg)
	require.True(t, ok)
	_, _ = m.Update(progress)

	assert.Contains(t, m.View(), "deriving key")
	close(block)
}

func TestLoginModel_OTPRequiredRevealsCodeField(t *testing.T) {
	ctrl := gomock.NewController(t)
	login := servicemock.NewMockLoginService(ctrl)
	cache := service.NewDerivedKeyCache()
	recorded := &paramsRecorder{}

	first := login.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params service.LoginParams) (models.Session, error) {
			recorded.add(params)
			return models.Session{}, fmt.Errorf("%w", service.ErrOTPRequired)
		})
	login.EXPECT().Login(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
		func(_ context.Context, params service.LoginParams) (models.Session, error) {
			recorded.add(params)
			return models.Session{AccountID: "acc-1"}, nil
		})

	m := NewLoginModel(context.Background(), login, cache)
	require.NotContains(t, m.View(), "Code")

	m.inputs[loginFieldEmail].SetValue("kim@veilpost.dev")
	m.inputs[loginFieldPassword].SetValue("pw")

	_, cmd := m.Update(enterKey)
	msg := pumpUntil(t, m, cmd, stopOnNavigate)
	require.Nil(t, msg)

	assert.True(t, m.otpVisible)
	assert.Contains(t, m.View(), "Code")
	assert.Contains(t, m.View(), "one-time code")
	assert.Equal(t, loginFieldOTP, m.focus)

	m.inputs[loginFieldOTP].SetValue("123456")
	_, cmd = m.Update(enterKey)
	msg = pumpUntil(t, m, cmd, stopOnNavigate)
	nav, ok := msg.(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "home", nav.Page)

	params := recorded.last(t)
	assert.Equal(t, "123456", params.OTPCode)
	assert.Same(t, cache, params.Keys)
}

func TestLoginModel_WrongPasswordShowsFriendlyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	login := servicemock.NewMockLoginService(ctrl)
	login.EXPECT().Login(gomock.Any(), gomock.Any()).Return(
		models.Session{}, fmt.Errorf("%w: %w", service.ErrLoginFailed, service.ErrInvalidCredentials))

	m := NewLoginModel(context.Background(), login, service.NewDerivedKeyCache())
	m.inputs[loginFieldEmail].SetValue("kim@veilpost.dev")
	m.inputs[loginFieldPassword].SetValue("wrong")

	_, cmd := m.Update(enterKey)
	msg := pumpUntil(t, m, cmd, stopOnNavigate)
	require.Nil(t, msg)

	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "Invalid email or password")
}

func TestLoginModel_RequiresEmailAndPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	login := servicemock.NewMockLoginService(ctrl)

	m := NewLoginModel(context.Background(), login, service.NewDerivedKeyCache())
	_, cmd := m.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Email and password are required")
}

func TestLoginModel_PrefillFocusesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	login := servicemock.NewMockLoginService(ctrl)

	m := NewLoginModel(context.Background(), login, service.NewDerivedKeyCache())
	_, _ = m.Update(loginPrefillMsg{
		email:   "kim@veilpost.dev",
		notice:  "Account created",
		otpHint: true,
	})

	assert.Equal(t, "kim@veilpost.dev", m.inputs[loginFieldEmail].Value())
	assert.Equal(t, loginFieldPassword, m.focus)
	assert.True(t, m.otpVisible)
	assert.Contains(t, m.View(), "Account created")
}

func TestLoginModel_ToggleOneDaySession(t *testing.T) {
	ctrl := gomock.NewController(t)
	login := servicemock.NewMockLoginService(ctrl)
	recorded := &paramsRecorder{}
	login.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params service.LoginParams) (models.Session, error) {
			recorded.add(params)
			return models.Session{}, nil
		})

	m := NewLoginModel(context.Background(), login, service.NewDerivedKeyCache())
	m.inputs[loginFieldEmail].SetValue("kim@veilpost.dev")
	m.inputs[loginFieldPassword].SetValue("pw")

	// Tab past email and password onto the toggle, flip it with space.
	_, _ = m.Update(tabKey)
	_, _ = m.Update(tabKey)
	require.Equal(t, m.toggleIndex(), m.focus)
	_, _ = m.Update(spaceKey)
	assert.True(t, m.oneDay)
	assert.Contains(t, m.View(), "[x] 24-hour token")

	_, cmd := m.Update(enterKey)
	_ = pumpUntil(t, m, cmd, stopOnNavigate)
	assert.True(t, recorded.last(t).OneDayLogin)
}

func TestLoginModel_EscAbandonsAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	login := servicemock.NewMockLoginService(ctrl)

	release := make(chan struct{})
	login.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params service.LoginParams) (models.Session, error) {
			<-release
			return models.Session{}, nil
		})

	m := NewLoginModel(context.Background(), login, service.NewDerivedKeyCache())
	m.inputs[loginFieldEmail].SetValue("kim@veilpost.dev")
	m.inputs[loginFieldPassword].SetValue("pw")

	_, _ = m.Update(enterKey)
	require.True(t, m.submitting)
	staleAttempt := m.attempt

	_, cmd := m.Update(escKey)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "welcome", nav.Page)
	assert.False(t, m.submitting)

	// The abandoned flow's late result is dropped, not rendered.
	close(release)
	_, _ = m.Update(loginDoneMsg{attempt: staleAttempt, err: service.ErrLoginFailed})
	assert.Empty(t, m.errMsg)
}
