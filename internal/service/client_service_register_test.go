// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/veilpost/veilpost-go/internal/adapter"
	"github.com/veilpost/veilpost-go/internal/app"
	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/crypto"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/mock"
	"github.com/veilpost/veilpost-go/models"
)

func testConfig() config.ClientApp {
	return config.ClientApp{MinPasswordScore: 3}
}

// testProfile keeps Argon2id cheap enough for unit tests while staying
// inside the deriver's accepted bounds.
var testProfile = crypto.CostProfile{TimeCost: 1, MemoryCost: 64 * 1024}

// directExecutor derives synchronously on the calling goroutine, standing in
// for the worker-backed executor.
type directExecutor struct {
	deriver crypto.KeyDeriver
}

func (e *directExecutor) Derive(_ context.Context, password, salt []byte, timeCost uint32, memoryCost uint64) ([]byte, error) {
	return e.deriver.Derive(password, salt, timeCost, memoryCost)
}

// countingExecutor counts derivations so tests can prove a cache hit
// skipped the expensive call.
type countingExecutor struct {
	directExecutor
	calls int
}

func (e *countingExecutor) Derive(ctx context.Context, password, salt []byte, timeCost uint32, memoryCost uint64) ([]byte, error) {
	e.calls++
	return e.directExecutor.Derive(ctx, password, salt, timeCost, memoryCost)
}

// stubScorer pins the strength score so tests control the policy gate.
type stubScorer struct {
	score int
}

func (s stubScorer) Score(string, ...string) int {
	return s.score
}

// notFoundErr mimics the adapter's wrapped 404 for an unknown email.
func notFoundErr() error {
	return fmt.Errorf("%w: %s", adapter.ErrNotFound, `{"detail":"account not found"}`)
}

// newTestRegistrationSvc builds a registration service with real crypto, a
// synchronous executor, a permissive scorer, and a mocked server.
func newTestRegistrationSvc(t *testing.T, ctrl *gomock.Controller) (*clientRegistrationService, *mock.MockAccountAPI) {
	t.Helper()

	api := mock.NewMockAccountAPI(ctrl)
	deriver := crypto.NewKeyDeriver()

	svc := NewClientRegistrationService(
		api,
		deriver,
		crypto.NewSecretBox(),
		crypto.NewSignatureEngine(),
		&directExecutor{deriver: deriver},
		stubScorer{score: 4},
		testConfig(),
		logger.Nop(),
	).(*clientRegistrationService)
	svc.profile = testProfile

	return svc, api
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientRegistrationService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	const (
		email    = "mira@veilpost.dev"
		password = "quartz-mantis-copper-flute"
	)

	var submitted models.AccountRecord
	gomock.InOrder(
		api.EXPECT().PublicAccount(ctx, email).Return(models.PublicAccount{}, notFoundErr()),
		api.EXPECT().CreateAccount(ctx, gomock.Any(), "").DoAndReturn(
			func(_ context.Context, record models.AccountRecord, _ string) (models.AccountRecord, error) {
				submitted = record
				record.ID = "acc-1"
				record.Created = time.Now()
				return record, nil
			},
		),
	)

	created, err := svc.Register(ctx, RegisterParams{
		Email:           email,
		Password:        password,
		IPLookupConsent: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "acc-1", created.ID)

	// The submitted record is structurally complete and self-signed.
	require.NoError(t, submitted.Validate())
	assert.Equal(t, email, submitted.Email)
	assert.Equal(t, crypto.Algorithms, submitted.Algorithms)
	assert.True(t, submitted.IPLookupConsent)
	assert.Equal(t, testProfile.TimeCost, submitted.KDF.TimeCost)
	assert.Equal(t, testProfile.MemoryCost, submitted.KDF.MemoryCost)

	payload, err := submitted.SignedPayload()
	require.NoError(t, err)
	authPub, err := submitted.AuthPublicKeyBytes()
	require.NoError(t, err)
	sig, err := submitted.SignatureBytes()
	require.NoError(t, err)

	signer := crypto.NewSignatureEngine()
	assert.NoError(t, signer.VerifyHash(authPub, payload, sig))
}

func TestClientRegistrationService_Register_BundleUnwrapsWithPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	const password = "quartz-mantis-copper-flute"

	var submitted models.AccountRecord
	api.EXPECT().PublicAccount(ctx, gomock.Any()).Return(models.PublicAccount{}, notFoundErr())
	api.EXPECT().CreateAccount(ctx, gomock.Any(), "").DoAndReturn(
		func(_ context.Context, record models.AccountRecord, _ string) (models.AccountRecord, error) {
			submitted = record
			return record, nil
		},
	)

	_, err := svc.Register(ctx, RegisterParams{Email: "mira@veilpost.dev", Password: password})
	require.NoError(t, err)

	// Everything the server stores must open with the password alone:
	// derive, unwrap the keychain, unwrap both private keys.
	salt, err := submitted.KDF.SaltBytes()
	require.NoError(t, err)

	deriver := crypto.NewKeyDeriver()
	key, err := deriver.Derive([]byte(password), salt, submitted.KDF.TimeCost, submitted.KDF.MemoryCost)
	require.NoError(t, err)

	box := crypto.NewSecretBox()
	kcIV, kcCT, err := submitted.Keychain.Bytes()
	require.NoError(t, err)
	keychain, err := box.Open(key, kcIV, kcCT)
	require.NoError(t, err)
	assert.Len(t, keychain, models.KeySize)

	kpIV, kpCT, err := submitted.Keypair.Cipher().Bytes()
	require.NoError(t, err)
	encPriv, err := box.Open(keychain, kpIV, kpCT)
	require.NoError(t, err)
	assert.Len(t, encPriv, models.KeySize)

	skIV, skCT, err := submitted.SignKeypair.Cipher().Bytes()
	require.NoError(t, err)
	_, err = box.Open(keychain, skIV, skCT)
	require.NoError(t, err)

	// The auth keypair reproduces deterministically from the same key.
	signer := crypto.NewSignatureEngine()
	authPub, _, err := signer.KeypairFromSeed(key)
	require.NoError(t, err)
	storedAuthPub, err := submitted.AuthPublicKeyBytes()
	require.NoError(t, err)
	assert.Equal(t, storedAuthPub, authPub)
}

func TestClientRegistrationService_Register_WeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRegistrationSvc(t, ctrl)
	svc.scorer = stubScorer{score: 1}

	_, err := svc.Register(context.Background(), RegisterParams{
		Email:    "mira@veilpost.dev",
		Password: "hunter2",
	})

	// No EXPECT on the API: the flow must abort before any network call.
	assert.ErrorIs(t, err, ErrPolicyRejected)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestClientRegistrationService_Register_CaptchaGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	svc.captchaRequired = true
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Email: "mira@veilpost.dev", Password: "quartz-mantis-copper-flute"})
	assert.ErrorIs(t, err, ErrPolicyRejected)
	assert.ErrorIs(t, err, ErrCaptchaRequired)

	// With a token the gate opens and the captcha rides along to submit.
	api.EXPECT().PublicAccount(ctx, gomock.Any()).Return(models.PublicAccount{}, notFoundErr())
	api.EXPECT().CreateAccount(ctx, gomock.Any(), "captcha-tok").DoAndReturn(
		func(_ context.Context, record models.AccountRecord, _ string) (models.AccountRecord, error) {
			return record, nil
		},
	)

	_, err = svc.Register(ctx, RegisterParams{
		Email:    "mira@veilpost.dev",
		Password: "quartz-mantis-copper-flute",
		Captcha:  "captcha-tok",
	})
	assert.NoError(t, err)
}

func TestClientRegistrationService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	api.EXPECT().PublicAccount(ctx, "taken@veilpost.dev").Return(models.PublicAccount{}, nil)

	_, err := svc.Register(ctx, RegisterParams{
		Email:    "taken@veilpost.dev",
		Password: "quartz-mantis-copper-flute",
	})

	assert.ErrorIs(t, err, ErrPolicyRejected)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestClientRegistrationService_Register_EmailProbeFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	probeErr := fmt.Errorf("%w: %s", adapter.ErrBadGateway, "upstream exploded")
	api.EXPECT().PublicAccount(ctx, gomock.Any()).Return(models.PublicAccount{}, probeErr)

	_, err := svc.Register(ctx, RegisterParams{
		Email:    "mira@veilpost.dev",
		Password: "quartz-mantis-copper-flute",
	})

	// A transport failure is not "email available"; it aborts the flow
	// with the original sentinel intact.
	assert.ErrorIs(t, err, ErrRegistrationFailed)
	assert.ErrorIs(t, err, adapter.ErrBadGateway)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestClientRegistrationService_Register_ConflictOnSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	api.EXPECT().PublicAccount(ctx, gomock.Any()).Return(models.PublicAccount{}, notFoundErr())
	api.EXPECT().CreateAccount(ctx, gomock.Any(), "").Return(models.AccountRecord{},
		fmt.Errorf("%w: %s", adapter.ErrConflict, fmt.Sprintf(`{"detail":%q}`, app.MsgEmailAlreadyRegistered)))

	_, err := svc.Register(ctx, RegisterParams{
		Email:    "raced@veilpost.dev",
		Password: "quartz-mantis-copper-flute",
	})

	// Lost the race between probe and submit; still a policy rejection.
	assert.ErrorIs(t, err, ErrRegistrationFailed)
	assert.ErrorIs(t, err, ErrPolicyRejected)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestClientRegistrationService_Register_ProgressSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	api.EXPECT().PublicAccount(ctx, gomock.Any()).Return(models.PublicAccount{}, notFoundErr())
	api.EXPECT().CreateAccount(ctx, gomock.Any(), "").DoAndReturn(
		func(_ context.Context, record models.AccountRecord, _ string) (models.AccountRecord, error) {
			return record, nil
		},
	)

	var steps []RegistrationStep
	_, err := svc.Register(ctx, RegisterParams{
		Email:    "mira@veilpost.dev",
		Password: "quartz-mantis-copper-flute",
		Progress: func(step RegistrationStep) {
			steps = append(steps, step)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []RegistrationStep{
		RegStepCheckPasswordStrength,
		RegStepCheckEmailAvailability,
		RegStepGenerateSalt,
		RegStepDeriveKey,
		RegStepSeedAuthKeypair,
		RegStepGenerateKeychain,
		RegStepGenerateKeypairs,
		RegStepBuildRecord,
		RegStepSignRecord,
		RegStepSubmit,
		RegStepDone,
	}, steps)
}

func TestClientRegistrationService_Register_CanceledMidFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api.EXPECT().PublicAccount(gomock.Any(), gomock.Any()).Return(models.PublicAccount{}, notFoundErr())

	_, err := svc.Register(ctx, RegisterParams{
		Email:    "mira@veilpost.dev",
		Password: "quartz-mantis-copper-flute",
		Progress: func(step RegistrationStep) {
			if step == RegStepDeriveKey {
				cancel()
			}
		},
	})

	// No EXPECT on CreateAccount: the flow must stop at the next step
	// boundary after cancellation.
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientRegistrationService_Register_SaltGenerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	deriver := mock.NewMockKeyDeriver(ctrl)
	svc.deriver = deriver
	ctx := context.Background()

	api.EXPECT().PublicAccount(ctx, gomock.Any()).Return(models.PublicAccount{}, notFoundErr())
	deriver.EXPECT().GenerateSalt().Return(nil, errors.New("entropy pool on strike"))

	_, err := svc.Register(ctx, RegisterParams{
		Email:    "mira@veilpost.dev",
		Password: "quartz-mantis-copper-flute",
	})

	assert.ErrorIs(t, err, ErrRegistrationFailed)
	assert.ErrorContains(t, err, "generating salt")
}

// ── ResendVerification ───────────────────────────────────────────────────────

func TestClientRegistrationService_ResendVerification_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	api.EXPECT().ResendVerification(ctx, "mira@veilpost.dev").Return(nil)

	assert.NoError(t, svc.ResendVerification(ctx, "mira@veilpost.dev"))
}

func TestClientRegistrationService_ResendVerification_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()

	api.EXPECT().ResendVerification(ctx, gomock.Any()).Return(notFoundErr())

	err := svc.ResendVerification(ctx, "ghost@veilpost.dev")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
