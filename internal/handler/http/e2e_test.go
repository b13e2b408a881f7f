// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package http_test

import (
	"context"
	"encoding/base64"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilpost/veilpost-go/internal/adapter"
	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/crypto"
	httphandler "github.com/veilpost/veilpost-go/internal/handler/http"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/service"
	"github.com/veilpost/veilpost-go/internal/store"
	"github.com/veilpost/veilpost-go/internal/utils"
	"github.com/veilpost/veilpost-go/internal/workers"
	"github.com/veilpost/veilpost-go/models"
)

// e2eProfile keeps Argon2id affordable for a test run while staying inside
// the bounds the login flow accepts.
var e2eProfile = crypto.CostProfile{TimeCost: 1, MemoryCost: 64 * 1024}

// e2eServerAuth is the server auth configuration shared by the test server
// and the verification-token check.
var e2eServerAuth = config.ServerAuth{
	TokenSignKey:  "e2e-sign-key",
	TokenIssuer:   "veilpost",
	TokenDuration: time.Hour,
	OTPIssuer:     "Veilpost",
	HashKey:       "e2e-verification-key",
}

// startDevServer boots the real handler stack over in-memory stores and
// returns its base URL.
func startDevServer(t *testing.T) string {
	t.Helper()

	stores := store.NewMemoryStorages(logger.Nop())
	cfg := &config.ServerConfig{Auth: e2eServerAuth}
	services, err := service.NewServices(stores, cfg, models.NewBuildInfo("1.0.0-e2e", "", ""), logger.Nop())
	require.NoError(t, err)

	server := httptest.NewServer(httphandler.NewHandler(services, logger.Nop()).Init())
	t.Cleanup(server.Close)
	return server.URL
}

// newE2EClient wires the real client stack (resty transport, derive worker,
// flow services) against the given server URL. Local persistence is off.
func newE2EClient(t *testing.T, serverURL string) (*service.ClientServices, adapter.AccountAPI) {
	t.Helper()

	api, err := adapter.NewHTTPAccountAPI(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 10 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	runner := workers.NewDeriveRunner(crypto.NewKeyDeriver(), 2, logger.Nop())
	runner.Run()
	t.Cleanup(runner.Stop)

	svcs := service.NewClientServices(api, nil, nil, runner, config.ClientApp{MinPasswordScore: 3}, logger.Nop())
	return svcs, api
}

// buildAccountRecord assembles a signed account record with real crypto at
// the test cost profile, the way the registration flow would, and returns
// the record plus the secrets needed to verify what login unwraps.
func buildAccountRecord(t *testing.T, email, password string) (models.AccountRecord, []byte) {
	t.Helper()

	deriver := crypto.NewKeyDeriver()
	box := crypto.NewSecretBox()
	signer := crypto.NewSignatureEngine()

	salt, err := deriver.GenerateSalt()
	require.NoError(t, err)
	key, err := deriver.Derive([]byte(password), salt, e2eProfile.TimeCost, e2eProfile.MemoryCost)
	require.NoError(t, err)

	authPub, authPriv, err := signer.KeypairFromSeed(key)
	require.NoError(t, err)

	keychain, err := box.GenerateKey()
	require.NoError(t, err)
	kcIV, kcCT, err := box.Seal(key, keychain)
	require.NoError(t, err)

	encPub, encPriv, err := crypto.NewBoxKeypair()
	require.NoError(t, err)
	kpIV, kpCT, err := box.Seal(keychain, encPriv)
	require.NoError(t, err)

	signPub, signPriv, err := signer.NewKeypair()
	require.NoError(t, err)
	skIV, skCT, err := box.Seal(keychain, signPriv)
	require.NoError(t, err)

	record := models.AccountRecord{
		Email: email,
		KDF: models.KDFParams{
			Salt:       base64.StdEncoding.EncodeToString(salt),
			TimeCost:   e2eProfile.TimeCost,
			MemoryCost: e2eProfile.MemoryCost,
		},
		Keychain: models.SafeCipher{
			IV:         base64.StdEncoding.EncodeToString(kcIV),
			CipherText: base64.StdEncoding.EncodeToString(kcCT),
		},
		Keypair: models.WrappedKeypair{
			PublicKey:  base64.StdEncoding.EncodeToString(encPub),
			IV:         base64.StdEncoding.EncodeToString(kpIV),
			CipherText: base64.StdEncoding.EncodeToString(kpCT),
		},
		SignKeypair: models.WrappedKeypair{
			PublicKey:  base64.StdEncoding.EncodeToString(signPub),
			IV:         base64.StdEncoding.EncodeToString(skIV),
			CipherText: base64.StdEncoding.EncodeToString(skCT),
		},
		IPLookupConsent: true,
		Algorithms:      crypto.Algorithms,
	}

	payload, err := record.SignedPayload()
	require.NoError(t, err)
	sig, err := signer.SignHash(authPriv, payload)
	require.NoError(t, err)
	record.Auth = models.AuthKey{PublicKey: base64.StdEncoding.EncodeToString(authPub)}
	record.Signature = base64.StdEncoding.EncodeToString(sig)

	return record, keychain
}

// TestDevServer_FullAccountLifecycle drives the real client services against
// the real dev server over HTTP: register, log in, enroll an authenticator,
// verify the address, and log in again under the stricter rules.
func TestDevServer_FullAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	serverURL := startDevServer(t)
	svcs, api := newE2EClient(t, serverURL)

	const (
		email    = "kim@veilpost.dev"
		password = "quartz-mantis-copper-flute"
	)

	// The client probes the server before anything else.
	info, err := api.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0-e2e", info.Version)

	// Register.
	record, keychain := buildAccountRecord(t, email, password)
	created, err := api.CreateAccount(ctx, record, "")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.EmailVerified, "fresh accounts start unverified")

	// A second registration under the same address must bounce.
	_, err = api.CreateAccount(ctx, record, "")
	assert.ErrorIs(t, err, adapter.ErrConflict)

	// Log in with the password alone.
	session, err := svcs.Login.Login(ctx, service.LoginParams{Email: email, Password: password})
	require.NoError(t, err)
	assert.Equal(t, created.ID, session.AccountID)
	assert.Equal(t, keychain, session.KeychainKey, "login must unwrap the exact keychain key")
	assert.False(t, session.EmailVerified)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, session.Token, api.Token())

	// Enroll an authenticator.
	setup, err := svcs.OTP.Setup(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, setup.Secret)
	assert.Contains(t, setup.ProvisioningURI, "otpauth://totp/")

	code, err := totp.GenerateCode(setup.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, svcs.OTP.Confirm(ctx, code))

	public, err := api.PublicAccount(ctx, email)
	require.NoError(t, err)
	assert.True(t, public.OTPEnabled)

	// Tear the session down.
	svcs.Login.Logout(ctx)
	_, active := svcs.Sessions.Current()
	assert.False(t, active)
	assert.Empty(t, api.Token())

	// The account now demands a code before any challenge traffic.
	_, err = svcs.Login.Login(ctx, service.LoginParams{Email: email, Password: password})
	assert.ErrorIs(t, err, service.ErrOTPRequired)

	// Verify the address through the browser-facing link.
	require.NoError(t, api.ResendVerification(ctx, email))
	verifyURL := fmt.Sprintf("%s/api/account/%s/verify?token=%s",
		serverURL, url.PathEscape(email), utils.HashString(email, e2eServerAuth.HashKey))
	resp, err := nethttp.Get(verifyURL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	// Log back in with a fresh code and observe both state changes.
	code, err = totp.GenerateCode(setup.Secret, time.Now())
	require.NoError(t, err)
	session, err = svcs.Login.Login(ctx, service.LoginParams{Email: email, Password: password, OTPCode: code})
	require.NoError(t, err)
	assert.True(t, session.EmailVerified)
	assert.Equal(t, keychain, session.KeychainKey)
}

// TestDevServer_RejectsWrongPassword proves a wrong password fails at the
// challenge signature and surfaces as invalid credentials, not as a
// server-side record problem.
func TestDevServer_RejectsWrongPassword(t *testing.T) {
	ctx := context.Background()
	serverURL := startDevServer(t)
	svcs, api := newE2EClient(t, serverURL)

	const email = "mira@veilpost.dev"
	record, _ := buildAccountRecord(t, email, "correct-horse-battery-staple")
	_, err := api.CreateAccount(ctx, record, "")
	require.NoError(t, err)

	_, err = svcs.Login.Login(ctx, service.LoginParams{Email: email, Password: "wrong-horse-battery-staple"})
	require.ErrorIs(t, err, service.ErrLoginFailed)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, active := svcs.Sessions.Current()
	assert.False(t, active)
}

// TestDevServer_RejectsTamperedRegistration proves the server checks the
// record self-signature before storing anything.
func TestDevServer_RejectsTamperedRegistration(t *testing.T) {
	ctx := context.Background()
	serverURL := startDevServer(t)
	_, api := newE2EClient(t, serverURL)

	record, _ := buildAccountRecord(t, "eve@veilpost.dev", "some-strong-passphrase")
	record.Email = "mallory@veilpost.dev" // signed field changed after signing

	_, err := api.CreateAccount(ctx, record, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)

	_, err = api.PublicAccount(ctx, "mallory@veilpost.dev")
	assert.ErrorIs(t, err, adapter.ErrNotFound, "nothing may be stored for a tampered record")
}
