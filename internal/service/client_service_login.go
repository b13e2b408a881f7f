// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/veilpost/veilpost-go/internal/adapter"
	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/crypto"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/store"
	"github.com/veilpost/veilpost-go/internal/utils"
	"github.com/veilpost/veilpost-go/models"
)

// LoginParams carries one login attempt.
type LoginParams struct {
	Email    string
	Password string

	// Captcha is an opaque proof-of-humanity token forwarded verbatim.
	Captcha string

	// OTPCode is the current one-time password, when the account demands
	// one. Leaving it empty against an OTP-enabled account aborts with
	// ErrOTPRequired before any challenge traffic.
	OTPCode string

	// OneDayLogin asks for a short-lived session token.
	OneDayLogin bool

	// Keys is an optional caller-owned cache of the derived key, so a
	// retry after an OTP prompt skips the derivation. Invalidated by the
	// flow once a login completes.
	Keys *DerivedKeyCache

	// Progress, when non-nil, is called just before each flow step.
	Progress func(LoginStep)
}

type clientLoginService struct {
	api    adapter.AccountAPI
	box    crypto.SecretBox
	signer crypto.SignatureEngine
	derive KeyDeriveExecutor

	sessions *SessionManager
	secrets  store.SecretStore
	accounts store.KnownAccountRepository

	captchaRequired bool

	log *logger.Logger
}

// NewClientLoginService wires a [LoginService] from its collaborators.
// secrets and accounts may be nil, which disables local persistence.
func NewClientLoginService(api adapter.AccountAPI, box crypto.SecretBox, signer crypto.SignatureEngine, derive KeyDeriveExecutor, sessions *SessionManager, secrets store.SecretStore, accounts store.KnownAccountRepository, appCfg config.ClientApp, log *logger.Logger) LoginService {
	return &clientLoginService{
		api:             api,
		box:             box,
		signer:          signer,
		derive:          derive,
		sessions:        sessions,
		secrets:         secrets,
		accounts:        accounts,
		captchaRequired: appCfg.CaptchaRequired,
		log:             log,
	}
}

func (s *clientLoginService) Login(ctx context.Context, params LoginParams) (models.Session, error) {
	fail := func(err error) (models.Session, error) {
		return models.Session{}, err
	}

	// Secrets unwrapped after the submit step. reject scrubs them and
	// drops the bearer token the adapter captured, so no failure leaves a
	// half-established session behind.
	var keychain, encPriv, signPriv []byte
	reject := func(err error) (models.Session, error) {
		crypto.Zeroize(keychain)
		crypto.Zeroize(encPriv)
		crypto.Zeroize(signPriv)
		s.api.SetToken("")
		return models.Session{}, err
	}

	// L1: captcha gate, before any network traffic.
	if err := loginStep(ctx, params.Progress, LoginStepCaptchaCheck); err != nil {
		return fail(err)
	}
	if s.captchaRequired && params.Captcha == "" {
		return fail(fmt.Errorf("%w: %w", ErrPolicyRejected, ErrCaptchaRequired))
	}

	// L2: fetch the public profile: derivation parameters and OTP flag.
	if err := loginStep(ctx, params.Progress, LoginStepFetchPublicRecord); err != nil {
		return fail(err)
	}
	public, err := s.api.PublicAccount(ctx, params.Email)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrLoginFailed, mapAdapterError(err)))
	}
	salt, err := public.KDF.SaltBytes()
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrAuthenticity, err))
	}

	// L3: derive, or reuse the cached key from a previous attempt with
	// the byte-identical password. Server-supplied cost parameters are
	// bounds-checked by the deriver before any memory is committed.
	if err := loginStep(ctx, params.Progress, LoginStepDeriveKey); err != nil {
		return fail(err)
	}
	key, cached := params.Keys.Lookup([]byte(params.Password))
	if !cached {
		key, err = s.derive.Derive(ctx, []byte(params.Password), salt, public.KDF.TimeCost, public.KDF.MemoryCost)
		if err != nil {
			return fail(fmt.Errorf("%w: deriving key: %w", ErrLoginFailed, err))
		}
		params.Keys.Store([]byte(params.Password), key)
	}
	defer crypto.Zeroize(key)

	// L4: OTP gate. Abort before any signing or challenge traffic so the
	// retry with a code costs only the steps above, minus the derivation.
	if err := loginStep(ctx, params.Progress, LoginStepOTPGate); err != nil {
		return fail(err)
	}
	if public.OTPEnabled && params.OTPCode == "" {
		return fail(ErrOTPRequired)
	}

	// L5: re-derive the auth keypair from the stretched password.
	if err := loginStep(ctx, params.Progress, LoginStepSeedAuthKeypair); err != nil {
		return fail(err)
	}
	authPub, authPriv, err := s.signer.KeypairFromSeed(key)
	if err != nil {
		return fail(fmt.Errorf("%w: seeding auth keypair: %v", ErrLoginFailed, err))
	}
	defer crypto.Zeroize(authPriv)

	// L6: single-use challenge.
	if err := loginStep(ctx, params.Progress, LoginStepFetchChallenge); err != nil {
		return fail(err)
	}
	challenge, err := s.api.LoginChallenge(ctx, params.Email)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrLoginFailed, mapAdapterError(err)))
	}

	// L7: sign the challenge payload and submit.
	if err := loginStep(ctx, params.Progress, LoginStepSignAndSubmit); err != nil {
		return fail(err)
	}
	toSign, err := base64.StdEncoding.DecodeString(challenge.ToSign)
	if err != nil {
		return fail(fmt.Errorf("%w: decoding challenge: %v", ErrAuthenticity, err))
	}
	sig, err := s.signer.Sign(authPriv, toSign)
	if err != nil {
		return fail(fmt.Errorf("%w: signing challenge: %v", ErrLoginFailed, err))
	}
	submission := models.LoginSubmission{
		ID:          challenge.ID,
		Signature:   base64.StdEncoding.EncodeToString(sig),
		OneDayLogin: params.OneDayLogin,
	}
	record, err := s.api.SubmitLogin(ctx, params.Email, submission, params.Captcha, params.OTPCode)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrOTPRequired) {
			// Server-side gate, e.g. OTP enabled between the public
			// fetch and the submit.
			return fail(ErrOTPRequired)
		}
		return fail(fmt.Errorf("%w: %w", ErrLoginFailed, mapped))
	}

	// L8: the returned record is untrusted until its self-signature
	// verifies against the key derived here, locally, from the password.
	if err := loginStep(ctx, params.Progress, LoginStepValidateRecord); err != nil {
		return reject(err)
	}
	if err := record.Validate(); err != nil {
		return reject(fmt.Errorf("%w: %v", ErrAuthenticity, err))
	}
	if record.Auth.PublicKey != base64.StdEncoding.EncodeToString(authPub) {
		return reject(fmt.Errorf("%w: auth public key mismatch", ErrAuthenticity))
	}
	payload, err := record.SignedPayload()
	if err != nil {
		return reject(fmt.Errorf("%w: %v", ErrAuthenticity, err))
	}
	recordSig, err := record.SignatureBytes()
	if err != nil {
		return reject(fmt.Errorf("%w: %v", ErrAuthenticity, err))
	}
	if err := s.signer.VerifyHash(authPub, payload, recordSig); err != nil {
		return reject(fmt.Errorf("%w: record signature: %v", ErrAuthenticity, err))
	}

	// L9: unwrap the keychain with the derived key. A failure here on a
	// record that passed L8 means tampered ciphertext, not a wrong
	// password: the server already verified the challenge signature.
	if err := loginStep(ctx, params.Progress, LoginStepDecryptKeychain); err != nil {
		return reject(err)
	}
	kcIV, kcCT, err := record.Keychain.Bytes()
	if err != nil {
		return reject(fmt.Errorf("%w: %v", ErrAuthenticity, err))
	}
	keychain, err = s.box.Open(key, kcIV, kcCT)
	if err != nil {
		return reject(fmt.Errorf("%w: opening keychain: %v", ErrAuthenticity, err))
	}

	// L10: unwrap both private keys with the keychain key.
	if err := loginStep(ctx, params.Progress, LoginStepDecryptKeypairs); err != nil {
		return reject(err)
	}
	kpIV, kpCT, err := record.Keypair.Cipher().Bytes()
	if err != nil {
		return reject(fmt.Errorf("%w: %v", ErrAuthenticity, err))
	}
	encPriv, err = s.box.Open(keychain, kpIV, kpCT)
	if err != nil {
		return reject(fmt.Errorf("%w: opening keypair: %v", ErrAuthenticity, err))
	}
	skIV, skCT, err := record.SignKeypair.Cipher().Bytes()
	if err != nil {
		return reject(fmt.Errorf("%w: %v", ErrAuthenticity, err))
	}
	signPriv, err = s.box.Open(keychain, skIV, skCT)
	if err != nil {
		return reject(fmt.Errorf("%w: opening sign keypair: %v", ErrAuthenticity, err))
	}
	encPub, err := record.Keypair.PublicKeyBytes()
	if err != nil {
		return reject(fmt.Errorf("%w: %v", ErrAuthenticity, err))
	}
	signPub, err := record.SignKeypair.PublicKeyBytes()
	if err != nil {
		return reject(fmt.Errorf("%w: %v", ErrAuthenticity, err))
	}

	// L11: install the session and tidy up.
	if err := loginStep(ctx, params.Progress, LoginStepEstablishSession); err != nil {
		return reject(err)
	}
	session := models.Session{
		AccountID:     record.ID,
		Email:         record.Email,
		EmailVerified: record.EmailVerified,
		Token:         s.api.Token(),
		OneDayLogin:   params.OneDayLogin,
		KeychainKey:   keychain,
		Keypair:       models.RawKeypair{Public: encPub, Private: encPriv},
		SignKeypair:   models.RawKeypair{Public: signPub, Private: signPriv},
	}
	s.sessions.Set(session)
	s.persist(ctx, session, record.Auth.PublicKey, public.OTPEnabled)
	params.Keys.Invalidate()

	if params.Progress != nil {
		params.Progress(LoginStepDone)
	}
	s.log.Info().Str("accountID", session.AccountID).Msg("session established")

	return session, nil
}

// persist saves the session and the known-account entry best-effort. A
// keyring or database hiccup must not undo a successful login.
func (s *clientLoginService) persist(ctx context.Context, session models.Session, authPublicKey string, otpEnabled bool) {
	if s.secrets != nil {
		if err := s.secrets.Save(session); err != nil {
			s.log.Warn().Err(err).Msg("session not persisted to secret store")
		}
	}
	if s.accounts != nil {
		known := models.KnownAccount{
			Email:         session.Email,
			AccountID:     session.AccountID,
			AuthPublicKey: authPublicKey,
			OTPEnabled:    otpEnabled,
			LastLoginAt:   time.Now(),
		}
		if err := s.accounts.Remember(ctx, known); err != nil {
			s.log.Warn().Err(err).Msg("known account not recorded")
		}
	}
}

func (s *clientLoginService) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("server-side logout failed")
	}
	s.api.SetToken("")

	if s.secrets != nil {
		if err := s.secrets.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("secret store not cleared")
		}
	}
	s.sessions.Clear()
	s.log.Info().Msg("logged out")
}

func (s *clientLoginService) Restore(ctx context.Context) (models.Session, error) {
	if s.secrets == nil {
		return models.Session{}, ErrNoSession
	}

	session, err := s.secrets.Load()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	// Cheap local sanity check only; the server still decides whether the
	// token is live on the first authenticated call.
	accountID, err := utils.ParseAccountIDFromJWT(session.Token)
	if err != nil || accountID != session.AccountID {
		if clearErr := s.secrets.Clear(); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("stale secret store not cleared")
		}
		return models.Session{}, fmt.Errorf("%w: stored token unusable", ErrNoSession)
	}

	s.api.SetToken(session.Token)
	s.sessions.Set(session)
	s.log.Info().Str("accountID", session.AccountID).Msg("session restored")

	return session, nil
}

// loginStep checks the context is still live and reports the next step.
func loginStep(ctx context.Context, progress func(LoginStep), step LoginStep) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if progress != nil {
		progress(step)
	}
	return nil
}
