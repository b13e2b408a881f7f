// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/veilpost/veilpost-go/internal/adapter"
	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/crypto"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/models"
)

// RegisterParams carries one registration attempt.
type RegisterParams struct {
	Email    string
	Password string

	// Captcha is an opaque proof-of-humanity token forwarded verbatim.
	// Required before any network traffic when captcha enforcement is on.
	Captcha string

	// IPLookupConsent is the account's consent flag for coarse
	// IP-geolocation on new-device mail. Stored on the record as-is.
	IPLookupConsent bool

	// Progress, when non-nil, is called just before each flow step.
	Progress func(RegistrationStep)
}

type clientRegistrationService struct {
	api     adapter.AccountAPI
	deriver crypto.KeyDeriver
	box     crypto.SecretBox
	signer  crypto.SignatureEngine
	derive  KeyDeriveExecutor
	scorer  PasswordScorer

	// profile is the derivation cost preset for new accounts. Always the
	// sensitive preset in production; tests drop it to keep runs fast.
	profile crypto.CostProfile

	minPasswordScore int
	captchaRequired  bool

	log *logger.Logger
}

// NewClientRegistrationService wires a [RegistrationService] from its
// collaborators. New accounts derive with the sensitive cost preset.
func NewClientRegistrationService(api adapter.AccountAPI, deriver crypto.KeyDeriver, box crypto.SecretBox, signer crypto.SignatureEngine, derive KeyDeriveExecutor, scorer PasswordScorer, appCfg config.ClientApp, log *logger.Logger) RegistrationService {
	return &clientRegistrationService{
		api:              api,
		deriver:          deriver,
		box:              box,
		signer:           signer,
		derive:           derive,
		scorer:           scorer,
		profile:          crypto.ProfileSensitive,
		minPasswordScore: appCfg.MinPasswordScore,
		captchaRequired:  appCfg.CaptchaRequired,
		log:              log,
	}
}

func (s *clientRegistrationService) Register(ctx context.Context, params RegisterParams) (models.AccountRecord, error) {
	fail := func(err error) (models.AccountRecord, error) {
		return models.AccountRecord{}, err
	}

	// R1: local policy gates, before any secret material exists.
	if err := regStep(ctx, params.Progress, RegStepCheckPasswordStrength); err != nil {
		return fail(err)
	}
	if s.captchaRequired && params.Captcha == "" {
		return fail(fmt.Errorf("%w: %w", ErrPolicyRejected, ErrCaptchaRequired))
	}
	if score := s.scorer.Score(params.Password, params.Email); score < s.minPasswordScore {
		return fail(fmt.Errorf("%w: %w: score %d, need %d", ErrPolicyRejected, ErrWeakPassword, score, s.minPasswordScore))
	}

	// R2: probe availability so the user learns about a taken address
	// before paying for the derivation.
	if err := regStep(ctx, params.Progress, RegStepCheckEmailAvailability); err != nil {
		return fail(err)
	}
	_, err := s.api.PublicAccount(ctx, params.Email)
	switch {
	case err == nil:
		return fail(fmt.Errorf("%w: %w", ErrPolicyRejected, ErrEmailTaken))
	case !errors.Is(err, adapter.ErrNotFound):
		return fail(fmt.Errorf("%w: %w", ErrRegistrationFailed, mapAdapterError(err)))
	}

	// R3: fresh salt for this account.
	if err := regStep(ctx, params.Progress, RegStepGenerateSalt); err != nil {
		return fail(err)
	}
	salt, err := s.deriver.GenerateSalt()
	if err != nil {
		return fail(fmt.Errorf("%w: generating salt: %v", ErrRegistrationFailed, err))
	}

	// R4: stretch the password. This is the slow, memory-hard part.
	if err := regStep(ctx, params.Progress, RegStepDeriveKey); err != nil {
		return fail(err)
	}
	key, err := s.derive.Derive(ctx, []byte(params.Password), salt, s.profile.TimeCost, s.profile.MemoryCost)
	if err != nil {
		return fail(fmt.Errorf("%w: deriving key: %w", ErrRegistrationFailed, err))
	}
	defer crypto.Zeroize(key)

	// R5: the derived key seeds the auth keypair deterministically, so
	// login can re-derive the same keypair from the same password.
	if err := regStep(ctx, params.Progress, RegStepSeedAuthKeypair); err != nil {
		return fail(err)
	}
	authPub, authPriv, err := s.signer.KeypairFromSeed(key)
	if err != nil {
		return fail(fmt.Errorf("%w: seeding auth keypair: %v", ErrRegistrationFailed, err))
	}
	defer crypto.Zeroize(authPriv)

	// R6: random keychain key, wrapped under the derived key.
	if err := regStep(ctx, params.Progress, RegStepGenerateKeychain); err != nil {
		return fail(err)
	}
	keychain, err := s.box.GenerateKey()
	if err != nil {
		return fail(fmt.Errorf("%w: generating keychain: %v", ErrRegistrationFailed, err))
	}
	defer crypto.Zeroize(keychain)
	kcIV, kcCT, err := s.box.Seal(key, keychain)
	if err != nil {
		return fail(fmt.Errorf("%w: wrapping keychain: %v", ErrRegistrationFailed, err))
	}

	// R7: asymmetric keypairs, private halves wrapped under the keychain.
	if err := regStep(ctx, params.Progress, RegStepGenerateKeypairs); err != nil {
		return fail(err)
	}
	encPub, encPriv, err := crypto.NewBoxKeypair()
	if err != nil {
		return fail(fmt.Errorf("%w: generating keypair: %v", ErrRegistrationFailed, err))
	}
	defer crypto.Zeroize(encPriv)
	kpIV, kpCT, err := s.box.Seal(keychain, encPriv)
	if err != nil {
		return fail(fmt.Errorf("%w: wrapping keypair: %v", ErrRegistrationFailed, err))
	}
	signPub, signPriv, err := s.signer.NewKeypair()
	if err != nil {
		return fail(fmt.Errorf("%w: generating sign keypair: %v", ErrRegistrationFailed, err))
	}
	defer crypto.Zeroize(signPriv)
	skIV, skCT, err := s.box.Seal(keychain, signPriv)
	if err != nil {
		return fail(fmt.Errorf("%w: wrapping sign keypair: %v", ErrRegistrationFailed, err))
	}

	// R8: assemble the record. All byte fields travel base64-encoded.
	if err := regStep(ctx, params.Progress, RegStepBuildRecord); err != nil {
		return fail(err)
	}
	record := models.AccountRecord{
		Email: params.Email,
		KDF: models.KDFParams{
			Salt:       base64.StdEncoding.EncodeToString(salt),
			TimeCost:   s.profile.TimeCost,
			MemoryCost: s.profile.MemoryCost,
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
		IPLookupConsent: params.IPLookupConsent,
		Algorithms:      crypto.Algorithms,
	}

	// R9: self-sign. The auth public key and the signature itself stay
	// outside the signed payload.
	if err := regStep(ctx, params.Progress, RegStepSignRecord); err != nil {
		return fail(err)
	}
	payload, err := record.SignedPayload()
	if err != nil {
		return fail(fmt.Errorf("%w: building signed payload: %v", ErrRegistrationFailed, err))
	}
	sig, err := s.signer.SignHash(authPriv, payload)
	if err != nil {
		return fail(fmt.Errorf("%w: signing record: %v", ErrRegistrationFailed, err))
	}
	record.Auth = models.AuthKey{PublicKey: base64.StdEncoding.EncodeToString(authPub)}
	record.Signature = base64.StdEncoding.EncodeToString(sig)

	// R10: submit.
	if err := regStep(ctx, params.Progress, RegStepSubmit); err != nil {
		return fail(err)
	}
	created, err := s.api.CreateAccount(ctx, record, params.Captcha)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrRegistrationFailed, mapAdapterError(err)))
	}

	if params.Progress != nil {
		params.Progress(RegStepDone)
	}
	s.log.Info().Str("accountID", created.ID).Msg("account registered")

	return created, nil
}

func (s *clientRegistrationService) ResendVerification(ctx context.Context, email string) error {
	if err := s.api.ResendVerification(ctx, email); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

// regStep checks the context is still live and reports the next step.
// Cancellation between steps surfaces as the bare context error.
func regStep(ctx context.Context, progress func(RegistrationStep), step RegistrationStep) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if progress != nil {
		progress(step)
	}
	return nil
}
