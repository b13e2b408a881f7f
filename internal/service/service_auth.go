// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/crypto"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/store"
	"github.com/veilpost/veilpost-go/internal/utils"
	"github.com/veilpost/veilpost-go/models"
)

const (
	// challengeTTL bounds how long a client has between fetching a
	// challenge and submitting the signed answer.
	challengeTTL = 2 * time.Minute

	// oneDayTokenDuration is the session lifetime when the client asks
	// for a short-lived login.
	oneDayTokenDuration = 24 * time.Hour

	challengePayloadSize = 32
)

// authService is the dev server's authentication core: it never compares
// passwords, only Ed25519 signatures over single-use challenges.
type authService struct {
	directory  store.AccountDirectory
	challenges store.ChallengeStore
	signer     crypto.SignatureEngine

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	otpIssuer     string

	log *logger.Logger
}

// NewAuthService wires an [AuthService] over the directory and challenge
// store, with token and OTP settings from cfg.
func NewAuthService(directory store.AccountDirectory, challenges store.ChallengeStore, cfg config.ServerAuth, log *logger.Logger) AuthService {
	return &authService{
		directory:     directory,
		challenges:    challenges,
		signer:        crypto.NewSignatureEngine(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		otpIssuer:     cfg.OTPIssuer,
		log:           log,
	}
}

func (a *authService) IssueChallenge(ctx context.Context, email string) (models.Challenge, error) {
	log := logger.FromContext(ctx)

	entry, err := a.directory.ByEmail(ctx, email)
	if err != nil {
		return models.Challenge{}, fmt.Errorf("account lookup failed: %w", err)
	}

	payload := make([]byte, challengePayloadSize)
	if _, err := rand.Read(payload); err != nil {
		return models.Challenge{}, fmt.Errorf("generating challenge payload: %w", err)
	}

	issued := store.IssuedChallenge{
		AccountID: entry.Record.ID,
		Email:     entry.Record.Email,
		Payload:   payload,
		ExpiresAt: time.Now().Add(challengeTTL),
	}
	if err := a.challenges.Put(ctx, issued); err != nil {
		return models.Challenge{}, fmt.Errorf("storing challenge: %w", err)
	}

	log.Debug().Str("accountID", entry.Record.ID).Msg("login challenge issued")
	return models.Challenge{
		ID:     entry.Record.ID,
		ToSign: base64.StdEncoding.EncodeToString(payload),
	}, nil
}

func (a *authService) Login(ctx context.Context, email string, submission models.LoginSubmission, otpCode string) (models.AccountRecord, models.Token, error) {
	log := logger.FromContext(ctx)

	challenge, err := a.challenges.Take(ctx, submission.ID)
	if err != nil {
		if errors.Is(err, store.ErrChallengeNotFound) {
			return models.AccountRecord{}, models.Token{}, ErrChallengeExpired
		}
		return models.AccountRecord{}, models.Token{}, fmt.Errorf("challenge lookup failed: %w", err)
	}
	if !strings.EqualFold(challenge.Email, email) {
		return models.AccountRecord{}, models.Token{}, ErrChallengeExpired
	}

	entry, err := a.directory.ByID(ctx, challenge.AccountID)
	if err != nil {
		return models.AccountRecord{}, models.Token{}, fmt.Errorf("account lookup failed: %w", err)
	}

	authPub, err := entry.Record.AuthPublicKeyBytes()
	if err != nil {
		return models.AccountRecord{}, models.Token{}, fmt.Errorf("stored record unusable: %w", err)
	}
	sig, err := base64.StdEncoding.DecodeString(submission.Signature)
	if err != nil || len(sig) != models.SignatureSize {
		return models.AccountRecord{}, models.Token{}, ErrInvalidChallengeSignature
	}
	if err := a.signer.Verify(authPub, challenge.Payload, sig); err != nil {
		log.Warn().Str("accountID", entry.Record.ID).Msg("challenge answer rejected")
		return models.AccountRecord{}, models.Token{}, ErrInvalidChallengeSignature
	}

	if entry.OTPEnabled {
		if otpCode == "" {
			return models.AccountRecord{}, models.Token{}, ErrOTPRequired
		}
		if !totp.Validate(otpCode, entry.OTPSecret) {
			return models.AccountRecord{}, models.Token{}, ErrInvalidOTPCode
		}
	}

	duration := a.tokenDuration
	if submission.OneDayLogin {
		duration = oneDayTokenDuration
	}
	token, err := utils.GenerateJWTToken(a.tokenIssuer, entry.Record.ID, duration, a.tokenSignKey)
	if err != nil {
		return models.AccountRecord{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("accountID", entry.Record.ID).Bool("oneDay", submission.OneDayLogin).Msg("login settled")
	return entry.Record, token, nil
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) SetupOTP(ctx context.Context, accountID string) (models.OTPSetup, error) {
	log := logger.FromContext(ctx)

	entry, err := a.directory.ByID(ctx, accountID)
	if err != nil {
		return models.OTPSetup{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if entry.OTPEnabled {
		return models.OTPSetup{}, ErrOTPAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      a.otpIssuer,
		AccountName: entry.Record.Email,
	})
	if err != nil {
		return models.OTPSetup{}, fmt.Errorf("generating totp secret: %w", err)
	}

	if err := a.directory.SetPendingOTP(ctx, accountID, key.Secret()); err != nil {
		return models.OTPSetup{}, fmt.Errorf("storing pending totp secret: %w", err)
	}

	log.Info().Str("accountID", accountID).Msg("totp enrollment started")
	return models.OTPSetup{
		Secret:          key.Secret(),
		ProvisioningURI: key.URL(),
	}, nil
}

func (a *authService) ConfirmOTP(ctx context.Context, accountID, code string) error {
	log := logger.FromContext(ctx)

	entry, err := a.directory.ByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("account lookup failed: %w", err)
	}
	if entry.OTPEnabled {
		return ErrOTPAlreadyEnabled
	}
	if entry.OTPSecret == "" {
		return ErrOTPNotRequested
	}
	if !totp.Validate(code, entry.OTPSecret) {
		return ErrInvalidOTPCode
	}

	if err := a.directory.EnableOTP(ctx, accountID); err != nil {
		return fmt.Errorf("enabling otp: %w", err)
	}

	log.Info().Str("accountID", accountID).Msg("totp enrollment confirmed")
	return nil
}
