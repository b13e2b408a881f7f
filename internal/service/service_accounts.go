// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"context"
	"fmt"

	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/crypto"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/store"
	"github.com/veilpost/veilpost-go/internal/utils"
	"github.com/veilpost/veilpost-go/models"
)

// accountService is the dev server's account lifecycle. The server never
// sees a password: it accepts whatever record the client signed, checks
// the signature is internally consistent, and stores it opaquely.
type accountService struct {
	directory store.AccountDirectory
	signer    crypto.SignatureEngine

	// hashKey keys the HMAC over email verification tokens, so the dev
	// server can validate a token by recomputation instead of storage.
	hashKey string

	log *logger.Logger
}

// NewAccountService wires an [AccountService] over the given directory.
func NewAccountService(directory store.AccountDirectory, cfg config.ServerAuth, log *logger.Logger) AccountService {
	return &accountService{
		directory: directory,
		signer:    crypto.NewSignatureEngine(),
		hashKey:   cfg.HashKey,
		log:       log,
	}
}

func (s *accountService) Create(ctx context.Context, record models.AccountRecord) (models.AccountRecord, error) {
	log := logger.FromContext(ctx)

	if err := record.Validate(); err != nil {
		log.Err(err).Str("email", record.Email).Msg("malformed account record")
		return models.AccountRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.verifyRecordSignature(record); err != nil {
		log.Err(err).Str("email", record.Email).Msg("record signature rejected")
		return models.AccountRecord{}, err
	}

	created, err := s.directory.Create(ctx, record)
	if err != nil {
		log.Err(err).Str("email", record.Email).Msg("account creation failed")
		return models.AccountRecord{}, fmt.Errorf("account creation failed: %w", err)
	}

	token := s.verificationToken(created.Email)
	log.Info().
		Str("accountID", created.ID).
		Str("verificationToken", token).
		Msg("account created; verification token issued")

	return created, nil
}

func (s *accountService) Public(ctx context.Context, email string) (models.PublicAccount, error) {
	entry, err := s.directory.ByEmail(ctx, email)
	if err != nil {
		return models.PublicAccount{}, fmt.Errorf("account lookup failed: %w", err)
	}

	return models.PublicAccount{
		KDF:        entry.Record.KDF,
		OTPEnabled: entry.OTPEnabled,
	}, nil
}

func (s *accountService) ResendVerification(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	entry, err := s.directory.ByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("account lookup failed: %w", err)
	}
	if entry.Record.EmailVerified {
		return "", ErrEmailAlreadyVerified
	}

	token := s.verificationToken(entry.Record.Email)
	log.Info().
		Str("accountID", entry.Record.ID).
		Str("verificationToken", token).
		Msg("verification token re-issued")

	return token, nil
}

func (s *accountService) VerifyEmail(ctx context.Context, email, token string) error {
	log := logger.FromContext(ctx)

	entry, err := s.directory.ByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("account lookup failed: %w", err)
	}
	if entry.Record.EmailVerified {
		return ErrEmailAlreadyVerified
	}
	if token == "" || token != s.verificationToken(entry.Record.Email) {
		return ErrInvalidVerificationToken
	}

	if err := s.directory.MarkEmailVerified(ctx, entry.Record.ID); err != nil {
		return fmt.Errorf("marking email verified: %w", err)
	}

	log.Info().Str("accountID", entry.Record.ID).Msg("email verified")
	return nil
}

// verifyRecordSignature checks the record's detached signature against the
// auth public key the record itself carries. The server cannot derive the
// key, so this proves internal consistency only; the client re-verifies
// against its locally derived key on every login.
func (s *accountService) verifyRecordSignature(record models.AccountRecord) error {
	authPub, err := record.AuthPublicKeyBytes()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	payload, err := record.SignedPayload()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	sig, err := record.SignatureBytes()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.signer.VerifyHash(authPub, payload, sig); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecordSignature, err)
	}
	return nil
}

// verificationToken derives the address verification token. Deterministic
// by construction: HMAC over the address means nothing has to be stored
// and a re-send always produces the same token.
func (s *accountService) verificationToken(email string) string {
	return utils.HashString(email, s.hashKey)
}
