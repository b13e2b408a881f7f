// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"context"

	"github.com/veilpost/veilpost-go/internal/adapter"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/models"
)

type clientOTPService struct {
	api      adapter.AccountAPI
	sessions *SessionManager
	log      *logger.Logger
}

// NewClientOTPService wires an [OTPService].
func NewClientOTPService(api adapter.AccountAPI, sessions *SessionManager, log *logger.Logger) OTPService {
	return &clientOTPService{api: api, sessions: sessions, log: log}
}

func (s *clientOTPService) Setup(ctx context.Context) (models.OTPSetup, error) {
	if !s.sessions.Active() {
		return models.OTPSetup{}, ErrNoSession
	}

	setup, err := s.api.SetupOTP(ctx)
	if err != nil {
		return models.OTPSetup{}, mapAdapterError(err)
	}

	return setup, nil
}

func (s *clientOTPService) Confirm(ctx context.Context, code string) error {
	if !s.sessions.Active() {
		return ErrNoSession
	}

	if err := s.api.ConfirmOTP(ctx, code); err != nil {
		return mapAdapterError(err)
	}

	s.log.Info().Msg("one-time password enabled")
	return nil
}
