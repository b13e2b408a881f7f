// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// zxcvbnScorer rates passwords with the zxcvbn estimator. Scores run 0
// (trivially guessable) to 4 (strong); the registration flow compares
// against the configured minimum.
type zxcvbnScorer struct{}

// NewPasswordScorer constructs the default [PasswordScorer].
func NewPasswordScorer() PasswordScorer {
	return &zxcvbnScorer{}
}

// Score implements [PasswordScorer]. userInputs are strings the password
// must not lean on, typically the account email, which zxcvbn penalizes as
// if they were dictionary words.
func (s *zxcvbnScorer) Score(password string, userInputs ...string) int {
	return zxcvbn.PasswordStrength(password, userInputs).Score
}
