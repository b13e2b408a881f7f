// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordScorer(t *testing.T) {
	scorer := NewPasswordScorer()

	assert.LessOrEqual(t, scorer.Score("password"), 1, "dictionary word must score at the floor")
	assert.LessOrEqual(t, scorer.Score("12345678"), 1)
	assert.GreaterOrEqual(t, scorer.Score("quartz-mantis-copper-flute"), 3, "long random passphrase must clear the policy bar")
}

func TestPasswordScorer_UserInputsPenalized(t *testing.T) {
	scorer := NewPasswordScorer()

	// The account email baked into the password should drag the score down
	// relative to the same password scored without that context.
	with := scorer.Score("mira@veilpost.dev", "mira@veilpost.dev")
	without := scorer.Score("mira@veilpost.dev")

	assert.LessOrEqual(t, with, without)
	assert.LessOrEqual(t, with, 1)
}
