// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package store

import (
	"context"
	"sync"
	"time"
)

// memoryChallenges holds outstanding login challenges in process memory.
// Expired entries are dropped lazily on Take; a dev server never issues
// enough challenges to need a sweeper.
type memoryChallenges struct {
	mu        sync.Mutex
	byAccount map[string]IssuedChallenge
}

// NewMemoryChallengeStore returns an empty in-memory [ChallengeStore].
func NewMemoryChallengeStore() ChallengeStore {
	return &memoryChallenges{byAccount: make(map[string]IssuedChallenge)}
}

func (s *memoryChallenges) Put(ctx context.Context, challenge IssuedChallenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byAccount[challenge.AccountID] = challenge
	return nil
}

func (s *memoryChallenges) Take(ctx context.Context, accountID string) (IssuedChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.byAccount[accountID]
	if !ok {
		return IssuedChallenge{}, ErrChallengeNotFound
	}
	delete(s.byAccount, accountID)

	if time.Now().After(challenge.ExpiresAt) {
		return IssuedChallenge{}, ErrChallengeNotFound
	}
	return challenge, nil
}
