// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package store

import "github.com/veilpost/veilpost-go/internal/logger"

// Storages bundles the development server's stores.
type Storages struct {
	Directory  AccountDirectory
	Challenges ChallengeStore
}

// NewMemoryStorages wires the in-memory stores the dev server runs on.
func NewMemoryStorages(log *logger.Logger) Storages {
	return Storages{
		Directory:  NewMemoryDirectory(log),
		Challenges: NewMemoryChallengeStore(),
	}
}
