// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/utils"
	"github.com/veilpost/veilpost-go/models"
)

// memoryDirectory is the development server's account store. Everything
// lives in process memory and is gone on restart, which is the point: the
// directory exists so the client can be exercised end to end without a
// real backend.
type memoryDirectory struct {
	mu      sync.RWMutex
	byEmail map[string]*DirectoryEntry
	byID    map[string]*DirectoryEntry

	ids *utils.UUIDGenerator
	log *logger.Logger
}

// NewMemoryDirectory returns an empty in-memory [AccountDirectory].
func NewMemoryDirectory(log *logger.Logger) AccountDirectory {
	return &memoryDirectory{
		byEmail: make(map[string]*DirectoryEntry),
		byID:    make(map[string]*DirectoryEntry),
		ids:     utils.NewUUIDGenerator(),
		log:     log,
	}
}

func (d *memoryDirectory) Create(ctx context.Context, record models.AccountRecord) (models.AccountRecord, error) {
	email := normalizeEmail(record.Email)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, taken := d.byEmail[email]; taken {
		return models.AccountRecord{}, ErrEmailAlreadyRegistered
	}

	record.ID = d.ids.Generate()
	record.Created = time.Now().UTC()
	record.EmailVerified = false

	entry := &DirectoryEntry{Record: record}
	d.byEmail[email] = entry
	d.byID[record.ID] = entry

	d.log.Debug().Str("accountID", record.ID).Msg("account record stored")
	return record, nil
}

func (d *memoryDirectory) ByEmail(ctx context.Context, email string) (DirectoryEntry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entry, ok := d.byEmail[normalizeEmail(email)]
	if !ok {
		return DirectoryEntry{}, ErrAccountNotFound
	}
	return *entry, nil
}

func (d *memoryDirectory) ByID(ctx context.Context, accountID string) (DirectoryEntry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entry, ok := d.byID[accountID]
	if !ok {
		return DirectoryEntry{}, ErrAccountNotFound
	}
	return *entry, nil
}

func (d *memoryDirectory) MarkEmailVerified(ctx context.Context, accountID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, ok := d.byID[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	entry.Record.EmailVerified = true
	return nil
}

func (d *memoryDirectory) SetPendingOTP(ctx context.Context, accountID, secret string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, ok := d.byID[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	entry.OTPSecret = secret
	entry.OTPEnabled = false
	return nil
}

func (d *memoryDirectory) EnableOTP(ctx context.Context, accountID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, ok := d.byID[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	entry.OTPEnabled = true
	return nil
}

// normalizeEmail makes lookups case-insensitive on the address, matching
// how mail routing treats the domain part in practice.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
