// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/models"
)

// knownAccountRepository is the SQLite-backed implementation of
// [KnownAccountRepository]. It keeps the device's login history in the
// known_accounts table of the client's local database.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type knownAccountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewKnownAccountRepository constructs a [KnownAccountRepository] backed by
// the provided database connection and logger.
func NewKnownAccountRepository(db *DB, logger *logger.Logger) KnownAccountRepository {
	logger.Debug().Msg("creating known account repository")
	return &knownAccountRepository{
		db:     db,
		logger: logger,
	}
}

// Remember upserts the history entry for account.Email. Zero timestamps are
// filled with the current time; on conflict the first-seen time survives
// because the upsert never updates created_at.
func (r *knownAccountRepository) Remember(ctx context.Context, account models.KnownAccount) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if account.LastLoginAt.IsZero() {
		account.LastLoginAt = now
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}

	query, args, err := buildRememberAccountQuery(account)
	if err != nil {
		log.Err(err).Msg("remember query could not be built")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("email", account.Email).Msg("remember statement failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Last returns the most recently used account.
func (r *knownAccountRepository) Last(ctx context.Context) (models.KnownAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLastAccountQuery()
	if err != nil {
		log.Err(err).Msg("last-account query could not be built")
		return models.KnownAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	account, err := scanKnownAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.KnownAccount{}, ErrKnownAccountNotFound
		}
		log.Err(err).Msg("last-account row could not be read")
		return models.KnownAccount{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// All returns the whole login history, most recently used first.
func (r *knownAccountRepository) All(ctx context.Context) ([]models.KnownAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAllAccountsQuery()
	if err != nil {
		log.Err(err).Msg("all-accounts query could not be built")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("all-accounts query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var accounts []models.KnownAccount
	for rows.Next() {
		account, err := scanKnownAccount(rows)
		if err != nil {
			log.Err(err).Msg("all-accounts row could not be read")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Msg("all-accounts iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

// Forget removes the history entry for email. Removing an unknown address
// is not an error.
func (r *knownAccountRepository) Forget(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildForgetAccountQuery(email)
	if err != nil {
		log.Err(err).Msg("forget query could not be built")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("email", email).Msg("forget statement failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanKnownAccount reads one row in knownAccountColumns order.
func scanKnownAccount(row rowScanner) (models.KnownAccount, error) {
	var account models.KnownAccount
	err := row.Scan(
		&account.Email,
		&account.AccountID,
		&account.AuthPublicKey,
		&account.OTPEnabled,
		&account.LastLoginAt,
		&account.CreatedAt,
	)
	return account, err
}
