// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/veilpost/veilpost-go/models"
)

// knownAccountColumns is the column order every known-accounts query and
// scan agrees on.
var knownAccountColumns = []string{
	"email",
	"account_id",
	"auth_public_key",
	"otp_enabled",
	"last_login_at",
	"created_at",
}

// buildRememberAccountQuery builds the upsert for a login-history entry.
// On a repeat login the row is refreshed in place; created_at keeps the
// first-seen time because the conflict clause never touches it.
func buildRememberAccountQuery(account models.KnownAccount) (string, []any, error) {
	return sq.Insert(account.TableName()).
		Columns(knownAccountColumns...).
		Values(
			account.Email,
			account.AccountID,
			account.AuthPublicKey,
			account.OTPEnabled,
			account.LastLoginAt,
			account.CreatedAt,
		).
		Suffix(`ON CONFLICT(email) DO UPDATE SET
			account_id = excluded.account_id,
			auth_public_key = excluded.auth_public_key,
			otp_enabled = excluded.otp_enabled,
			last_login_at = excluded.last_login_at`).
		ToSql()
}

// buildLastAccountQuery builds the lookup for the most recently used account.
func buildLastAccountQuery() (string, []any, error) {
	return sq.Select(knownAccountColumns...).
		From(models.KnownAccount{}.TableName()).
		OrderBy("last_login_at DESC").
		Limit(1).
		ToSql()
}

// buildAllAccountsQuery builds the full history listing, most recent first.
func buildAllAccountsQuery() (string, []any, error) {
	return sq.Select(knownAccountColumns...).
		From(models.KnownAccount{}.TableName()).
		OrderBy("last_login_at DESC").
		ToSql()
}

// buildForgetAccountQuery builds the deletion of a single history entry.
func buildForgetAccountQuery(email string) (string, []any, error) {
	return sq.Delete(models.KnownAccount{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}
