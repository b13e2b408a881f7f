package store

import (
	"database/sql"

	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/migrations"
)

// DB wraps *sql.DB with the structured logger so repositories built on top
// of it share one connection and one logging convention.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies any pending schema migrations to the wrapped database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
