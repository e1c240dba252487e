package store

import (
	"database/sql"

	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/migrations"
)

// DB wraps the shared *sql.DB connection together with the goose dialect the
// connection was opened for.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies the embedded schema migrations to the wrapped connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
