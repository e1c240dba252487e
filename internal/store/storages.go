package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgerrcode"

	"github.com/moizlokhandwala/aitravelagent/internal/config"
	"github.com/moizlokhandwala/aitravelagent/internal/logger"
)

// Storages aggregates every persistence backend the services depend on.
type Storages struct {
	UserRepository UserRepository
	ItineraryStore ItineraryStore

	db *DB
}

// NewStorages connects the configured backends and returns them wired into a
// single container. The relational backend is selected from the DSN scheme
// ("postgres://" for PostgreSQL, anything else is a SQLite file path); the
// itinerary backend is selected by cfg.Itineraries.Backend. Schema migrations
// run before the container is returned.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connectDatabase(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	itineraries, err := newItineraryStore(ctx, cfg.Itineraries, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItineraryStore: itineraries,
		db:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connectDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func newItineraryStore(ctx context.Context, cfg config.Itineraries, log *logger.Logger) (ItineraryStore, error) {
	switch cfg.Backend {
	case "redis":
		return NewRedisItineraryStore(ctx, cfg, log)
	default:
		return NewMemoryItineraryStore(log), nil
	}
}

// IsTransient reports whether err looks like a temporary
// infrastructure failure worth retrying: a dropped or refused connection
// rather than a constraint or data error.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// connection exception class (08xxx)
	if code := postgresError(err); code != "" {
		return pgerrcode.IsConnectionException(code) ||
			code == pgerrcode.TooManyConnections
	}

	return false
}
