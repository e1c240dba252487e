package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and profile updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned created_at timestamp populated.
//
// Error handling:
//   - unique violation (either driver) → [ErrEmailAlreadyExists];
//   - any other driver-level error → wrapped as unexpected DB error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUser(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if postgresError(err) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches.
// Returns [ErrUserNotFound] when no row exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, query, args)
}

// GetUser retrieves the user record for the canonical user_id.
// Returns [ErrUserNotFound] when no row exists.
func (r *userRepository) GetUser(ctx context.Context, userID string) (models.User, error) {
	query, args, err := buildSelectUserByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, query, args)
}

// UpdateProfile overwrites the travel-profile columns of the row matching
// user.UserID. Last writer wins; there is no optimistic concurrency check.
// Returns [ErrUserNotFound] when the row does not exist.
func (r *userRepository) UpdateProfile(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfile(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) queryUser(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		user           models.User
		passportExpiry sql.NullTime
		visaExpiry     sql.NullTime
	)

	row := r.db.QueryRowContext(ctx, query, args...)
	err := row.Scan(
		&user.UserID, &user.Username, &user.Email, &user.Name, &user.Nationality,
		&user.CountryOfResidence, &user.PassportNumber, &passportExpiry,
		&user.HasVisa, &visaExpiry, &user.TravelPersona, &user.Interests,
		&user.PreferredLanguages, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.queryUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if passportExpiry.Valid {
		user.PassportExpiry = &models.Date{Time: passportExpiry.Time}
	}
	if visaExpiry.Valid {
		user.VisaExpiry = &models.Date{Time: visaExpiry.Time}
	}

	return user, nil
}
