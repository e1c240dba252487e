package store

import (
	"context"

	"github.com/moizlokhandwala/aitravelagent/models"
)

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	// CreateUser persists a new account row and returns it with
	// server-assigned fields populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetUser looks an account up by its canonical user_id.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// UpdateProfile writes the travel-profile fields of an existing row.
	// Returns ErrUserNotFound when no row matches user.UserID.
	UpdateProfile(ctx context.Context, user models.User) error
}

// ItineraryStore holds the packages a user has explicitly saved.
//
// List distinguishes "nothing saved yet" (empty slice, nil error) from a
// storage failure; callers decide how to present the empty state.
type ItineraryStore interface {
	Save(ctx context.Context, userID string, pkg models.Package) error
	List(ctx context.Context, userID string) ([]models.Package, error)
}
