package service

import (
	"context"
	"fmt"

	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/internal/store"
	"github.com/moizlokhandwala/aitravelagent/models"
)

// profileService implements ProfileService over the user repository.
// Profile updates are last-writer-wins; no optimistic concurrency check is
// applied between the read and the write.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService backed by the given
// repository.
func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Get returns the travel profile for userID.
// Returns store.ErrUserNotFound (wrapped) when the account does not exist.
func (p *profileService) Get(ctx context.Context, userID string) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.UserProfile{}, ErrInvalidDataProvided
	}

	var user models.User
	err := withStorageRetry(ctx, func(ctx context.Context) error {
		var getErr error
		user, getErr = p.userRepository.GetUser(ctx, userID)
		return getErr
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user lookup failed")
		return models.UserProfile{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.Profile(), nil
}

// Upsert writes the profile fields onto an existing user row.
//
// There is no implicit account creation: an unknown user_id surfaces
// store.ErrUserNotFound. Identity and credential fields are never changed by
// a profile write.
func (p *profileService) Upsert(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if profile.UserID == "" {
		return models.UserProfile{}, ErrInvalidDataProvided
	}

	var user models.User
	err := withStorageRetry(ctx, func(ctx context.Context) error {
		var getErr error
		user, getErr = p.userRepository.GetUser(ctx, profile.UserID)
		return getErr
	})
	if err != nil {
		log.Err(err).Str("user_id", profile.UserID).Msg("user lookup failed")
		return models.UserProfile{}, fmt.Errorf("user lookup failed: %w", err)
	}

	user.ApplyProfile(profile)

	err = withStorageRetry(ctx, func(ctx context.Context) error {
		return p.userRepository.UpdateProfile(ctx, user)
	})
	if err != nil {
		log.Err(err).Str("user_id", profile.UserID).Msg("profile update failed")
		return models.UserProfile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user.Profile(), nil
}
