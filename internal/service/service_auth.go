package service

import (
	"context"
	"fmt"
	"time"

	"github.com/moizlokhandwala/aitravelagent/internal/config"
	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/internal/store"
	"github.com/moizlokhandwala/aitravelagent/internal/utils"
	"github.com/moizlokhandwala/aitravelagent/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenAlgorithm selects the HMAC variant used for signing (HS256 family).
	tokenAlgorithm string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenAlgorithm: cfg.TokenAlgorithm,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account for the given email.
//
// The canonical user_id and the username are both derived from the email;
// profile fields start empty with the default "flexible" travel persona.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
//   - ErrStorageUnavailable after bounded retries of a transient failure.
func (a *authService) Register(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:        email,
		Username:      email,
		Email:         email,
		TravelPersona: "flexible",
		PasswordHash:  hash,
	}

	var registeredUser models.User
	err = withStorageRetry(ctx, func(ctx context.Context) error {
		var createErr error
		registeredUser, createErr = a.userRepository.CreateUser(ctx, user)
		return createErr
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns a signed token for the account or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrUserNotFound (wrapped) if no account matches the email.
//   - ErrWrongPassword if the password does not verify against the stored hash.
//   - ErrStorageUnavailable after bounded retries of a transient failure.
func (a *authService) Login(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	var foundUser models.User
	err := withStorageRetry(ctx, func(ctx context.Context) error {
		var findErr error
		foundUser, findErr = a.userRepository.FindUserByEmail(ctx, email)
		return findErr
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordHash) {
		log.Error().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.Token{}, ErrWrongPassword
	}

	return a.CreateToken(ctx, foundUser)
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured key and algorithm, carries the
// configured issuer as the "iss" claim, the user_id as the "sub" claim, and
// expires after the configured duration.
func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenAlgorithm, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
