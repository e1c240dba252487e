package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moizlokhandwala/aitravelagent/internal/config"
	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/internal/store"
	"github.com/moizlokhandwala/aitravelagent/internal/utils"
	"github.com/moizlokhandwala/aitravelagent/models"
)

// ─────────────────────────────────────────────
// Mock UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	getUserFn         func(ctx context.Context, userID string) (models.User, error)
	updateProfileFn   func(ctx context.Context, user models.User) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, user models.User) error {
	return m.updateProfileFn(ctx, user)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testTokenConfig = config.App{
	TokenSignKey:   "unit-test-sign-key",
	TokenIssuer:    "aitravelagent",
	TokenAlgorithm: "HS256",
	TokenDuration:  time.Hour,
}

func newTestAuthService(t *testing.T, repo store.UserRepository) AuthService {
	t.Helper()
	return NewAuthService(repo, testTokenConfig, logger.Nop())
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

// TestRegister_DerivesIdentityFromEmail verifies that the canonical user_id
// and the username are both the registration email, the persona defaults to
// "flexible", and the password is stored as a bcrypt hash.
func TestRegister_DerivesIdentityFromEmail(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.CreatedAt = time.Now()
			return user, nil
		},
	}

	svc := newTestAuthService(t, repo)
	created, err := svc.Register(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", created.UserID)
	assert.Equal(t, "alice@example.com", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "flexible", created.TravelPersona)
	assert.False(t, created.CreatedAt.IsZero())

	assert.NotEqual(t, "s3cret", persisted.PasswordHash)
	assert.True(t, utils.VerifyPassword("s3cret", persisted.PasswordHash))
}

// TestRegister_EmptyCredentials verifies input validation.
func TestRegister_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	_, err := svc.Register(context.Background(), "", "s3cret")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), "alice@example.com", "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// TestRegister_DuplicateEmail verifies that the repository's duplicate error
// passes through without retries.
func TestRegister_DuplicateEmail(t *testing.T) {
	attempts := 0
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			attempts++
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	svc := newTestAuthService(t, repo)
	_, err := svc.Register(context.Background(), "alice@example.com", "s3cret")

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	assert.Equal(t, 1, attempts)
}

// TestRegister_TransientFailureRetriesThenUnavailable verifies that a
// persistently failing connection exhausts the bounded retries and surfaces
// ErrStorageUnavailable.
func TestRegister_TransientFailureRetriesThenUnavailable(t *testing.T) {
	attempts := 0
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			attempts++
			return models.User{}, driver.ErrBadConn
		},
	}

	svc := newTestAuthService(t, repo)
	_, err := svc.Register(context.Background(), "alice@example.com", "s3cret")

	require.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Equal(t, 1+maxStorageRetries, attempts)
}

// TestRegister_TransientFailureRecovers verifies that a connection hiccup on
// the first attempt does not fail the registration.
func TestRegister_TransientFailureRecovers(t *testing.T) {
	attempts := 0
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			attempts++
			if attempts == 1 {
				return models.User{}, driver.ErrBadConn
			}
			return user, nil
		},
	}

	svc := newTestAuthService(t, repo)
	created, err := svc.Register(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, "alice@example.com", created.UserID)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func storedUser(t *testing.T, email, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{
		UserID:       email,
		Username:     email,
		Email:        email,
		PasswordHash: hash,
	}
}

// TestLogin_Success verifies that correct credentials produce a signed token
// whose subject is the canonical user_id.
func TestLogin_Success(t *testing.T) {
	user := storedUser(t, "alice@example.com", "s3cret")
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return user, nil
		},
	}

	svc := newTestAuthService(t, repo)
	token, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "alice@example.com", token.UserID)

	// the issued token must validate and round-trip through ParseToken
	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", parsed.UserID)
}

// TestLogin_WrongPassword verifies that a hash mismatch surfaces
// ErrWrongPassword, not a token.
func TestLogin_WrongPassword(t *testing.T) {
	user := storedUser(t, "alice@example.com", "s3cret")
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}

	svc := newTestAuthService(t, repo)
	_, err := svc.Login(context.Background(), "alice@example.com", "not-the-password")
	require.ErrorIs(t, err, ErrWrongPassword)
}

// TestLogin_UserNotFound verifies pass-through of the not-found error.
func TestLogin_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}

	svc := newTestAuthService(t, repo)
	_, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// ParseToken
// ─────────────────────────────────────────────

// TestParseToken_Garbage verifies that any malformed token normalises to
// ErrTokenIsExpiredOrInvalid.
func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// TestParseToken_WrongKey verifies that a token signed with a different key
// is rejected.
func TestParseToken_WrongKey(t *testing.T) {
	foreign, err := utils.GenerateJWTToken("aitravelagent", "alice@example.com", "HS256", time.Hour, "some-other-key")
	require.NoError(t, err)

	svc := newTestAuthService(t, &mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// TestParseToken_Expired verifies rejection of an already-expired token.
func TestParseToken_Expired(t *testing.T) {
	expired, err := utils.GenerateJWTToken(
		testTokenConfig.TokenIssuer, "alice@example.com",
		testTokenConfig.TokenAlgorithm, -time.Minute, testTokenConfig.TokenSignKey,
	)
	require.NoError(t, err)

	svc := newTestAuthService(t, &mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), expired.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// TestCreateToken verifies claims of a freshly issued token.
func TestCreateToken(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: "bob@example.com"})
	require.NoError(t, err)

	subject, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", subject)
	assert.Equal(t, "aitravelagent", token.Issuer)

	if assert.NotNil(t, token.ExpiresAt) {
		assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, time.Minute)
	}
}

// TestRegister_NonTransientErrorNotRetried verifies that unknown permanent
// errors are not retried and are not masked as unavailability.
func TestRegister_NonTransientErrorNotRetried(t *testing.T) {
	attempts := 0
	permanent := errors.New("constraint violated")
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			attempts++
			return models.User{}, permanent
		},
	}

	svc := newTestAuthService(t, repo)
	_, err := svc.Register(context.Background(), "alice@example.com", "s3cret")

	require.ErrorIs(t, err, permanent)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
	assert.Equal(t, 1, attempts)
}
