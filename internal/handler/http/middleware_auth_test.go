package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moizlokhandwala/aitravelagent/internal/service"
	"github.com/moizlokhandwala/aitravelagent/internal/utils"
	"github.com/moizlokhandwala/aitravelagent/models"
)

// nextSpy records whether the downstream handler was reached and with which
// user ID in the request context.
type nextSpy struct {
	called bool
	userID string
	ok     bool
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, s.ok = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// TestAuth_Success verifies that a valid bearer token passes the middleware
// and the user ID lands in the request context.
func TestAuth_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{UserID: "alice@example.com"}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/user/alice@example.com", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, spy.called)
	assert.True(t, spy.ok)
	assert.Equal(t, "alice@example.com", spy.userID)
}

// TestAuth_MissingHeader verifies that a request without an Authorization
// header is rejected with 401 before reaching the downstream handler.
func TestAuth_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/user/alice@example.com", nil)
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

// TestAuth_MalformedHeader verifies that a header without a token part is
// rejected with 401.
func TestAuth_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/user/alice@example.com", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
}

// TestAuth_ExpiredOrInvalidToken verifies that token validation failures map
// to 401 Unauthorized.
func TestAuth_ExpiredOrInvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	h := newHandlerWithAuth(t, auth)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/user/alice@example.com", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
}

// TestGetTokenFromAuthHeader exercises the raw header parsing rules.
func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
