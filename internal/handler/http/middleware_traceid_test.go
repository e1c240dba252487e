package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/internal/service"
)

// runTraceID pushes a request through the middleware and returns the
// recorder; incomingID is set as the X-Trace-ID request header when
// non-empty.
func runTraceID(t *testing.T, incomingID string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(&service.Services{}, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/suggest-packages/prompt", nil)
	if incomingID != "" {
		req.Header.Set(traceIDHeader, incomingID)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec
}

// TestWithTraceID verifies the propagate-or-generate rule for the response
// X-Trace-ID header.
func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name       string
		incomingID string
		wantEcho   bool
	}{
		{name: "incoming trace ID is propagated", incomingID: "trace-from-client", wantEcho: true},
		{name: "UUID incoming trace ID is propagated", incomingID: "550e8400-e29b-41d4-a716-446655440000", wantEcho: true},
		{name: "absent trace ID gets a generated UUID", incomingID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runTraceID(t, tt.incomingID)

			got := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, got, "X-Trace-ID must always be set on the response")

			if tt.wantEcho {
				assert.Equal(t, tt.incomingID, got)
				return
			}

			_, err := uuid.Parse(got)
			assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", got)
		})
	}
}

// TestWithTraceID_GeneratedIDsAreUnique verifies each header-less request
// gets its own trace ID.
func TestWithTraceID_GeneratedIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 50; i++ {
		rec := runTraceID(t, "")
		id := rec.Header().Get(traceIDHeader)
		require.NotEmpty(t, id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

// TestWithTraceID_LoggerInContext verifies the downstream handler sees a
// request-scoped logger carrying the trace ID.
func TestWithTraceID_LoggerInContext(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	var ctxLogger *logger.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromRequest(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/suggest-packages/prompt", nil)
	req.Header.Set(traceIDHeader, "trace-context-check")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, ctxLogger)
}
