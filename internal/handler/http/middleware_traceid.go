package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request correlation ID. Clients may supply their
// own; otherwise one is generated per request.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace ID: the incoming X-Trace-ID
// header value when present, a fresh UUID otherwise. The ID is attached to
// the request-scoped logger (so every log line downstream carries it) and
// echoed back in the response header for client-side correlation.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
