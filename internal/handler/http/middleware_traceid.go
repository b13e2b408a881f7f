// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package http

import (
	"net/http"

	"github.com/google/uuid"
)

// traceIDHeader carries the request trace ID. Incoming values are trusted so
// the client and server halves of a log trail share one ID; absent values are
// replaced with a fresh UUID.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace ID to every request: it reuses the incoming
// X-Trace-ID header or generates one, binds it to a request-scoped child
// logger stored in the context, and echoes it on the response so callers can
// correlate their logs with the server's.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		child := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := child.WithContext(r.Context())

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
