package http

import "net/http"

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLen bounds caller-supplied ids; a UUID is 36 characters.
	maxTraceIDLen = 64
)

// withTraceID tags the request with a trace id and stores a request-scoped
// logger carrying it in the context. A caller-supplied X-Trace-ID is reused
// only when it is a short token of letters, digits, '-', '_' or '.'.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !isTraceToken(traceID) {
			traceID = h.traceIDs.Generate()
		}
		w.Header().Set(traceIDHeader, traceID)

		reqLogger := h.logger.Fields("trace_id", traceID)
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}

func isTraceToken(s string) bool {
	if s == "" || len(s) > maxTraceIDLen {
		return false
	}

	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}

	return true
}
