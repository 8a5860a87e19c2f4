package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader echoes the request id back to the client.
const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID assigns a UUID to every request, stores it in the context and
// echoes it in the response headers. Incoming ids are trusted if present.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request id stored in the context, if any.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
