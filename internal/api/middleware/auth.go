package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/malnis/cleansched/internal/api/handlers"
)

// adminKeyHeader carries the shared admin key for protected routes.
const adminKeyHeader = "X-Admin-Key"

// AdminAuth gates admin routes behind a shared key check.
// Token issuance and user accounts are out of scope for this service; the
// key is static configuration.
func AdminAuth(adminKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminKeyHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(adminKey)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "missing or invalid admin key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
