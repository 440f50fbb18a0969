package middleware

import (
	"net/http"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/pkg/logger"
)

// UserContext adds the signed-in user id to the request logger. It must run
// after the session gate.
func UserContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := internal.PrincipalFromContext(r.Context())
		if p == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.With(r.Context(), "userID", p.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
