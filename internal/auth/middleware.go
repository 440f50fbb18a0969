package auth

import (
	"errors"
	"net/http"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/frahmantamala/hr-portal/pkg/logger"
)

// Gate resolves the session user into a Principal. It never rejects a
// request; a session naming a user that no longer exists is treated as
// anonymous and the stale id is dropped.
func (h *Handler) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s := session.FromContext(ctx)
		if s.UserID == 0 {
			next.ServeHTTP(w, r)
			return
		}

		u, err := h.Service.UserByID(ctx, s.UserID)
		if err != nil {
			if !errors.Is(err, internal.ErrRecordNotFound) {
				logger.From(ctx).Error("auth gate: failed to load session user", "userID", s.UserID, "error", err)
			}
			s.UserID = 0
			next.ServeHTTP(w, r)
			return
		}

		ctx = internal.ContextWithPrincipal(ctx, u.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireLogin sends anonymous callers to the sign-in page before the
// wrapped handler runs.
func (h *Handler) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if internal.PrincipalFromContext(r.Context()) == nil {
			h.FlashRedirect(w, r, session.FlashWarning, "Please sign in to continue.", LoginPath)
			return
		}
		next.ServeHTTP(w, r)
	})
}
