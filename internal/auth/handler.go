package auth

import (
	"errors"
	"net/http"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/view"
	"github.com/frahmantamala/hr-portal/pkg/logger"
	"github.com/go-chi/chi"
)

// LoginView is the data of the sign-in page.
type LoginView struct {
	Email string
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(base *transport.BaseHandler, svc ServiceAPI) *Handler {
	return &Handler{BaseHandler: base, Service: svc}
}

func (h *Handler) Mount(r chi.Router) {
	r.Get(LoginPath, h.LoginPage)
	r.Post(LoginPath, h.Login)
	r.Get(LogoutPath, h.Logout)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if internal.PrincipalFromContext(r.Context()) != nil {
		h.Redirect(w, r, HomePath)
		return
	}
	h.Render(w, r, http.StatusOK, "login", view.Page{Title: "Sign in", Data: LoginView{}})
}

// Login starts a fresh session on success. A failed attempt re-renders the
// page with the same message whether the email or the password was wrong.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Fail(w, r, internal.NewValidationError("malformed form body", internal.ErrCodeValidationFailed))
		return
	}
	dto := ParseLogin(r.PostForm)

	u, err := h.Service.Verify(r.Context(), dto.Email, dto.Password)
	if err != nil {
		if !errors.Is(err, internal.ErrInvalidCredentials) {
			h.Fail(w, r, err)
			return
		}
		h.Render(w, r, http.StatusOK, "login", view.Page{
			Title:   "Sign in",
			Flashes: []session.Flash{{Category: session.FlashDanger, Message: internal.ErrInvalidCredentials.Message}},
			Data:    LoginView{Email: dto.Email},
		})
		return
	}

	fresh := &session.Session{UserID: u.ID}
	fresh.AddFlash(session.FlashSuccess, "Welcome back!")
	if err := h.Sessions.Save(w, fresh); err != nil {
		h.Fail(w, r, err)
		return
	}
	logger.From(r.Context()).Info("user signed in", "userID", u.ID)
	h.Redirect(w, r, HomePath)
}

// Logout discards the session and keeps only the goodbye flash.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	fresh := &session.Session{}
	fresh.AddFlash(session.FlashInfo, "Signed out.")
	if err := h.Sessions.Save(w, fresh); err != nil {
		h.Fail(w, r, err)
		return
	}
	h.Redirect(w, r, LoginPath)
}
