// Package transporttest drives handlers through a chi router with a live
// session cookie, for handler tests in the record packages.
package transporttest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/view"
	"github.com/go-chi/chi"
)

const Secret = "transporttest-session-secret-0123456789"

// Admin is the principal attached to every request served by Router.
var Admin = &internal.Principal{UserID: 1, Email: "admin@local", FullName: "Admin User"}

func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func NewBase() *transport.BaseHandler {
	return transport.NewBaseHandler(Logger(), session.NewManager(Secret, time.Hour), view.MustNew())
}

// Router mounts routes behind the session middleware with Admin signed in.
func Router(base *transport.BaseHandler, mount func(chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(base.Sessions.Middleware)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(internal.ContextWithPrincipal(r.Context(), Admin)))
		})
	})
	mount(r)
	return r
}

func Get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func PostForm(h http.Handler, target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// Flashes decodes the flash messages carried by the response cookie.
func Flashes(base *transport.BaseHandler, w *httptest.ResponseRecorder) []session.Flash {
	for _, c := range w.Result().Cookies() {
		if c.Name != base.Sessions.CookieName() || c.Value == "" {
			continue
		}
		s, err := base.Sessions.Decode(c.Value)
		if err != nil {
			return nil
		}
		return s.Flashes
	}
	return nil
}

// Messages is Flashes reduced to the message text.
func Messages(base *transport.BaseHandler, w *httptest.ResponseRecorder) []string {
	var out []string
	for _, f := range Flashes(base, w) {
		out = append(out, f.Message)
	}
	return out
}
