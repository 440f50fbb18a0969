// Package session keeps the signed-in user id and pending flash messages in a
// signed cookie. Nothing is stored server side.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultCookieName = "hr_session"

// Flash categories understood by the page layout.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// Session is the decoded cookie state for one request.
type Session struct {
	UserID  int64
	Flashes []Flash
	// ExpiresAt is kept across re-encoding so that writing flashes never
	// extends the session.
	ExpiresAt time.Time
}

func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
}

// PopFlashes returns the pending flashes and clears them.
func (s *Session) PopFlashes() []Flash {
	out := s.Flashes
	s.Flashes = nil
	return out
}

func (s *Session) Empty() bool {
	return s.UserID == 0 && len(s.Flashes) == 0
}

type claims struct {
	UserID  int64   `json:"uid,omitempty"`
	Flashes []Flash `json:"fl,omitempty"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
	now        func() time.Time
}

type Option func(*Manager)

func WithCookieName(name string) Option {
	return func(m *Manager) { m.cookieName = name }
}

func WithSecureCookie(secure bool) Option {
	return func(m *Manager) { m.secure = secure }
}

// WithClock overrides the time source used for issuing and checking expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(secret string, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		secret:     []byte(secret),
		ttl:        ttl,
		cookieName: DefaultCookieName,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// Load decodes the session cookie. A missing, tampered or expired cookie
// yields an empty session rather than an error.
func (m *Manager) Load(r *http.Request) *Session {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return &Session{}
	}
	s, err := m.Decode(c.Value)
	if err != nil {
		return &Session{}
	}
	return s
}

func (m *Manager) Decode(token string) (*Session, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	s := &Session{UserID: cl.UserID, Flashes: cl.Flashes}
	if cl.ExpiresAt != nil {
		s.ExpiresAt = cl.ExpiresAt.Time
	}
	return s, nil
}

func (m *Manager) Encode(s *Session) (string, error) {
	if s == nil {
		return "", errors.New("session: nil session")
	}
	now := m.now()
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = now.Add(m.ttl)
	}
	cl := claims{
		UserID:  s.UserID,
		Flashes: s.Flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(m.secret)
}

// Save writes s back to the client. An empty session clears the cookie.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	if s == nil || s.Empty() {
		m.Clear(w)
		return nil
	}
	token, err := m.Encode(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  s.ExpiresAt,
	})
	return nil
}

func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

type ctxKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the request session, or a detached empty one.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(ctxKey{}).(*Session); ok && s != nil {
		return s
	}
	return &Session{}
}

// Middleware loads the session into the request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.Load(r)
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
	})
}
