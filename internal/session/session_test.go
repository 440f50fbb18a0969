package session_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/frahmantamala/hr-portal/internal/session"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const secret = "session-test-secret-0123456789abcdef"

var _ = Describe("Manager", func() {
	var (
		now     time.Time
		manager *session.Manager
	)

	BeforeEach(func() {
		now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		manager = session.NewManager(secret, time.Minute, session.WithClock(func() time.Time { return now }))
	})

	cookieFrom := func(w *httptest.ResponseRecorder) *http.Cookie {
		for _, c := range w.Result().Cookies() {
			if c.Name == manager.CookieName() {
				return c
			}
		}
		return nil
	}

	load := func(c *http.Cookie) *session.Session {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if c != nil {
			req.AddCookie(c)
		}
		var got *session.Session
		manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = session.FromContext(r.Context())
		})).ServeHTTP(httptest.NewRecorder(), req)
		return got
	}

	save := func(s *session.Session) *http.Cookie {
		w := httptest.NewRecorder()
		Expect(manager.Save(w, s)).To(Succeed())
		return cookieFrom(w)
	}

	It("round-trips the user id and flashes", func() {
		s := &session.Session{UserID: 7}
		s.AddFlash(session.FlashSuccess, "Welcome back!")

		got := load(save(s))

		Expect(got.UserID).To(Equal(int64(7)))
		Expect(got.Flashes).To(ConsistOf(session.Flash{Category: session.FlashSuccess, Message: "Welcome back!"}))
		Expect(got.ExpiresAt).To(BeTemporally("==", now.Add(time.Minute)))
	})

	It("treats an expired cookie as anonymous", func() {
		c := save(&session.Session{UserID: 7})
		Expect(load(c).UserID).To(Equal(int64(7)))

		now = now.Add(2 * time.Minute)

		got := load(c)
		Expect(got.UserID).To(BeZero())
		Expect(got.Flashes).To(BeEmpty())
		_, err := manager.Decode(c.Value)
		Expect(err).To(HaveOccurred())
	})

	It("keeps the original expiry when flashes are written later", func() {
		c := save(&session.Session{UserID: 7})

		now = now.Add(30 * time.Second)
		s := load(c)
		s.AddFlash(session.FlashInfo, "Employee updated.")
		again := save(s)

		Expect(again.Expires).To(BeTemporally("==", time.Date(2025, 3, 10, 9, 1, 0, 0, time.UTC)))
		got, err := manager.Decode(again.Value)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ExpiresAt).To(BeTemporally("==", time.Date(2025, 3, 10, 9, 1, 0, 0, time.UTC)))

		now = now.Add(45 * time.Second)
		Expect(load(again).UserID).To(BeZero())
	})

	It("ignores cookies signed with another secret", func() {
		other := session.NewManager("another-secret-0123456789abcdefghij", time.Minute,
			session.WithClock(func() time.Time { return now }))
		token, err := other.Encode(&session.Session{UserID: 7})
		Expect(err).NotTo(HaveOccurred())

		got := load(&http.Cookie{Name: manager.CookieName(), Value: token})
		Expect(got.UserID).To(BeZero())
	})

	It("clears the cookie when the session is empty", func() {
		c := save(&session.Session{})

		Expect(c).NotTo(BeNil())
		Expect(c.Value).To(BeEmpty())
		Expect(c.MaxAge).To(BeNumerically("<", 0))
	})

	It("hands out flashes once", func() {
		s := &session.Session{UserID: 1}
		s.AddFlash(session.FlashDanger, "Invalid status.")

		Expect(s.PopFlashes()).To(HaveLen(1))
		Expect(s.PopFlashes()).To(BeEmpty())
		Expect(s.Empty()).To(BeFalse())
	})
})
