package communication_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/frahmantamala/hr-portal/db/dbtest"
	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/communication"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/transporttest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Communication Handler Integration", func() {
	var (
		gdb           *gorm.DB
		base          *transport.BaseHandler
		router        http.Handler
		announcements *record.Service[communication.Announcement]
		messages      *record.Service[communication.ChannelMessage]
		ctx           context.Context
	)

	BeforeEach(func() {
		var err error
		gdb, err = dbtest.Open()
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()

		lg := transporttest.Logger()
		announcements = record.NewService[communication.Announcement]("announcement", record.NewStore[communication.Announcement](gdb), lg)
		messages = record.NewService[communication.ChannelMessage]("message", record.NewStore[communication.ChannelMessage](gdb), lg)
		base = transporttest.NewBase()
		router = transporttest.Router(base, communication.NewHandler(base, announcements, messages).Mount)
	})

	AfterEach(func() {
		dbtest.Close(gdb)
	})

	It("posts an announcement signed by the current user", func() {
		w := transporttest.PostForm(router, "/communications", url.Values{
			"kind":  {"announcement"},
			"title": {"Office closed"},
			"body":  {"The office is closed on Friday."},
		})
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(w.Header().Get("Location")).To(Equal("/communications"))
		Expect(transporttest.Messages(base, w)).To(ConsistOf("Announcement posted."))

		list, err := announcements.List(ctx, communication.LatestAnnouncements)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Author).To(Equal(transporttest.Admin.FullName))
	})

	It("keeps the input and persists nothing when the body is missing", func() {
		w := transporttest.PostForm(router, "/communications", url.Values{
			"kind":  {"announcement"},
			"title": {"Half written"},
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Title and body are required."))
		Expect(w.Body.String()).To(ContainSubstring(`value="Half written"`))

		n, err := announcements.Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})

	It("sends a channel message to general when no channel is given", func() {
		w := transporttest.PostForm(router, "/communications", url.Values{
			"kind":    {"message"},
			"channel": {"   "},
			"body":    {"Hello team"},
		})
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(transporttest.Messages(base, w)).To(ConsistOf("Message sent."))

		list, err := messages.List(ctx, communication.LatestMessages)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Channel).To(Equal(communication.DefaultChannel))
		Expect(list[0].Message).To(Equal("Hello team"))
	})

	It("requires message text", func() {
		w := transporttest.PostForm(router, "/communications", url.Values{"kind": {"message"}})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Message is required."))
	})

	It("shows only the ten latest announcements", func() {
		for i := 0; i < 12; i++ {
			Expect(announcements.Create(ctx, &communication.Announcement{
				Title: fmt.Sprintf("Notice-%02d", i),
				Body:  "body",
			})).To(Succeed())
		}

		w := transporttest.Get(router, "/communications")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Notice-11"))
		Expect(w.Body.String()).NotTo(ContainSubstring("Notice-01"))
	})

	It("exposes the messages as a record kind of their own", func() {
		m := &communication.ChannelMessage{Channel: "random", Message: "hi", Author: "Ada"}
		Expect(messages.Create(ctx, m)).To(Succeed())

		w := transporttest.PostForm(router, fmt.Sprintf("/messages/%d/delete", m.ID), nil)
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(transporttest.Messages(base, w)).To(ConsistOf("Message deleted."))
	})
})

var _ = Describe("AuthorFrom", func() {
	It("falls back to the system author", func() {
		Expect(communication.AuthorFrom(context.Background())).To(Equal(communication.SystemAuthor))
	})

	It("uses the principal's name", func() {
		ctx := internal.ContextWithPrincipal(context.Background(), &internal.Principal{UserID: 7, FullName: "Mary Jackson"})
		Expect(communication.AuthorFrom(ctx)).To(Equal("Mary Jackson"))
	})
})
