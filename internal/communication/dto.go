package communication

import (
	"context"
	"net/url"
	"strings"

	"github.com/frahmantamala/hr-portal/internal/core/form"
)

const (
	msgTitleBodyRequired = "Title and body are required."
	msgMessageRequired   = "Message is required."
)

type AnnouncementInput struct {
	Title  string
	Body   string
	Author string
}

func ParseAnnouncement(v url.Values) (AnnouncementInput, form.Errors) {
	p := form.NewParser(v)
	in := AnnouncementInput{
		Title:  p.Required("title", msgTitleBodyRequired),
		Body:   p.Required("body", msgTitleBodyRequired),
		Author: p.String("author"),
	}
	return in, p.Errors()
}

func ApplyAnnouncement(in AnnouncementInput, a *Announcement) {
	a.Title = in.Title
	a.Body = in.Body
	a.Author = in.Author
}

func AnnouncementValues(a *Announcement) url.Values {
	return form.Values("title", a.Title, "body", a.Body, "author", a.Author)
}

type MessageInput struct {
	Channel string
	Message string
	Author  string
}

func ParseMessage(v url.Values) (MessageInput, form.Errors) {
	p := form.NewParser(v)
	in := MessageInput{
		Channel: p.Default("channel", DefaultChannel),
		Message: p.Required("message", msgMessageRequired),
		Author:  p.String("author"),
	}
	return in, p.Errors()
}

func ApplyMessage(in MessageInput, m *ChannelMessage) {
	m.Channel = in.Channel
	m.Message = in.Message
	m.Author = in.Author
}

func MessageValues(m *ChannelMessage) url.Values {
	return form.Values("channel", m.Channel, "message", m.Message, "author", m.Author)
}

// defaultAuthor signs a new post with the current user when no author was
// given.
func defaultAuthor(ctx context.Context, values url.Values) {
	if strings.TrimSpace(values.Get("author")) == "" {
		values.Set("author", AuthorFrom(ctx))
	}
}
