package communication

import (
	"net/http"
	"net/url"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/core/form"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/crud"
	"github.com/frahmantamala/hr-portal/internal/transport/view"
	"github.com/go-chi/chi"
)

const pagePath = "/communications"

// PageView is the combined announcements and channel page.
type PageView struct {
	Announcements []Announcement
	Messages      []ChannelMessage
	Kind          string
	Values        url.Values
	Errors        []string
}

type Handler struct {
	*transport.BaseHandler
	Announcements *crud.Resource[Announcement, AnnouncementInput]
	Messages      *crud.Resource[ChannelMessage, MessageInput]
}

func NewHandler(base *transport.BaseHandler, announcements *record.Service[Announcement], messages *record.Service[ChannelMessage]) *Handler {
	return &Handler{
		BaseHandler: base,
		Announcements: crud.NewResource(base, announcements, crud.Kind[Announcement, AnnouncementInput]{
			Singular: "Announcement",
			Path:     "/announcements",
			Nav:      "communications",
			List:     record.ListOptions{Order: []string{"created_at DESC", "id DESC"}},
			Messages: crud.Messages{Created: "Announcement posted."},
			Actions:  []view.Link{{Label: "Communications", Href: pagePath}},
			Fields: []crud.Field{
				{Name: "title", Label: "Title", Required: true},
				{Name: "body", Label: "Body", Type: crud.TextArea, Required: true},
				{Name: "author", Label: "Author"},
			},
			Columns: []crud.Column[Announcement]{
				{Header: "Title", Value: func(a *Announcement) string { return a.Title }},
				{Header: "Author", Value: func(a *Announcement) string { return a.Author }},
				{Header: "Posted", Value: func(a *Announcement) string { return a.CreatedAt.Format("2006-01-02 15:04") }},
			},
			Enrich: defaultAuthor,
			Parse:  ParseAnnouncement,
			Apply:  ApplyAnnouncement,
			Values: AnnouncementValues,
		}),
		Messages: crud.NewResource(base, messages, crud.Kind[ChannelMessage, MessageInput]{
			Singular: "Message",
			Path:     "/messages",
			Nav:      "communications",
			List:     record.ListOptions{Order: []string{"created_at DESC", "id DESC"}},
			Messages: crud.Messages{Created: "Message sent."},
			Actions:  []view.Link{{Label: "Communications", Href: pagePath}},
			Fields: []crud.Field{
				{Name: "channel", Label: "Channel"},
				{Name: "message", Label: "Message", Type: crud.TextArea, Required: true},
				{Name: "author", Label: "Author"},
			},
			Columns: []crud.Column[ChannelMessage]{
				{Header: "Channel", Value: func(m *ChannelMessage) string { return "#" + m.Channel }},
				{Header: "Message", Value: func(m *ChannelMessage) string { return m.Message }},
				{Header: "Author", Value: func(m *ChannelMessage) string { return m.Author }},
				{Header: "Sent", Value: func(m *ChannelMessage) string { return m.CreatedAt.Format("2006-01-02 15:04") }},
			},
			Defaults: form.Values("channel", DefaultChannel),
			Enrich:   defaultAuthor,
			Parse:    ParseMessage,
			Apply:    ApplyMessage,
			Values:   MessageValues,
		}),
	}
}

func (h *Handler) Mount(r chi.Router) {
	h.Announcements.Mount(r)
	h.Messages.Mount(r)
	r.Get(pagePath, h.Page)
	r.Post(pagePath, h.Post)
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, PageView{Kind: "announcement"})
}

// Post creates an announcement or a channel message depending on kind. The
// channel form submits its text as body.
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Fail(w, r, internal.NewValidationError("malformed form body", internal.ErrCodeValidationFailed))
		return
	}

	var (
		errs form.Errors
		err  error
		msg  string
	)
	kind := r.PostForm.Get("kind")
	switch kind {
	case "announcement":
		_, errs, err = h.Announcements.Insert(r.Context(), r.PostForm)
		msg = h.Announcements.Kind.Messages.Created
	case "message":
		values := form.Merge(r.PostForm, form.Values("message", r.PostForm.Get("body")))
		_, errs, err = h.Messages.Insert(r.Context(), values)
		msg = h.Messages.Kind.Messages.Created
	default:
		h.Page(w, r)
		return
	}
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	if !errs.Empty() {
		h.render(w, r, PageView{Kind: kind, Values: r.PostForm, Errors: errs.Messages()})
		return
	}
	h.FlashRedirect(w, r, session.FlashSuccess, msg, pagePath)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, pv PageView) {
	ctx := r.Context()
	var err error
	if pv.Announcements, err = h.Announcements.Service.List(ctx, LatestAnnouncements); err != nil {
		h.Fail(w, r, err)
		return
	}
	if pv.Messages, err = h.Messages.Service.List(ctx, LatestMessages); err != nil {
		h.Fail(w, r, err)
		return
	}
	if pv.Values == nil {
		pv.Values = url.Values{}
	}
	page := view.Page{Title: "Communications", Nav: "communications", Data: pv}
	for _, m := range pv.Errors {
		page.Flashes = append(page.Flashes, session.Flash{Category: session.FlashDanger, Message: m})
	}
	h.Render(w, r, http.StatusOK, "communications", page)
}
