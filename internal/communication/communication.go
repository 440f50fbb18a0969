// Package communication holds company announcements and channel messages.
package communication

import (
	"context"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/core/record"
)

const (
	DefaultChannel = "general"
	// SystemAuthor signs posts made without a signed-in user.
	SystemAuthor = "System"
)

type Announcement struct {
	record.Model
	Title  string `gorm:"column:title;not null" json:"title"`
	Body   string `gorm:"column:body;not null" json:"body"`
	Author string `gorm:"column:author" json:"author"`
}

func (Announcement) TableName() string {
	return "announcements"
}

type ChannelMessage struct {
	record.Model
	Channel string `gorm:"column:channel;not null;default:general" json:"channel"`
	Message string `gorm:"column:message;not null" json:"message"`
	Author  string `gorm:"column:author" json:"author"`
}

func (ChannelMessage) TableName() string {
	return "channel_messages"
}

// AuthorFrom names the signed-in user, or SystemAuthor.
func AuthorFrom(ctx context.Context) string {
	if p := internal.PrincipalFromContext(ctx); p != nil && p.FullName != "" {
		return p.FullName
	}
	return SystemAuthor
}

var (
	LatestAnnouncements = record.ListOptions{Order: []string{"created_at DESC", "id DESC"}, Limit: 10}
	LatestMessages      = record.ListOptions{Order: []string{"created_at DESC", "id DESC"}, Limit: 20}
)
