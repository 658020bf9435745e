// Package services – response views.
//
// The view types in this file are the response shapes shared by both front
// ends: the REST shell serializes them as JSON bodies and the MCP shell
// pretty-prints them into tool results. They carry derived annotations
// (reply/reaction counts, rollups) alongside the stored fields.
package services

import (
	"time"

	"github.com/chatwire/chatwire/internal/repo"
)

// MessageView is a message annotated with its direct-reply count and total
// reaction count.
type MessageView struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Content       string    `json:"content"`
	Channel       string    `json:"channel"`
	ParentID      *uint     `json:"parent_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ReplyCount    int64     `json:"reply_count"`
	ReactionCount int64     `json:"reaction_count"`
}

// MessageSummary is the reduced message shape used for thread replies and the
// parent reference inside a thread.
type MessageSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadView is a message together with its direct replies (oldest first) and,
// when the message itself is a reply, a summary of its parent.
type ThreadView struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	Content    string           `json:"content"`
	Channel    string           `json:"channel"`
	ParentID   *uint            `json:"parent_id"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	ReplyCount int              `json:"reply_count"`
	Replies    []MessageSummary `json:"replies"`
	Parent     *MessageSummary  `json:"parent,omitempty"`
}

// ChannelView is one row of the derived channel listing. Channels are not
// stored; both fields are aggregates over the messages table.
type ChannelView struct {
	Channel      string    `json:"channel"`
	MessageCount int64     `json:"message_count"`
	LastActivity time.Time `json:"last_activity"`
}

// UserView is one row of the derived user listing.
type UserView struct {
	Name         string    `json:"name"`
	MessageCount int64     `json:"message_count"`
	LastActivity time.Time `json:"last_activity"`
}

// ReactionEntry is a single reaction within an emoji group, ordered by
// creation time.
type ReactionEntry struct {
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ReactionsView groups a message's reactions by emoji token. TotalCount is
// the number of reactions across all groups.
type ReactionsView struct {
	MessageID  uint                       `json:"message_id"`
	Reactions  map[string][]ReactionEntry `json:"reactions"`
	TotalCount int                        `json:"total_count"`
}

// messageView converts an annotated repository row into the shared view.
func messageView(r repo.MessageRow) MessageView {
	return MessageView{
		ID:            r.ID,
		Name:          r.Name,
		Content:       r.Content,
		Channel:       r.Channel,
		ParentID:      r.ParentID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		ReplyCount:    r.ReplyCount,
		ReactionCount: r.ReactionCount,
	}
}

// messageViews converts a slice of annotated rows, preserving order.
func messageViews(rows []repo.MessageRow) []MessageView {
	out := make([]MessageView, 0, len(rows))
	for _, r := range rows {
		out = append(out, messageView(r))
	}
	return out
}
