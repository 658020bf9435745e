// Package domain defines the persistence models for messages and reactions.
// These types are mapped with GORM and form the core data layer of the
// chatwire message store.
package domain

import (
	"time"
)

// DefaultChannel is the channel a message lands in when none is supplied.
const DefaultChannel = "general"

// Message represents a single chat message. A message either starts a thread
// (ParentID nil) or is a direct reply to another message. Replies always live
// in their parent's channel; the channel of a thread never diverges.
//
// Fields:
//   - ID: autoincrement integer primary key, assigned on creation.
//   - ParentID: optional reference to the parent message; nil for top-level
//     messages. The foreign key cascades on delete so a parent's removal
//     takes its replies with it.
//   - Name: author name (1–50 chars, enforced at the validation layer).
//   - Content: message body (1–500 chars).
//   - Channel: channel name (≤50 chars), defaults to "general".
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//
// There is no soft-deletion marker: cascade deletion and the reaction
// uniqueness constraint operate on real rows.
type Message struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	ParentID  *uint     `json:"parent_id"  gorm:"index:ix_messages_parent_id"`
	Name      string    `json:"name"       gorm:"type:varchar(50);not null"`
	Content   string    `json:"content"    gorm:"type:varchar(500);not null"`
	Channel   string    `json:"channel"    gorm:"type:varchar(50);not null;default:'general';index:ix_messages_channel"`
	CreatedAt time.Time `json:"created_at" gorm:"index:ix_messages_created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Parent is the self-referential association. Deleting a message
	// cascades to its reply subtree.
	Parent *Message `json:"-" gorm:"foreignKey:ParentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

// TopLevel reports whether the message starts a thread (has no parent).
func (m Message) TopLevel() bool { return m.ParentID == nil }

// Reaction represents an emoji reaction left by a user on a message. A given
// user can apply a given emoji to a given message at most once (enforced by
// the unique index over message_id, user_name, emoji).
//
// Fields:
//   - ID: autoincrement integer primary key.
//   - MessageID: foreign key to the reacted message (indexed, cascade delete).
//   - UserName: reacting user (1–50 chars).
//   - Emoji: emoji token from the fixed allow-list (≤10 chars).
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Reaction struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	MessageID uint      `json:"message_id" gorm:"not null;index:ix_reactions_message_id;uniqueIndex:ux_reaction_message_user_emoji"`
	UserName  string    `json:"user_name"  gorm:"type:varchar(50);not null;uniqueIndex:ux_reaction_message_user_emoji"`
	Emoji     string    `json:"emoji"      gorm:"type:varchar(10);not null;uniqueIndex:ux_reaction_message_user_emoji"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Message is the reacted message. Reactions are cascade-deleted when
	// the underlying message is removed.
	Message Message `json:"-" gorm:"foreignKey:MessageID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Reaction.
func (Reaction) TableName() string { return "reactions" }
