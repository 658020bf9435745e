// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Message
// model, including the annotated read queries (reply/reaction counts computed
// as correlated subqueries at read time) and the cascade subtree delete.
package repo

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/chatwire/chatwire/internal/domain"
)

// MessageRow is a message annotated with its direct-reply count and total
// reaction count. The counts are computed against current storage contents on
// every read; no running counters exist that could drift.
type MessageRow struct {
	domain.Message
	ReplyCount    int64 `json:"reply_count"    gorm:"column:reply_count"`
	ReactionCount int64 `json:"reaction_count" gorm:"column:reaction_count"`
}

// annotatedColumns selects the message columns plus correlated count
// subqueries. SQLite resolves both subqueries per row using the parent_id and
// message_id indexes.
const annotatedColumns = `messages.*,
(SELECT COUNT(*) FROM messages r WHERE r.parent_id = messages.id) AS reply_count,
(SELECT COUNT(*) FROM reactions x WHERE x.message_id = messages.id) AS reaction_count`

// annotated returns a query over messages with count annotations, ordered
// newest first (CreatedAt DESC, ID DESC for determinism).
func annotated(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Model(&domain.Message{}).
		Select(annotatedColumns).
		Order("messages.created_at DESC, messages.id DESC")
}

// CreateMessage inserts a new message row. Channel and parent are stored as
// given; callers are responsible for channel inheritance on replies.
func CreateMessage(ctx context.Context, db *gorm.DB, name, content, channel string, parentID *uint) (*domain.Message, error) {
	m := &domain.Message{
		Name:      name,
		Content:   content,
		Channel:   channel,
		ParentID:  parentID,
		CreatedAt: time.Now().UTC(),
	}
	return m, db.WithContext(ctx).Create(m).Error
}

// GetMessage fetches a message by ID. Returns ErrNotFound when missing.
func GetMessage(ctx context.Context, db *gorm.DB, id uint) (*domain.Message, error) {
	var m domain.Message
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetMessageRow fetches a single message by ID with count annotations.
// Returns ErrNotFound when missing.
func GetMessageRow(ctx context.Context, db *gorm.DB, id uint) (*MessageRow, error) {
	var rows []MessageRow
	err := annotated(ctx, db).
		Where("messages.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// ListRecent returns top-level messages (no parent) newest first, annotated
// with counts and truncated to limit.
func ListRecent(ctx context.Context, db *gorm.DB, limit int) ([]MessageRow, error) {
	var out []MessageRow
	err := annotated(ctx, db).
		Where("messages.parent_id IS NULL").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListChannel returns top-level messages of one channel, newest first, with
// count annotations. An unknown channel simply yields no rows.
func ListChannel(ctx context.Context, db *gorm.DB, channel string, limit int) ([]MessageRow, error) {
	var out []MessageRow
	err := annotated(ctx, db).
		Where("messages.channel = ?", channel).
		Where("messages.parent_id IS NULL").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// SearchMessages returns messages (top-level and replies) whose content or
// author name contains the query as a case-insensitive substring.
func SearchMessages(ctx context.Context, db *gorm.DB, query string, limit int) ([]MessageRow, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var out []MessageRow
	err := annotated(ctx, db).
		Where("lower(messages.content) LIKE ? OR lower(messages.name) LIKE ?", pattern, pattern).
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListByAuthor returns messages whose author name contains name as a
// case-insensitive substring (partial match, not exact), newest first.
func ListByAuthor(ctx context.Context, db *gorm.DB, name string, limit int) ([]MessageRow, error) {
	pattern := "%" + strings.ToLower(name) + "%"
	var out []MessageRow
	err := annotated(ctx, db).
		Where("lower(messages.name) LIKE ?", pattern).
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListByDateRange returns messages created within the inclusive interval
// [start, end], newest first, with count annotations.
func ListByDateRange(ctx context.Context, db *gorm.DB, start, end time.Time, limit int) ([]MessageRow, error) {
	var out []MessageRow
	err := annotated(ctx, db).
		Where("messages.created_at >= ? AND messages.created_at <= ?", start, end).
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListReplies returns the direct replies of a message ordered oldest first
// (CreatedAt ASC, ID ASC).
func ListReplies(ctx context.Context, db *gorm.DB, parentID uint) ([]domain.Message, error) {
	var out []domain.Message
	err := db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// DeleteMessageTree deletes a message together with its reply subtree and
// every reaction on any message in that subtree, all within one transaction.
// It returns the number of messages removed, or ErrNotFound when the root
// does not exist.
//
// The subtree is collected breadth-first before any row is touched; the
// ON DELETE CASCADE constraints remain underneath as an engine-level backstop.
func DeleteMessageTree(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	var deleted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var root domain.Message
		if err := tx.Where("id = ?", id).First(&root).Error; err != nil {
			if notFound(err) {
				return ErrNotFound
			}
			return err
		}

		ids := []uint{id}
		frontier := []uint{id}
		for len(frontier) > 0 {
			var next []uint
			if err := tx.Model(&domain.Message{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &next).Error; err != nil {
				return err
			}
			ids = append(ids, next...)
			frontier = next
		}

		if err := tx.Where("message_id IN ?", ids).Delete(&domain.Reaction{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&domain.Message{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
