// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Reaction
// model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving business rules to the services package.
//
// Error semantics:
//   - A duplicate reaction (same message_id, user_name, emoji) relies on the
//     database unique constraint and is returned as a raw DB error. The
//     service layer translates that into a domain error.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/chatwire/chatwire/internal/domain"
)

// CreateReaction inserts a reaction row for the given message, user, and
// emoji. The triple must be unique, enforced by the database schema.
func CreateReaction(ctx context.Context, db *gorm.DB, messageID uint, userName, emoji string) (*domain.Reaction, error) {
	r := &domain.Reaction{
		MessageID: messageID,
		UserName:  userName,
		Emoji:     emoji,
		CreatedAt: time.Now().UTC(),
	}
	return r, db.WithContext(ctx).Create(r).Error
}

// GetReaction fetches the reaction matching the exact triple. Returns
// ErrNotFound when no such reaction exists.
func GetReaction(ctx context.Context, db *gorm.DB, messageID uint, userName, emoji string) (*domain.Reaction, error) {
	var r domain.Reaction
	err := db.WithContext(ctx).
		Where("message_id = ? AND user_name = ? AND emoji = ?", messageID, userName, emoji).
		First(&r).Error
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// DeleteReaction removes the reaction matching the exact triple and reports
// how many rows were deleted (0 when no such reaction existed).
func DeleteReaction(ctx context.Context, db *gorm.DB, messageID uint, userName, emoji string) (int64, error) {
	res := db.WithContext(ctx).
		Where("message_id = ? AND user_name = ? AND emoji = ?", messageID, userName, emoji).
		Delete(&domain.Reaction{})
	return res.RowsAffected, res.Error
}

// ListReactions returns all reactions on a message ordered oldest first
// (CreatedAt ASC, ID ASC). An unknown message yields no rows.
func ListReactions(ctx context.Context, db *gorm.DB, messageID uint) ([]domain.Reaction, error) {
	var out []domain.Reaction
	err := db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
