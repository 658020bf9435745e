// Package services – ReactionService
//
// This file implements the reaction side of the engine. Adding a reaction
// enforces message existence and triple uniqueness inside one transaction so
// concurrent callers cannot both succeed in creating the same duplicate;
// the database unique index is the final arbiter and its violation is mapped
// to ErrDuplicateReaction.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/chatwire/chatwire/internal/repo"
)

// ReactionService implements the use-cases around emoji reactions.
type ReactionService struct {
	// DB is the database handle used for all reaction operations.
	DB *gorm.DB
}

// Add records an emoji reaction on messageID by userName.
//
// Semantics:
//   - messageID must exist; otherwise ErrMessageNotFound.
//   - The (message, user, emoji) triple must not already exist; otherwise
//     ErrDuplicateReaction. A duplicate is an error, never a silent no-op.
//   - Emoji allow-list membership is the validation layer's concern and is
//     not re-checked here.
//
// The existence check and the insert run in a single transaction; a failed
// call leaves storage exactly as it was.
func (s *ReactionService) Add(ctx context.Context, messageID uint, userName, emoji string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetMessage(ctx, tx, messageID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrMessageNotFound
			}
			return err
		}

		if _, err := repo.GetReaction(ctx, tx, messageID, userName, emoji); err == nil {
			return ErrDuplicateReaction
		} else if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		if _, err := repo.CreateReaction(ctx, tx, messageID, userName, emoji); err != nil {
			// A concurrent writer may win the race between the check and
			// the insert; the unique index reports it.
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				return ErrDuplicateReaction
			}
			return err
		}
		return nil
	})
}

// Remove deletes the reaction matching the exact triple. Returns
// ErrReactionNotFound when no such reaction exists.
func (s *ReactionService) Remove(ctx context.Context, messageID uint, userName, emoji string) error {
	n, err := repo.DeleteReaction(ctx, s.DB, messageID, userName, emoji)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReactionNotFound
	}
	return nil
}

// ForMessage returns the message's reactions grouped by emoji token, each
// group ordered by creation time, plus the total count. An unknown message
// yields an empty grouping with count 0, not an error.
func (s *ReactionService) ForMessage(ctx context.Context, messageID uint) (*ReactionsView, error) {
	reactions, err := repo.ListReactions(ctx, s.DB, messageID)
	if err != nil {
		return nil, err
	}

	view := &ReactionsView{
		MessageID:  messageID,
		Reactions:  make(map[string][]ReactionEntry),
		TotalCount: len(reactions),
	}
	for _, r := range reactions {
		view.Reactions[r.Emoji] = append(view.Reactions[r.Emoji], ReactionEntry{
			UserName:  r.UserName,
			CreatedAt: r.CreatedAt,
		})
	}
	return view, nil
}

// isDuplicate detects unique-constraint violations across drivers that may
// not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite: "UNIQUE constraint failed"
	// Postgres: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
