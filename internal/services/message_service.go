// Package services – MessageService
//
// This file implements the message side of the query/aggregation engine:
// creation (send/reply with channel inheritance), threaded reads, the
// annotated list queries (recent, per-channel, search, by author, by date
// range), and cascade deletion. Each method is one logical transaction; the
// service holds no state beyond the injected database handle.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/chatwire/chatwire/internal/repo"
)

// MessageService implements the use-cases around messages and threads. It is
// context-aware and safe for concurrent use; all consistency guarantees come
// from the persistence layer's transactions and constraints.
type MessageService struct {
	// DB is the database handle used for all message operations.
	DB *gorm.DB
}

// Send creates a new top-level message and returns its assigned ID. The
// caller supplies a validated, normalized channel (the validation layer maps
// an absent channel to "general").
func (s *MessageService) Send(ctx context.Context, name, content, channel string) (uint, error) {
	m, err := repo.CreateMessage(ctx, s.DB, name, content, channel, nil)
	if err != nil {
		return 0, err
	}
	return m.ID, nil
}

// Reply creates a reply to parentID and returns the new message ID. The
// reply's channel is copied from the parent at insert time; any channel the
// caller supplied is ignored. Returns ErrParentNotFound when the parent does
// not exist.
//
// The parent lookup and the insert run in one transaction so a concurrent
// cascade delete cannot leave an orphaned reply.
func (s *MessageService) Reply(ctx context.Context, parentID uint, name, content string) (uint, error) {
	var id uint
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		parent, err := repo.GetMessage(ctx, tx, parentID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrParentNotFound
			}
			return err
		}
		m, err := repo.CreateMessage(ctx, tx, name, content, parent.Channel, &parentID)
		if err != nil {
			return err
		}
		id = m.ID
		return nil
	})
	return id, err
}

// Recent returns up to limit top-level messages, newest first, annotated with
// reply and reaction counts.
func (s *MessageService) Recent(ctx context.Context, limit int) ([]MessageView, error) {
	rows, err := repo.ListRecent(ctx, s.DB, limit)
	if err != nil {
		return nil, err
	}
	return messageViews(rows), nil
}

// ByID returns a single annotated message, or nil when no such message
// exists. Absence is a normal empty result at this layer; callers decide
// whether to surface it as an error.
func (s *MessageService) ByID(ctx context.Context, id uint) (*MessageView, error) {
	row, err := repo.GetMessageRow(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	v := messageView(*row)
	return &v, nil
}

// Thread returns the message, its direct replies oldest first, and, when the
// message itself is a reply, a reduced summary of its parent. Returns nil
// when the root ID does not exist.
func (s *MessageService) Thread(ctx context.Context, id uint) (*ThreadView, error) {
	msg, err := repo.GetMessage(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	replies, err := repo.ListReplies(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}

	view := &ThreadView{
		ID:         msg.ID,
		Name:       msg.Name,
		Content:    msg.Content,
		Channel:    msg.Channel,
		ParentID:   msg.ParentID,
		CreatedAt:  msg.CreatedAt,
		UpdatedAt:  msg.UpdatedAt,
		ReplyCount: len(replies),
		Replies:    make([]MessageSummary, 0, len(replies)),
	}
	for _, r := range replies {
		view.Replies = append(view.Replies, MessageSummary{
			ID:        r.ID,
			Name:      r.Name,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
		})
	}

	if msg.ParentID != nil {
		parent, err := repo.GetMessage(ctx, s.DB, *msg.ParentID)
		if err == nil {
			view.Parent = &MessageSummary{
				ID:        parent.ID,
				Name:      parent.Name,
				Content:   parent.Content,
				CreatedAt: parent.CreatedAt,
			}
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
	}
	return view, nil
}

// ChannelMessages returns up to limit top-level messages of one channel,
// newest first, with count annotations. An unknown channel yields an empty
// sequence, not an error.
func (s *MessageService) ChannelMessages(ctx context.Context, channel string, limit int) ([]MessageView, error) {
	rows, err := repo.ListChannel(ctx, s.DB, channel, limit)
	if err != nil {
		return nil, err
	}
	return messageViews(rows), nil
}

// Search returns messages (top-level and replies) whose content or author
// name contains query as a case-insensitive substring, newest first.
func (s *MessageService) Search(ctx context.Context, query string, limit int) ([]MessageView, error) {
	rows, err := repo.SearchMessages(ctx, s.DB, query, limit)
	if err != nil {
		return nil, err
	}
	return messageViews(rows), nil
}

// ByAuthor returns messages whose author name contains name as a
// case-insensitive substring, newest first.
func (s *MessageService) ByAuthor(ctx context.Context, name string, limit int) ([]MessageView, error) {
	rows, err := repo.ListByAuthor(ctx, s.DB, name, limit)
	if err != nil {
		return nil, err
	}
	return messageViews(rows), nil
}

// ByDateRange returns messages created within [start, end], newest first.
// The validation layer guarantees an ordered interval before this is called.
func (s *MessageService) ByDateRange(ctx context.Context, start, end time.Time, limit int) ([]MessageView, error) {
	rows, err := repo.ListByDateRange(ctx, s.DB, start, end, limit)
	if err != nil {
		return nil, err
	}
	return messageViews(rows), nil
}

// Delete removes a message, its reply subtree, and every reaction on any
// message in that subtree. It returns the number of messages removed, or
// ErrMessageNotFound when the root does not exist. Neither shell routes this
// operation; it exists for administrative use and as the cascade primitive.
func (s *MessageService) Delete(ctx context.Context, id uint) (int64, error) {
	n, err := repo.DeleteMessageTree(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrMessageNotFound
		}
		return 0, err
	}
	return n, nil
}
