// Package services – DirectoryService
//
// Channels and users are derived listings, not stored entities: each call
// aggregates over the messages table at read time. There is deliberately no
// second source of truth to keep in sync.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/chatwire/chatwire/internal/repo"
)

// DirectoryService implements the derived channel and user listings.
type DirectoryService struct {
	// DB is the database handle used for the rollup queries.
	DB *gorm.DB
}

// Channels returns every distinct channel with its message count (top-level
// and replies) and latest creation timestamp, ordered alphabetically.
func (s *DirectoryService) Channels(ctx context.Context) ([]ChannelView, error) {
	stats, err := repo.ChannelStats(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	out := make([]ChannelView, 0, len(stats))
	for _, st := range stats {
		out = append(out, ChannelView{
			Channel:      st.Channel,
			MessageCount: st.MessageCount,
			LastActivity: st.LastActivity,
		})
	}
	return out, nil
}

// Users returns up to limit distinct author names with message count and
// latest activity, ordered per sortBy (one of "name", "messages",
// "last_activity"; the validation layer rejects anything else).
func (s *DirectoryService) Users(ctx context.Context, limit int, sortBy string) ([]UserView, error) {
	stats, err := repo.UserStats(ctx, s.DB, limit, sortBy)
	if err != nil {
		return nil, err
	}
	out := make([]UserView, 0, len(stats))
	for _, st := range stats {
		out = append(out, UserView{
			Name:         st.Name,
			MessageCount: st.MessageCount,
			LastActivity: st.LastActivity,
		})
	}
	return out, nil
}
