// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the rollup queries behind the derived
// channel and user listings: GROUP BY aggregations computed at read time,
// never materialized.
//
// SQLite returns aggregate columns such as MAX(created_at) without a declared
// type, so the driver hands them back as TEXT rather than time.Time. The
// rollup scans therefore read the timestamp as a string and parse it with
// parseDBTime.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ChannelStat is one row of the channel rollup: a distinct channel value with
// its message count (top-level and replies) and most recent creation time.
type ChannelStat struct {
	Channel      string
	MessageCount int64
	LastActivity time.Time
}

// UserStat is one row of the user rollup: a distinct author name with its
// message count and most recent activity.
type UserStat struct {
	Name         string
	MessageCount int64
	LastActivity time.Time
}

// User listing sort keys accepted by UserStats. The validation layer
// guarantees only these reach the repository.
const (
	SortByName         = "name"
	SortByMessages     = "messages"
	SortByLastActivity = "last_activity"
)

// ChannelStats returns every distinct channel with message count and latest
// creation timestamp, ordered alphabetically by channel name.
func ChannelStats(ctx context.Context, db *gorm.DB) ([]ChannelStat, error) {
	var rows []struct {
		Channel      string
		MessageCount int64
		LastActivity string
	}
	err := db.WithContext(ctx).Raw(`
		SELECT channel, COUNT(*) AS message_count, MAX(created_at) AS last_activity
		FROM messages
		GROUP BY channel
		ORDER BY channel ASC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ChannelStat, 0, len(rows))
	for _, r := range rows {
		ts, err := parseDBTime(r.LastActivity)
		if err != nil {
			return nil, err
		}
		out = append(out, ChannelStat{
			Channel:      r.Channel,
			MessageCount: r.MessageCount,
			LastActivity: ts,
		})
	}
	return out, nil
}

// UserStats returns distinct author names with message count and latest
// activity, ordered per sortBy and truncated to limit. sortBy must be one of
// the SortBy* constants.
func UserStats(ctx context.Context, db *gorm.DB, limit int, sortBy string) ([]UserStat, error) {
	order := "name ASC"
	switch sortBy {
	case SortByMessages:
		order = "message_count DESC, name ASC"
	case SortByLastActivity:
		// created_at text is written in a single fixed-offset format, so
		// lexical MAX ordering matches chronological ordering.
		order = "last_activity DESC, name ASC"
	}

	var rows []struct {
		Name         string
		MessageCount int64
		LastActivity string
	}
	err := db.WithContext(ctx).Raw(`
		SELECT name, COUNT(*) AS message_count, MAX(created_at) AS last_activity
		FROM messages
		GROUP BY name
		ORDER BY `+order+`
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]UserStat, 0, len(rows))
	for _, r := range rows {
		ts, err := parseDBTime(r.LastActivity)
		if err != nil {
			return nil, err
		}
		out = append(out, UserStat{
			Name:         r.Name,
			MessageCount: r.MessageCount,
			LastActivity: ts,
		})
	}
	return out, nil
}

// dbTimeLayouts covers the text forms the SQLite driver produces for stored
// time.Time values, most specific first.
var dbTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
}

// parseDBTime parses a timestamp that SQLite returned as TEXT (aggregate
// columns lose their decltype). An empty value maps to the zero time.
func parseDBTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range dbTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
