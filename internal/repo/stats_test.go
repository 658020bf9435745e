package repo

import (
	"context"
	"testing"
	"time"
)

func TestChannelStats_GroupsAndOrdersAlphabetically(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	mustCreate(t, db, "alice", "one", "general", nil)
	mustCreate(t, db, "bob", "two", "general", nil)
	root := mustCreate(t, db, "carol", "three", "golang", nil)
	// Replies count toward their channel's rollup too.
	mustCreate(t, db, "dave", "four", "golang", &root.ID)

	stats, err := ChannelStats(ctx, db)
	if err != nil {
		t.Fatalf("ChannelStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(stats))
	}
	if stats[0].Channel != "general" || stats[1].Channel != "golang" {
		t.Fatalf("unexpected channel order: %+v", stats)
	}
	if stats[0].MessageCount != 2 || stats[1].MessageCount != 2 {
		t.Fatalf("unexpected message counts: %+v", stats)
	}
	for _, s := range stats {
		if s.LastActivity.IsZero() {
			t.Fatalf("LastActivity not parsed for %s", s.Channel)
		}
	}
}

func TestChannelStats_EmptyDatabase(t *testing.T) {
	db := newMessageDB(t)
	stats, err := ChannelStats(context.Background(), db)
	if err != nil {
		t.Fatalf("ChannelStats: %v", err)
	}
	if len(stats) != 0 {
		t.Fatalf("expected no channels, got %d", len(stats))
	}
}

func TestUserStats_SortByName(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	mustCreate(t, db, "carol", "one", "general", nil)
	mustCreate(t, db, "alice", "two", "general", nil)
	mustCreate(t, db, "alice", "three", "general", nil)

	stats, err := UserStats(ctx, db, 50, SortByName)
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 users, got %d", len(stats))
	}
	if stats[0].Name != "alice" || stats[1].Name != "carol" {
		t.Fatalf("unexpected name order: %+v", stats)
	}
	if stats[0].MessageCount != 2 {
		t.Fatalf("alice message_count = %d, want 2", stats[0].MessageCount)
	}
}

func TestUserStats_SortByMessages(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	mustCreate(t, db, "alice", "one", "general", nil)
	mustCreate(t, db, "bob", "two", "general", nil)
	mustCreate(t, db, "bob", "three", "general", nil)

	stats, err := UserStats(ctx, db, 50, SortByMessages)
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if stats[0].Name != "bob" || stats[0].MessageCount != 2 {
		t.Fatalf("expected bob first with 2 messages, got %+v", stats)
	}
}

func TestUserStats_Limit(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	mustCreate(t, db, "alice", "a", "general", nil)
	mustCreate(t, db, "bob", "b", "general", nil)
	mustCreate(t, db, "carol", "c", "general", nil)

	stats, err := UserStats(ctx, db, 2, SortByName)
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(stats))
	}
}

func TestParseDBTime_Layouts(t *testing.T) {
	cases := []string{
		"2026-01-02T15:04:05.123456789Z",
		"2026-01-02T15:04:05Z",
		"2026-01-02 15:04:05.123456789+00:00",
		"2026-01-02 15:04:05+00:00",
		"2026-01-02 15:04:05",
	}
	for _, s := range cases {
		ts, err := parseDBTime(s)
		if err != nil {
			t.Fatalf("parseDBTime(%q): %v", s, err)
		}
		if ts.Year() != 2026 {
			t.Fatalf("parseDBTime(%q) = %v", s, ts)
		}
	}

	if ts, err := parseDBTime(""); err != nil || !ts.IsZero() {
		t.Fatalf("empty input should yield zero time, got %v, %v", ts, err)
	}
	if _, err := parseDBTime("not-a-time"); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}

func TestUserStats_LastActivityAdvances(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	mustCreate(t, db, "alice", "old", "general", nil)
	before := time.Now().UTC().Add(-time.Minute)

	stats, err := UserStats(ctx, db, 50, SortByLastActivity)
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if len(stats) != 1 || stats[0].LastActivity.Before(before) {
		t.Fatalf("unexpected last activity: %+v", stats)
	}
}
