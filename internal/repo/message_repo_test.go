package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chatwire/chatwire/internal/domain"
)

func newMessageDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Message{}, &domain.Reaction{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, name, content, channel string, parentID *uint) *domain.Message {
	t.Helper()
	m, err := CreateMessage(context.Background(), db, name, content, channel, parentID)
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	return m
}

func TestCreateMessage_AssignsIDAndTimestamp(t *testing.T) {
	db := newMessageDB(t)
	start := time.Now().UTC().Add(-time.Minute)

	m := mustCreate(t, db, "alice", "hello", "general", nil)
	if m.ID == 0 {
		t.Fatalf("expected autoincrement ID, got 0")
	}
	if m.ParentID != nil {
		t.Fatalf("expected nil parent, got %v", *m.ParentID)
	}
	if m.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt not set reasonably: %v", m.CreatedAt)
	}
}

func TestGetMessage_NotFound(t *testing.T) {
	db := newMessageDB(t)
	if _, err := GetMessage(context.Background(), db, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetMessageRow_Annotations(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	root := mustCreate(t, db, "alice", "root", "general", nil)
	mustCreate(t, db, "bob", "reply one", "general", &root.ID)
	mustCreate(t, db, "carol", "reply two", "general", &root.ID)
	if _, err := CreateReaction(ctx, db, root.ID, "bob", "👍"); err != nil {
		t.Fatalf("CreateReaction: %v", err)
	}

	row, err := GetMessageRow(ctx, db, root.ID)
	if err != nil {
		t.Fatalf("GetMessageRow: %v", err)
	}
	if row.ReplyCount != 2 {
		t.Fatalf("reply_count = %d, want 2", row.ReplyCount)
	}
	if row.ReactionCount != 1 {
		t.Fatalf("reaction_count = %d, want 1", row.ReactionCount)
	}
}

func TestGetMessageRow_NotFound(t *testing.T) {
	db := newMessageDB(t)
	if _, err := GetMessageRow(context.Background(), db, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListRecent_ExcludesRepliesAndOrdersNewestFirst(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	first := mustCreate(t, db, "alice", "first", "general", nil)
	second := mustCreate(t, db, "bob", "second", "general", nil)
	mustCreate(t, db, "carol", "a reply", "general", &first.ID)

	out, err := ListRecent(ctx, db, 50)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 top-level messages, got %d", len(out))
	}
	// Identical timestamps fall back to ID DESC, so the later insert leads.
	if out[0].ID != second.ID || out[1].ID != first.ID {
		t.Fatalf("unexpected order: [%d %d]", out[0].ID, out[1].ID)
	}
	if out[0].ReplyCount != 0 || out[1].ReplyCount != 1 {
		t.Fatalf("unexpected reply counts: %d, %d", out[0].ReplyCount, out[1].ReplyCount)
	}
}

func TestListRecent_Limit(t *testing.T) {
	db := newMessageDB(t)
	for i := 0; i < 5; i++ {
		mustCreate(t, db, "alice", "msg", "general", nil)
	}
	out, err := ListRecent(context.Background(), db, 3)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(out))
	}
}

func TestListChannel_FiltersAndUnknownChannelIsEmpty(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	mustCreate(t, db, "alice", "general talk", "general", nil)
	mustCreate(t, db, "bob", "go talk", "golang", nil)

	out, err := ListChannel(ctx, db, "golang", 50)
	if err != nil {
		t.Fatalf("ListChannel: %v", err)
	}
	if len(out) != 1 || out[0].Channel != "golang" {
		t.Fatalf("unexpected channel listing: %+v", out)
	}

	empty, err := ListChannel(ctx, db, "nope", 50)
	if err != nil {
		t.Fatalf("ListChannel unknown: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list for unknown channel, got %d", len(empty))
	}
}

func TestSearchMessages_CaseInsensitiveOverContentAndName(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	mustCreate(t, db, "Alice", "Deploy tomorrow", "general", nil)
	root := mustCreate(t, db, "bob", "nothing here", "general", nil)
	mustCreate(t, db, "carol", "ALICE said so", "general", &root.ID)

	out, err := SearchMessages(ctx, db, "alice", 50)
	if err != nil {
		t.Fatalf("SearchMessages: %v", err)
	}
	// Matches by author name and by content; replies are included.
	if len(out) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(out))
	}
}

func TestListByAuthor_PartialMatch(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	mustCreate(t, db, "Alice Smith", "one", "general", nil)
	mustCreate(t, db, "alice", "two", "general", nil)
	mustCreate(t, db, "bob", "three", "general", nil)

	out, err := ListByAuthor(ctx, db, "ali", 50)
	if err != nil {
		t.Fatalf("ListByAuthor: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 messages by alice variants, got %d", len(out))
	}
}

func TestListByDateRange_InclusiveBounds(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	m := mustCreate(t, db, "alice", "bounded", "general", nil)

	out, err := ListByDateRange(ctx, db, m.CreatedAt, m.CreatedAt, 50)
	if err != nil {
		t.Fatalf("ListByDateRange: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected the boundary message to be included, got %d rows", len(out))
	}

	out, err = ListByDateRange(ctx, db, m.CreatedAt.Add(time.Second), m.CreatedAt.Add(time.Hour), 50)
	if err != nil {
		t.Fatalf("ListByDateRange: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no rows outside the interval, got %d", len(out))
	}
}

func TestListReplies_OldestFirst(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	root := mustCreate(t, db, "alice", "root", "general", nil)
	r1 := mustCreate(t, db, "bob", "one", "general", &root.ID)
	r2 := mustCreate(t, db, "carol", "two", "general", &root.ID)

	out, err := ListReplies(ctx, db, root.ID)
	if err != nil {
		t.Fatalf("ListReplies: %v", err)
	}
	if len(out) != 2 || out[0].ID != r1.ID || out[1].ID != r2.ID {
		t.Fatalf("unexpected reply order: %+v", out)
	}
}

func TestDeleteMessageTree_RemovesSubtreeAndReactions(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	root := mustCreate(t, db, "alice", "root", "general", nil)
	child := mustCreate(t, db, "bob", "child", "general", &root.ID)
	grandchild := mustCreate(t, db, "carol", "grandchild", "general", &child.ID)
	other := mustCreate(t, db, "dave", "untouched", "general", nil)

	if _, err := CreateReaction(ctx, db, grandchild.ID, "alice", "🔥"); err != nil {
		t.Fatalf("CreateReaction: %v", err)
	}
	if _, err := CreateReaction(ctx, db, other.ID, "alice", "👍"); err != nil {
		t.Fatalf("CreateReaction: %v", err)
	}

	n, err := DeleteMessageTree(ctx, db, root.ID)
	if err != nil {
		t.Fatalf("DeleteMessageTree: %v", err)
	}
	if n != 3 {
		t.Fatalf("deleted %d messages, want 3", n)
	}

	var msgCount int64
	db.Model(&domain.Message{}).Count(&msgCount)
	if msgCount != 1 {
		t.Fatalf("expected only the unrelated message to survive, got %d", msgCount)
	}
	var rctCount int64
	db.Model(&domain.Reaction{}).Count(&rctCount)
	if rctCount != 1 {
		t.Fatalf("expected the unrelated reaction to survive, got %d", rctCount)
	}
}

func TestDeleteMessageTree_NotFound(t *testing.T) {
	db := newMessageDB(t)
	if _, err := DeleteMessageTree(context.Background(), db, 12345); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
