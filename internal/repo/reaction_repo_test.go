package repo

import (
	"context"
	"errors"
	"testing"
)

func TestCreateReaction_Success(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	m := mustCreate(t, db, "alice", "hello", "general", nil)
	r, err := CreateReaction(ctx, db, m.ID, "bob", "👍")
	if err != nil {
		t.Fatalf("CreateReaction: %v", err)
	}
	if r.ID == 0 || r.MessageID != m.ID || r.UserName != "bob" || r.Emoji != "👍" {
		t.Fatalf("unexpected reaction row: %+v", r)
	}
}

func TestCreateReaction_DuplicateTripleFails(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	m := mustCreate(t, db, "alice", "hello", "general", nil)
	if _, err := CreateReaction(ctx, db, m.ID, "bob", "👍"); err != nil {
		t.Fatalf("first CreateReaction should succeed: %v", err)
	}
	// Same (message_id, user_name, emoji) violates the unique index.
	if _, err := CreateReaction(ctx, db, m.ID, "bob", "👍"); err == nil {
		t.Fatalf("expected unique violation on duplicate triple")
	}
	// Same user, different emoji is a distinct triple.
	if _, err := CreateReaction(ctx, db, m.ID, "bob", "❤️"); err != nil {
		t.Fatalf("different emoji should be allowed: %v", err)
	}
	// Same emoji, different user is a distinct triple.
	if _, err := CreateReaction(ctx, db, m.ID, "carol", "👍"); err != nil {
		t.Fatalf("different user should be allowed: %v", err)
	}
}

func TestGetReaction_ExactTriple(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	m := mustCreate(t, db, "alice", "hello", "general", nil)
	if _, err := CreateReaction(ctx, db, m.ID, "bob", "👍"); err != nil {
		t.Fatalf("CreateReaction: %v", err)
	}

	if _, err := GetReaction(ctx, db, m.ID, "bob", "👍"); err != nil {
		t.Fatalf("GetReaction: %v", err)
	}
	if _, err := GetReaction(ctx, db, m.ID, "bob", "❤️"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for different emoji, got %v", err)
	}
	if _, err := GetReaction(ctx, db, m.ID, "carol", "👍"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for different user, got %v", err)
	}
}

func TestDeleteReaction_ReportsRowsAffected(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	m := mustCreate(t, db, "alice", "hello", "general", nil)
	if _, err := CreateReaction(ctx, db, m.ID, "bob", "👍"); err != nil {
		t.Fatalf("CreateReaction: %v", err)
	}

	n, err := DeleteReaction(ctx, db, m.ID, "bob", "👍")
	if err != nil {
		t.Fatalf("DeleteReaction: %v", err)
	}
	if n != 1 {
		t.Fatalf("deleted %d rows, want 1", n)
	}

	n, err = DeleteReaction(ctx, db, m.ID, "bob", "👍")
	if err != nil {
		t.Fatalf("DeleteReaction (absent): %v", err)
	}
	if n != 0 {
		t.Fatalf("deleted %d rows on absent triple, want 0", n)
	}
}

func TestListReactions_OldestFirstAndUnknownMessageEmpty(t *testing.T) {
	db := newMessageDB(t)
	ctx := context.Background()

	m := mustCreate(t, db, "alice", "hello", "general", nil)
	first, err := CreateReaction(ctx, db, m.ID, "bob", "👍")
	if err != nil {
		t.Fatalf("CreateReaction: %v", err)
	}
	second, err := CreateReaction(ctx, db, m.ID, "carol", "❤️")
	if err != nil {
		t.Fatalf("CreateReaction: %v", err)
	}

	out, err := ListReactions(ctx, db, m.ID)
	if err != nil {
		t.Fatalf("ListReactions: %v", err)
	}
	if len(out) != 2 || out[0].ID != first.ID || out[1].ID != second.ID {
		t.Fatalf("unexpected reaction order: %+v", out)
	}

	empty, err := ListReactions(ctx, db, 999)
	if err != nil {
		t.Fatalf("ListReactions unknown message: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no reactions for unknown message, got %d", len(empty))
	}
}
