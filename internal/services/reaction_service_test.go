package services

import (
	"context"
	"errors"
	"testing"
)

func TestAddReaction_Success(t *testing.T) {
	db := newServiceDB(t)
	msgSvc := &MessageService{DB: db}
	rctSvc := &ReactionService{DB: db}
	ctx := context.Background()

	id, _ := msgSvc.Send(ctx, "alice", "hello", "general")
	if err := rctSvc.Add(ctx, id, "bob", "👍"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	view, err := rctSvc.ForMessage(ctx, id)
	if err != nil {
		t.Fatalf("ForMessage: %v", err)
	}
	if view.TotalCount != 1 {
		t.Fatalf("total_count = %d, want 1", view.TotalCount)
	}
	entries := view.Reactions["👍"]
	if len(entries) != 1 || entries[0].UserName != "bob" {
		t.Fatalf("unexpected grouping: %+v", view.Reactions)
	}
}

func TestAddReaction_MessageMissing(t *testing.T) {
	rctSvc := &ReactionService{DB: newServiceDB(t)}
	if err := rctSvc.Add(context.Background(), 404, "bob", "👍"); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestAddReaction_DuplicateIsError(t *testing.T) {
	db := newServiceDB(t)
	msgSvc := &MessageService{DB: db}
	rctSvc := &ReactionService{DB: db}
	ctx := context.Background()

	id, _ := msgSvc.Send(ctx, "alice", "hello", "general")
	if err := rctSvc.Add(ctx, id, "bob", "👍"); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := rctSvc.Add(ctx, id, "bob", "👍"); !errors.Is(err, ErrDuplicateReaction) {
		t.Fatalf("expected ErrDuplicateReaction, got %v", err)
	}

	// The failed attempt must not have changed anything.
	view, _ := rctSvc.ForMessage(ctx, id)
	if view.TotalCount != 1 {
		t.Fatalf("total_count = %d after duplicate attempt, want 1", view.TotalCount)
	}
}

func TestAddReaction_DistinctTriplesCoexist(t *testing.T) {
	db := newServiceDB(t)
	msgSvc := &MessageService{DB: db}
	rctSvc := &ReactionService{DB: db}
	ctx := context.Background()

	id, _ := msgSvc.Send(ctx, "alice", "hello", "general")
	if err := rctSvc.Add(ctx, id, "bob", "👍"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := rctSvc.Add(ctx, id, "bob", "❤️"); err != nil {
		t.Fatalf("same user, different emoji: %v", err)
	}
	if err := rctSvc.Add(ctx, id, "carol", "👍"); err != nil {
		t.Fatalf("same emoji, different user: %v", err)
	}

	view, _ := rctSvc.ForMessage(ctx, id)
	if view.TotalCount != 3 {
		t.Fatalf("total_count = %d, want 3", view.TotalCount)
	}
	if len(view.Reactions["👍"]) != 2 || len(view.Reactions["❤️"]) != 1 {
		t.Fatalf("unexpected grouping: %+v", view.Reactions)
	}
}

func TestRemoveReaction_ExactTripleOnly(t *testing.T) {
	db := newServiceDB(t)
	msgSvc := &MessageService{DB: db}
	rctSvc := &ReactionService{DB: db}
	ctx := context.Background()

	id, _ := msgSvc.Send(ctx, "alice", "hello", "general")
	rctSvc.Add(ctx, id, "bob", "👍")

	// Wrong emoji and wrong user both miss.
	if err := rctSvc.Remove(ctx, id, "bob", "❤️"); !errors.Is(err, ErrReactionNotFound) {
		t.Fatalf("expected ErrReactionNotFound for wrong emoji, got %v", err)
	}
	if err := rctSvc.Remove(ctx, id, "carol", "👍"); !errors.Is(err, ErrReactionNotFound) {
		t.Fatalf("expected ErrReactionNotFound for wrong user, got %v", err)
	}

	if err := rctSvc.Remove(ctx, id, "bob", "👍"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// Removing again misses; the triple is gone.
	if err := rctSvc.Remove(ctx, id, "bob", "👍"); !errors.Is(err, ErrReactionNotFound) {
		t.Fatalf("expected ErrReactionNotFound on second remove, got %v", err)
	}
}

func TestRemoveThenReAdd(t *testing.T) {
	db := newServiceDB(t)
	msgSvc := &MessageService{DB: db}
	rctSvc := &ReactionService{DB: db}
	ctx := context.Background()

	id, _ := msgSvc.Send(ctx, "alice", "hello", "general")
	rctSvc.Add(ctx, id, "bob", "👍")
	if err := rctSvc.Remove(ctx, id, "bob", "👍"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// After removal the triple is free again.
	if err := rctSvc.Add(ctx, id, "bob", "👍"); err != nil {
		t.Fatalf("re-Add after Remove: %v", err)
	}
}

func TestForMessage_UnknownMessageEmptyGrouping(t *testing.T) {
	rctSvc := &ReactionService{DB: newServiceDB(t)}

	view, err := rctSvc.ForMessage(context.Background(), 404)
	if err != nil {
		t.Fatalf("ForMessage: %v", err)
	}
	if view.MessageID != 404 || view.TotalCount != 0 || len(view.Reactions) != 0 {
		t.Fatalf("expected empty grouping, got %+v", view)
	}
}

func TestIsDuplicate(t *testing.T) {
	if !isDuplicate(errors.New("UNIQUE constraint failed: reactions.message_id")) {
		t.Fatalf("sqlite unique violation not detected")
	}
	if !isDuplicate(errors.New(`duplicate key value violates unique constraint "ux_reaction_message_user_emoji"`)) {
		t.Fatalf("postgres unique violation not detected")
	}
	if isDuplicate(errors.New("connection refused")) {
		t.Fatalf("unrelated error misclassified as duplicate")
	}
}
