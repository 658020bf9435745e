package services

import (
	"context"
	"testing"
)

func TestChannels_DerivedFromMessages(t *testing.T) {
	db := newServiceDB(t)
	msgSvc := &MessageService{DB: db}
	dirSvc := &DirectoryService{DB: db}
	ctx := context.Background()

	// No channel exists until a message names it.
	channels, err := dirSvc.Channels(ctx)
	if err != nil {
		t.Fatalf("Channels: %v", err)
	}
	if len(channels) != 0 {
		t.Fatalf("expected no channels before any message, got %d", len(channels))
	}

	msgSvc.Send(ctx, "alice", "hi", "zeta")
	msgSvc.Send(ctx, "bob", "hi", "alpha")
	msgSvc.Send(ctx, "carol", "hi", "alpha")

	channels, err = dirSvc.Channels(ctx)
	if err != nil {
		t.Fatalf("Channels: %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(channels))
	}
	if channels[0].Channel != "alpha" || channels[1].Channel != "zeta" {
		t.Fatalf("channels not alphabetical: %+v", channels)
	}
	if channels[0].MessageCount != 2 || channels[1].MessageCount != 1 {
		t.Fatalf("unexpected counts: %+v", channels)
	}
}

func TestChannels_DisappearWhenLastMessageDeleted(t *testing.T) {
	db := newServiceDB(t)
	msgSvc := &MessageService{DB: db}
	dirSvc := &DirectoryService{DB: db}
	ctx := context.Background()

	id, _ := msgSvc.Send(ctx, "alice", "only one here", "ephemeral")
	if _, err := msgSvc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	channels, err := dirSvc.Channels(ctx)
	if err != nil {
		t.Fatalf("Channels: %v", err)
	}
	for _, ch := range channels {
		if ch.Channel == "ephemeral" {
			t.Fatalf("channel should vanish with its last message")
		}
	}
}

func TestUsers_SortVariants(t *testing.T) {
	db := newServiceDB(t)
	msgSvc := &MessageService{DB: db}
	dirSvc := &DirectoryService{DB: db}
	ctx := context.Background()

	msgSvc.Send(ctx, "zoe", "one", "general")
	msgSvc.Send(ctx, "amy", "two", "general")
	msgSvc.Send(ctx, "amy", "three", "general")

	byName, err := dirSvc.Users(ctx, 50, "name")
	if err != nil {
		t.Fatalf("Users(name): %v", err)
	}
	if byName[0].Name != "amy" || byName[1].Name != "zoe" {
		t.Fatalf("name sort wrong: %+v", byName)
	}

	byMessages, err := dirSvc.Users(ctx, 50, "messages")
	if err != nil {
		t.Fatalf("Users(messages): %v", err)
	}
	if byMessages[0].Name != "amy" || byMessages[0].MessageCount != 2 {
		t.Fatalf("messages sort wrong: %+v", byMessages)
	}

	byActivity, err := dirSvc.Users(ctx, 50, "last_activity")
	if err != nil {
		t.Fatalf("Users(last_activity): %v", err)
	}
	if len(byActivity) != 2 {
		t.Fatalf("expected 2 users, got %d", len(byActivity))
	}
}

func TestUsers_Limit(t *testing.T) {
	db := newServiceDB(t)
	msgSvc := &MessageService{DB: db}
	dirSvc := &DirectoryService{DB: db}
	ctx := context.Background()

	msgSvc.Send(ctx, "alice", "a", "general")
	msgSvc.Send(ctx, "bob", "b", "general")
	msgSvc.Send(ctx, "carol", "c", "general")

	users, err := dirSvc.Users(ctx, 1, "name")
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(users) != 1 || users[0].Name != "alice" {
		t.Fatalf("unexpected limited listing: %+v", users)
	}
}
