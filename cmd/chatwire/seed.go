// Seed command: populates the database with example channels, threads, and
// reactions for local development and demos.
package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chatwire/chatwire/internal/config"
	"github.com/chatwire/chatwire/internal/repo"
	"github.com/chatwire/chatwire/internal/services"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with example data",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := config.MustLoad()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	if err := repo.AutoMigrate(db); err != nil {
		return err
	}

	ctx := context.Background()
	msgSvc := &services.MessageService{DB: db}
	rctSvc := &services.ReactionService{DB: db}

	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	cyan.Println("🌱 Seeding database...")

	cyan.Println("📨 Creating messages in different channels...")
	type seedMessage struct {
		name, content, channel string
	}
	messages := []seedMessage{
		{"Alice", "Hello everyone! 👋", "general"},
		{"Bob", "Anyone here using Go?", "golang"},
		{"Charlie", "Hiring a backend developer", "jobs"},
		{"Diana", "New project with Gin 🚀", "golang"},
		{"Eve", "Anyone up for a game?", "general"},
	}
	ids := make([]uint, 0, len(messages))
	for _, m := range messages {
		id, err := msgSvc.Send(ctx, m.name, m.content, m.channel)
		if err != nil {
			return fmt.Errorf("seed message: %w", err)
		}
		green.Printf("  ✅ Message %d created in #%s\n", id, m.channel)
		ids = append(ids, id)
	}

	cyan.Println("\n🧵 Creating threads (replies)...")
	type seedReply struct {
		parent        int
		name, content string
	}
	replies := []seedReply{
		{0, "Bob", "Hi Alice! How are you?"},
		{0, "Charlie", "Hello! Welcome 😊"},
		{1, "Alice", "I use Go every day"},
		{1, "Diana", "Go is great for backends"},
		{3, "Bob", "Gin is excellent!"},
	}
	for _, r := range replies {
		parentID := ids[r.parent]
		id, err := msgSvc.Reply(ctx, parentID, r.name, r.content)
		if err != nil {
			return fmt.Errorf("seed reply: %w", err)
		}
		green.Printf("  ✅ Reply %d added to message %d\n", id, parentID)
	}

	cyan.Println("\n😊 Adding reactions...")
	type seedReaction struct {
		msg         int
		name, emoji string
	}
	reactions := []seedReaction{
		{0, "Bob", "👍"},
		{0, "Charlie", "❤️"},
		{0, "Diana", "👏"},
		{1, "Alice", "💡"},
		{1, "Diana", "👍"},
		{3, "Bob", "🚀"},
		{3, "Alice", "🔥"},
		{3, "Charlie", "💯"},
	}
	for _, r := range reactions {
		msgID := ids[r.msg]
		if err := rctSvc.Add(ctx, msgID, r.name, r.emoji); err != nil {
			return fmt.Errorf("seed reaction: %w", err)
		}
		green.Printf("  ✅ Reaction %s added to message %d\n", r.emoji, msgID)
	}

	green.Println("\n✅ Database seeded successfully!")
	cyan.Println("\n📊 Summary:")
	cyan.Printf("  - %d messages created\n", len(messages))
	cyan.Printf("  - %d replies created\n", len(replies))
	cyan.Printf("  - %d reactions added\n", len(reactions))
	cyan.Println("  - 3 channels: #general, #golang, #jobs")
	return nil
}
