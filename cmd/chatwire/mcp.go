// MCP server command: serves the tool catalog over stdio.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chatwire/chatwire/internal/config"
	mcpserver "github.com/chatwire/chatwire/internal/mcp"
	"github.com/chatwire/chatwire/internal/repo"
	"github.com/chatwire/chatwire/internal/sysutil"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server (stdio mode)",
	Long: `Start the Model Context Protocol server for agent integration.

The server communicates via stdio; stdout carries the protocol, so logs go
to stderr only.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg := config.MustLoad()
	sysutil.SetLogLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	if err := repo.AutoMigrate(db); err != nil {
		return err
	}

	mcpserver.Version = version
	server, err := mcpserver.NewServer(db)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}
