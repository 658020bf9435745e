// Root Cobra command and shared flags. Environment is loaded from an optional
// .env file before any subcommand runs; explicit environment variables win.
package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "chatwire",
	Short: "A threaded chat message store with REST and MCP frontends",
	Long: `chatwire stores channel-scoped chat messages with single-level
threading and emoji reactions, backed by SQLite.

The same operations are exposed two ways: an HTTP/JSON API (chatwire serve)
and a Model Context Protocol server over stdio (chatwire mcp).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; the environment may be set directly.
		_ = godotenv.Load()
	},
}
