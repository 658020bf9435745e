// Package mcpserver exposes the chat store over the Model Context Protocol.
// Every operation the REST API offers is mirrored as an MCP tool so that
// agents speaking MCP over stdio get the same capabilities as HTTP clients.
package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gorm.io/gorm"

	"github.com/chatwire/chatwire/internal/services"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Server wraps an MCP server together with the chat services it dispatches
// to. Construct it with NewServer and start it with Serve.
type Server struct {
	mcp *mcp.Server

	msgSvc *services.MessageService
	rctSvc *services.ReactionService
	dirSvc *services.DirectoryService
}

// NewServer builds an MCP server backed by the given database handle. All
// tools are registered up front; the server does not touch the database until
// a tool is invoked.
func NewServer(db *gorm.DB) (*Server, error) {
	if db == nil {
		return nil, errors.New("mcpserver: nil database handle")
	}

	s := &Server{
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    "chatwire",
			Version: Version,
		}, nil),
		msgSvc: &services.MessageService{DB: db},
		rctSvc: &services.ReactionService{DB: db},
		dirSvc: &services.DirectoryService{DB: db},
	}
	s.registerTools()
	return s, nil
}

// Serve runs the server over stdio until ctx is cancelled or the transport
// closes.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
