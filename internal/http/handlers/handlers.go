// Package handlers provides HTTP handler implementations for the public API.
//
// Handlers are transport-thin: they parse and validate inputs through the
// schema package (the same validation layer the MCP shell uses), delegate to
// the application services, and shape responses. No business rule lives here.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chatwire/chatwire/internal/services"
)

// Handlers bundles the application services behind the HTTP endpoints.
type Handlers struct {
	msgSvc *services.MessageService
	rctSvc *services.ReactionService
	dirSvc *services.DirectoryService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(msgSvc *services.MessageService, rctSvc *services.ReactionService, dirSvc *services.DirectoryService) *Handlers {
	return &Handlers{msgSvc: msgSvc, rctSvc: rctSvc, dirSvc: dirSvc}
}

// pathID parses a positive integer identifier from a path parameter. The
// second return value is false when the value is absent, malformed, or not
// positive.
func pathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n < 1 {
		return 0, false
	}
	return uint(n), true
}
