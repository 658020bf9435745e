// Package services implements the query/aggregation engine for the message
// store. This file centralizes common service-level error values so that they
// can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages, HTTP status codes, or MCP error text is performed
// at the shell layer (internal/http, internal/mcp).
package services

import "errors"

var (
	// ErrMessageNotFound indicates that the referenced message does not
	// exist.
	ErrMessageNotFound = errors.New("message not found")

	// ErrParentNotFound is returned by Reply when the parent message does
	// not exist.
	ErrParentNotFound = errors.New("parent message not found")

	// ErrReactionNotFound is returned when no reaction matches the exact
	// (message, user, emoji) triple.
	ErrReactionNotFound = errors.New("reaction not found")

	// ErrDuplicateReaction is returned when a user attempts to apply the
	// same emoji twice to the same message.
	ErrDuplicateReaction = errors.New("reaction already exists")
)
