package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chatwire/chatwire/internal/schema"
	"github.com/chatwire/chatwire/internal/services"
)

// registerTools declares the tool catalog. Input schemas are reflected from
// the same structs the validation layer runs on, so the advertised contract
// and the enforced one cannot drift apart.
func (s *Server) registerTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "send-message",
		Description: "Send a new message to a channel (default: general)",
		InputSchema: schema.InputSchema(&schema.SendMessageInput{}),
	}, s.handleSendMessage)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get-messages",
		Description: "Get recent top-level messages, newest first, with reply and reaction counts",
		InputSchema: schema.InputSchema(&schema.GetMessagesInput{}),
	}, s.handleGetMessages)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "reply-to-message",
		Description: "Reply to an existing message; the reply lands in the parent's channel",
		InputSchema: schema.InputSchema(&schema.ReplyToMessageInput{}),
	}, s.handleReplyToMessage)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get-message-thread",
		Description: "Get a message with its replies and, when it is itself a reply, its parent",
		InputSchema: schema.InputSchema(&schema.GetMessageThreadInput{}),
	}, s.handleGetMessageThread)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get-channels",
		Description: "List all channels that contain at least one message",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}, s.handleGetChannels)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get-channel-messages",
		Description: "Get top-level messages from a specific channel, newest first",
		InputSchema: schema.InputSchema(&schema.GetChannelMessagesInput{}),
	}, s.handleGetChannelMessages)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "add-reaction",
		Description: "Add an emoji reaction to a message (one per user, message, and emoji)",
		InputSchema: schema.InputSchema(&schema.AddReactionInput{}),
	}, s.handleAddReaction)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "remove-reaction",
		Description: "Remove a previously added emoji reaction",
		InputSchema: schema.InputSchema(&schema.RemoveReactionInput{}),
	}, s.handleRemoveReaction)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get-message-reactions",
		Description: "Get the reactions on a message, grouped by emoji",
		InputSchema: schema.InputSchema(&schema.GetMessageReactionsInput{}),
	}, s.handleGetMessageReactions)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get-users-list",
		Description: "List users who have posted, with message counts and last activity",
		InputSchema: schema.InputSchema(&schema.GetUsersListInput{}),
	}, s.handleGetUsersList)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "search-messages",
		Description: "Search message content and author names for a case-insensitive substring",
		InputSchema: schema.InputSchema(&schema.SearchMessagesInput{}),
	}, s.handleSearchMessages)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get-messages-by-user",
		Description: "Get messages whose author name matches a substring",
		InputSchema: schema.InputSchema(&schema.GetMessagesByUserInput{}),
	}, s.handleGetMessagesByUser)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get-messages-by-date-range",
		Description: "Get messages created within an inclusive date range (RFC 3339 or YYYY-MM-DD bounds)",
		InputSchema: schema.InputSchema(&schema.GetMessagesByDateRangeInput{}),
	}, s.handleGetMessagesByDateRange)
}

// textResult wraps a rendered string as a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps a failure as a tool-level error. Validation failures get
// a distinct prefix so agents can tell bad input from a missing entity.
func errorResult(err error) *mcp.CallToolResult {
	var ve *schema.ValidationError
	text := "❌ Error: " + err.Error()
	if errors.As(err, &ve) {
		text = "❌ Validation error: " + ve.Error()
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// decodeArgs unmarshals tool arguments into the operation input and runs its
// validation. On the server side the transport delivers arguments as a
// json.RawMessage inside the any-typed field; nil means the tool was called
// with no arguments, and anything else is re-marshaled first.
func decodeArgs(args any, in interface{ Validate() error }) error {
	raw, isRaw := args.(json.RawMessage)
	if !isRaw && args != nil {
		b, err := json.Marshal(args)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
		raw = b
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, in); err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
	}
	return in.Validate()
}

// prettyJSON renders v with indentation for agent-readable payloads.
func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func renderMessages(msgs []services.MessageView) string {
	if len(msgs) == 0 {
		return "📨 No messages found"
	}
	return fmt.Sprintf("📨 Found %d messages:\n\n%s", len(msgs), prettyJSON(msgs))
}

func (s *Server) handleSendMessage(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.SendMessageInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	id, err := s.msgSvc.Send(ctx, in.Name, in.Content, in.Channel)
	if err != nil {
		return errorResult(err), nil
	}
	return textResult(fmt.Sprintf("✅ Message %d sent to #%s by %s", id, in.Channel, in.Name)), nil
}

func (s *Server) handleGetMessages(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.GetMessagesInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	msgs, err := s.msgSvc.Recent(ctx, *in.Limit)
	if err != nil {
		return errorResult(err), nil
	}
	return textResult(renderMessages(msgs)), nil
}

func (s *Server) handleReplyToMessage(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.ReplyToMessageInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	id, err := s.msgSvc.Reply(ctx, in.ParentMessageID, in.Name, in.Content)
	if err != nil {
		return errorResult(err), nil
	}
	return textResult(fmt.Sprintf("✅ Reply %d sent by %s in thread of message %d", id, in.Name, in.ParentMessageID)), nil
}

func (s *Server) handleGetMessageThread(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.GetMessageThreadInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	thread, err := s.msgSvc.Thread(ctx, in.MessageID)
	if err != nil {
		return errorResult(err), nil
	}
	if thread == nil {
		return errorResult(fmt.Errorf("message %d not found", in.MessageID)), nil
	}
	return textResult(fmt.Sprintf("🧵 Thread for message %d (%d replies):\n\n%s",
		in.MessageID, thread.ReplyCount, prettyJSON(thread))), nil
}

func (s *Server) handleGetChannels(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	channels, err := s.dirSvc.Channels(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	if len(channels) == 0 {
		return textResult("📭 No channels yet"), nil
	}
	return textResult(fmt.Sprintf("📋 Found %d channels:\n\n%s", len(channels), prettyJSON(channels))), nil
}

func (s *Server) handleGetChannelMessages(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.GetChannelMessagesInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	msgs, err := s.msgSvc.ChannelMessages(ctx, in.Channel, *in.Limit)
	if err != nil {
		return errorResult(err), nil
	}
	if len(msgs) == 0 {
		return textResult(fmt.Sprintf("📨 No messages in #%s", in.Channel)), nil
	}
	return textResult(fmt.Sprintf("📨 Found %d messages in #%s:\n\n%s", len(msgs), in.Channel, prettyJSON(msgs))), nil
}

func (s *Server) handleAddReaction(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.AddReactionInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	if err := s.rctSvc.Add(ctx, in.MessageID, in.UserName, in.Emoji); err != nil {
		return errorResult(err), nil
	}
	return textResult(fmt.Sprintf("✅ %s reacted with %s to message %d", in.UserName, in.Emoji, in.MessageID)), nil
}

func (s *Server) handleRemoveReaction(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.RemoveReactionInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	if err := s.rctSvc.Remove(ctx, in.MessageID, in.UserName, in.Emoji); err != nil {
		return errorResult(err), nil
	}
	return textResult(fmt.Sprintf("✅ Removed %s reaction by %s from message %d", in.Emoji, in.UserName, in.MessageID)), nil
}

func (s *Server) handleGetMessageReactions(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.GetMessageReactionsInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	view, err := s.rctSvc.ForMessage(ctx, in.MessageID)
	if err != nil {
		return errorResult(err), nil
	}
	if view.TotalCount == 0 {
		return textResult(fmt.Sprintf("📭 No reactions on message %d", in.MessageID)), nil
	}
	return textResult(fmt.Sprintf("👍 %d reactions on message %d:\n\n%s",
		view.TotalCount, in.MessageID, prettyJSON(view))), nil
}

func (s *Server) handleGetUsersList(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.GetUsersListInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	users, err := s.dirSvc.Users(ctx, *in.Limit, in.SortBy)
	if err != nil {
		return errorResult(err), nil
	}
	if len(users) == 0 {
		return textResult("📭 No users yet"), nil
	}
	return textResult(fmt.Sprintf("👥 Found %d users (sorted by %s):\n\n%s", len(users), in.SortBy, prettyJSON(users))), nil
}

func (s *Server) handleSearchMessages(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.SearchMessagesInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	msgs, err := s.msgSvc.Search(ctx, in.Query, *in.Limit)
	if err != nil {
		return errorResult(err), nil
	}
	if len(msgs) == 0 {
		return textResult(fmt.Sprintf("🔍 No messages matching %q", in.Query)), nil
	}
	return textResult(fmt.Sprintf("🔍 Found %d messages matching %q:\n\n%s", len(msgs), in.Query, prettyJSON(msgs))), nil
}

func (s *Server) handleGetMessagesByUser(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.GetMessagesByUserInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	msgs, err := s.msgSvc.ByAuthor(ctx, in.Name, *in.Limit)
	if err != nil {
		return errorResult(err), nil
	}
	if len(msgs) == 0 {
		return textResult(fmt.Sprintf("📨 No messages by %q", in.Name)), nil
	}
	return textResult(fmt.Sprintf("📨 Found %d messages by %q:\n\n%s", len(msgs), in.Name, prettyJSON(msgs))), nil
}

func (s *Server) handleGetMessagesByDateRange(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in schema.GetMessagesByDateRangeInput
	if err := decodeArgs(req.Params.Arguments, &in); err != nil {
		return errorResult(err), nil
	}

	msgs, err := s.msgSvc.ByDateRange(ctx, in.StartDate.Time, in.EndDate.Time, *in.Limit)
	if err != nil {
		return errorResult(err), nil
	}
	return textResult(renderMessages(msgs)), nil
}
