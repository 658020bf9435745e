package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chatwire/chatwire/internal/domain"
	"github.com/chatwire/chatwire/internal/schema"
	"github.com/chatwire/chatwire/internal/services"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Message{}, &domain.Reaction{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return server
}

// callReq wraps raw tool arguments the way the stdio transport delivers them
// on the server side.
func callReq(args string) *mcp.CallToolRequest {
	return &mcp.CallToolRequest{
		Params: &mcp.CallToolParams{Arguments: json.RawMessage(args)},
	}
}

func TestNewServer_RequiresDB(t *testing.T) {
	if _, err := NewServer(nil); err == nil {
		t.Fatalf("NewServer should fail with nil database")
	}
}

func TestNewServer_Success(t *testing.T) {
	server := newTestServer(t)
	if server == nil || server.mcp == nil {
		t.Fatalf("NewServer returned incomplete server")
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected single content item, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func TestErrorResult_Rendering(t *testing.T) {
	res := errorResult(services.ErrMessageNotFound)
	if !res.IsError {
		t.Fatalf("IsError not set")
	}
	got := resultText(t, res)
	if !strings.HasPrefix(got, "❌ Error: ") {
		t.Fatalf("unexpected text: %q", got)
	}

	in := schema.SendMessageInput{Name: "", Content: "x"}
	res = errorResult(in.Validate())
	got = resultText(t, res)
	if !strings.HasPrefix(got, "❌ Validation error: ") {
		t.Fatalf("validation failures get a distinct prefix, got %q", got)
	}
}

func TestRenderMessages(t *testing.T) {
	if got := renderMessages(nil); got != "📨 No messages found" {
		t.Fatalf("empty rendering: %q", got)
	}

	msgs := []services.MessageView{{ID: 1, Name: "alice", Content: "hi", Channel: "general"}}
	got := renderMessages(msgs)
	if !strings.HasPrefix(got, "📨 Found 1 messages:") {
		t.Fatalf("unexpected header: %q", got)
	}
	if !strings.Contains(got, `"content": "hi"`) {
		t.Fatalf("payload should be pretty JSON: %q", got)
	}
}

func TestErrorResult_PlainError(t *testing.T) {
	res := errorResult(errors.New("database locked"))
	if !strings.HasPrefix(resultText(t, res), "❌ Error: ") {
		t.Fatalf("plain errors use the generic prefix")
	}
}

func TestHandlers_RawArguments(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleSendMessage(ctx, callReq(`{"name":"alice","content":"hello"}`))
	if err != nil {
		t.Fatalf("handleSendMessage: %v", err)
	}
	if res.IsError {
		t.Fatalf("send failed: %q", resultText(t, res))
	}
	if got := resultText(t, res); !strings.HasPrefix(got, "✅ Message 1 sent to #general") {
		t.Fatalf("unexpected confirmation: %q", got)
	}

	res, err = s.handleAddReaction(ctx, callReq(`{"message_id":1,"user_name":"bob","emoji":"🐍"}`))
	if err != nil {
		t.Fatalf("handleAddReaction: %v", err)
	}
	if !res.IsError {
		t.Fatalf("off-list emoji should produce a tool error")
	}
	if got := resultText(t, res); !strings.HasPrefix(got, "❌ Validation error: ") {
		t.Fatalf("expected validation prefix, got %q", got)
	}
}

func TestDecodeArgs(t *testing.T) {
	var in schema.GetMessagesInput
	if err := decodeArgs(json.RawMessage(`{"limit":5}`), &in); err != nil {
		t.Fatalf("decodeArgs raw: %v", err)
	}
	if in.Limit == nil || *in.Limit != 5 {
		t.Fatalf("limit = %v, want 5", in.Limit)
	}

	// No arguments at all still runs validation, which fills defaults.
	in = schema.GetMessagesInput{}
	if err := decodeArgs(nil, &in); err != nil {
		t.Fatalf("decodeArgs nil: %v", err)
	}
	if in.Limit == nil || *in.Limit != schema.DefaultLimit {
		t.Fatalf("limit = %v, want default %d", in.Limit, schema.DefaultLimit)
	}

	// Pre-decoded argument maps are re-marshaled before decoding.
	in = schema.GetMessagesInput{}
	if err := decodeArgs(map[string]any{"limit": 7}, &in); err != nil {
		t.Fatalf("decodeArgs map: %v", err)
	}
	if in.Limit == nil || *in.Limit != 7 {
		t.Fatalf("limit = %v, want 7", in.Limit)
	}

	if err := decodeArgs(json.RawMessage(`{"limit":0}`), &schema.GetMessagesInput{}); err == nil {
		t.Fatalf("explicit zero limit should fail validation")
	}
}
