// Package schema is the validation layer: one input type per store operation,
// with structural and semantic constraints applied before anything touches
// persistence. The same types are reflected into JSON schemas for the MCP
// tool catalog, so the advertised schema and the enforced rules cannot drift.
//
// Validation here is pure: no storage access, no side effects. Each Validate
// call normalizes defaults in place (channel, limit, sort key) and returns a
// *ValidationError describing the first violated rule, or nil.
package schema

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/jsonschema-go/jsonschema"
	invopop "github.com/invopop/jsonschema"
)

// Field bounds shared by every operation.
const (
	MaxNameLen    = 50
	MaxContentLen = 500
	MaxChannelLen = 50
	MaxEmojiLen   = 10
	MaxQueryLen   = 200

	DefaultLimit = 50
	MaxLimit     = 100

	DefaultChannel = "general"
)

// AllowedEmojis is the fixed allow-list of reaction tokens. Anything outside
// this set is rejected regardless of persistence state.
var AllowedEmojis = []string{
	"👍", "❤️", "😂", "🎉", "🚀", "👀",
	"🔥", "💯", "👏", "😮", "😢", "😡",
	"🤔", "💡", "✅", "❌",
}

// SortByValues enumerates the accepted user-listing sort keys.
var SortByValues = []string{"name", "messages", "last_activity"}

// ValidationError reports a single violated constraint on an input field.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsAllowedEmoji reports whether emoji is a member of the allow-list.
func IsAllowedEmoji(emoji string) bool {
	for _, e := range AllowedEmojis {
		if e == emoji {
			return true
		}
	}
	return false
}

//
// Shared field rules
//

func checkName(field, v string) *ValidationError {
	n := utf8.RuneCountInString(v)
	if n < 1 || n > MaxNameLen {
		return invalid(field, "must be 1-%d characters", MaxNameLen)
	}
	return nil
}

func checkContent(v string) *ValidationError {
	n := utf8.RuneCountInString(v)
	if n < 1 || n > MaxContentLen {
		return invalid("content", "must be 1-%d characters", MaxContentLen)
	}
	return nil
}

// checkChannel applies the default and the length cap. The empty string means
// "absent" and maps to the default channel.
func checkChannel(v *string) *ValidationError {
	if *v == "" {
		*v = DefaultChannel
		return nil
	}
	if utf8.RuneCountInString(*v) > MaxChannelLen {
		return invalid("channel", "must be at most %d characters", MaxChannelLen)
	}
	return nil
}

// checkLimit applies the default when the field is absent (nil) and the
// [1,MaxLimit] range otherwise. An explicit zero is out of range, not a
// request for the default.
func checkLimit(v **int) *ValidationError {
	if *v == nil {
		n := DefaultLimit
		*v = &n
		return nil
	}
	if **v < 1 || **v > MaxLimit {
		return invalid("limit", "must be between 1 and %d", MaxLimit)
	}
	return nil
}

func checkMessageID(field string, v uint) *ValidationError {
	if v < 1 {
		return invalid(field, "must be a positive integer")
	}
	return nil
}

// Timestamp is a time.Time that decodes from either an RFC 3339 timestamp or
// a bare "2006-01-02" date (midnight UTC), so every front end accepts the
// same wire forms.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses an RFC 3339 timestamp, also accepting the date-only
// form "2006-01-02".
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time)
}

// JSONSchema advertises the string forms UnmarshalJSON accepts.
func (Timestamp) JSONSchema() *invopop.Schema {
	return &invopop.Schema{Type: "string", Format: "date-time"}
}

//
// Operation inputs
//

// SendMessageInput creates a new top-level message.
type SendMessageInput struct {
	Name    string `json:"name"              jsonschema:"minLength=1,maxLength=50,description=Author name"`
	Content string `json:"content"           jsonschema:"minLength=1,maxLength=500,description=Message content"`
	Channel string `json:"channel,omitempty" jsonschema:"maxLength=50,default=general,description=Channel name (defaults to general)"`
}

// Validate normalizes defaults and checks field constraints.
func (in *SendMessageInput) Validate() error {
	if err := checkName("name", in.Name); err != nil {
		return err
	}
	if err := checkContent(in.Content); err != nil {
		return err
	}
	if err := checkChannel(&in.Channel); err != nil {
		return err
	}
	return nil
}

// GetMessagesInput lists recent top-level messages.
type GetMessagesInput struct {
	Limit *int `json:"limit,omitempty" jsonschema:"minimum=1,maximum=100,default=50,description=Maximum number of messages to return"`
}

// Validate normalizes the limit.
func (in *GetMessagesInput) Validate() error {
	if err := checkLimit(&in.Limit); err != nil {
		return err
	}
	return nil
}

// ReplyToMessageInput creates a reply in an existing thread. A channel value
// may be supplied for symmetry with SendMessageInput but it is always
// overridden by the parent's channel at insert time.
type ReplyToMessageInput struct {
	ParentMessageID uint   `json:"parent_message_id" jsonschema:"minimum=1,description=ID of the message being replied to"`
	Name            string `json:"name"              jsonschema:"minLength=1,maxLength=50,description=Author name"`
	Content         string `json:"content"           jsonschema:"minLength=1,maxLength=500,description=Reply content"`
	Channel         string `json:"channel,omitempty" jsonschema:"maxLength=50,description=Ignored; replies inherit the parent's channel"`
}

// Validate checks field constraints.
func (in *ReplyToMessageInput) Validate() error {
	if err := checkMessageID("parent_message_id", in.ParentMessageID); err != nil {
		return err
	}
	if err := checkName("name", in.Name); err != nil {
		return err
	}
	if err := checkContent(in.Content); err != nil {
		return err
	}
	return nil
}

// GetMessageThreadInput fetches a thread by root or reply ID.
type GetMessageThreadInput struct {
	MessageID uint `json:"message_id" jsonschema:"minimum=1,description=Message ID"`
}

// Validate checks field constraints.
func (in *GetMessageThreadInput) Validate() error {
	if err := checkMessageID("message_id", in.MessageID); err != nil {
		return err
	}
	return nil
}

// GetChannelMessagesInput lists top-level messages of one channel.
type GetChannelMessagesInput struct {
	Channel string `json:"channel"         jsonschema:"minLength=1,maxLength=50,description=Channel name"`
	Limit   *int   `json:"limit,omitempty" jsonschema:"minimum=1,maximum=100,default=50,description=Maximum number of messages to return"`
}

// Validate checks field constraints and normalizes the limit.
func (in *GetChannelMessagesInput) Validate() error {
	if in.Channel == "" {
		return invalid("channel", "must not be empty")
	}
	if utf8.RuneCountInString(in.Channel) > MaxChannelLen {
		return invalid("channel", "must be at most %d characters", MaxChannelLen)
	}
	if err := checkLimit(&in.Limit); err != nil {
		return err
	}
	return nil
}

// AddReactionInput adds an emoji reaction to a message.
type AddReactionInput struct {
	MessageID uint   `json:"message_id" jsonschema:"minimum=1,description=Message ID"`
	UserName  string `json:"user_name"  jsonschema:"minLength=1,maxLength=50,description=Reacting user"`
	Emoji     string `json:"emoji"      jsonschema:"maxLength=10,description=Emoji token from the allow-list"`
}

// Validate checks field constraints, including allow-list membership.
func (in *AddReactionInput) Validate() error {
	if err := checkMessageID("message_id", in.MessageID); err != nil {
		return err
	}
	if err := checkName("user_name", in.UserName); err != nil {
		return err
	}
	if utf8.RuneCountInString(in.Emoji) > MaxEmojiLen {
		return invalid("emoji", "must be at most %d characters", MaxEmojiLen)
	}
	if !IsAllowedEmoji(in.Emoji) {
		return invalid("emoji", "must be one of: %s", joinEmojis())
	}
	return nil
}

// RemoveReactionInput removes an existing reaction by its exact triple.
type RemoveReactionInput struct {
	MessageID uint   `json:"message_id" jsonschema:"minimum=1,description=Message ID"`
	UserName  string `json:"user_name"  jsonschema:"minLength=1,maxLength=50,description=Reacting user"`
	Emoji     string `json:"emoji"      jsonschema:"maxLength=10,description=Emoji token"`
}

// Validate checks field constraints. Removal does not require allow-list
// membership; a reaction that exists can always be removed.
func (in *RemoveReactionInput) Validate() error {
	if err := checkMessageID("message_id", in.MessageID); err != nil {
		return err
	}
	if err := checkName("user_name", in.UserName); err != nil {
		return err
	}
	if in.Emoji == "" || utf8.RuneCountInString(in.Emoji) > MaxEmojiLen {
		return invalid("emoji", "must be 1-%d characters", MaxEmojiLen)
	}
	return nil
}

// GetMessageReactionsInput fetches the reactions of one message grouped by
// emoji.
type GetMessageReactionsInput struct {
	MessageID uint `json:"message_id" jsonschema:"minimum=1,description=Message ID"`
}

// Validate checks field constraints.
func (in *GetMessageReactionsInput) Validate() error {
	if err := checkMessageID("message_id", in.MessageID); err != nil {
		return err
	}
	return nil
}

// GetUsersListInput lists distinct authors with rollup annotations.
type GetUsersListInput struct {
	Limit  *int   `json:"limit,omitempty"   jsonschema:"minimum=1,maximum=100,default=50,description=Maximum number of users to return"`
	SortBy string `json:"sort_by,omitempty" jsonschema:"enum=name,enum=messages,enum=last_activity,default=name,description=Sort order"`
}

// Validate normalizes defaults and rejects unknown sort keys.
func (in *GetUsersListInput) Validate() error {
	if err := checkLimit(&in.Limit); err != nil {
		return err
	}
	if in.SortBy == "" {
		in.SortBy = "name"
		return nil
	}
	for _, v := range SortByValues {
		if in.SortBy == v {
			return nil
		}
	}
	return invalid("sort_by", "must be one of: name, messages, last_activity")
}

// SearchMessagesInput searches message content and author names.
type SearchMessagesInput struct {
	Query string `json:"query"           jsonschema:"minLength=1,maxLength=200,description=Case-insensitive substring to search for"`
	Limit *int   `json:"limit,omitempty" jsonschema:"minimum=1,maximum=100,default=50,description=Maximum number of messages to return"`
}

// Validate checks field constraints and normalizes the limit.
func (in *SearchMessagesInput) Validate() error {
	n := utf8.RuneCountInString(in.Query)
	if n < 1 || n > MaxQueryLen {
		return invalid("query", "must be 1-%d characters", MaxQueryLen)
	}
	if err := checkLimit(&in.Limit); err != nil {
		return err
	}
	return nil
}

// GetMessagesByUserInput lists messages by author name (partial match).
type GetMessagesByUserInput struct {
	Name  string `json:"name"            jsonschema:"minLength=1,maxLength=50,description=Author name (substring match)"`
	Limit *int   `json:"limit,omitempty" jsonschema:"minimum=1,maximum=100,default=50,description=Maximum number of messages to return"`
}

// Validate checks field constraints and normalizes the limit.
func (in *GetMessagesByUserInput) Validate() error {
	if err := checkName("name", in.Name); err != nil {
		return err
	}
	if err := checkLimit(&in.Limit); err != nil {
		return err
	}
	return nil
}

// GetMessagesByDateRangeInput lists messages created within an inclusive
// interval.
type GetMessagesByDateRangeInput struct {
	StartDate Timestamp `json:"start_date"      jsonschema:"description=Interval start (RFC 3339 or YYYY-MM-DD)"`
	EndDate   Timestamp `json:"end_date"        jsonschema:"description=Interval end (RFC 3339 or YYYY-MM-DD; inclusive)"`
	Limit     *int      `json:"limit,omitempty" jsonschema:"minimum=1,maximum=100,default=50,description=Maximum number of messages to return"`
}

// Validate requires both bounds, rejects inverted intervals, and normalizes
// the limit.
func (in *GetMessagesByDateRangeInput) Validate() error {
	if in.StartDate.IsZero() {
		return invalid("start_date", "is required")
	}
	if in.EndDate.IsZero() {
		return invalid("end_date", "is required")
	}
	if in.StartDate.After(in.EndDate.Time) {
		return invalid("start_date", "must not be after end_date")
	}
	if err := checkLimit(&in.Limit); err != nil {
		return err
	}
	return nil
}

//
// JSON-schema generation
//

// reflector produces self-contained object schemas (no $ref indirection) so
// each tool advertises a standalone input schema.
var reflector = invopop.Reflector{
	Anonymous:      true,
	DoNotReference: true,
	ExpandedStruct: true,
}

// InputSchema reflects an operation input type into its JSON schema, in the
// representation the dispatch transport serves. The result is the exact
// schema advertised by the tool catalog.
func InputSchema(v any) *jsonschema.Schema {
	r := reflector.Reflect(v)
	r.Version = ""
	b, err := json.Marshal(r)
	if err != nil {
		// Reflection of the static input types cannot fail at runtime;
		// a broken schema would be a programming error.
		panic(err)
	}
	s := new(jsonschema.Schema)
	if err := json.Unmarshal(b, s); err != nil {
		panic(err)
	}
	return s
}

func joinEmojis() string {
	out := ""
	for i, e := range AllowedEmojis {
		if i > 0 {
			out += ", "
		}
		out += e
	}
	return out
}
