// Message HTTP handlers.
//
// This file exposes the REST endpoints for messages and threads:
//   - GET  /messages               (recent top-level messages, annotated)
//   - POST /messages               (send a new top-level message)
//   - GET  /messages/date-range    (messages within a creation-time interval)
//   - GET  /messages/:id           (single message)
//   - GET  /messages/:id/thread    (message + replies + parent summary)
//   - POST /messages/:id/replies   (reply, inheriting the parent's channel)
//   - GET  /search                 (case-insensitive substring search)
//   - GET  /users/:name/messages   (messages by author, partial match)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chatwire/chatwire/internal/schema"
	"github.com/chatwire/chatwire/internal/services"
	"github.com/chatwire/chatwire/internal/utils"
)

// MessageListResponse contains an annotated message listing.
type MessageListResponse struct {
	Messages []services.MessageView `json:"messages"`
	Count    int                    `json:"count"`
}

// queryLimit reads the "limit" query parameter. Absent means nil so the
// validation layer applies the default; a non-integer value becomes an
// out-of-range sentinel that validation rejects.
func queryLimit(c *gin.Context) *int {
	raw := c.Query("limit")
	if raw == "" {
		return nil
	}
	n := utils.AtoiDefault(raw, -1)
	return &n
}

// ListMessages godoc
// @ID          listMessages
// @Summary     List recent messages
// @Description Returns top-level messages, newest first, annotated with reply and reaction counts.
// @Tags        Messages
// @Produce     json
// @Param       limit  query  int  false  "Maximum number of messages"  minimum(1) maximum(100) default(50)
// @Success     200  {object}  handlers.MessageListResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /messages [get]
func (h *Handlers) ListMessages(c *gin.Context) {
	in := schema.GetMessagesInput{Limit: queryLimit(c)}
	if err := in.Validate(); err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}

	msgs, err := h.msgSvc.Recent(c.Request.Context(), *in.Limit)
	if err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, MessageListResponse{Messages: msgs, Count: len(msgs)})
}

// CreateMessage godoc
// @ID          createMessage
// @Summary     Send a message
// @Description Creates a new top-level message in a channel (default "general").
// @Tags        Messages
// @Accept      json
// @Produce     json
// @Param       body  body  schema.SendMessageInput  true  "Message payload"
// @Success     200  {object}  handlers.StatusResponse
// @Failure     400  {object}  handlers.ErrorResponse "Validation error"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /messages [post]
func (h *Handlers) CreateMessage(c *gin.Context) {
	var in schema.SendMessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if err := in.Validate(); err != nil {
		failErr(c, err, ErrCodeCreateFailed)
		return
	}

	id, err := h.msgSvc.Send(c.Request.Context(), in.Name, in.Content, in.Channel)
	if err != nil {
		failErr(c, err, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusOK, StatusResponse{ID: id, Message: "Message created successfully"})
}

// GetMessage godoc
// @ID          getMessage
// @Summary     Get a message by ID
// @Tags        Messages
// @Produce     json
// @Param       id  path  int  true  "Message ID"  minimum(1)
// @Success     200  {object}  services.MessageView
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Message not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /messages/{id} [get]
func (h *Handlers) GetMessage(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message id must be a positive integer")
		return
	}

	msg, err := h.msgSvc.ByID(c.Request.Context(), id)
	if err != nil {
		failErr(c, err, ErrCodeInternal)
		return
	}
	if msg == nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "message not found")
		return
	}
	ok(c, http.StatusOK, msg)
}

// GetThread godoc
// @ID          getThread
// @Summary     Get a message thread
// @Description Returns the message, its direct replies oldest first, and a parent summary when the message is itself a reply.
// @Tags        Messages
// @Produce     json
// @Param       id  path  int  true  "Message ID"  minimum(1)
// @Success     200  {object}  services.ThreadView
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Message not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /messages/{id}/thread [get]
func (h *Handlers) GetThread(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message id must be a positive integer")
		return
	}

	thread, err := h.msgSvc.Thread(c.Request.Context(), id)
	if err != nil {
		failErr(c, err, ErrCodeInternal)
		return
	}
	if thread == nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "message not found")
		return
	}
	ok(c, http.StatusOK, thread)
}

// CreateReply godoc
// @ID          createReply
// @Summary     Reply to a message
// @Description Creates a reply in the parent's thread. The reply's channel is always the parent's channel, regardless of any channel in the payload.
// @Tags        Messages
// @Accept      json
// @Produce     json
// @Param       id    path  int                        true  "Parent message ID"  minimum(1)
// @Param       body  body  schema.ReplyToMessageInput true  "Reply payload"
// @Success     200  {object}  handlers.StatusResponse
// @Failure     400  {object}  handlers.ErrorResponse "Validation error"
// @Failure     404  {object}  handlers.ErrorResponse "Parent not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /messages/{id}/replies [post]
func (h *Handlers) CreateReply(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message id must be a positive integer")
		return
	}

	var in schema.ReplyToMessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	// The path identifies the parent; a parent_message_id in the body is
	// accepted for symmetry with the dispatch shell but the path wins.
	in.ParentMessageID = id
	if err := in.Validate(); err != nil {
		failErr(c, err, ErrCodeCreateFailed)
		return
	}

	replyID, err := h.msgSvc.Reply(c.Request.Context(), in.ParentMessageID, in.Name, in.Content)
	if err != nil {
		failErr(c, err, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusOK, StatusResponse{ID: replyID, Message: "Reply created successfully"})
}

// SearchMessages godoc
// @ID          searchMessages
// @Summary     Search messages
// @Description Case-insensitive substring search over message content and author names.
// @Tags        Search
// @Produce     json
// @Param       query  query  string  true   "Substring to search for"  minLength(1) maxLength(200)
// @Param       limit  query  int     false  "Maximum number of messages"  minimum(1) maximum(100) default(50)
// @Success     200  {object}  handlers.MessageListResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /search [get]
func (h *Handlers) SearchMessages(c *gin.Context) {
	in := schema.SearchMessagesInput{
		Query: c.Query("query"),
		Limit: queryLimit(c),
	}
	if err := in.Validate(); err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}

	msgs, err := h.msgSvc.Search(c.Request.Context(), in.Query, *in.Limit)
	if err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, MessageListResponse{Messages: msgs, Count: len(msgs)})
}

// UserMessages godoc
// @ID          userMessages
// @Summary     List messages by author
// @Description Returns messages whose author name contains the given name as a case-insensitive substring.
// @Tags        Users
// @Produce     json
// @Param       name   path   string  true   "Author name (substring match)"
// @Param       limit  query  int     false  "Maximum number of messages"  minimum(1) maximum(100) default(50)
// @Success     200  {object}  handlers.MessageListResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /users/{name}/messages [get]
func (h *Handlers) UserMessages(c *gin.Context) {
	in := schema.GetMessagesByUserInput{
		Name:  c.Param("name"),
		Limit: queryLimit(c),
	}
	if err := in.Validate(); err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}

	msgs, err := h.msgSvc.ByAuthor(c.Request.Context(), in.Name, *in.Limit)
	if err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, MessageListResponse{Messages: msgs, Count: len(msgs)})
}

// MessagesByDateRange godoc
// @ID          messagesByDateRange
// @Summary     List messages in a date range
// @Description Returns messages created within the inclusive interval [start_date, end_date].
// @Tags        Messages
// @Produce     json
// @Param       start_date  query  string  true   "Interval start (RFC 3339 or YYYY-MM-DD)"  format(date-time)
// @Param       end_date    query  string  true   "Interval end (RFC 3339 or YYYY-MM-DD)"    format(date-time)
// @Param       limit       query  int     false  "Maximum number of messages"  minimum(1) maximum(100) default(50)
// @Success     200  {object}  handlers.MessageListResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /messages/date-range [get]
func (h *Handlers) MessagesByDateRange(c *gin.Context) {
	start, err := schema.ParseTimestamp(c.Query("start_date"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "start_date must be an RFC 3339 timestamp or YYYY-MM-DD date")
		return
	}
	end, err := schema.ParseTimestamp(c.Query("end_date"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "end_date must be an RFC 3339 timestamp or YYYY-MM-DD date")
		return
	}

	in := schema.GetMessagesByDateRangeInput{
		StartDate: schema.Timestamp{Time: start},
		EndDate:   schema.Timestamp{Time: end},
		Limit:     queryLimit(c),
	}
	if err := in.Validate(); err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}

	msgs, err := h.msgSvc.ByDateRange(c.Request.Context(), in.StartDate.Time, in.EndDate.Time, *in.Limit)
	if err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, MessageListResponse{Messages: msgs, Count: len(msgs)})
}
