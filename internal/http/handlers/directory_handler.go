package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chatwire/chatwire/internal/schema"
	"github.com/chatwire/chatwire/internal/services"
)

// ChannelListResponse contains the channel directory.
type ChannelListResponse struct {
	Channels []services.ChannelView `json:"channels"`
	Count    int                    `json:"count"`
}

// UserListResponse contains the user directory.
type UserListResponse struct {
	Users []services.UserView `json:"users"`
	Count int                 `json:"count"`
}

// ListChannels godoc
// @ID          listChannels
// @Summary     List channels
// @Description Returns every channel that has at least one message, alphabetically, with message counts and last-activity timestamps.
// @Tags        Channels
// @Produce     json
// @Success     200  {object}  handlers.ChannelListResponse
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /channels [get]
func (h *Handlers) ListChannels(c *gin.Context) {
	channels, err := h.dirSvc.Channels(c.Request.Context())
	if err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, ChannelListResponse{Channels: channels, Count: len(channels)})
}

// ChannelMessages godoc
// @ID          channelMessages
// @Summary     List messages in a channel
// @Description Returns top-level messages in the given channel, newest first. An unknown channel yields an empty list.
// @Tags        Channels
// @Produce     json
// @Param       channel  path   string  true   "Channel name"
// @Param       limit    query  int     false  "Maximum number of messages"  minimum(1) maximum(100) default(50)
// @Success     200  {object}  handlers.MessageListResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /channels/{channel}/messages [get]
func (h *Handlers) ChannelMessages(c *gin.Context) {
	in := schema.GetChannelMessagesInput{
		Channel: c.Param("channel"),
		Limit:   queryLimit(c),
	}
	if err := in.Validate(); err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}

	msgs, err := h.msgSvc.ChannelMessages(c.Request.Context(), in.Channel, *in.Limit)
	if err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, MessageListResponse{Messages: msgs, Count: len(msgs)})
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List users
// @Description Returns users who have posted at least one message, with message counts and last-activity timestamps. Sortable by name, messages, or last_activity.
// @Tags        Users
// @Produce     json
// @Param       limit    query  int     false  "Maximum number of users"  minimum(1) maximum(100) default(50)
// @Param       sort_by  query  string  false  "Sort key"  Enums(name, messages, last_activity)  default(name)
// @Success     200  {object}  handlers.UserListResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	in := schema.GetUsersListInput{
		Limit:  queryLimit(c),
		SortBy: c.Query("sort_by"),
	}
	if err := in.Validate(); err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}

	users, err := h.dirSvc.Users(c.Request.Context(), *in.Limit, in.SortBy)
	if err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, UserListResponse{Users: users, Count: len(users)})
}
