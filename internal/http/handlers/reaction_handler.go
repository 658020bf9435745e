package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chatwire/chatwire/internal/schema"
)

// AddReaction godoc
// @ID          addReaction
// @Summary     Add a reaction
// @Description Adds an emoji reaction to a message. A user may react to the same message with a given emoji at most once.
// @Tags        Reactions
// @Accept      json
// @Produce     json
// @Param       id    path  int                      true  "Message ID"  minimum(1)
// @Param       body  body  schema.AddReactionInput  true  "Reaction payload"
// @Success     200  {object}  handlers.StatusResponse
// @Failure     400  {object}  handlers.ErrorResponse "Validation error or duplicate reaction"
// @Failure     404  {object}  handlers.ErrorResponse "Message not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /messages/{id}/reactions [post]
func (h *Handlers) AddReaction(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message id must be a positive integer")
		return
	}

	var in schema.AddReactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	in.MessageID = id
	if err := in.Validate(); err != nil {
		failErr(c, err, ErrCodeCreateFailed)
		return
	}

	if err := h.rctSvc.Add(c.Request.Context(), in.MessageID, in.UserName, in.Emoji); err != nil {
		failErr(c, err, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusOK, StatusResponse{Message: "Reaction added successfully"})
}

// RemoveReaction godoc
// @ID          removeReaction
// @Summary     Remove a reaction
// @Description Removes the reaction identified by the exact (message, user, emoji) triple.
// @Tags        Reactions
// @Accept      json
// @Produce     json
// @Param       id    path  int                         true  "Message ID"  minimum(1)
// @Param       body  body  schema.RemoveReactionInput  true  "Reaction payload"
// @Success     200  {object}  handlers.StatusResponse
// @Failure     400  {object}  handlers.ErrorResponse "Validation error"
// @Failure     404  {object}  handlers.ErrorResponse "Reaction not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /messages/{id}/reactions [delete]
func (h *Handlers) RemoveReaction(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message id must be a positive integer")
		return
	}

	var in schema.RemoveReactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	in.MessageID = id
	if err := in.Validate(); err != nil {
		failErr(c, err, ErrCodeInternal)
		return
	}

	if err := h.rctSvc.Remove(c.Request.Context(), in.MessageID, in.UserName, in.Emoji); err != nil {
		failErr(c, err, ErrCodeInternal)
		return
	}
	ok(c, http.StatusOK, StatusResponse{Message: "Reaction removed successfully"})
}

// GetReactions godoc
// @ID          getReactions
// @Summary     List reactions on a message
// @Description Returns the message's reactions grouped by emoji. A message with no reactions, or an unknown message ID, yields an empty grouping.
// @Tags        Reactions
// @Produce     json
// @Param       id  path  int  true  "Message ID"  minimum(1)
// @Success     200  {object}  services.ReactionsView
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /messages/{id}/reactions [get]
func (h *Handlers) GetReactions(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message id must be a positive integer")
		return
	}

	view, err := h.rctSvc.ForMessage(c.Request.Context(), id)
	if err != nil {
		failErr(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, view)
}
