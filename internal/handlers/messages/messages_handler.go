package messages

import (
	"net/http"
	"strconv"

	"sellerhub-service/internal/domain/message"
	"sellerhub-service/internal/handlers/respond"
	"sellerhub-service/internal/middleware"
	"sellerhub-service/internal/pkg/response"
	"sellerhub-service/internal/session"
	"sellerhub-service/internal/upstream"

	"github.com/gin-gonic/gin"
)

// MessagesHandler proxies the caller's mailbox.
type MessagesHandler struct {
	messages *upstream.MessagesClient
	sessions session.Store
}

func NewMessagesHandler(messages *upstream.MessagesClient, sessions session.Store) *MessagesHandler {
	return &MessagesHandler{
		messages: messages,
		sessions: sessions,
	}
}

// UnreadCount returns the caller's unread message count.
func (h *MessagesHandler) UnreadCount(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	count, err := h.messages.UnreadCount(c.Request.Context(), p.Token, p.UserID)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "unread count", gin.H{"count": count})
}

// List returns the caller's messages.
func (h *MessagesHandler) List(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	result, err := h.messages.ForUser(c.Request.Context(), p.Token, p.UserID)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "messages", result)
}

// MarkRead flags a message as read.
func (h *MessagesHandler) MarkRead(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid message ID", err)
		return
	}

	if err := h.messages.MarkRead(c.Request.Context(), p.Token, id); err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "message marked as read", nil)
}

// Send delivers a message to another user.
func (h *MessagesHandler) Send(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	var req message.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid message", err)
		return
	}

	result, err := h.messages.Send(c.Request.Context(), p.Token, &req)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusCreated, "message sent", result)
}
