package handlers

import (
	"strconv"

	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	BaseHandler
	conversationService *services.ConversationService
}

func NewConversationHandler(base BaseHandler, conversationService *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{BaseHandler: base, conversationService: conversationService}
}

func (h *ConversationHandler) RegisterRoutes(r *gin.RouterGroup) {
	conversations := r.Group("/conversations", middleware.AuthMiddleware())
	{
		conversations.POST("", h.Start)
		conversations.GET("", h.ListMine)
		conversations.GET("/:id/messages", h.Messages)
		conversations.POST("/:id/messages", h.Send)
		conversations.GET("/:id/unread-count", h.UnreadCount)
	}
}

func (h *ConversationHandler) Start(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.StartConversationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	conversation, err := h.conversationService.Start(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	created(c, conversation)
}

func (h *ConversationHandler) ListMine(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	page, pageSize = ParsePagination(page, pageSize)

	resp, err := h.conversationService.ListMine(userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}

func (h *ConversationHandler) Messages(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	page, pageSize = ParsePagination(page, pageSize)

	resp, err := h.conversationService.Messages(userID, c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}

func (h *ConversationHandler) Send(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.conversationService.Send(c.Request.Context(), userID, c.Param("id"), req.Body)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	created(c, message)
}

func (h *ConversationHandler) UnreadCount(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	count, err := h.conversationService.UnreadCount(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, gin.H{"unread_count": count})
}
