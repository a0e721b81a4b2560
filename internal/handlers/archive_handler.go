package handlers

import (
	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ArchiveHandler exposes the admin soft-delete lifecycle: delete a user
// into the archive, list and inspect archived accounts, restore, purge.
type ArchiveHandler struct {
	BaseHandler
	archiveService *services.ArchiveService
}

func NewArchiveHandler(base BaseHandler, archiveService *services.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{BaseHandler: base, archiveService: archiveService}
}

func (h *ArchiveHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.DELETE("/users/:id", h.SoftDelete)
		admin.GET("/archived-users", h.List)
		admin.GET("/archived-users/:id", h.Get)
		admin.POST("/archived-users/:id/restore", h.Restore)
		admin.DELETE("/archived-users/:id", h.Purge)
	}
}

func (h *ArchiveHandler) SoftDelete(c *gin.Context) {
	actorID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	// Reason is optional; an empty body is fine.
	var req dto.SoftDeleteRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.archiveService.SoftDelete(c.Request.Context(), actorID, c.Param("id"), req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, result)
}

func (h *ArchiveHandler) List(c *gin.Context) {
	var query dto.ArchiveListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = ParsePagination(query.Page, query.PageSize)

	resp, err := h.archiveService.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}

func (h *ArchiveHandler) Get(c *gin.Context) {
	record, err := h.archiveService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, record)
}

func (h *ArchiveHandler) Restore(c *gin.Context) {
	actorID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	result, err := h.archiveService.Restore(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, result)
}

func (h *ArchiveHandler) Purge(c *gin.Context) {
	actorID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	if err := h.archiveService.Purge(c.Request.Context(), actorID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, gin.H{"message": "Archived user permanently removed"})
}
