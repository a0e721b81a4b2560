package handlers

import (
	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler is the admin-only user management surface.
type UserHandler struct {
	BaseHandler
	userService *services.UserService
}

func NewUserHandler(base BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/users", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.GET("/:id", h.Get)
		admin.PATCH("/:id", h.Update)
		admin.POST("/bulk-action", h.BulkAction)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = ParsePagination(query.Page, query.PageSize)

	resp, err := h.userService.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	created(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, user)
}

func (h *UserHandler) BulkAction(c *gin.Context) {
	var req dto.BulkUserActionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.userService.BulkAction(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, result)
}
