package handlers

import (
	"net/http"
	"strconv"

	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	BaseHandler
	discountService *services.DiscountService
}

func NewDiscountHandler(base BaseHandler, discountService *services.DiscountService) *DiscountHandler {
	return &DiscountHandler{BaseHandler: base, discountService: discountService}
}

func (h *DiscountHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/discounts", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}

	// Any authenticated user can check a code before using it.
	r.GET("/discounts/:code", middleware.AuthMiddleware(), h.Check)
}

func (h *DiscountHandler) Create(c *gin.Context) {
	var req dto.CreateDiscountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	discount, err := h.discountService.Create(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	created(c, discount)
}

func (h *DiscountHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	page, pageSize = ParsePagination(page, pageSize)

	discounts, total, err := h.discountService.List(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, gin.H{"discounts": discounts, "meta": dto.NewPageMeta(total, page, pageSize)})
}

func (h *DiscountHandler) Update(c *gin.Context) {
	var req dto.UpdateDiscountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	discount, err := h.discountService.Update(c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, discount)
}

func (h *DiscountHandler) Delete(c *gin.Context) {
	if err := h.discountService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Check resolves a code and reports whether it is currently usable.
func (h *DiscountHandler) Check(c *gin.Context) {
	discount, err := h.discountService.Resolve(c.Param("code"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, gin.H{"code": discount.Code, "type": discount.Type, "value": discount.Value})
}
