package handlers

import (
	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	BaseHandler
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(base BaseHandler, analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{BaseHandler: base, analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/analytics", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)
	}
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.analyticsService.Dashboard()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, stats)
}
