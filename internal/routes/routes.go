package routes

import (
	"net/http"

	"gigboard_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the full API under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	h.Auth.RegisterRoutes(v1)
	h.User.RegisterRoutes(v1)
	h.Archive.RegisterRoutes(v1)
	h.Profile.RegisterRoutes(v1)
	h.Job.RegisterRoutes(v1)
	h.Proposal.RegisterRoutes(v1)
	h.Interview.RegisterRoutes(v1)
	h.Conversation.RegisterRoutes(v1)
	h.Package.RegisterRoutes(v1)
	h.Discount.RegisterRoutes(v1)
	h.Invoice.RegisterRoutes(v1)
	h.Transaction.RegisterRoutes(v1)
	h.Analytics.RegisterRoutes(v1)
	h.Notification.RegisterRoutes(v1)
}
