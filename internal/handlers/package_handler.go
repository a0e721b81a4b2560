package handlers

import (
	"net/http"

	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	BaseHandler
	packageService *services.PackageService
}

func NewPackageHandler(base BaseHandler, packageService *services.PackageService) *PackageHandler {
	return &PackageHandler{BaseHandler: base, packageService: packageService}
}

func (h *PackageHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/talents/:id/packages", h.ListByTalent)

	talent := r.Group("/packages", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleTalent))
	{
		talent.POST("", h.Create)
		talent.PATCH("/:id", h.Update)
		talent.DELETE("/:id", h.Delete)
	}

	me := r.Group("/me/packages", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleTalent))
	{
		me.GET("", h.ListMine)
	}
}

// ListByTalent is public and only shows active packages.
func (h *PackageHandler) ListByTalent(c *gin.Context) {
	packages, err := h.packageService.ListByTalent(c.Param("id"), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, gin.H{"packages": packages})
}

func (h *PackageHandler) ListMine(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	packages, err := h.packageService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, gin.H{"packages": packages})
}

func (h *PackageHandler) Create(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.CreatePackageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pkg, err := h.packageService.Create(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	created(c, pkg)
}

func (h *PackageHandler) Update(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.UpdatePackageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pkg, err := h.packageService.Update(userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, pkg)
}

func (h *PackageHandler) Delete(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	if err := h.packageService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
