package handlers

import (
	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(base BaseHandler, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/talents/:id", h.ViewTalent)

	me := r.Group("/me", middleware.AuthMiddleware())
	{
		me.GET("/talent-profile", middleware.RequireRoles(models.UserRoleTalent), h.MyTalentProfile)
		me.PATCH("/talent-profile", middleware.RequireRoles(models.UserRoleTalent), h.UpdateTalentProfile)
		me.GET("/manager-profile", middleware.RequireRoles(models.UserRoleManager), h.MyManagerProfile)
		me.PATCH("/manager-profile", middleware.RequireRoles(models.UserRoleManager), h.UpdateManagerProfile)
	}
}

// ViewTalent is the public profile page; every hit counts a view.
func (h *ProfileHandler) ViewTalent(c *gin.Context) {
	profile, err := h.profileService.ViewTalent(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, dto.TalentProfileResponse{Profile: profile})
}

func (h *ProfileHandler) MyTalentProfile(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	profile, err := h.profileService.GetTalentByUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, dto.TalentProfileResponse{Profile: profile})
}

func (h *ProfileHandler) UpdateTalentProfile(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.UpdateTalentProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateTalent(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, dto.TalentProfileResponse{Profile: profile})
}

func (h *ProfileHandler) MyManagerProfile(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	profile, err := h.profileService.GetManagerByUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, dto.ManagerProfileResponse{Profile: profile})
}

func (h *ProfileHandler) UpdateManagerProfile(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.UpdateManagerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateManager(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, dto.ManagerProfileResponse{Profile: profile})
}
