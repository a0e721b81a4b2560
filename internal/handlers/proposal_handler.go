package handlers

import (
	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	BaseHandler
	proposalService *services.ProposalService
}

func NewProposalHandler(base BaseHandler, proposalService *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{BaseHandler: base, proposalService: proposalService}
}

func (h *ProposalHandler) RegisterRoutes(r *gin.RouterGroup) {
	talent := r.Group("/proposals", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleTalent))
	{
		talent.POST("", h.Submit)
		talent.POST("/:id/withdraw", h.Withdraw)
	}

	me := r.Group("/me/proposals", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleTalent))
	{
		me.GET("", h.ListMine)
	}

	manager := r.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleManager))
	{
		manager.GET("/jobs/:id/proposals", h.ListForJob)
		manager.PATCH("/proposals/:id/status", h.SetStatus)
	}
}

func (h *ProposalHandler) Submit(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.CreateProposalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.Submit(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	created(c, proposal)
}

func (h *ProposalHandler) Withdraw(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	proposal, err := h.proposalService.Withdraw(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, proposal)
}

func (h *ProposalHandler) SetStatus(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.UpdateProposalStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.SetStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, proposal)
}

func (h *ProposalHandler) ListMine(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var query dto.ProposalListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = ParsePagination(query.Page, query.PageSize)

	resp, err := h.proposalService.ListMine(userID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}

func (h *ProposalHandler) ListForJob(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var query dto.ProposalListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = ParsePagination(query.Page, query.PageSize)

	resp, err := h.proposalService.ListForJob(userID, c.Param("id"), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}
