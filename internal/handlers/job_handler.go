package handlers

import (
	"net/http"

	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/jobs", h.List)
	r.GET("/jobs/:id", h.View)

	manager := r.Group("/jobs", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleManager))
	{
		manager.POST("", h.Create)
		manager.PATCH("/:id", h.Update)
		manager.DELETE("/:id", h.Delete)
	}

	me := r.Group("/me/jobs", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleManager))
	{
		me.GET("", h.ListMine)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = ParsePagination(query.Page, query.PageSize)

	resp, err := h.jobService.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}

func (h *JobHandler) View(c *gin.Context) {
	job, err := h.jobService.View(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	created(c, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	if err := h.jobService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var query dto.JobListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = ParsePagination(query.Page, query.PageSize)

	resp, err := h.jobService.ListMine(userID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}
