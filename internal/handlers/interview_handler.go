package handlers

import (
	"strconv"

	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	BaseHandler
	interviewService *services.InterviewService
}

func NewInterviewHandler(base BaseHandler, interviewService *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{BaseHandler: base, interviewService: interviewService}
}

func (h *InterviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	manager := r.Group("/interviews", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleManager))
	{
		manager.POST("", h.Schedule)
		manager.PATCH("/:id", h.Update)
	}

	me := r.Group("/me/interviews", middleware.AuthMiddleware())
	{
		me.GET("", h.ListMine)
	}
}

func (h *InterviewHandler) Schedule(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.ScheduleInterviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Schedule(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	created(c, interview)
}

func (h *InterviewHandler) Update(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.UpdateInterviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Update(userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, interview)
}

// ListMine dispatches on the caller's role: talents see interviews they are
// invited to, managers see the ones they scheduled.
func (h *InterviewHandler) ListMine(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	page, pageSize = ParsePagination(page, pageSize)

	var (
		resp *dto.InterviewListResponse
		err  error
	)
	switch middleware.GetUserRole(c) {
	case models.UserRoleManager:
		resp, err = h.interviewService.ListForManager(userID, page, pageSize)
	default:
		resp, err = h.interviewService.ListForTalent(userID, page, pageSize)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}
