package handlers

import (
	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// TransactionHandler is the admin surface over the append-only ledger.
type TransactionHandler struct {
	BaseHandler
	transactionService *services.TransactionService
}

func NewTransactionHandler(base BaseHandler, transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{BaseHandler: base, transactionService: transactionService}
}

func (h *TransactionHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/transactions", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.GET("/summary", h.Summary)
		admin.GET("/:id", h.Get)
		admin.POST("/:id/status", h.AppendStatus)
		admin.POST("/:id/actions", h.AppendAdminAction)
	}

	commission := r.Group("/admin/commission", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		commission.GET("", h.Commission)
		commission.PUT("", h.UpdateCommission)
	}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	actorID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.CreateTransactionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.transactionService.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	created(c, entry)
}

func (h *TransactionHandler) List(c *gin.Context) {
	var query dto.TransactionListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = ParsePagination(query.Page, query.PageSize)

	resp, err := h.transactionService.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}

func (h *TransactionHandler) Get(c *gin.Context) {
	entry, err := h.transactionService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, entry)
}

func (h *TransactionHandler) AppendStatus(c *gin.Context) {
	actorID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.AppendTransactionStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.transactionService.AppendStatus(c.Request.Context(), actorID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, entry)
}

func (h *TransactionHandler) AppendAdminAction(c *gin.Context) {
	actorID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.AppendAdminActionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.transactionService.AppendAdminAction(c.Request.Context(), actorID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, entry)
}

func (h *TransactionHandler) Summary(c *gin.Context) {
	from, to, err := ParseQueryDateRange(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.transactionService.Summary(from, to)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}

func (h *TransactionHandler) Commission(c *gin.Context) {
	settings, err := h.transactionService.CommissionSettings()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, settings)
}

func (h *TransactionHandler) UpdateCommission(c *gin.Context) {
	actorID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var req dto.UpdateCommissionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	settings, err := h.transactionService.UpdateCommission(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, settings)
}
