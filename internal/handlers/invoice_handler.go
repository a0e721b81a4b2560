package handlers

import (
	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	BaseHandler
	invoiceService *services.InvoiceService
}

func NewInvoiceHandler(base BaseHandler, invoiceService *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, invoiceService: invoiceService}
}

func (h *InvoiceHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/invoices", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.POST("/:id/pay", h.MarkPaid)
		admin.POST("/:id/void", h.Void)
	}

	me := r.Group("/me/invoices", middleware.AuthMiddleware())
	{
		me.GET("", h.ListMine)
	}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	created(c, invoice)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	var query dto.InvoiceListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = ParsePagination(query.Page, query.PageSize)

	resp, err := h.invoiceService.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}

func (h *InvoiceHandler) ListMine(c *gin.Context) {
	userID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	var query dto.InvoiceListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.UserID = userID
	query.Page, query.PageSize = ParsePagination(query.Page, query.PageSize)

	resp, err := h.invoiceService.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, resp)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, err := h.invoiceService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, invoice)
}

func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	actorID, authed := h.AuthedUserID(c)
	if !authed {
		return
	}

	invoice, err := h.invoiceService.MarkPaid(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, invoice)
}

func (h *InvoiceHandler) Void(c *gin.Context) {
	invoice, err := h.invoiceService.Void(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	ok(c, invoice)
}
