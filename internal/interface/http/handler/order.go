package handler

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	appOrder "github.com/tiendamoderna/tienda/internal/application/order"
	"github.com/tiendamoderna/tienda/internal/interface/http/dto"
	"github.com/tiendamoderna/tienda/internal/interface/http/middleware"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
	"github.com/tiendamoderna/tienda/pkg/response"
)

// OrderHandler serves /api/ordenes.
type OrderHandler struct {
	createUC *appOrder.CreateOrderUseCase
	cancelUC *appOrder.CancelOrderUseCase
	statusUC *appOrder.UpdateStatusUseCase
	queryUC  *appOrder.QueryOrdersUseCase
}

func NewOrderHandler(
	createUC *appOrder.CreateOrderUseCase,
	cancelUC *appOrder.CancelOrderUseCase,
	statusUC *appOrder.UpdateStatusUseCase,
	queryUC *appOrder.QueryOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		statusUC: statusUC,
		queryUC:  queryUC,
	}
}

// Create handles POST /api/ordenes.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	o, err := h.createUC.Execute(c.Request.Context(), req.ToRequest(middleware.GetUserID(c)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewOrderResponse(o))
}

// GetByID handles GET /api/ordenes/:id.
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.queryUC.GetByID(c.Request.Context(), id,
		middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewOrderResponse(o))
}

// GetByNumber handles GET /api/ordenes/numero/:numero.
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	o, err := h.queryUC.GetByNumber(c.Request.Context(), c.Param("numero"),
		middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewOrderResponse(o))
}

// ListMine handles GET /api/ordenes/mis-ordenes.
func (h *OrderHandler) ListMine(c *gin.Context) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	orders, total, err := h.queryUC.ListMine(c.Request.Context(),
		middleware.GetUserID(c), page.Page, page.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewOrderResponses(orders), total, page.Page, page.PageSize)
}

// ListByStatus handles GET /api/ordenes/por-estado/:estado (admin).
func (h *OrderHandler) ListByStatus(c *gin.Context) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	orders, total, err := h.queryUC.ListByStatus(c.Request.Context(),
		c.Param("estado"), page.Page, page.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewOrderResponses(orders), total, page.Page, page.PageSize)
}

// Cancel handles POST /api/ordenes/:id/cancelar.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.cancelUC.Execute(c.Request.Context(), id,
		middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewOrderResponse(o))
}

// MarkPaid handles POST /api/ordenes/:id/marcar-pagada (admin).
func (h *OrderHandler) MarkPaid(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	// The body is optional; marking paid without a transaction id is fine.
	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	o, err := h.statusUC.MarkPaid(c.Request.Context(), id, req.TransactionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewOrderResponse(o))
}

// MarkShipped handles POST /api/ordenes/:id/marcar-enviada (admin).
func (h *OrderHandler) MarkShipped(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.MarkShippedRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	o, err := h.statusUC.MarkShipped(c.Request.Context(), id, req.Carrier, req.TrackingCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewOrderResponse(o))
}

// MarkDelivered handles POST /api/ordenes/:id/marcar-entregada (admin).
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.statusUC.MarkDelivered(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewOrderResponse(o))
}

// SalesTotal handles GET /api/ordenes/total-ventas (admin).
func (h *OrderHandler) SalesTotal(c *gin.Context) {
	var q dto.SalesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	var from, to time.Time
	if q.From != "" {
		from, _ = time.Parse("2006-01-02", q.From)
	}
	if q.To != "" {
		to, _ = time.Parse("2006-01-02", q.To)
	}

	total, err := h.queryUC.SalesTotal(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"total": total})
}
