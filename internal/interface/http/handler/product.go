package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tiendamoderna/tienda/internal/application/catalog"
	"github.com/tiendamoderna/tienda/internal/interface/http/dto"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
	"github.com/tiendamoderna/tienda/pkg/response"
)

// ProductHandler serves /api/productos.
type ProductHandler struct {
	productUC *catalog.ProductUseCase
}

func NewProductHandler(productUC *catalog.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// List handles GET /api/productos.
func (h *ProductHandler) List(c *gin.Context) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	products, total, err := h.productUC.List(c.Request.Context(), page.Page, page.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewProductResponses(products), total, page.Page, page.PageSize)
}

// GetByID handles GET /api/productos/:id.
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := h.productUC.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProductResponse(p))
}

// GetBySKU handles GET /api/productos/sku/:sku.
func (h *ProductHandler) GetBySKU(c *gin.Context) {
	p, err := h.productUC.GetBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProductResponse(p))
}

// Search handles GET /api/productos/buscar?termino=.
func (h *ProductHandler) Search(c *gin.Context) {
	term := c.Query("termino")
	if term == "" {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams, "el término de búsqueda es obligatorio"))
		return
	}
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	products, total, err := h.productUC.Search(c.Request.Context(), term, page.Page, page.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewProductResponses(products), total, page.Page, page.PageSize)
}

// ListByCategory handles GET /api/productos/categoria/:id.
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	products, total, err := h.productUC.ListByCategory(c.Request.Context(), id, page.Page, page.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewProductResponses(products), total, page.Page, page.PageSize)
}

// ListByBrand handles GET /api/productos/marca/:id.
func (h *ProductHandler) ListByBrand(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	products, total, err := h.productUC.ListByBrand(c.Request.Context(), id, page.Page, page.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewProductResponses(products), total, page.Page, page.PageSize)
}

// ListFeatured handles GET /api/productos/destacados.
func (h *ProductHandler) ListFeatured(c *gin.Context) {
	products, err := h.productUC.ListFeatured(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProductResponses(products))
}

// ListOnSale handles GET /api/productos/ofertas.
func (h *ProductHandler) ListOnSale(c *gin.Context) {
	products, err := h.productUC.ListOnSale(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProductResponses(products))
}

// Create handles POST /api/productos (admin).
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	p, err := h.productUC.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewProductResponse(p))
}

// Update handles PUT /api/productos/:id (admin).
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	p, err := h.productUC.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProductResponse(p))
}

// Delete handles DELETE /api/productos/:id (admin).
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.productUC.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// SetStatus handles PATCH /api/productos/:id/estado (admin).
func (h *ProductHandler) SetStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	p, err := h.productUC.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProductResponse(p))
}

// SetStock handles PATCH /api/productos/:id/stock (admin).
func (h *ProductHandler) SetStock(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	p, err := h.productUC.SetStock(c.Request.Context(), id, *req.Stock)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProductResponse(p))
}

// paramID parses a uint path parameter, writing the error response itself.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.Error(c, apperrors.ErrInvalidParams)
		return 0, false
	}
	return uint(id), true
}
