package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tiendamoderna/tienda/internal/application/catalog"
	"github.com/tiendamoderna/tienda/internal/interface/http/dto"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
	"github.com/tiendamoderna/tienda/pkg/response"
)

// CatalogHandler serves /api/categorias and /api/marcas.
type CatalogHandler struct {
	categoryUC *catalog.CategoryUseCase
	brandUC    *catalog.BrandUseCase
}

func NewCatalogHandler(categoryUC *catalog.CategoryUseCase, brandUC *catalog.BrandUseCase) *CatalogHandler {
	return &CatalogHandler{categoryUC: categoryUC, brandUC: brandUC}
}

// ListCategories handles GET /api/categorias.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUC.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.CategoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = dto.NewCategoryResponse(cat)
	}
	response.Success(c, out)
}

// CreateCategory handles POST /api/categorias (admin).
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	cat, err := h.categoryUC.Create(c.Request.Context(), catalog.CategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
		Active:   req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewCategoryResponse(cat))
}

// UpdateCategory handles PUT /api/categorias/:id (admin).
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	cat, err := h.categoryUC.Update(c.Request.Context(), id, catalog.CategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
		Active:   req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponse(cat))
}

// DeleteCategory handles DELETE /api/categorias/:id (admin).
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.categoryUC.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListBrands handles GET /api/marcas.
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.brandUC.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.BrandResponse, len(brands))
	for i, b := range brands {
		out[i] = dto.NewBrandResponse(b)
	}
	response.Success(c, out)
}

// CreateBrand handles POST /api/marcas (admin).
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req dto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	b, err := h.brandUC.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewBrandResponse(b))
}

// SetBrandStatus handles PATCH /api/marcas/:id/estado (admin).
func (h *CatalogHandler) SetBrandStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.BrandStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	b, err := h.brandUC.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBrandResponse(b))
}
