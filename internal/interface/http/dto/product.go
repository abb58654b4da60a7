package dto

import (
	"time"

	"github.com/tiendamoderna/tienda/internal/application/catalog"
	"github.com/tiendamoderna/tienda/internal/domain/brand"
	"github.com/tiendamoderna/tienda/internal/domain/category"
	"github.com/tiendamoderna/tienda/internal/domain/product"
)

// PageQuery is the shared pagination query string.
type PageQuery struct {
	Page     int `form:"pagina,default=1" binding:"omitempty,gte=1"`
	PageSize int `form:"tamano,default=20" binding:"omitempty,gte=1,lte=100"`
}

type ProductRequest struct {
	SKU             string           `json:"sku" binding:"required,max=50"`
	Name            string           `json:"nombre" binding:"required,max=200"`
	Description     string           `json:"descripcion"`
	BasePrice       int64            `json:"precio_base" binding:"required,gte=0"`
	DiscountPercent float64          `json:"porcentaje_descuento" binding:"gte=0,lte=100"`
	Stock           int              `json:"stock" binding:"gte=0"`
	Featured        bool             `json:"destacado"`
	CategoryID      uint             `json:"categoria_id" binding:"required"`
	BrandID         *uint            `json:"marca_id"`
	Variants        []VariantRequest `json:"variantes" binding:"omitempty,dive"`
	Images          []ImageRequest   `json:"imagenes" binding:"omitempty,dive"`
}

type VariantRequest struct {
	SKU             string `json:"sku" binding:"required,max=50"`
	Size            string `json:"talle"`
	Color           string `json:"color"`
	Material        string `json:"material"`
	PriceAdjustment int64  `json:"ajuste_precio"`
	Stock           int    `json:"stock" binding:"gte=0"`
	Available       bool   `json:"disponible"`
}

type ImageRequest struct {
	URL          string `json:"url" binding:"required,url"`
	DisplayOrder int    `json:"orden"`
	IsPrimary    bool   `json:"es_principal"`
}

// ToInput converts the request into the use-case input.
func (r ProductRequest) ToInput() catalog.ProductInput {
	in := catalog.ProductInput{
		SKU:             r.SKU,
		Name:            r.Name,
		Description:     r.Description,
		BasePrice:       r.BasePrice,
		DiscountPercent: r.DiscountPercent,
		Stock:           r.Stock,
		Featured:        r.Featured,
		CategoryID:      r.CategoryID,
		BrandID:         r.BrandID,
	}
	for _, v := range r.Variants {
		in.Variants = append(in.Variants, catalog.VariantInput{
			SKU:             v.SKU,
			Size:            v.Size,
			Color:           v.Color,
			Material:        v.Material,
			PriceAdjustment: v.PriceAdjustment,
			Stock:           v.Stock,
			Available:       v.Available,
		})
	}
	for _, img := range r.Images {
		in.Images = append(in.Images, catalog.ImageInput{
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
			IsPrimary:    img.IsPrimary,
		})
	}
	return in
}

type ProductStatusRequest struct {
	Active *bool `json:"activo" binding:"required"`
}

type ProductStockRequest struct {
	Stock *int `json:"stock" binding:"required,gte=0"`
}

type ProductResponse struct {
	ID              uint              `json:"id"`
	SKU             string            `json:"sku"`
	Name            string            `json:"nombre"`
	Description     string            `json:"descripcion,omitempty"`
	BasePrice       int64             `json:"precio_base"`
	DiscountPercent float64           `json:"porcentaje_descuento"`
	FinalPrice      int64             `json:"precio_final"`
	OnSale          bool              `json:"en_oferta"`
	Stock           int               `json:"stock"`
	Active          bool              `json:"activo"`
	Featured        bool              `json:"destacado"`
	CategoryID      uint              `json:"categoria_id"`
	BrandID         *uint             `json:"marca_id,omitempty"`
	Variants        []VariantResponse `json:"variantes,omitempty"`
	Images          []ImageResponse   `json:"imagenes,omitempty"`
	CreatedAt       time.Time         `json:"creado_en"`
	UpdatedAt       time.Time         `json:"actualizado_en"`
}

type VariantResponse struct {
	ID              uint   `json:"id"`
	SKU             string `json:"sku"`
	Size            string `json:"talle,omitempty"`
	Color           string `json:"color,omitempty"`
	Material        string `json:"material,omitempty"`
	PriceAdjustment int64  `json:"ajuste_precio"`
	Stock           int    `json:"stock"`
	Available       bool   `json:"disponible"`
}

type ImageResponse struct {
	ID           uint   `json:"id"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"orden"`
	IsPrimary    bool   `json:"es_principal"`
}

func NewProductResponse(p *product.Product) ProductResponse {
	resp := ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Description:     p.Description,
		BasePrice:       p.BasePrice,
		DiscountPercent: p.DiscountPercent,
		FinalPrice:      p.FinalPrice(),
		OnSale:          p.OnSale(),
		Stock:           p.Stock,
		Active:          p.Active,
		Featured:        p.Featured,
		CategoryID:      p.CategoryID,
		BrandID:         p.BrandID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	for _, v := range p.Variants {
		resp.Variants = append(resp.Variants, VariantResponse{
			ID:              v.ID,
			SKU:             v.SKU,
			Size:            v.Size,
			Color:           v.Color,
			Material:        v.Material,
			PriceAdjustment: v.PriceAdjustment,
			Stock:           v.Stock,
			Available:       v.Available,
		})
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, ImageResponse{
			ID:           img.ID,
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
			IsPrimary:    img.IsPrimary,
		})
	}
	return resp
}

func NewProductResponses(products []*product.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = NewProductResponse(p)
	}
	return out
}

type CategoryRequest struct {
	Name     string `json:"nombre" binding:"required,max=100"`
	Slug     string `json:"slug" binding:"omitempty,max=120"`
	ParentID *uint  `json:"padre_id"`
	Active   bool   `json:"activa"`
}

type CategoryResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"nombre"`
	Slug     string `json:"slug"`
	ParentID *uint  `json:"padre_id,omitempty"`
	Active   bool   `json:"activa"`
}

func NewCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ParentID: c.ParentID,
		Active:   c.Active,
	}
}

type BrandRequest struct {
	Name string `json:"nombre" binding:"required,max=100"`
}

type BrandStatusRequest struct {
	Active *bool `json:"activa" binding:"required"`
}

type BrandResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"nombre"`
	Active bool   `json:"activa"`
}

func NewBrandResponse(b *brand.Brand) BrandResponse {
	return BrandResponse{ID: b.ID, Name: b.Name, Active: b.Active}
}
