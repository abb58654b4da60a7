package product

import (
	"math"
	"time"
)

// Product is the catalog aggregate root. Prices are stored in minor currency
// units; DiscountPercent is 0-100.
type Product struct {
	ID              uint
	SKU             string
	Name            string
	Description     string
	BasePrice       int64
	DiscountPercent float64
	Stock           int
	Active          bool
	Featured        bool
	CategoryID      uint
	BrandID         *uint

	Variants []Variant
	Images   []Image

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Variant is a sellable variation of a product with its own SKU and stock.
// PriceAdjustment is added to the product's base price and can be negative.
type Variant struct {
	ID              uint
	ProductID       uint
	SKU             string
	Size            string
	Color           string
	Material        string
	PriceAdjustment int64
	Stock           int
	Available       bool
}

// Image is a product photo. DisplayOrder sorts the gallery; IsPrimary marks
// the cover image (not enforced to be unique per product).
type Image struct {
	ID           uint
	ProductID    uint
	URL          string
	DisplayOrder int
	IsPrimary    bool
}

// NewProduct creates an active product.
func NewProduct(sku, name, description string, basePrice int64, discountPercent float64, stock int, categoryID uint, brandID *uint) *Product {
	now := time.Now()
	return &Product{
		SKU:             sku,
		Name:            name,
		Description:     description,
		BasePrice:       basePrice,
		DiscountPercent: discountPercent,
		Stock:           stock,
		Active:          true,
		CategoryID:      categoryID,
		BrandID:         brandID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// UnitDiscount is the per-unit discount in minor units, rounded half-up.
// Order lines snapshot this value so the rounding happens exactly once.
func (p *Product) UnitDiscount() int64 {
	return int64(math.Round(float64(p.BasePrice) * p.DiscountPercent / 100))
}

// FinalPrice is the effective per-unit price after the discount.
func (p *Product) FinalPrice() int64 {
	return p.BasePrice - p.UnitDiscount()
}

// OnSale reports whether the product carries a discount.
func (p *Product) OnSale() bool {
	return p.DiscountPercent > 0
}

// HasStock reports whether qty units can be sold right now.
func (p *Product) HasStock(qty int) bool {
	return p.Stock >= qty
}
