package catalog

import (
	"context"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/brand"
	"github.com/tiendamoderna/tienda/internal/domain/category"
	"github.com/tiendamoderna/tienda/internal/domain/product"
)

// ProductUseCase is the catalog CRUD surface.
type ProductUseCase struct {
	productRepo  product.Repository
	categoryRepo category.Repository
	brandRepo    brand.Repository
}

func NewProductUseCase(
	productRepo product.Repository,
	categoryRepo category.Repository,
	brandRepo brand.Repository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
	}
}

type ProductInput struct {
	SKU             string
	Name            string
	Description     string
	BasePrice       int64
	DiscountPercent float64
	Stock           int
	Featured        bool
	CategoryID      uint
	BrandID         *uint

	Variants []VariantInput
	Images   []ImageInput
}

type VariantInput struct {
	SKU             string
	Size            string
	Color           string
	Material        string
	PriceAdjustment int64
	Stock           int
	Available       bool
}

type ImageInput struct {
	URL          string
	DisplayOrder int
	IsPrimary    bool
}

// Create adds a product after checking its category and brand exist. A
// duplicate SKU surfaces as product.ErrSKUTaken from the repository's unique
// index, leaving the existing row untouched.
func (uc *ProductUseCase) Create(ctx context.Context, in ProductInput) (*product.Product, error) {
	if _, err := uc.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if in.BrandID != nil {
		if _, err := uc.brandRepo.FindByID(ctx, *in.BrandID); err != nil {
			return nil, err
		}
	}

	p := product.NewProduct(in.SKU, in.Name, in.Description, in.BasePrice,
		in.DiscountPercent, in.Stock, in.CategoryID, in.BrandID)
	p.Featured = in.Featured
	applyVariantsAndImages(p, in)

	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the product's editable fields. Changing the SKU to one
// already in use fails the same way Create does.
func (uc *ProductUseCase) Update(ctx context.Context, id uint, in ProductInput) (*product.Product, error) {
	p, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := uc.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if in.BrandID != nil {
		if _, err := uc.brandRepo.FindByID(ctx, *in.BrandID); err != nil {
			return nil, err
		}
	}

	p.SKU = in.SKU
	p.Name = in.Name
	p.Description = in.Description
	p.BasePrice = in.BasePrice
	p.DiscountPercent = in.DiscountPercent
	p.Stock = in.Stock
	p.Featured = in.Featured
	p.CategoryID = in.CategoryID
	p.BrandID = in.BrandID
	p.UpdatedAt = time.Now()
	applyVariantsAndImages(p, in)

	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the product. Hard delete; historical order lines keep their
// own snapshots so they survive it.
func (uc *ProductUseCase) Delete(ctx context.Context, id uint) error {
	return uc.productRepo.Delete(ctx, id)
}

// SetActive toggles store visibility without deleting anything.
func (uc *ProductUseCase) SetActive(ctx context.Context, id uint, active bool) (*product.Product, error) {
	p, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Active = active
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetStock overwrites the stock count, for manual inventory corrections.
func (uc *ProductUseCase) SetStock(ctx context.Context, id uint, stock int) (*product.Product, error) {
	if stock < 0 {
		return nil, product.ErrInsufficientStock
	}
	p, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	return uc.productRepo.FindByID(ctx, id)
}

func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	return uc.productRepo.FindBySKU(ctx, sku)
}

func (uc *ProductUseCase) List(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error) {
	return uc.productRepo.List(ctx, page, pageSize)
}

func (uc *ProductUseCase) Search(ctx context.Context, term string, page, pageSize int) ([]*product.Product, int64, error) {
	return uc.productRepo.Search(ctx, term, page, pageSize)
}

func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*product.Product, int64, error) {
	return uc.productRepo.ListByCategory(ctx, categoryID, page, pageSize)
}

func (uc *ProductUseCase) ListByBrand(ctx context.Context, brandID uint, page, pageSize int) ([]*product.Product, int64, error) {
	return uc.productRepo.ListByBrand(ctx, brandID, page, pageSize)
}

func (uc *ProductUseCase) ListFeatured(ctx context.Context) ([]*product.Product, error) {
	return uc.productRepo.ListFeatured(ctx)
}

func (uc *ProductUseCase) ListOnSale(ctx context.Context) ([]*product.Product, error) {
	return uc.productRepo.ListOnSale(ctx)
}

func applyVariantsAndImages(p *product.Product, in ProductInput) {
	p.Variants = make([]product.Variant, len(in.Variants))
	for i, v := range in.Variants {
		p.Variants[i] = product.Variant{
			SKU:             v.SKU,
			Size:            v.Size,
			Color:           v.Color,
			Material:        v.Material,
			PriceAdjustment: v.PriceAdjustment,
			Stock:           v.Stock,
			Available:       v.Available,
		}
	}
	p.Images = make([]product.Image, len(in.Images))
	for i, img := range in.Images {
		p.Images[i] = product.Image{
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
			IsPrimary:    img.IsPrimary,
		}
	}
}
