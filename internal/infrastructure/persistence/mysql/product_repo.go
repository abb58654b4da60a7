package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tiendamoderna/tienda/internal/domain/product"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return product.ErrSKUTaken
		}
		return apperrors.Wrap(err, "error al crear el producto")
	}
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	syncGeneratedIDs(p, model)
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	var model ProductModel
	err := getDB(ctx, r.db).Preload("Variants").Preload("Images").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al buscar el producto")
	}
	return toProductEntity(&model), nil
}

func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	var model ProductModel
	err := getDB(ctx, r.db).Preload("Variants").Preload("Images").
		Where("sku = ?", sku).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al buscar el producto")
	}
	return toProductEntity(&model), nil
}

// LockByID takes a SELECT FOR UPDATE row lock. Checkout locks every cart
// line before validating stock, so concurrent checkouts on the same product
// serialize on the row.
func (r *productRepository) LockByID(ctx context.Context, id uint) (*product.Product, error) {
	var model ProductModel
	err := getDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al bloquear el producto")
	}
	return toProductEntity(&model), nil
}

// Update saves the main row and replaces the variant and image collections.
func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	db := getDB(ctx, r.db)

	if err := db.Where("product_id = ?", p.ID).Delete(&VariantModel{}).Error; err != nil {
		return apperrors.Wrap(err, "error al actualizar las variantes")
	}
	if err := db.Where("product_id = ?", p.ID).Delete(&ImageModel{}).Error; err != nil {
		return apperrors.Wrap(err, "error al actualizar las imágenes")
	}

	model := toProductModel(p)
	if err := db.Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return product.ErrSKUTaken
		}
		return apperrors.Wrap(err, "error al actualizar el producto")
	}
	p.UpdatedAt = model.UpdatedAt
	syncGeneratedIDs(p, model)
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&ProductModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "error al eliminar el producto")
	}
	if result.RowsAffected == 0 {
		return product.ErrNotFound
	}
	return nil
}

// AdjustStock applies a stock delta atomically with a guard against going
// negative. RowsAffected 0 means either a missing product or insufficient
// stock; a follow-up read disambiguates.
func (r *productRepository) AdjustStock(ctx context.Context, id uint, delta int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&ProductModel{}).
		Where("id = ?", id).
		Where("stock + ? >= 0", delta).
		Update("stock", gorm.Expr("stock + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "error al actualizar el stock")
	}
	if result.RowsAffected == 0 {
		var model ProductModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return product.ErrNotFound
			}
			return apperrors.Wrap(err, "error al buscar el producto")
		}
		return product.ErrInsufficientStock
	}
	return nil
}

func (r *productRepository) List(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error) {
	return r.listWhere(ctx, page, pageSize, nil)
}

func (r *productRepository) Search(ctx context.Context, term string, page, pageSize int) ([]*product.Product, int64, error) {
	pattern := "%" + term + "%"
	return r.listWhere(ctx, page, pageSize, func(q *gorm.DB) *gorm.DB {
		return q.Where("name LIKE ? OR description LIKE ? OR sku LIKE ?", pattern, pattern, pattern)
	})
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*product.Product, int64, error) {
	return r.listWhere(ctx, page, pageSize, func(q *gorm.DB) *gorm.DB {
		return q.Where("category_id = ?", categoryID)
	})
}

func (r *productRepository) ListByBrand(ctx context.Context, brandID uint, page, pageSize int) ([]*product.Product, int64, error) {
	return r.listWhere(ctx, page, pageSize, func(q *gorm.DB) *gorm.DB {
		return q.Where("brand_id = ?", brandID)
	})
}

func (r *productRepository) ListFeatured(ctx context.Context) ([]*product.Product, error) {
	return r.findAll(ctx, "featured = ? AND active = ?", true, true)
}

func (r *productRepository) ListOnSale(ctx context.Context) ([]*product.Product, error) {
	return r.findAll(ctx, "discount_percent > 0 AND active = ?", true)
}

func (r *productRepository) listWhere(ctx context.Context, page, pageSize int, scope func(*gorm.DB) *gorm.DB) ([]*product.Product, int64, error) {
	query := getDB(ctx, r.db).Model(&ProductModel{})
	if scope != nil {
		query = scope(query)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "error al contar los productos")
	}

	var models []ProductModel
	err := query.Preload("Variants").Preload("Images").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "error al listar los productos")
	}

	products := make([]*product.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}
	return products, total, nil
}

func (r *productRepository) findAll(ctx context.Context, query string, args ...interface{}) ([]*product.Product, error) {
	var models []ProductModel
	err := getDB(ctx, r.db).Preload("Variants").Preload("Images").
		Where(query, args...).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "error al listar los productos")
	}
	products := make([]*product.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}
	return products, nil
}

func toProductModel(p *product.Product) *ProductModel {
	model := &ProductModel{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Description:     p.Description,
		BasePrice:       p.BasePrice,
		DiscountPercent: p.DiscountPercent,
		Stock:           p.Stock,
		Active:          p.Active,
		Featured:        p.Featured,
		CategoryID:      p.CategoryID,
		BrandID:         p.BrandID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	for _, v := range p.Variants {
		model.Variants = append(model.Variants, VariantModel{
			ID:              v.ID,
			ProductID:       p.ID,
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
		model.Images = append(model.Images, ImageModel{
			ID:           img.ID,
			ProductID:    p.ID,
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
			IsPrimary:    img.IsPrimary,
		})
	}
	return model
}

func toProductEntity(m *ProductModel) *product.Product {
	p := &product.Product{
		ID:              m.ID,
		SKU:             m.SKU,
		Name:            m.Name,
		Description:     m.Description,
		BasePrice:       m.BasePrice,
		DiscountPercent: m.DiscountPercent,
		Stock:           m.Stock,
		Active:          m.Active,
		Featured:        m.Featured,
		CategoryID:      m.CategoryID,
		BrandID:         m.BrandID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	for _, v := range m.Variants {
		p.Variants = append(p.Variants, product.Variant{
			ID:              v.ID,
			ProductID:       v.ProductID,
			SKU:             v.SKU,
			Size:            v.Size,
			Color:           v.Color,
			Material:        v.Material,
			PriceAdjustment: v.PriceAdjustment,
			Stock:           v.Stock,
			Available:       v.Available,
		})
	}
	for _, img := range m.Images {
		p.Images = append(p.Images, product.Image{
			ID:           img.ID,
			ProductID:    img.ProductID,
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
			IsPrimary:    img.IsPrimary,
		})
	}
	return p
}

func syncGeneratedIDs(p *product.Product, model *ProductModel) {
	for i := range model.Variants {
		if i < len(p.Variants) {
			p.Variants[i].ID = model.Variants[i].ID
			p.Variants[i].ProductID = model.Variants[i].ProductID
		}
	}
	for i := range model.Images {
		if i < len(p.Images) {
			p.Images[i].ID = model.Images[i].ID
			p.Images[i].ProductID = model.Images[i].ProductID
		}
	}
}
