package product

import (
	"context"
)

// Repository is implemented by the persistence layer. Implementations map
// duplicate SKUs to ErrSKUTaken and missing rows to ErrNotFound.
type Repository interface {
	Create(ctx context.Context, p *Product) error

	FindByID(ctx context.Context, id uint) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// LockByID loads a product under a row lock. Only meaningful inside a
	// transaction; checkout locks every cart line before touching stock.
	LockByID(ctx context.Context, id uint) (*Product, error)

	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error

	// AdjustStock applies a stock delta with a guard that refuses to drive
	// the count negative. A negative-result attempt returns
	// ErrInsufficientStock; a missing row returns ErrNotFound.
	AdjustStock(ctx context.Context, id uint, delta int) error

	List(ctx context.Context, page, pageSize int) ([]*Product, int64, error)
	Search(ctx context.Context, term string, page, pageSize int) ([]*Product, int64, error)
	ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*Product, int64, error)
	ListByBrand(ctx context.Context, brandID uint, page, pageSize int) ([]*Product, int64, error)
	ListFeatured(ctx context.Context) ([]*Product, error)
	ListOnSale(ctx context.Context) ([]*Product, error)
}
