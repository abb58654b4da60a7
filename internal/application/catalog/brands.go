package catalog

import (
	"context"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/brand"
)

// BrandUseCase manages brands.
type BrandUseCase struct {
	brandRepo brand.Repository
}

func NewBrandUseCase(brandRepo brand.Repository) *BrandUseCase {
	return &BrandUseCase{brandRepo: brandRepo}
}

func (uc *BrandUseCase) Create(ctx context.Context, name string) (*brand.Brand, error) {
	b := brand.NewBrand(name)
	if err := uc.brandRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *BrandUseCase) SetActive(ctx context.Context, id uint, active bool) (*brand.Brand, error) {
	b, err := uc.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Active = active
	b.UpdatedAt = time.Now()
	if err := uc.brandRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *BrandUseCase) List(ctx context.Context) ([]*brand.Brand, error) {
	return uc.brandRepo.List(ctx)
}
