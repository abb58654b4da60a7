package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tiendamoderna/tienda/internal/domain/brand"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) brand.Repository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, b *brand.Brand) error {
	model := toBrandModel(b)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "error al crear la marca")
	}
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *brandRepository) FindByID(ctx context.Context, id uint) (*brand.Brand, error) {
	var model BrandModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, brand.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al buscar la marca")
	}
	return toBrandEntity(&model), nil
}

func (r *brandRepository) FindByName(ctx context.Context, name string) (*brand.Brand, error) {
	var model BrandModel
	if err := getDB(ctx, r.db).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, brand.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al buscar la marca")
	}
	return toBrandEntity(&model), nil
}

func (r *brandRepository) Update(ctx context.Context, b *brand.Brand) error {
	model := toBrandModel(b)
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "error al actualizar la marca")
	}
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *brandRepository) List(ctx context.Context) ([]*brand.Brand, error) {
	var models []BrandModel
	if err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "error al listar las marcas")
	}
	brands := make([]*brand.Brand, len(models))
	for i := range models {
		brands[i] = toBrandEntity(&models[i])
	}
	return brands, nil
}

func toBrandModel(b *brand.Brand) *BrandModel {
	return &BrandModel{
		ID:        b.ID,
		Name:      b.Name,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBrandEntity(m *BrandModel) *brand.Brand {
	return &brand.Brand{
		ID:        m.ID,
		Name:      m.Name,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
