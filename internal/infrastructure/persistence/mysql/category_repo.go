package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tiendamoderna/tienda/internal/domain/category"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrSlugTaken
		}
		return apperrors.Wrap(err, "error al crear la categoría")
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al buscar la categoría")
	}
	return toCategoryEntity(&model), nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*category.Category, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *categoryRepository) findOne(ctx context.Context, query string, arg interface{}) (*category.Category, error) {
	var model CategoryModel
	if err := getDB(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al buscar la categoría")
	}
	return toCategoryEntity(&model), nil
}

func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrSlugTaken
		}
		return apperrors.Wrap(err, "error al actualizar la categoría")
	}
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&CategoryModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "error al eliminar la categoría")
	}
	if result.RowsAffected == 0 {
		return category.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var models []CategoryModel
	if err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "error al listar las categorías")
	}
	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

func toCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		ParentID:  c.ParentID,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCategoryEntity(m *CategoryModel) *category.Category {
	return &category.Category{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		ParentID:  m.ParentID,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
