package category

import (
	"context"
)

// Repository is implemented by the persistence layer. Implementations map
// duplicate slugs to ErrSlugTaken and missing rows to ErrNotFound.
type Repository interface {
	Create(ctx context.Context, c *Category) error

	FindByID(ctx context.Context, id uint) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)

	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context) ([]*Category, error)
}
