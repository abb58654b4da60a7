package brand

import (
	"context"

	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// ErrNotFound is returned when a brand lookup misses.
var ErrNotFound = apperrors.ErrBrandNotFound

// Repository is implemented by the persistence layer.
type Repository interface {
	Create(ctx context.Context, b *Brand) error

	FindByID(ctx context.Context, id uint) (*Brand, error)
	FindByName(ctx context.Context, name string) (*Brand, error)

	Update(ctx context.Context, b *Brand) error

	List(ctx context.Context) ([]*Brand, error)
}
