package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID map[uint]*Category
}

func (f *fakeRepo) Create(ctx context.Context, c *Category) error { return nil }
func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}
func (f *fakeRepo) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	return nil, ErrNotFound
}
func (f *fakeRepo) FindByName(ctx context.Context, name string) (*Category, error) {
	return nil, ErrNotFound
}
func (f *fakeRepo) Update(ctx context.Context, c *Category) error { return nil }
func (f *fakeRepo) Delete(ctx context.Context, id uint) error     { return nil }
func (f *fakeRepo) List(ctx context.Context) ([]*Category, error) { return nil, nil }

func uintPtr(v uint) *uint { return &v }

func TestService_EnsureNoCycle(t *testing.T) {
	// ropa(1) -> remeras(2) -> manga-corta(3)
	repo := &fakeRepo{byID: map[uint]*Category{
		1: {ID: 1, Name: "Ropa"},
		2: {ID: 2, Name: "Remeras", ParentID: uintPtr(1)},
		3: {ID: 3, Name: "Manga corta", ParentID: uintPtr(2)},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	t.Run("nil parent is always fine", func(t *testing.T) {
		require.NoError(t, svc.EnsureNoCycle(ctx, 2, nil))
	})

	t.Run("valid reparenting", func(t *testing.T) {
		require.NoError(t, svc.EnsureNoCycle(ctx, 3, uintPtr(1)))
	})

	t.Run("direct self-parent", func(t *testing.T) {
		assert.ErrorIs(t, svc.EnsureNoCycle(ctx, 1, uintPtr(1)), ErrCycle)
	})

	t.Run("ancestor chain cycle", func(t *testing.T) {
		// Making ropa a child of manga-corta would close the loop.
		assert.ErrorIs(t, svc.EnsureNoCycle(ctx, 1, uintPtr(3)), ErrCycle)
	})

	t.Run("missing parent surfaces repository error", func(t *testing.T) {
		assert.ErrorIs(t, svc.EnsureNoCycle(ctx, 1, uintPtr(99)), ErrNotFound)
	})
}
