package catalog

import (
	"context"
	"strings"

	"github.com/tiendamoderna/tienda/internal/domain/brand"
	"github.com/tiendamoderna/tienda/internal/domain/category"
	"github.com/tiendamoderna/tienda/internal/domain/product"
)

type fakeProductRepo struct {
	byID   map[uint]*product.Product
	nextID uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[uint]*product.Product), nextID: 1}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	for _, existing := range f.byID {
		if existing.SKU == p.SKU {
			return product.ErrSKUTaken
		}
	}
	p.ID = f.nextID
	f.nextID++
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	for _, p := range f.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, product.ErrNotFound
}

func (f *fakeProductRepo) LockByID(ctx context.Context, id uint) (*product.Product, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeProductRepo) Update(ctx context.Context, p *product.Product) error {
	for id, existing := range f.byID {
		if existing.SKU == p.SKU && id != p.ID {
			return product.ErrSKUTaken
		}
	}
	if _, ok := f.byID[p.ID]; !ok {
		return product.ErrNotFound
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.byID[id]; !ok {
		return product.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeProductRepo) AdjustStock(ctx context.Context, id uint, delta int) error {
	p, ok := f.byID[id]
	if !ok {
		return product.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return product.ErrInsufficientStock
	}
	p.Stock += delta
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error) {
	var out []*product.Product
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Search(ctx context.Context, term string, page, pageSize int) ([]*product.Product, int64, error) {
	var out []*product.Product
	for _, p := range f.byID {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*product.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) ListByBrand(ctx context.Context, brandID uint, page, pageSize int) ([]*product.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) ListFeatured(ctx context.Context) ([]*product.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) ListOnSale(ctx context.Context) ([]*product.Product, error) {
	return nil, nil
}

type fakeCategoryRepo struct {
	byID   map[uint]*category.Category
	nextID uint
}

func newFakeCategoryRepo(categories ...*category.Category) *fakeCategoryRepo {
	f := &fakeCategoryRepo{byID: make(map[uint]*category.Category), nextID: 1}
	for _, c := range categories {
		c.ID = f.nextID
		f.nextID++
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *category.Category) error {
	for _, existing := range f.byID {
		if existing.Slug == c.Slug {
			return category.ErrSlugTaken
		}
	}
	c.ID = f.nextID
	f.nextID++
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, category.ErrNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*category.Category, error) {
	for _, c := range f.byID {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, category.ErrNotFound
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*category.Category, error) {
	for _, c := range f.byID {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, category.ErrNotFound
}

func (f *fakeCategoryRepo) Update(ctx context.Context, c *category.Category) error { return nil }
func (f *fakeCategoryRepo) Delete(ctx context.Context, id uint) error              { return nil }

func (f *fakeCategoryRepo) List(ctx context.Context) ([]*category.Category, error) {
	var out []*category.Category
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

type fakeBrandRepo struct {
	byID   map[uint]*brand.Brand
	nextID uint
}

func newFakeBrandRepo(brands ...*brand.Brand) *fakeBrandRepo {
	f := &fakeBrandRepo{byID: make(map[uint]*brand.Brand), nextID: 1}
	for _, b := range brands {
		b.ID = f.nextID
		f.nextID++
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBrandRepo) Create(ctx context.Context, b *brand.Brand) error {
	b.ID = f.nextID
	f.nextID++
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBrandRepo) FindByID(ctx context.Context, id uint) (*brand.Brand, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, brand.ErrNotFound
	}
	return b, nil
}

func (f *fakeBrandRepo) FindByName(ctx context.Context, name string) (*brand.Brand, error) {
	for _, b := range f.byID {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, brand.ErrNotFound
}

func (f *fakeBrandRepo) Update(ctx context.Context, b *brand.Brand) error {
	if _, ok := f.byID[b.ID]; !ok {
		return brand.ErrNotFound
	}
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBrandRepo) List(ctx context.Context) ([]*brand.Brand, error) {
	var out []*brand.Brand
	for _, b := range f.byID {
		out = append(out, b)
	}
	return out, nil
}
