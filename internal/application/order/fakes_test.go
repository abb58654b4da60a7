package order

import (
	"context"
	"errors"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/order"
	"github.com/tiendamoderna/tienda/internal/domain/product"
)

// fakeProductRepo keeps products in a map. Reads hand out copies so callers
// observe stock as of the call, like a fresh SELECT would.
type fakeProductRepo struct {
	byID map[uint]*product.Product
}

func newFakeProductRepo(products ...*product.Product) *fakeProductRepo {
	f := &fakeProductRepo{byID: make(map[uint]*product.Product)}
	for _, p := range products {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) find(id uint) (*product.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p *product.Product) error { return nil }
func (f *fakeProductRepo) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	return f.find(id)
}
func (f *fakeProductRepo) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	return nil, product.ErrNotFound
}
func (f *fakeProductRepo) LockByID(ctx context.Context, id uint) (*product.Product, error) {
	return f.find(id)
}
func (f *fakeProductRepo) Update(ctx context.Context, p *product.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id uint) error            { return nil }

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
	return nil, 0, nil
}
func (f *fakeProductRepo) Search(ctx context.Context, term string, page, pageSize int) ([]*product.Product, int64, error) {
	return nil, 0, nil
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

func (f *fakeProductRepo) stocks() map[uint]int {
	snap := make(map[uint]int, len(f.byID))
	for id, p := range f.byID {
		snap[id] = p.Stock
	}
	return snap
}

func (f *fakeProductRepo) restoreStocks(snap map[uint]int) {
	for id, stock := range snap {
		if p, ok := f.byID[id]; ok {
			p.Stock = stock
		}
	}
}

// fakeOrderRepo stores orders in memory, assigning sequential ids.
type fakeOrderRepo struct {
	orders []*order.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	for _, existing := range f.orders {
		if existing.OrderNumber == o.OrderNumber {
			return errors.New("duplicate order number")
		}
	}
	o.ID = f.nextID
	f.nextID++
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, order.ErrNotFound
}

func (f *fakeOrderRepo) FindByNumber(ctx context.Context, number string) (*order.Order, error) {
	for _, o := range f.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, order.ErrNotFound
}

func (f *fakeOrderRepo) Update(ctx context.Context, o *order.Order) error { return nil }

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var out []*order.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) ListByStatus(ctx context.Context, status order.Status, page, pageSize int) ([]*order.Order, int64, error) {
	var out []*order.Order
	for _, o := range f.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	dayStart := day.UTC().Truncate(24 * time.Hour)
	var count int64
	for _, o := range f.orders {
		created := o.CreatedAt.UTC().Truncate(24 * time.Hour)
		if created.Equal(dayStart) {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) SalesTotal(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	for _, o := range f.orders {
		if o.Status == order.StatusCancelled {
			continue
		}
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) {
			continue
		}
		total += o.Total
	}
	return total, nil
}

// fakeTxManager snapshots the stores before fn and restores them when fn
// fails, mimicking a rollback.
type fakeTxManager struct {
	products *fakeProductRepo
	orders   *fakeOrderRepo
}

func (f *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	stockSnap := f.products.stocks()
	orderCount := len(f.orders.orders)
	if err := fn(ctx); err != nil {
		f.products.restoreStocks(stockSnap)
		f.orders.orders = f.orders.orders[:orderCount]
		return err
	}
	return nil
}

// fakePublisher records published events; failWith makes every publish fail.
type fakePublisher struct {
	events   []string
	failWith error
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.events = append(f.events, routingKey)
	return nil
}
