package order

import (
	"context"
	"time"
)

// Repository is implemented by the persistence layer. Create persists the
// order together with its lines; lookups load lines eagerly.
type Repository interface {
	Create(ctx context.Context, o *Order) error

	FindByID(ctx context.Context, id uint) (*Order, error)
	FindByNumber(ctx context.Context, number string) (*Order, error)

	Update(ctx context.Context, o *Order) error

	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)
	ListByStatus(ctx context.Context, status Status, page, pageSize int) ([]*Order, int64, error)

	// CountCreatedOn counts orders created on the given UTC calendar day,
	// feeding the daily order-number sequence.
	CountCreatedOn(ctx context.Context, day time.Time) (int64, error)

	// SalesTotal sums Total over [from, to], excluding cancelled orders.
	SalesTotal(ctx context.Context, from, to time.Time) (int64, error)
}
