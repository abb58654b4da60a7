package order

import (
	"context"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/order"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// QueryOrdersUseCase groups the read-only order operations.
type QueryOrdersUseCase struct {
	orderRepo order.Repository
}

func NewQueryOrdersUseCase(orderRepo order.Repository) *QueryOrdersUseCase {
	return &QueryOrdersUseCase{orderRepo: orderRepo}
}

// GetByID loads an order; customers only see their own.
func (uc *QueryOrdersUseCase) GetByID(ctx context.Context, orderID, requesterID uint, isAdmin bool) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !o.IsOwnedBy(requesterID) {
		return nil, apperrors.ErrForbidden
	}
	return o, nil
}

// GetByNumber loads an order by its human-readable number.
func (uc *QueryOrdersUseCase) GetByNumber(ctx context.Context, number string, requesterID uint, isAdmin bool) (*order.Order, error) {
	o, err := uc.orderRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !o.IsOwnedBy(requesterID) {
		return nil, apperrors.ErrForbidden
	}
	return o, nil
}

// ListMine returns the requester's orders, newest first.
func (uc *QueryOrdersUseCase) ListMine(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	return uc.orderRepo.ListByUser(ctx, userID, page, pageSize)
}

// ListByStatus returns orders in a given state, for the back office.
func (uc *QueryOrdersUseCase) ListByStatus(ctx context.Context, status string, page, pageSize int) ([]*order.Order, int64, error) {
	st, err := order.ParseStatus(status)
	if err != nil {
		return nil, 0, err
	}
	return uc.orderRepo.ListByStatus(ctx, st, page, pageSize)
}

// SalesTotal sums order totals over [from, to], excluding cancelled orders.
// Zero times default to the last month ending now.
func (uc *QueryOrdersUseCase) SalesTotal(ctx context.Context, from, to time.Time) (int64, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, -1, 0)
	}
	return uc.orderRepo.SalesTotal(ctx, from, to)
}
