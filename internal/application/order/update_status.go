package order

import (
	"context"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/order"
)

// UpdateStatusUseCase moves an order through its fulfillment states. The
// marks are deliberately permissive: they set the state and stamp the
// timestamp if unset, without checking the previous state.
type UpdateStatusUseCase struct {
	orderRepo order.Repository
}

func NewUpdateStatusUseCase(orderRepo order.Repository) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{orderRepo: orderRepo}
}

// MarkPaid records payment with the processor's transaction id.
func (uc *UpdateStatusUseCase) MarkPaid(ctx context.Context, orderID uint, transactionID string) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.MarkPaid(transactionID, time.Now())
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// MarkShipped records shipment with carrier and tracking code.
func (uc *UpdateStatusUseCase) MarkShipped(ctx context.Context, orderID uint, carrier, trackingCode string) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.MarkShipped(carrier, trackingCode, time.Now())
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// MarkDelivered records delivery.
func (uc *UpdateStatusUseCase) MarkDelivered(ctx context.Context, orderID uint) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.MarkDelivered(time.Now())
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
