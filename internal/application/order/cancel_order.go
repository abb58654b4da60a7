package order

import (
	"context"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/order"
	"github.com/tiendamoderna/tienda/internal/domain/product"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
	"github.com/tiendamoderna/tienda/pkg/metrics"
)

// CancelOrderUseCase cancels a pending or paid order and restores each
// line's quantity to its product's stock, atomically.
type CancelOrderUseCase struct {
	orderRepo   order.Repository
	productRepo product.Repository
	txManager   TxManager
	publisher   EventPublisher
}

func NewCancelOrderUseCase(
	orderRepo order.Repository,
	productRepo product.Repository,
	txManager TxManager,
	publisher EventPublisher,
) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute cancels the order. Customers can only cancel their own orders;
// admins can cancel any. Illegal states (shipped and beyond) fail without
// touching anything.
func (uc *CancelOrderUseCase) Execute(ctx context.Context, orderID, requesterID uint, isAdmin bool) (*order.Order, error) {
	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.FindByID(txCtx, orderID)
		if err != nil {
			return err
		}
		if !isAdmin && !o.IsOwnedBy(requesterID) {
			return apperrors.ErrForbidden
		}

		if err := o.MarkCancelled(time.Now()); err != nil {
			return err
		}

		for _, l := range o.Lines {
			if err := uc.productRepo.AdjustStock(txCtx, l.ProductID, l.Quantity); err != nil {
				return err
			}
		}

		if err := uc.orderRepo.Update(txCtx, o); err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCancelledTotal.Inc()

	if pubErr := uc.publisher.Publish(ctx, "order.cancelled", map[string]interface{}{
		"order_id":     result.ID,
		"order_number": result.OrderNumber,
		"user_id":      result.UserID,
	}); pubErr != nil {
		logPublishFailure("order.cancelled", pubErr)
	}

	return result, nil
}
