package order

import (
	"context"
	"fmt"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/order"
	"github.com/tiendamoderna/tienda/internal/domain/product"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
	"github.com/tiendamoderna/tienda/pkg/metrics"
)

// TxManager runs fn inside a database transaction; fn's context carries the
// transaction so repository calls inside it share it. Implemented by the
// mysql persistence layer.
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits integration events to the broker. The email worker
// and back office listen on these routing keys.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// CreateOrderUseCase is the checkout flow: validate each cart line against
// live stock under row locks, snapshot prices, decrement stock and persist
// the order atomically.
type CreateOrderUseCase struct {
	orderRepo   order.Repository
	productRepo product.Repository
	txManager   TxManager
	publisher   EventPublisher
}

func NewCreateOrderUseCase(
	orderRepo order.Repository,
	productRepo product.Repository,
	txManager TxManager,
	publisher EventPublisher,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

type CreateOrderRequest struct {
	UserID uint
	Items  []CartItem

	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string

	CouponCode    string
	Notes         string
	PaymentMethod string
}

type CartItem struct {
	ProductID uint
	VariantID *uint
	Quantity  int
}

// Execute places the order. Per-line validation runs in input order: the
// product must exist, be active and have enough stock. The first failing
// line aborts the whole transaction, so no stock decremented for earlier
// lines survives.
//
// Stock is decremented line by line, so a cart naming the same product twice
// sees the first line's decrement when the second is checked.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*order.Order, error) {
	if len(req.Items) == 0 {
		return nil, order.ErrEmptyCart
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, order.ErrInvalidQuantity
		}
	}

	start := time.Now()

	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		lines := make([]order.Line, 0, len(req.Items))
		for _, item := range req.Items {
			// Row lock so a concurrent checkout on the same product
			// waits until this transaction commits or rolls back.
			p, err := uc.productRepo.LockByID(txCtx, item.ProductID)
			if err != nil {
				return err
			}
			if !p.Active {
				return apperrors.New(apperrors.ErrCodeProductInactive,
					fmt.Sprintf("el producto %s no está disponible", p.Name))
			}
			if !p.HasStock(item.Quantity) {
				return apperrors.New(apperrors.ErrCodeInsufficientStock,
					fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d",
						p.Name, p.Stock, item.Quantity))
			}

			lines = append(lines, order.NewLine(
				p.ID, item.VariantID, p.Name,
				item.Quantity, p.BasePrice, p.UnitDiscount(),
			))

			// Decrement right away so later lines for the same product
			// validate against the reduced count.
			if err := uc.productRepo.AdjustStock(txCtx, p.ID, -item.Quantity); err != nil {
				return err
			}
		}

		var subtotal int64
		for _, l := range lines {
			subtotal += l.Subtotal
		}
		shipping := order.CalculateShipping(subtotal, req.Province)

		now := time.Now().UTC()
		count, err := uc.orderRepo.CountCreatedOn(txCtx, now)
		if err != nil {
			return err
		}
		number := order.FormatOrderNumber(now, count+1)

		o := order.NewOrder(number, req.UserID, lines, order.Address{
			Street:     req.Street,
			City:       req.City,
			Province:   req.Province,
			PostalCode: req.PostalCode,
			Country:    req.Country,
		}, shipping)
		o.CouponCode = req.CouponCode
		o.Notes = req.Notes
		o.PaymentMethod = req.PaymentMethod

		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderCreationDuration.Observe(time.Since(start).Seconds())

	if pubErr := uc.publisher.Publish(ctx, "order.created", map[string]interface{}{
		"order_id":     result.ID,
		"order_number": result.OrderNumber,
		"user_id":      result.UserID,
		"total":        result.Total,
	}); pubErr != nil {
		// The order is committed; a broker hiccup must not fail the checkout.
		logPublishFailure("order.created", pubErr)
	}

	return result, nil
}
