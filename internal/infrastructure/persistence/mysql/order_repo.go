package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tiendamoderna/tienda/internal/domain/order"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create persists the order and its lines in one insert; the unique index on
// order_number fails the transaction on a same-day sequence collision.
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeBusinessError, "número de orden duplicado, reintente")
		}
		return apperrors.Wrap(err, "error al crear la orden")
	}
	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	for i := range model.Lines {
		if i < len(o.Lines) {
			o.Lines[i].ID = model.Lines[i].ID
			o.Lines[i].OrderID = model.Lines[i].OrderID
		}
	}
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).Preload("Lines").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al buscar la orden")
	}
	return toOrderEntity(&model), nil
}

func (r *orderRepository) FindByNumber(ctx context.Context, number string) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).Preload("Lines").Where("order_number = ?", number).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al buscar la orden")
	}
	return toOrderEntity(&model), nil
}

// Update saves the order row only; lines are immutable after checkout.
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)
	model.Lines = nil
	if err := getDB(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "error al actualizar la orden")
	}
	o.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	return r.listWhere(ctx, page, pageSize, "user_id = ?", userID)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status order.Status, page, pageSize int) ([]*order.Order, int64, error) {
	return r.listWhere(ctx, page, pageSize, "status = ?", string(status))
}

func (r *orderRepository) listWhere(ctx context.Context, page, pageSize int, query string, arg interface{}) ([]*order.Order, int64, error) {
	q := getDB(ctx, r.db).Model(&OrderModel{}).Where(query, arg)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "error al contar las órdenes")
	}

	var models []OrderModel
	err := q.Preload("Lines").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "error al listar las órdenes")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

// CountCreatedOn counts orders created during the given UTC calendar day.
func (r *orderRepository) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var count int64
	err := getDB(ctx, r.db).Model(&OrderModel{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "error al contar las órdenes del día")
	}
	return count, nil
}

// SalesTotal sums totals in the range, leaving cancelled orders out.
func (r *orderRepository) SalesTotal(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := getDB(ctx, r.db).Model(&OrderModel{}).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Where("status <> ?", string(order.StatusCancelled)).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "error al calcular el total de ventas")
	}
	return total, nil
}

func toOrderModel(o *order.Order) *OrderModel {
	model := &OrderModel{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		Status:        string(o.Status),
		Subtotal:      o.Subtotal,
		TotalDiscount: o.TotalDiscount,
		ShippingCost:  o.ShippingCost,
		Total:         o.Total,
		Street:        o.ShippingAddress.Street,
		City:          o.ShippingAddress.City,
		Province:      o.ShippingAddress.Province,
		PostalCode:    o.ShippingAddress.PostalCode,
		Country:       o.ShippingAddress.Country,
		CouponCode:    o.CouponCode,
		Notes:         o.Notes,
		PaymentMethod: o.PaymentMethod,
		TransactionID: o.TransactionID,
		Carrier:       o.Carrier,
		TrackingCode:  o.TrackingCode,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		PaidAt:        o.PaidAt,
		ShippedAt:     o.ShippedAt,
		DeliveredAt:   o.DeliveredAt,
	}
	for _, l := range o.Lines {
		model.Lines = append(model.Lines, OrderLineModel{
			ID:           l.ID,
			OrderID:      l.OrderID,
			ProductID:    l.ProductID,
			VariantID:    l.VariantID,
			ProductName:  l.ProductName,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			UnitDiscount: l.UnitDiscount,
			Subtotal:     l.Subtotal,
			Total:        l.Total,
		})
	}
	return model
}

func toOrderEntity(m *OrderModel) *order.Order {
	o := &order.Order{
		ID:            m.ID,
		OrderNumber:   m.OrderNumber,
		UserID:        m.UserID,
		Status:        order.Status(m.Status),
		Subtotal:      m.Subtotal,
		TotalDiscount: m.TotalDiscount,
		ShippingCost:  m.ShippingCost,
		Total:         m.Total,
		ShippingAddress: order.Address{
			Street:     m.Street,
			City:       m.City,
			Province:   m.Province,
			PostalCode: m.PostalCode,
			Country:    m.Country,
		},
		CouponCode:    m.CouponCode,
		Notes:         m.Notes,
		PaymentMethod: m.PaymentMethod,
		TransactionID: m.TransactionID,
		Carrier:       m.Carrier,
		TrackingCode:  m.TrackingCode,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		PaidAt:        m.PaidAt,
		ShippedAt:     m.ShippedAt,
		DeliveredAt:   m.DeliveredAt,
	}
	for _, l := range m.Lines {
		o.Lines = append(o.Lines, order.Line{
			ID:           l.ID,
			OrderID:      l.OrderID,
			ProductID:    l.ProductID,
			VariantID:    l.VariantID,
			ProductName:  l.ProductName,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			UnitDiscount: l.UnitDiscount,
			Subtotal:     l.Subtotal,
			Total:        l.Total,
		})
	}
	return o
}
