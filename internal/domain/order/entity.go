package order

import (
	"time"
)

// Status is the order lifecycle state. Stored and exposed as a string so the
// API's estado path parameter maps directly.
type Status string

const (
	StatusPending       Status = "pendiente"
	StatusPaid          Status = "pagada"
	StatusInPreparation Status = "en_preparacion"
	StatusShipped       Status = "enviada"
	StatusDelivered     Status = "entregada"
	StatusCancelled     Status = "cancelada"
	StatusReturned      Status = "devuelta"
)

// ParseStatus validates a status string from the API.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPaid, StatusInPreparation, StatusShipped,
		StatusDelivered, StatusCancelled, StatusReturned:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

// Address is the shipping destination snapshot frozen on the order.
type Address struct {
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// Line is one product line item. Unit price and unit discount are frozen at
// checkout time; later catalog price changes never affect the order.
type Line struct {
	ID           uint
	OrderID      uint
	ProductID    uint
	VariantID    *uint
	ProductName  string
	Quantity     int
	UnitPrice    int64
	UnitDiscount int64
	Subtotal     int64
	Total        int64
}

// Order is the checkout aggregate root. Total always equals
// Subtotal - TotalDiscount + ShippingCost.
type Order struct {
	ID          uint
	OrderNumber string
	UserID      uint
	Status      Status

	Subtotal      int64
	TotalDiscount int64
	ShippingCost  int64
	Total         int64

	ShippingAddress Address
	CouponCode      string
	Notes           string

	PaymentMethod string
	TransactionID string
	Carrier       string
	TrackingCode  string

	Lines []Line

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PaidAt      *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

// NewOrder creates a pending order from already-snapshotted lines, computing
// the aggregate amounts.
func NewOrder(orderNumber string, userID uint, lines []Line, address Address, shippingCost int64) *Order {
	now := time.Now()
	o := &Order{
		OrderNumber:     orderNumber,
		UserID:          userID,
		Status:          StatusPending,
		ShippingAddress: address,
		ShippingCost:    shippingCost,
		Lines:           lines,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, l := range lines {
		o.Subtotal += l.Subtotal
		o.TotalDiscount += l.UnitDiscount * int64(l.Quantity)
	}
	o.Total = o.Subtotal - o.TotalDiscount + o.ShippingCost
	return o
}

// NewLine snapshots one cart line at the given unit price and discount.
func NewLine(productID uint, variantID *uint, productName string, quantity int, unitPrice, unitDiscount int64) Line {
	return Line{
		ProductID:    productID,
		VariantID:    variantID,
		ProductName:  productName,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		UnitDiscount: unitDiscount,
		Subtotal:     unitPrice * int64(quantity),
		Total:        (unitPrice - unitDiscount) * int64(quantity),
	}
}

// CanCancel reports whether cancellation is still legal. Once an order is
// shipped, delivered or returned, stock has left the building.
func (o *Order) CanCancel() bool {
	return o.Status == StatusPending || o.Status == StatusPaid
}

// MarkCancelled flips the state after CanCancel has been checked. The caller
// restores stock in the same transaction.
func (o *Order) MarkCancelled(now time.Time) error {
	if !o.CanCancel() {
		return ErrCannotCancel
	}
	o.Status = StatusCancelled
	o.UpdatedAt = now
	return nil
}

// MarkPaid records payment. Deliberately permissive: no check that the order
// was pending. Stamps PaidAt only once.
func (o *Order) MarkPaid(transactionID string, now time.Time) {
	o.Status = StatusPaid
	o.TransactionID = transactionID
	if o.PaidAt == nil {
		o.PaidAt = &now
	}
	o.UpdatedAt = now
}

// MarkShipped records shipment with the carrier and tracking code.
func (o *Order) MarkShipped(carrier, trackingCode string, now time.Time) {
	o.Status = StatusShipped
	o.Carrier = carrier
	o.TrackingCode = trackingCode
	if o.ShippedAt == nil {
		o.ShippedAt = &now
	}
	o.UpdatedAt = now
}

// MarkDelivered records delivery.
func (o *Order) MarkDelivered(now time.Time) {
	o.Status = StatusDelivered
	if o.DeliveredAt == nil {
		o.DeliveredAt = &now
	}
	o.UpdatedAt = now
}

// IsOwnedBy checks order ownership for the my-orders and detail endpoints.
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
